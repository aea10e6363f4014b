package cmd

import (
	"encoding/json"
	"os"
	"sort"
	"time"

	"wpcomics/internal/buildinfo"
	"wpcomics/internal/config"
	"wpcomics/internal/logger"
	"wpcomics/internal/metrics"
	"wpcomics/internal/sharedhttp"
	"wpcomics/internal/wpcomics"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// engine bundles what every command needs: a configured source plus its logger and counters.
type engine struct {
	source   *wpcomics.Source
	log      logger.Logger
	registry *prometheus.Registry
}

func newEngine() (*engine, error) {
	// read config
	cfg := config.New(configPath, buildinfo.Version)

	// init new logger
	log := logger.New(cfg.Config)

	if configPath != "" {
		if err := cfg.UpdateConfig(); err != nil {
			log.Error().Err(err).Msgf("error updating config")
		}
	}

	// init dynamic config
	cfg.DynamicReload(log)

	path := cfg.Config.ProfilePath
	if profilePath != "" {
		path = profilePath
	}

	profile, err := wpcomics.LoadProfile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not load profile")
	}

	registry := prometheus.NewRegistry()
	recorder := metrics.New(registry)

	fetcher := sharedhttp.NewFetcher(sharedhttp.Options{
		Timeout:   time.Duration(cfg.Config.RequestTimeout) * time.Second,
		Attempts:  uint(cfg.Config.RetryAttempts),
		Protected: profile.VinahostProtection,
		Observer:  recorder,
	})

	source, err := wpcomics.New(profile, fetcher,
		wpcomics.WithSettings(cfg),
		wpcomics.WithLogger(log.With().Logger()),
		wpcomics.WithDiagnostics(recorder),
	)
	if err != nil {
		return nil, errors.Wrap(err, "could not create source")
	}

	log.Debug().Msgf("using profile %s", profile.String())

	return &engine{
		source:   source,
		log:      log,
		registry: registry,
	}, nil
}

// finish logs the counters collected during the command when --metrics is set.
func (e *engine) finish() {
	if !showMetrics {
		return
	}

	summary, err := metrics.Summarize(e.registry)
	if err != nil {
		e.log.Error().Err(err).Msg("could not gather metrics")
		return
	}

	names := make([]string, 0, len(summary))
	for name := range summary {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		e.log.Info().Str("series", name).Float64("value", summary[name]).Msg("metric")
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
