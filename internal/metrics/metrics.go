// Package metrics exposes extraction health as prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder counts fetches and degraded extractions. It satisfies both the fetcher's
// observer and the engine's diagnostics sink.
type Recorder struct {
	Fetches          *prometheus.CounterVec
	ExtractionMisses *prometheus.CounterVec
	NumberFallbacks  prometheus.Counter
}

func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		Fetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wpcomics_fetches_total",
				Help: "Total number of page fetches, labeled by outcome.",
			},
			[]string{"outcome"},
		),
		ExtractionMisses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wpcomics_extraction_misses_total",
				Help: "Total number of selectors that matched nothing, labeled by profile field.",
			},
			[]string{"field"},
		),
		NumberFallbacks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wpcomics_chapter_number_fallbacks_total",
				Help: "Total number of chapters numbered by row position instead of title.",
			},
		),
	}

	if reg != nil {
		reg.MustRegister(r.Fetches, r.ExtractionMisses, r.NumberFallbacks)
	}

	return r
}

func (r *Recorder) ObserveFetch(err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	r.Fetches.WithLabelValues(outcome).Inc()
}

func (r *Recorder) ExtractionMiss(field, _ string) {
	r.ExtractionMisses.WithLabelValues(field).Inc()
}

func (r *Recorder) ChapterNumberFallback(_ string, _ int) {
	r.NumberFallbacks.Inc()
}
