package sharedhttp

import (
	"context"
	"time"

	"wpcomics/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"github.com/avast/retry-go"
	"github.com/gocolly/colly"
	"github.com/gocolly/colly/extensions"
	"github.com/pkg/errors"
)

// Observer is told about every finished fetch.
type Observer interface {
	ObserveFetch(err error)
}

type Options struct {
	Timeout   time.Duration
	Attempts  uint
	Delay     time.Duration
	Protected bool
	UserAgent string
	Observer  Observer
}

// Fetcher downloads pages with colly and hands back the parsed document.
type Fetcher struct {
	Collector colly.Collector
	attempts  uint
	delay     time.Duration
	observer  Observer
	randomUA  bool
}

func NewFetcher(opts Options) *Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = 120 * time.Second
	}
	if opts.Attempts == 0 {
		opts.Attempts = 3
	}
	if opts.Delay <= 0 {
		opts.Delay = 3 * time.Second
	}

	collector := colly.NewCollector(
		colly.AllowURLRevisit(),
	)
	if opts.UserAgent != "" {
		collector.UserAgent = opts.UserAgent
	}

	collector.WithTransport(RoundTripper(opts.Protected))
	collector.SetRequestTimeout(opts.Timeout)

	return &Fetcher{
		Collector: *collector,
		attempts:  opts.Attempts,
		delay:     opts.Delay,
		observer:  opts.Observer,
		randomUA:  opts.UserAgent == "",
	}
}

// Document fetches target and returns its <html> element.
func (f *Fetcher) Document(ctx context.Context, target string) (*goquery.Selection, error) {
	c := f.Collector.Clone()

	// clones do not inherit callbacks, so the user agent rotation is attached per fetch
	if f.randomUA {
		extensions.RandomUserAgent(c)
	}

	var (
		doc    *goquery.Selection
		status int
	)

	c.OnHTML("html", func(e *colly.HTMLElement) {
		if doc == nil {
			doc = e.DOM
		}
	})
	c.OnError(func(r *colly.Response, _ error) {
		if r != nil {
			status = r.StatusCode
		}
	})

	err := retry.Do(func() error {
		if err := ctx.Err(); err != nil {
			return retry.Unrecoverable(err)
		}

		doc, status = nil, 0

		err := c.Visit(target)
		if err == nil {
			return nil
		}
		if status != 0 {
			if statusErr := CheckStatusCode(status); statusErr != nil {
				return statusErr
			}
		}

		return err
	},
		retry.Attempts(f.attempts),
		retry.Delay(f.delay),
		retry.MaxJitter(time.Second*1),
		retry.LastErrorOnly(true),
	)

	if err == nil && doc == nil {
		err = errors.WithMessage(domain.ErrEmptyDocument, target)
	}

	if f.observer != nil {
		f.observer.ObserveFetch(err)
	}

	if err != nil {
		return nil, err
	}

	return doc, nil
}
