package wpcomics

import "github.com/rs/zerolog"

// Diagnostics receives the degraded-extraction events the engine resolves on its own.
// Extraction is best effort: a selector that matches nothing or a chapter title without a
// number never fails an operation, it is reported here instead.
type Diagnostics interface {
	ExtractionMiss(field, selector string)
	ChapterNumberFallback(title string, index int)
}

type logDiagnostics struct {
	log zerolog.Logger
}

func (d logDiagnostics) ExtractionMiss(field, selector string) {
	d.log.Debug().Str("field", field).Str("selector", selector).Msg("selector matched nothing")
}

func (d logDiagnostics) ChapterNumberFallback(title string, index int) {
	d.log.Warn().Str("title", title).Int("index", index).Msg("no chapter number in title, using row position")
}

type multiDiagnostics []Diagnostics

func (m multiDiagnostics) ExtractionMiss(field, selector string) {
	for _, d := range m {
		d.ExtractionMiss(field, selector)
	}
}

func (m multiDiagnostics) ChapterNumberFallback(title string, index int) {
	for _, d := range m {
		d.ChapterNumberFallback(title, index)
	}
}
