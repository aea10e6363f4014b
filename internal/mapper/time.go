package mapper

import (
	"strings"
	"time"
)

var patternReplacer = strings.NewReplacer(
	"yyyy", "2006",
	"yy", "06",
	"MM", "01",
	"dd", "02",
	"HH", "15",
	"mm", "04",
	"ss", "05",
)

// DateLayout parses dates written with a fixed pattern such as "dd/MM/yyyy".
type DateLayout struct {
	Pattern  string `yaml:"pattern"`
	Timezone string `yaml:"timezone"`
}

// Layout translates the pattern into a Go reference layout.
func (d DateLayout) Layout() string {
	return patternReplacer.Replace(d.Pattern)
}

func (d DateLayout) Convert(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" || d.Pattern == "" {
		return -1
	}

	loc := time.UTC
	if d.Timezone != "" {
		if l, err := time.LoadLocation(d.Timezone); err == nil {
			loc = l
		}
	}

	t, err := time.ParseInLocation(d.Layout(), raw, loc)
	if err != nil {
		return -1
	}

	return float64(t.Unix())
}
