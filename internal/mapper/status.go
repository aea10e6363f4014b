package mapper

import (
	"slices"
	"strings"

	"wpcomics/internal/domain"
)

// Literal maps status text by exact comparison against the site's own wording.
type Literal struct {
	Ongoing   []string `yaml:"ongoing"`
	Completed []string `yaml:"completed"`
}

func (l Literal) Status(raw string) domain.MangaStatus {
	raw = strings.TrimSpace(raw)

	switch {
	case raw == "":
		return domain.StatusUnknown
	case slices.Contains(l.Ongoing, raw):
		return domain.StatusOngoing
	case slices.Contains(l.Completed, raw):
		return domain.StatusCompleted
	default:
		return domain.StatusUnknown
	}
}
