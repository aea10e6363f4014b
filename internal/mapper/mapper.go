// Package mapper holds the value mapping strategies a site profile is built from.
// Every strategy is plain data so profiles stay serializable.
package mapper

import "wpcomics/internal/domain"

type StatusMapper interface {
	Status(raw string) domain.MangaStatus
}

// TimeConverter returns Unix seconds, or -1 when raw cannot be parsed.
type TimeConverter interface {
	Convert(raw string) float64
}

// ListingMapper returns the URL slug for a listing label, or "" for unknown labels.
type ListingMapper interface {
	Slug(name string) string
}
