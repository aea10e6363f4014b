package domain

import (
	"fmt"
	"strings"
)

type MangaStatus int

const (
	StatusUnknown MangaStatus = iota
	StatusOngoing
	StatusCompleted
)

func (s MangaStatus) String() string {
	switch s {
	case StatusOngoing:
		return "ongoing"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

func (s MangaStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type Viewer int

const (
	ViewerRTL Viewer = iota
	ViewerLTR
	ViewerVertical
	ViewerScroll
)

var viewerNames = map[Viewer]string{
	ViewerRTL:      "rtl",
	ViewerLTR:      "ltr",
	ViewerVertical: "vertical",
	ViewerScroll:   "scroll",
}

func (v Viewer) String() string {
	return viewerNames[v]
}

func (v Viewer) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText lets profiles name the viewer in yaml, e.g. `viewer: rtl`.
func (v *Viewer) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for viewer, n := range viewerNames {
		if n == name {
			*v = viewer
			return nil
		}
	}

	return fmt.Errorf("unknown viewer: %q", name)
}

type Manga struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Cover       string      `json:"cover,omitempty"`
	Author      string      `json:"author,omitempty"`
	Artist      string      `json:"artist,omitempty"`
	Description string      `json:"description,omitempty"`
	URL         string      `json:"url,omitempty"`
	Status      MangaStatus `json:"status"`
	Categories  []string    `json:"categories,omitempty"`
	Viewer      Viewer      `json:"viewer"`
}

type MangaPageResult struct {
	Manga   []Manga `json:"manga"`
	HasMore bool    `json:"hasMore"`
}

// Chapter uses -1 for Volume and DateUpdated when the value is unset or could not be parsed.
type Chapter struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Number      float64 `json:"number"`
	Volume      float64 `json:"volume"`
	DateUpdated float64 `json:"dateUpdated"`
	Scanlator   string  `json:"scanlator,omitempty"`
	Lang        string  `json:"lang"`
}

type Page struct {
	Index    int    `json:"index"`
	ImageURL string `json:"imageUrl"`
}

type Listing struct {
	Name string `json:"name"`
}

// DeepLink is the in-engine target of an external URL. Chapter is nil for manga pages.
type DeepLink struct {
	Manga   *Manga   `json:"manga,omitempty"`
	Chapter *Chapter `json:"chapter,omitempty"`
}
