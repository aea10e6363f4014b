package wpcomics

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"wpcomics/internal/domain"

	"github.com/pkg/errors"
)

const exampleProfile = `
name: Example Comics
base_url: " https://example.com/ "
viewer: scroll
listings:
  Hot: hot
status:
  ongoing: ["Ongoing"]
  completed: ["Completed"]
dates:
  pattern: MM-dd-yyyy
selectors:
  next_page: a.next
  manga_cell: div.item
  manga_cell_title: h3 a
  details_chapters: li.row
  chapter_anchor: a
  page_image: div.page img
pagination:
  segment: /page/
  omit_first_page: true
search:
  keyword_path: /search
  advanced_path: /advanced
  include_param: genres
  exclude_param: exclude
chapter_skip_first: true
`

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile([]byte(exampleProfile))
	if err != nil {
		t.Fatalf("ParseProfile() error = %v", err)
	}

	if p.BaseURL != "https://example.com" {
		t.Fatalf("BaseURL = %q", p.BaseURL)
	}
	if p.Viewer != domain.ViewerScroll {
		t.Fatalf("Viewer = %v", p.Viewer)
	}
	if p.Lang != defaultLang || p.ChapterNumberPattern != defaultChapterNumberPattern {
		t.Fatalf("defaults not applied: %+v", p)
	}
	if p.Selectors.MangaCellURL != "h3 a" {
		t.Fatalf("MangaCellURL = %q", p.Selectors.MangaCellURL)
	}
	if !reflect.DeepEqual(p.Selectors.PageImageAttrs, []string{"src"}) {
		t.Fatalf("PageImageAttrs = %v", p.Selectors.PageImageAttrs)
	}
	if !reflect.DeepEqual(p.AllowedHosts, []string{"example.com"}) {
		t.Fatalf("AllowedHosts = %v", p.AllowedHosts)
	}
	if p.Listings.Slug("Hot") != "hot" || !p.ChapterSkipFirst {
		t.Fatalf("unexpected profile %+v", p)
	}
	if got := p.Dates.Convert("03-15-2024"); got <= 0 {
		t.Fatalf("Dates.Convert() = %v", got)
	}
	if got := ListingURL(p, "hot", 1); got != "https://example.com/hot" {
		t.Fatalf("ListingURL() = %q", got)
	}
	if got := SearchURL(p, []domain.Filter{domain.TitleFilter("abc")}, 1); got != "https://example.com/search/page/1?q=abc" {
		t.Fatalf("SearchURL() = %q", got)
	}
}

func TestParseProfileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing base url", content: "selectors:\n  manga_cell: div\n"},
		{name: "missing selector", content: "base_url: https://example.com\nselectors:\n  manga_cell: div\n"},
		{name: "bad pattern", content: exampleProfile + "chapter_number_pattern: \"(\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProfile([]byte(tt.content))
			if !errors.Is(err, domain.ErrInvalidProfile) {
				t.Fatalf("ParseProfile() error = %v, want ErrInvalidProfile", err)
			}
		})
	}

	if _, err := ParseProfile([]byte("viewer: sideways\n")); err == nil {
		t.Fatal("expected decode error for unknown viewer")
	}
}

func TestLoadProfile(t *testing.T) {
	p, err := LoadProfile("")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "TruyenQQ" {
		t.Fatalf("bundled profile = %q", p.Name)
	}

	path := filepath.Join(t.TempDir(), "example.yaml")
	if err := os.WriteFile(path, []byte(exampleProfile), 0644); err != nil {
		t.Fatal(err)
	}

	p, err = LoadProfile(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Example Comics" {
		t.Fatalf("Name = %q", p.Name)
	}

	if _, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestTruyenQQIsValid(t *testing.T) {
	p := TruyenQQ()
	if !reflect.DeepEqual(p.AllowedHosts, []string{"truyenqqto.com"}) || p.ChapterURLPattern == "" {
		t.Fatalf("bundled profile was not validated: %+v", p)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if p.String() != "TruyenQQ (https://truyenqqto.com)" {
		t.Fatalf("String() = %q", p.String())
	}
}
