package wpcomics

import (
	"net/url"
	"strings"
	"testing"

	"wpcomics/internal/domain"
)

func TestListingURL(t *testing.T) {
	p := TruyenQQ()

	tests := []struct {
		name string
		slug string
		page int
		want string
	}{
		{name: "first page", slug: "truyen-con-gai", page: 1, want: "https://truyenqqto.com/truyen-con-gai/trang-1.html"},
		{name: "later page", slug: "truyen-con-trai", page: 3, want: "https://truyenqqto.com/truyen-con-trai/trang-3.html"},
		{name: "page below one", slug: "truyen-con-gai", page: 0, want: "https://truyenqqto.com/truyen-con-gai/trang-1.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ListingURL(p, tt.slug, tt.page); got != tt.want {
				t.Fatalf("ListingURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestListingURLOmitFirstPage(t *testing.T) {
	p := TruyenQQ()
	p.Pagination = Pagination{Segment: "/page/", OmitFirstPage: true}

	if got := ListingURL(p, "hot", 1); got != "https://truyenqqto.com/hot" {
		t.Fatalf("page 1 = %q", got)
	}
	if got := ListingURL(p, "hot", 2); got != "https://truyenqqto.com/hot/page/2" {
		t.Fatalf("page 2 = %q", got)
	}
}

func TestSearchURLTitleWins(t *testing.T) {
	p := TruyenQQ()
	filters := []domain.Filter{
		domain.GenreFilter("action", domain.GenreIncluded),
		domain.TitleFilter("one piece"),
		domain.SelectFilter("Tình trạng", 2),
		domain.SortFilter("Sắp xếp theo", 1),
	}

	got := SearchURL(p, filters, 2)
	want := "https://truyenqqto.com/tim-kiem/trang-2.html?q=one%20piece"
	if got != want {
		t.Fatalf("SearchURL() = %q, want %q", got, want)
	}
}

func TestSearchURLTrimsTitle(t *testing.T) {
	got := SearchURL(TruyenQQ(), []domain.Filter{domain.TitleFilter("  one piece  ")}, 1)
	if want := "https://truyenqqto.com/tim-kiem/trang-1.html?q=one%20piece"; got != want {
		t.Fatalf("SearchURL() = %q, want %q", got, want)
	}
}

func TestSearchURLBlankTitleFallsThrough(t *testing.T) {
	p := TruyenQQ()

	got := SearchURL(p, []domain.Filter{domain.TitleFilter("   ")}, 1)
	if !strings.HasPrefix(got, "https://truyenqqto.com/tim-kiem-nang-cao.html?") {
		t.Fatalf("SearchURL() = %q, want advanced search", got)
	}
}

func TestSearchURLGenres(t *testing.T) {
	p := TruyenQQ()
	filters := []domain.Filter{
		domain.GenreFilter("action", domain.GenreIncluded),
		domain.GenreFilter("drama", domain.GenreExcluded),
		domain.GenreFilter("", domain.GenreIncluded),
		domain.GenreFilter("comedy", 2),
	}

	got := SearchURL(p, filters, 2)
	want := "https://truyenqqto.com/tim-kiem-nang-cao.html?category=action&notcategory=drama&page=2"
	if got != want {
		t.Fatalf("SearchURL() = %q, want %q", got, want)
	}

	u, err := url.Parse(got)
	if err != nil {
		t.Fatal(err)
	}
	q := u.Query()
	if q.Get("category") != "action" || q.Get("notcategory") != "drama" {
		t.Fatalf("unexpected query %v", q)
	}
}

func TestSearchURLSelectParams(t *testing.T) {
	p := TruyenQQ()

	tests := []struct {
		name    string
		filters []domain.Filter
		want    string
	}{
		{
			name:    "status all is omitted",
			filters: []domain.Filter{domain.SelectFilter("Tình trạng", 0)},
			want:    "",
		},
		{
			name:    "status selected",
			filters: []domain.Filter{domain.SelectFilter("Tình trạng", 2)},
			want:    "&status=2",
		},
		{
			name:    "unset values are omitted",
			filters: []domain.Filter{domain.SelectFilter("Quốc gia", -1), domain.SortFilter("Sắp xếp theo", -1)},
			want:    "",
		},
		{
			name:    "country zero is kept",
			filters: []domain.Filter{domain.SelectFilter("Quốc gia", 0)},
			want:    "&country=0",
		},
		{
			name:    "min chapter goes through the ordinal table",
			filters: []domain.Filter{domain.SelectFilter("Số lượng chapter", 3)},
			want:    "&minchapter=200",
		},
		{
			name:    "out of range index is omitted",
			filters: []domain.Filter{domain.SelectFilter("Số lượng chapter", 7)},
			want:    "",
		},
		{
			name:    "sort",
			filters: []domain.Filter{domain.SortFilter("Sắp xếp theo", 4)},
			want:    "&sort=4",
		},
		{
			name:    "unknown filter is ignored",
			filters: []domain.Filter{domain.SelectFilter("Năm", 3)},
			want:    "",
		},
	}

	const prefix = "https://truyenqqto.com/tim-kiem-nang-cao.html?category=&notcategory="
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SearchURL(p, tt.filters, 1); got != prefix+tt.want {
				t.Fatalf("SearchURL() = %q, want %q", got, prefix+tt.want)
			}
		})
	}
}

func TestURLEncodeRoundTrip(t *testing.T) {
	for _, s := range []string{"one piece", "Thám Tử Lừng Danh Conan", "a+b & c/d?", ""} {
		encoded := URLEncode(s)
		if strings.Contains(encoded, " ") || strings.Contains(encoded, "+") {
			t.Fatalf("URLEncode(%q) = %q left a space or plus", s, encoded)
		}

		decoded, err := url.QueryUnescape(encoded)
		if err != nil {
			t.Fatalf("QueryUnescape(%q): %v", encoded, err)
		}
		if decoded != s {
			t.Fatalf("round trip %q -> %q -> %q", s, encoded, decoded)
		}
	}
}
