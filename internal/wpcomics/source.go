package wpcomics

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"wpcomics/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Fetcher retrieves and parses one page. Timeouts and retries are its concern.
type Fetcher interface {
	Document(ctx context.Context, url string) (*goquery.Selection, error)
}

// Source runs the catalog and detail pipelines for one profile. It holds no mutable state, so
// a Source can serve concurrent calls.
type Source struct {
	profile  Profile
	fetcher  Fetcher
	settings domain.Settings
	log      zerolog.Logger
	diag     Diagnostics

	chapterURL *regexp.Regexp
}

type Option func(*Source)

func WithSettings(settings domain.Settings) Option {
	return func(s *Source) {
		s.settings = settings
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(s *Source) {
		s.log = log
	}
}

// WithDiagnostics adds a sink next to the logger for degraded-extraction events.
func WithDiagnostics(diag Diagnostics) Option {
	return func(s *Source) {
		s.diag = diag
	}
}

func New(profile Profile, fetcher Fetcher, opts ...Option) (*Source, error) {
	if fetcher == nil {
		return nil, errors.New("fetcher is required")
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	s := &Source{
		profile:    profile,
		fetcher:    fetcher,
		settings:   domain.StaticSettings{},
		log:        zerolog.Nop(),
		chapterURL: regexp.MustCompile(profile.ChapterURLPattern),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *Source) String() string {
	return s.profile.Name
}

func (s *Source) Profile() Profile {
	return s.profile
}

// begin scopes logging and diagnostics to a single operation.
func (s *Source) begin(op string) (zerolog.Logger, *extractor) {
	log := s.log.With().Str("source", s.profile.Name).Str("op", op).Str("op_id", uuid.NewString()).Logger()

	var diag Diagnostics = logDiagnostics{log: log}
	if s.diag != nil {
		diag = multiDiagnostics{diag, s.diag}
	}

	return log, newExtractor(&s.profile, s.settings, diag)
}

func (s *Source) fetch(ctx context.Context, log zerolog.Logger, target string) (*goquery.Selection, error) {
	log.Debug().Str("url", target).Msg("fetching page")

	doc, err := s.fetcher.Document(ctx, target)
	if err != nil {
		log.Debug().Err(err).Str("url", target).Msg("fetch failed")
		return nil, err
	}

	if doc == nil || emptyBody(doc.Find("body")) {
		return nil, errors.WithMessage(domain.ErrEmptyDocument, target)
	}

	return doc, nil
}

// emptyBody reports a body with neither elements nor text. A text-only body, such as a bare
// "Not found" page, is still a document and extracts to empty results.
func emptyBody(body *goquery.Selection) bool {
	return body.Children().Length() == 0 && strings.TrimSpace(body.Text()) == ""
}

// GetMangaList searches the catalog.
func (s *Source) GetMangaList(ctx context.Context, filters []domain.Filter, page int) (domain.MangaPageResult, error) {
	log, x := s.begin("search")

	return s.catalog(ctx, log, x, SearchURL(s.profile, filters, page))
}

// GetMangaListing lists one of the profile's named catalogs.
func (s *Source) GetMangaListing(ctx context.Context, listing domain.Listing, page int) (domain.MangaPageResult, error) {
	log, x := s.begin("listing")

	slug := s.profile.Listings.Slug(listing.Name)
	if slug == "" {
		return domain.MangaPageResult{}, errors.Wrapf(domain.ErrUnknownListing, "%q", listing.Name)
	}

	return s.catalog(ctx, log, x, ListingURL(s.profile, slug, page))
}

func (s *Source) catalog(ctx context.Context, log zerolog.Logger, x *extractor, target string) (domain.MangaPageResult, error) {
	doc, err := s.fetch(ctx, log, target)
	if err != nil {
		return domain.MangaPageResult{}, err
	}

	result := domain.MangaPageResult{
		Manga:   x.MangaCells(doc),
		HasMore: x.HasNextPage(doc),
	}
	log.Debug().Int("count", len(result.Manga)).Bool("has_more", result.HasMore).Msg("catalog page extracted")

	return result, nil
}

// GetMangaDetails fetches the detail page twice: once for the minimal extraction shared by all
// profiles and once more to read author, description, tags and status with the profile's
// own selectors.
func (s *Source) GetMangaDetails(ctx context.Context, id string) (domain.Manga, error) {
	log, x := s.begin("details")
	target := s.profile.absoluteURL(id)

	doc, err := s.fetch(ctx, log, target)
	if err != nil {
		return domain.Manga{}, err
	}
	manga := x.Details(doc, id)

	// TODO: drop the second fetch once both selector sets are confirmed equivalent on every profile.
	doc, err = s.fetch(ctx, log, target)
	if err != nil {
		return domain.Manga{}, err
	}
	fields := x.DetailFields(doc)

	manga.Author = fields.Author
	manga.Description = fields.Description
	manga.Categories = fields.Tags
	manga.Status = fields.Status

	return manga, nil
}

// GetChapterList returns the chapters of a manga in page order.
func (s *Source) GetChapterList(ctx context.Context, id string) ([]domain.Chapter, error) {
	log, x := s.begin("chapters")

	doc, err := s.fetch(ctx, log, s.profile.absoluteURL(id))
	if err != nil {
		return nil, err
	}

	chapters := x.Chapters(doc)
	log.Debug().Int("count", len(chapters)).Msg("chapters extracted")

	return chapters, nil
}

// GetPageList returns the page images of a chapter.
func (s *Source) GetPageList(ctx context.Context, chapterID string) ([]domain.Page, error) {
	log, x := s.begin("pages")

	doc, err := s.fetch(ctx, log, s.profile.absoluteURL(chapterID))
	if err != nil {
		return nil, err
	}

	return x.Pages(doc), nil
}

func (s *Source) TransformImageURL(rawURL string) string {
	return TransformImageURL(s.profile, rawURL, s.settings)
}

func (s *Source) ModifyImageRequest(req *http.Request) {
	ModifyImageRequest(s.profile, req)
}

// HandleURL resolves a site URL into the manga it belongs to and, for chapter URLs, the chapter.
func (s *Source) HandleURL(ctx context.Context, rawURL string) (domain.DeepLink, error) {
	trimmed := strings.TrimSpace(rawURL)
	u, err := url.Parse(trimmed)
	if err != nil {
		return domain.DeepLink{}, errors.Wrap(err, "invalid url")
	}
	if !u.IsAbs() || !hostAllowed(u.Hostname(), s.profile.AllowedHosts) {
		return domain.DeepLink{}, errors.Wrapf(domain.ErrHostNotAllowed, "%s", trimmed)
	}

	id := s.profile.relativeID(trimmed)
	path := u.EscapedPath()

	var chapter *domain.Chapter
	if loc := s.chapterURL.FindStringSubmatchIndex(path); loc != nil {
		chapter = &domain.Chapter{
			ID:          id,
			Number:      -1,
			Volume:      -1,
			DateUpdated: -1,
			Lang:        s.profile.Lang,
		}
		if len(loc) >= 4 && loc[2] >= 0 {
			raw := strings.Replace(path[loc[2]:loc[3]], "-", ".", 1)
			if n, err := strconv.ParseFloat(raw, 64); err == nil {
				chapter.Number = n
			}
		}
		id = path[:loc[0]]
	}

	manga, err := s.GetMangaDetails(ctx, id)
	if err != nil {
		return domain.DeepLink{}, err
	}

	return domain.DeepLink{Manga: &manga, Chapter: chapter}, nil
}
