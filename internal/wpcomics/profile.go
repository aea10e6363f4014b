package wpcomics

import (
	"fmt"
	"regexp"
	"strings"

	"wpcomics/internal/domain"
	"wpcomics/internal/mapper"

	"github.com/pkg/errors"
)

const (
	defaultChapterNumberPattern = `(?:Chuong|Chương) (\d+(\.\d+)?)`
	defaultChapterURLPattern    = `-chap-([0-9]+(?:[.\-][0-9]+)?)\.html$`
	defaultLang                 = "vi-vn"
)

// Profile describes one WPComics site. It is a value: build one per call and never mutate it
// after Validate.
type Profile struct {
	Name         string        `yaml:"name"`
	BaseURL      string        `yaml:"base_url"`
	AllowedHosts []string      `yaml:"allowed_hosts"`
	Viewer       domain.Viewer `yaml:"viewer"`
	Lang         string        `yaml:"lang"`

	Listings mapper.Table      `yaml:"listings"`
	Status   mapper.Literal    `yaml:"status"`
	Dates    mapper.DateLayout `yaml:"dates"`

	Selectors  Selectors    `yaml:"selectors"`
	Pagination Pagination   `yaml:"pagination"`
	Search     SearchConfig `yaml:"search"`
	Images     ImageConfig  `yaml:"images"`

	ChapterNumberPattern string `yaml:"chapter_number_pattern"`
	ChapterURLPattern    string `yaml:"chapter_url_pattern"`

	// ChapterSkipFirst drops the first chapter row, used by sites that put bonus content there.
	ChapterSkipFirst bool `yaml:"chapter_skip_first"`
	// VinahostProtection tells the transport that outbound requests need the anti-bot workaround.
	VinahostProtection bool `yaml:"vinahost_protection"`
}

type Selectors struct {
	NextPage string `yaml:"next_page"`

	MangaCell           string   `yaml:"manga_cell"`
	MangaCellTitle      string   `yaml:"manga_cell_title"`
	MangaCellURL        string   `yaml:"manga_cell_url"`
	MangaCellImage      string   `yaml:"manga_cell_image"`
	MangaCellImageAttrs []string `yaml:"manga_cell_image_attrs"`

	DetailsTitle        string   `yaml:"details_title"`
	DetailsCover        string   `yaml:"details_cover"`
	DetailsCoverAttrs   []string `yaml:"details_cover_attrs"`
	DetailsAuthor       string   `yaml:"details_author"`
	DetailsDescription  string   `yaml:"details_description"`
	DetailsTags         string   `yaml:"details_tags"`
	DetailsTagsSplitter string   `yaml:"details_tags_splitter"`
	DetailsStatus       string   `yaml:"details_status"`
	DetailsChapters     string   `yaml:"details_chapters"`
	ChapterAnchor       string   `yaml:"chapter_anchor"`
	ChapterDate         string   `yaml:"chapter_date"`
	PageImage           string   `yaml:"page_image"`
	PageImageAttrs      []string `yaml:"page_image_attrs"`
}

// Pagination is the listing URL convention: base + "/" + slug + Segment + page + Extension.
type Pagination struct {
	Segment   string `yaml:"segment"`
	Extension string `yaml:"extension"`
	// OmitFirstPage drops Segment and the page number for page 1.
	OmitFirstPage bool `yaml:"omit_first_page"`
}

type SearchConfig struct {
	KeywordPath  string        `yaml:"keyword_path"`
	QueryParam   string        `yaml:"query_param"`
	AdvancedPath string        `yaml:"advanced_path"`
	IncludeParam string        `yaml:"include_param"`
	ExcludeParam string        `yaml:"exclude_param"`
	PageParam    string        `yaml:"page_param"`
	Params       []SelectParam `yaml:"params"`
}

// SelectParam binds a select filter, by name, to a query parameter.
type SelectParam struct {
	Name  string `yaml:"name"`
	Param string `yaml:"param"`
	// Values translates a selection index into the parameter value. When empty the index is sent as is.
	Values []string `yaml:"values"`
	// ZeroIsUnset treats index 0 ("all") like no selection.
	ZeroIsUnset bool `yaml:"zero_is_unset"`
}

type ImageConfig struct {
	ServerSettingKey string `yaml:"server_setting_key"`
	ProxyOption      int    `yaml:"proxy_option"`
	ProxyEndpoint    string `yaml:"proxy_endpoint"`
}

// Validate normalizes the profile, fills defaults and reports missing required fields.
func (p *Profile) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.BaseURL = strings.TrimRight(strings.TrimSpace(p.BaseURL), "/")

	if p.BaseURL == "" {
		return errors.Wrap(domain.ErrInvalidProfile, "base_url is required")
	}

	required := map[string]string{
		"manga_cell":       p.Selectors.MangaCell,
		"details_chapters": p.Selectors.DetailsChapters,
		"chapter_anchor":   p.Selectors.ChapterAnchor,
		"page_image":       p.Selectors.PageImage,
	}
	for name, value := range required {
		if strings.TrimSpace(value) == "" {
			return errors.Wrapf(domain.ErrInvalidProfile, "selectors.%s is required", name)
		}
	}

	if p.Name == "" {
		p.Name = p.BaseURL
	}
	if p.Lang == "" {
		p.Lang = defaultLang
	}
	if p.ChapterNumberPattern == "" {
		p.ChapterNumberPattern = defaultChapterNumberPattern
	}
	if p.ChapterURLPattern == "" {
		p.ChapterURLPattern = defaultChapterURLPattern
	}
	if _, err := regexp.Compile(p.ChapterNumberPattern); err != nil {
		return errors.Wrapf(domain.ErrInvalidProfile, "chapter_number_pattern: %v", err)
	}
	if _, err := regexp.Compile(p.ChapterURLPattern); err != nil {
		return errors.Wrapf(domain.ErrInvalidProfile, "chapter_url_pattern: %v", err)
	}

	if p.Selectors.MangaCellURL == "" {
		p.Selectors.MangaCellURL = p.Selectors.MangaCellTitle
	}
	if len(p.Selectors.MangaCellImageAttrs) == 0 {
		p.Selectors.MangaCellImageAttrs = []string{"src"}
	}
	if len(p.Selectors.DetailsCoverAttrs) == 0 {
		p.Selectors.DetailsCoverAttrs = []string{"src"}
	}
	if len(p.Selectors.PageImageAttrs) == 0 {
		p.Selectors.PageImageAttrs = []string{"src"}
	}

	if p.Search.QueryParam == "" {
		p.Search.QueryParam = "q"
	}
	if p.Search.PageParam == "" {
		p.Search.PageParam = "page"
	}

	if len(p.AllowedHosts) == 0 {
		host, err := hostOf(p.BaseURL)
		if err != nil {
			return errors.Wrapf(domain.ErrInvalidProfile, "base_url: %v", err)
		}
		p.AllowedHosts = []string{host}
	}

	return nil
}

func (p *Profile) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.BaseURL)
}
