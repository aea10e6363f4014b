package wpcomics

import (
	"regexp"
	"strconv"
	"strings"

	"wpcomics/internal/domain"
	"wpcomics/internal/mapper"
	"wpcomics/internal/sanitize"

	"github.com/PuerkitoBio/goquery"
)

// extractor reads domain objects out of a parsed page using the profile's selectors.
// It never fails: missing nodes resolve to "" or empty slices.
type extractor struct {
	profile  *Profile
	status   mapper.StatusMapper
	dates    mapper.TimeConverter
	settings domain.Settings
	diag     Diagnostics

	chapterNumber *regexp.Regexp
}

type detailFields struct {
	Author      string
	Description string
	Tags        []string
	Status      domain.MangaStatus
}

func newExtractor(p *Profile, settings domain.Settings, diag Diagnostics) *extractor {
	return &extractor{
		profile:       p,
		status:        p.Status,
		dates:         p.Dates,
		settings:      settings,
		diag:          diag,
		chapterNumber: regexp.MustCompile(p.ChapterNumberPattern),
	}
}

func (x *extractor) find(root *goquery.Selection, field, selector string) *goquery.Selection {
	if selector == "" {
		return root.Slice(0, 0)
	}

	sel := root.Find(selector)
	if sel.Length() == 0 {
		x.diag.ExtractionMiss(field, selector)
	}

	return sel
}

func (x *extractor) text(root *goquery.Selection, field, selector string) string {
	return sanitize.Text(x.find(root, field, selector).First().Text())
}

func firstAttr(sel *goquery.Selection, attrs []string) string {
	for _, attr := range attrs {
		if v, ok := sel.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}

	return ""
}

func (x *extractor) imageURL(sel *goquery.Selection, attrs []string) string {
	src := firstAttr(sel, attrs)
	if src == "" {
		return ""
	}

	return x.profile.absoluteURL(src)
}

// MangaCells returns one entry per listing cell that carries a link.
func (x *extractor) MangaCells(doc *goquery.Selection) []domain.Manga {
	s := x.profile.Selectors
	cells := x.find(doc, "manga_cell", s.MangaCell)

	result := make([]domain.Manga, 0, cells.Length())
	cells.Each(func(_ int, cell *goquery.Selection) {
		href, _ := x.find(cell, "manga_cell_url", s.MangaCellURL).First().Attr("href")
		id := x.profile.relativeID(href)
		if id == "" {
			return
		}

		result = append(result, domain.Manga{
			ID:     id,
			Title:  x.text(cell, "manga_cell_title", s.MangaCellTitle),
			Cover:  x.imageURL(x.find(cell, "manga_cell_image", s.MangaCellImage).First(), s.MangaCellImageAttrs),
			URL:    x.profile.absoluteURL(id),
			Viewer: x.profile.Viewer,
		})
	})

	return result
}

// HasNextPage reports whether the page carries the next-page marker.
func (x *extractor) HasNextPage(doc *goquery.Selection) bool {
	if x.profile.Selectors.NextPage == "" {
		return false
	}

	return doc.Find(x.profile.Selectors.NextPage).Length() > 0
}

// Details is the minimal detail extraction every profile shares.
func (x *extractor) Details(doc *goquery.Selection, id string) domain.Manga {
	s := x.profile.Selectors

	manga := domain.Manga{
		ID:     id,
		Title:  x.text(doc, "details_title", s.DetailsTitle),
		Cover:  x.imageURL(x.find(doc, "details_cover", s.DetailsCover).First(), s.DetailsCoverAttrs),
		URL:    x.profile.absoluteURL(id),
		Viewer: x.profile.Viewer,
	}

	if s.DetailsTagsSplitter != "" {
		manga.Categories = splitTags(x.text(doc, "details_tags", s.DetailsTags), s.DetailsTagsSplitter)
	}

	return manga
}

// DetailFields reads the fields the minimal extraction leaves out, one value per node.
func (x *extractor) DetailFields(doc *goquery.Selection) detailFields {
	s := x.profile.Selectors

	var authors []string
	x.find(doc, "details_author", s.DetailsAuthor).Each(func(_ int, a *goquery.Selection) {
		if name := sanitize.Text(a.Text()); name != "" {
			authors = append(authors, name)
		}
	})

	tags := []string{}
	x.find(doc, "details_tags", s.DetailsTags).Each(func(_ int, tag *goquery.Selection) {
		if s.DetailsTagsSplitter != "" {
			tags = append(tags, splitTags(tag.Text(), s.DetailsTagsSplitter)...)
			return
		}
		if t := sanitize.Text(tag.Text()); t != "" {
			tags = append(tags, t)
		}
	})

	return detailFields{
		Author:      strings.Join(authors, ", "),
		Description: sanitize.Lines(x.find(doc, "details_description", s.DetailsDescription).Text()),
		Tags:        tags,
		Status:      x.status.Status(x.text(doc, "details_status", s.DetailsStatus)),
	}
}

func splitTags(text, splitter string) []string {
	tags := []string{}
	for _, tag := range strings.Split(text, splitter) {
		if tag = sanitize.Text(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}

// Chapters returns the chapter rows in document order.
func (x *extractor) Chapters(doc *goquery.Selection) []domain.Chapter {
	s := x.profile.Selectors
	rows := x.find(doc, "details_chapters", s.DetailsChapters)
	if x.profile.ChapterSkipFirst && rows.Length() > 0 {
		rows = rows.Slice(1, goquery.ToEnd)
	}

	chapters := make([]domain.Chapter, 0, rows.Length())
	rows.Each(func(index int, row *goquery.Selection) {
		anchor := x.find(row, "chapter_anchor", s.ChapterAnchor).First()
		href, _ := anchor.Attr("href")
		title := sanitize.Text(anchor.Text())

		chapters = append(chapters, domain.Chapter{
			ID:          x.profile.relativeID(href),
			Title:       title,
			Number:      x.number(title, index),
			Volume:      -1,
			DateUpdated: x.dates.Convert(x.text(row, "chapter_date", s.ChapterDate)),
			Lang:        x.profile.Lang,
		})
	})

	return chapters
}

// number reads the chapter number from the title and falls back to the row position.
// The fallback can collide with a real chapter number, so it is always reported.
func (x *extractor) number(title string, index int) float64 {
	if m := x.chapterNumber.FindStringSubmatch(title); len(m) > 1 {
		if n, err := strconv.ParseFloat(m[1], 64); err == nil {
			return n
		}
	}

	x.diag.ChapterNumberFallback(title, index)
	return float64(index)
}

// Pages returns the chapter images in document order, passed through the image transformer.
func (x *extractor) Pages(doc *goquery.Selection) []domain.Page {
	s := x.profile.Selectors

	pages := []domain.Page{}
	x.find(doc, "page_image", s.PageImage).Each(func(_ int, img *goquery.Selection) {
		src := x.imageURL(img, s.PageImageAttrs)
		if src == "" {
			return
		}

		pages = append(pages, domain.Page{
			Index:    len(pages),
			ImageURL: TransformImageURL(*x.profile, src, x.settings),
		})
	})

	return pages
}
