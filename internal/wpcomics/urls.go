package wpcomics

import (
	"strconv"
	"strings"

	"wpcomics/internal/domain"
)

// ListingURL builds the catalog URL for a listing slug.
func ListingURL(p Profile, slug string, page int) string {
	var b strings.Builder
	b.WriteString(p.BaseURL)
	b.WriteString("/")
	b.WriteString(URLEncode(strings.Trim(slug, "/")))

	if page < 1 {
		page = 1
	}

	if !(p.Pagination.OmitFirstPage && page == 1) {
		b.WriteString(p.Pagination.Segment)
		b.WriteString(strconv.Itoa(page))
	}
	b.WriteString(p.Pagination.Extension)

	return b.String()
}

// SearchURL builds the search URL for a filter set. A non-empty title filter wins over
// everything else; unknown filters and meaningless values are left out.
func SearchURL(p Profile, filters []domain.Filter, page int) string {
	if page < 1 {
		page = 1
	}

	for _, f := range filters {
		if f.Kind != domain.FilterTitle {
			continue
		}
		if title := strings.TrimSpace(f.Text); title != "" {
			return p.BaseURL + p.Search.KeywordPath + p.Pagination.Segment + strconv.Itoa(page) +
				p.Pagination.Extension + "?" + p.Search.QueryParam + "=" + URLEncode(title)
		}
	}

	var (
		included []string
		excluded []string
		query    strings.Builder
	)

	for _, f := range filters {
		switch f.Kind {
		case domain.FilterTitle:
			continue
		case domain.FilterGenre:
			id := strings.TrimSpace(f.ID)
			if id == "" {
				continue
			}
			switch f.Value {
			case domain.GenreExcluded:
				excluded = append(excluded, URLEncode(id))
			case domain.GenreIncluded:
				included = append(included, URLEncode(id))
			}
		default:
			param, ok := p.Search.param(f.Name)
			if !ok {
				continue
			}
			value, ok := param.value(f.Value)
			if !ok {
				continue
			}
			query.WriteString("&")
			query.WriteString(param.Param)
			query.WriteString("=")
			query.WriteString(URLEncode(value))
		}
	}

	if page > 1 {
		query.WriteString("&")
		query.WriteString(p.Search.PageParam)
		query.WriteString("=")
		query.WriteString(strconv.Itoa(page))
	}

	return p.BaseURL + p.Search.AdvancedPath +
		"?" + p.Search.IncludeParam + "=" + strings.Join(included, ",") +
		"&" + p.Search.ExcludeParam + "=" + strings.Join(excluded, ",") +
		query.String()
}

func (s SearchConfig) param(name string) (SelectParam, bool) {
	name = strings.TrimSpace(name)
	for _, param := range s.Params {
		if param.Name == name {
			return param, true
		}
	}

	return SelectParam{}, false
}

func (s SelectParam) value(index int) (string, bool) {
	if index < 0 || (index == 0 && s.ZeroIsUnset) {
		return "", false
	}

	if len(s.Values) == 0 {
		return strconv.Itoa(index), true
	}
	if index >= len(s.Values) {
		return "", false
	}

	return s.Values[index], true
}
