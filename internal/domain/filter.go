package domain

type FilterKind int

const (
	FilterTitle FilterKind = iota
	FilterGenre
	FilterSelect
	FilterSort
)

// Genre filter states. Any other value leaves the genre out of the query.
const (
	GenreExcluded = 0
	GenreIncluded = 1
)

// Filter is one search criterion. Text is used by title filters, ID by genre filters and
// Value holds the genre state or the selection index (-1 when nothing is selected).
type Filter struct {
	Kind  FilterKind
	Name  string
	ID    string
	Text  string
	Value int
}

func TitleFilter(title string) Filter {
	return Filter{Kind: FilterTitle, Name: "Title", Text: title, Value: -1}
}

func GenreFilter(id string, state int) Filter {
	return Filter{Kind: FilterGenre, ID: id, Value: state}
}

func SelectFilter(name string, index int) Filter {
	return Filter{Kind: FilterSelect, Name: name, Value: index}
}

func SortFilter(name string, index int) Filter {
	return Filter{Kind: FilterSort, Name: name, Value: index}
}
