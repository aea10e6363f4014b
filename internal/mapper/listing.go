package mapper

import "strings"

// Table maps human-readable listing labels to URL slugs.
type Table map[string]string

func (t Table) Slug(name string) string {
	return t[strings.TrimSpace(name)]
}

// Names returns the labels in the table.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}

	return names
}
