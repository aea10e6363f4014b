package cmd

import (
	"sort"
	"strings"

	"wpcomics/internal/domain"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <listing>",
	Short: "List a catalog page of one of the profile's listings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		defer e.finish()

		result, err := e.source.GetMangaListing(cmd.Context(), domain.Listing{Name: args[0]}, page)
		if err != nil {
			return errors.Wrapf(err, "could not list %q", args[0])
		}

		return printJSON(result)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the catalog by title or by genre and select filters",
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		defer e.finish()

		result, err := e.source.GetMangaList(cmd.Context(), searchFilters(), page)
		if err != nil {
			return errors.Wrap(err, "search failed")
		}

		return printJSON(result)
	},
}

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Show the listings and search filters the profile understands",
	RunE: func(_ *cobra.Command, _ []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		defer e.finish()

		profile := e.source.Profile()

		listings := profile.Listings.Names()
		sort.Strings(listings)

		type filter struct {
			Name    string   `json:"name"`
			Param   string   `json:"param"`
			Options []string `json:"options,omitempty"`
		}

		filters := make([]filter, 0, len(profile.Search.Params))
		for _, p := range profile.Search.Params {
			filters = append(filters, filter{Name: p.Name, Param: p.Param, Options: p.Values})
		}

		return printJSON(struct {
			Source   string   `json:"source"`
			Listings []string `json:"listings"`
			Filters  []filter `json:"filters"`
		}{
			Source:   e.source.String(),
			Listings: listings,
			Filters:  filters,
		})
	},
}

func searchFilters() []domain.Filter {
	var filters []domain.Filter

	if strings.TrimSpace(title) != "" {
		filters = append(filters, domain.TitleFilter(title))
	}
	for _, id := range include {
		filters = append(filters, domain.GenreFilter(id, domain.GenreIncluded))
	}
	for _, id := range exclude {
		filters = append(filters, domain.GenreFilter(id, domain.GenreExcluded))
	}

	names := make([]string, 0, len(selects))
	for name := range selects {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		filters = append(filters, domain.SelectFilter(name, selects[name]))
	}

	return filters
}
