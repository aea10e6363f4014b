package cmd

import (
	"net/http"

	"wpcomics/internal/domain"
	"wpcomics/internal/parse"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var detailsCmd = &cobra.Command{
	Use:   "details <manga id>",
	Short: "Show the details of a manga",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		defer e.finish()

		manga, err := e.source.GetMangaDetails(cmd.Context(), args[0])
		if err != nil {
			return errors.Wrapf(err, "could not get details for %q", args[0])
		}

		return printJSON(manga)
	},
}

var chaptersCmd = &cobra.Command{
	Use:   "chapters <manga id>",
	Short: "List the chapters of a manga in page order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		defer e.finish()

		chapters, err := e.source.GetChapterList(cmd.Context(), args[0])
		if err != nil {
			return errors.Wrapf(err, "could not get chapters for %q", args[0])
		}

		if chapterNumbers != "" {
			sel, err := parse.ChapterSelection(chapterNumbers)
			if err != nil {
				return errors.Wrap(err, "invalid chapter selection")
			}
			chapters = sel.Apply(chapters)
		}

		return printJSON(chapters)
	},
}

var pagesCmd = &cobra.Command{
	Use:   "pages <chapter id>",
	Short: "List the page images of a chapter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		defer e.finish()

		pages, err := e.source.GetPageList(cmd.Context(), args[0])
		if err != nil {
			return errors.Wrapf(err, "could not get pages for %q", args[0])
		}

		if !showHeaders {
			return printJSON(pages)
		}

		return printJSON(imageRequests(e, pages))
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <url>",
	Short: "Resolve a site url into its manga and chapter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		defer e.finish()

		link, err := e.source.HandleURL(cmd.Context(), args[0])
		if err != nil {
			return errors.Wrapf(err, "could not resolve %q", args[0])
		}

		return printJSON(link)
	},
}

type imageRequest struct {
	domain.Page
	Headers map[string]string `json:"headers"`
}

// imageRequests pairs every page with the headers a client must send to download it.
func imageRequests(e *engine, pages []domain.Page) []imageRequest {
	requests := make([]imageRequest, 0, len(pages))
	for _, page := range pages {
		req, err := http.NewRequest(http.MethodGet, page.ImageURL, nil)
		if err != nil {
			e.log.Warn().Err(err).Str("url", page.ImageURL).Msg("skipping invalid image url")
			continue
		}
		e.source.ModifyImageRequest(req)

		headers := make(map[string]string, len(req.Header))
		for key := range req.Header {
			headers[key] = req.Header.Get(key)
		}

		requests = append(requests, imageRequest{Page: page, Headers: headers})
	}

	return requests
}
