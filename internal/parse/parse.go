package parse

import (
	"fmt"
	"strconv"
	"strings"

	"wpcomics/internal/domain"
)

type bounds struct {
	start, end float64
}

// Selection is a set of chapter numbers and ranges, e.g. "1-10,12.5".
type Selection struct {
	ranges []bounds
}

// ChapterSelection parses the user input for ranges and single chapters
func ChapterSelection(input string) (Selection, error) {
	var sel Selection

	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if strings.Contains(part, "-") {
			rangeParts := strings.Split(part, "-")
			if len(rangeParts) != 2 {
				return Selection{}, fmt.Errorf("invalid range format: %s", part)
			}
			start, end, err := getRange(rangeParts)
			if err != nil {
				return Selection{}, err
			}

			sel.ranges = append(sel.ranges, bounds{start: start, end: end})
			continue
		}

		chapter, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return Selection{}, fmt.Errorf("invalid chapter number: %s", part)
		}
		sel.ranges = append(sel.ranges, bounds{start: chapter, end: chapter})
	}

	if len(sel.ranges) == 0 {
		return Selection{}, fmt.Errorf("empty chapter selection")
	}

	return sel, nil
}

// getRange parses the user input for chapter ranges
func getRange(rangeParts []string) (float64, float64, error) {
	start, err := strconv.ParseFloat(strings.TrimSpace(rangeParts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start of range: %s", rangeParts[0])
	}
	end, err := strconv.ParseFloat(strings.TrimSpace(rangeParts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid end of range: %s", rangeParts[1])
	}

	if start > end {
		return 0, 0, fmt.Errorf("start of range should not be greater than end: %s-%s", rangeParts[0], rangeParts[1])
	}

	return start, end, nil
}

func (s Selection) Contains(number float64) bool {
	for _, r := range s.ranges {
		if number >= r.start && number <= r.end {
			return true
		}
	}

	return false
}

// Apply keeps the selected chapters in their original order.
func (s Selection) Apply(chapters []domain.Chapter) []domain.Chapter {
	selected := make([]domain.Chapter, 0, len(chapters))
	for _, chapter := range chapters {
		if s.Contains(chapter.Number) {
			selected = append(selected, chapter)
		}
	}

	return selected
}
