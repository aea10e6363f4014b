package parse

import (
	"testing"

	"wpcomics/internal/domain"
)

func TestChapterSelection(t *testing.T) {
	tests := []struct {
		input   string
		in      []float64
		out     []float64
		wantErr bool
	}{
		{input: "1-10", in: []float64{1, 5.5, 10}, out: []float64{0, 10.5, 11}},
		{input: "3, 12.5", in: []float64{3, 12.5}, out: []float64{4, 12}},
		{input: "1-2,7-8", in: []float64{1.5, 7}, out: []float64{5}},
		{input: "10-1", wantErr: true},
		{input: "1-2-3", wantErr: true},
		{input: "abc", wantErr: true},
		{input: " , ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sel, err := ChapterSelection(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ChapterSelection(%q) error = %v", tt.input, err)
			}

			for _, n := range tt.in {
				if !sel.Contains(n) {
					t.Errorf("selection %q should contain %v", tt.input, n)
				}
			}
			for _, n := range tt.out {
				if sel.Contains(n) {
					t.Errorf("selection %q should not contain %v", tt.input, n)
				}
			}
		})
	}
}

func TestSelectionApplyKeepsOrder(t *testing.T) {
	sel, err := ChapterSelection("2-4")
	if err != nil {
		t.Fatal(err)
	}

	chapters := []domain.Chapter{{Number: 5}, {Number: 4}, {Number: 3.5}, {Number: 1}, {Number: 2}}
	got := sel.Apply(chapters)

	want := []float64{4, 3.5, 2}
	if len(got) != len(want) {
		t.Fatalf("got %d chapters, want %d", len(got), len(want))
	}
	for i, chapter := range got {
		if chapter.Number != want[i] {
			t.Fatalf("chapter %d = %v, want %v", i, chapter.Number, want[i])
		}
	}
}
