package sanitize

import "testing"

func TestText(t *testing.T) {
	if got := Text("  Chương\n\t 10.5  "); got != "Chương 10.5" {
		t.Fatalf("Text = %q", got)
	}
}

func TestLines(t *testing.T) {
	in := "\n  Dòng một  \n\n   Dòng   hai\n"
	if got := Lines(in); got != "Dòng một\nDòng hai" {
		t.Fatalf("Lines = %q", got)
	}
}
