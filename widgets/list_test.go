package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestListKeepsNewestWhenClipped(t *testing.T) {
	out := List{Items: []string{"one", "two", "three"}}.Render(20, 2)
	if strings.Contains(out, "one") {
		t.Fatalf("oldest entry should drop first: %q", out)
	}
	for _, want := range []string{"- two", "- three"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}

func TestListTruncatesWideItems(t *testing.T) {
	out := List{Items: []string{strings.Repeat("x", 30)}}.Render(10, 1)
	if got := ansi.StringWidth(out); got != 10 {
		t.Fatalf("row width = %d, want 10", got)
	}
	if !strings.HasSuffix(out, "…") {
		t.Fatalf("expected truncation marker: %q", out)
	}
}

func TestListZeroSize(t *testing.T) {
	if out := (List{Items: []string{"x"}}).Render(0, 5); out != "" {
		t.Fatalf("zero width list = %q, want empty", out)
	}
}
