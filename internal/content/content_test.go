package content

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParagraphs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		desc string
		want []string
	}{
		{name: "single", desc: "one line", want: []string{"one line"}},
		{name: "multi", desc: "a\nb\nc", want: []string{"a", "b", "c"}},
		{name: "blank lines dropped", desc: "a\n\n  \nb\n", want: []string{"a", "b"}},
		{name: "empty", desc: "", want: nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Experience{Description: tt.desc}.Paragraphs()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Paragraphs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDefaultProfile(t *testing.T) {
	t.Parallel()

	p := Default()
	if len(p.Services) != 5 {
		t.Fatalf("services = %d, want 5", len(p.Services))
	}
	if len(p.Experience) != 4 {
		t.Fatalf("experience = %d, want 4", len(p.Experience))
	}
	if len(p.Certifications) != 2 {
		t.Fatalf("certifications = %d, want 2", len(p.Certifications))
	}
	if !strings.HasPrefix(p.Email.URL, "mailto:") {
		t.Fatalf("email link %q is not a mailto link", p.Email.URL)
	}
	if !p.LinkedIn.External {
		t.Fatal("LinkedIn link should open externally")
	}
	if got := len(p.Experience[2].Paragraphs()); got != 3 {
		t.Fatalf("Vale paragraphs = %d, want 3", got)
	}
}

func TestSectionsOrder(t *testing.T) {
	t.Parallel()

	want := []string{"hero", "about", "services", "experience", "certifications", "contact"}
	if diff := cmp.Diff(want, Sections()); diff != "" {
		t.Fatalf("Sections() mismatch (-want +got):\n%s", diff)
	}
}

func TestGlyphFallback(t *testing.T) {
	t.Parallel()

	for _, s := range Default().Services {
		if Glyph(s.Icon) == "•" {
			t.Fatalf("service %q uses unknown icon %q", s.Title, s.Icon)
		}
	}
	if got := Glyph("nope"); got != "•" {
		t.Fatalf("Glyph(unknown) = %q", got)
	}
}
