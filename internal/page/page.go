// Package page renders the portfolio as a single HTML document.
//
// Templates and static assets are embedded. Sections are wrapped in reveal
// markup whose classes and threshold come from package reveal; the browser
// script in static/portfolio.js only swaps between the two class sets it is
// handed, so the Go side stays the source of truth for both states.
package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/Cicchelli/portifoliowebstephan/internal/content"
	"github.com/Cicchelli/portifoliowebstephan/internal/reveal"
	"github.com/Cicchelli/portifoliowebstephan/internal/theme"
)

// IndexTemplate is the name of the full-page template.
const IndexTemplate = "index.html"

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Static returns the static asset tree, rooted so that files are served
// under /static/<name>.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// SectionView is one reveal-wrapped section of the page.
type SectionView struct {
	ID     string
	Class  string
	Reveal *reveal.Section
}

// View is the data the page templates render.
type View struct {
	Profile  content.Profile
	Theme    *theme.Controller
	Sections []SectionView

	HiddenClasses string
	ShownClasses  string
}

var sectionLayout = map[string]string{
	content.SectionHero:           "flex flex-col md:flex-row items-center justify-between gap-12 mb-20",
	content.SectionAbout:          "mb-20",
	content.SectionServices:       "mb-20",
	content.SectionExperience:     "mb-20",
	content.SectionCertifications: "mb-20",
	content.SectionContact:        "",
}

// NewView builds the view for one page load: light theme and every section
// in its unrevealed state.
func NewView(p content.Profile, opts reveal.Options) View {
	v := View{
		Profile:       p,
		Theme:         theme.New(theme.NewClassList("scroll-smooth")),
		HiddenClasses: reveal.HiddenClasses,
		ShownClasses:  reveal.ShownClasses,
	}
	for _, id := range content.Sections() {
		s := reveal.New(id, opts)
		v.Sections = append(v.Sections, SectionView{ID: id, Class: sectionLayout[id], Reveal: s})
	}
	return v
}

// Parse builds the template set from the embedded templates.
func Parse() (*template.Template, error) {
	tmpl := template.New("page")
	tmpl.Funcs(template.FuncMap{
		"include": func(name string, data any) (template.HTML, error) {
			var buf bytes.Buffer
			if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
				return "", err
			}
			return template.HTML(buf.String()), nil
		},
		"glyph": content.Glyph,
	})
	if _, err := tmpl.ParseFS(templateFS, "templates/*.html"); err != nil {
		return nil, fmt.Errorf("page: parse templates: %w", err)
	}
	return tmpl, nil
}

// Render writes the full page for v.
func Render(w io.Writer, tmpl *template.Template, v View) error {
	if err := tmpl.ExecuteTemplate(w, IndexTemplate, v); err != nil {
		return fmt.Errorf("page: render: %w", err)
	}
	return nil
}
