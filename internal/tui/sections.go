package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Cicchelli/portifoliowebstephan/internal/content"
)

// renderSection lays out one section's body. The result has the same
// height for every opacity, so reveal boxes stay valid across fades.
func renderSection(id string, p content.Profile, st sectionStyles, width int) string {
	inner := max(10, width-4)
	wrap := func(s lipgloss.Style, text string) string {
		return s.Width(inner).Render(text)
	}

	var lines []string
	add := func(s lipgloss.Style, text string) {
		lines = append(lines, wrap(s, text))
	}
	blank := func() { lines = append(lines, "") }

	switch id {
	case content.SectionHero:
		add(st.Title, p.FullName)
		add(st.Muted, p.Headline)
		blank()
		add(st.Accent, content.Glyph("linkedin")+"  "+p.LinkedIn.URL)
		add(st.Accent, content.Glyph("mail")+"  "+p.Email.Label)

	case content.SectionAbout:
		add(st.Title, p.AboutTitle)
		for _, para := range p.About {
			blank()
			add(st.Text, para)
		}

	case content.SectionServices:
		add(st.Title, p.ServicesTitle)
		for _, svc := range p.Services {
			blank()
			add(st.Strong, content.Glyph(svc.Icon)+" "+svc.Title)
			for _, item := range svc.Items {
				add(st.Muted, "  • "+item)
			}
		}

	case content.SectionExperience:
		add(st.Title, p.ExperienceTitle)
		for _, exp := range p.Experience {
			blank()
			add(st.Strong, exp.Title)
			add(st.Accent, exp.Company+" | "+exp.Period)
			for _, para := range exp.Paragraphs() {
				add(st.Muted, para)
			}
		}

	case content.SectionCertifications:
		add(st.Title, p.CertificationsTitle)
		for _, cert := range p.Certifications {
			blank()
			add(st.Strong, content.Glyph(cert.Icon)+" "+cert.Title)
			add(st.Muted, cert.Issuer)
		}

	case content.SectionContact:
		add(st.Title, p.ContactTitle)
		blank()
		add(st.Text, content.Glyph("map-pin")+" "+p.Location)
		add(st.Text, content.Glyph("mail")+" "+p.Email.Label)
		add(st.Text, content.Glyph("phone")+" "+p.Phone)
		add(st.Text, content.Glyph("linkedin")+" "+p.LinkedIn.URL)
		blank()
		add(st.Muted, p.Form.NameLabel+": ____________________")
		add(st.Muted, p.Form.EmailLabel+": ____________________")
		add(st.Muted, p.Form.MessageLabel+": ____________________")
		add(st.Accent, "[ "+p.Form.SubmitLabel+" ]")
	}

	return st.Block.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
