// Package content holds the hard-coded portfolio text.
package content

import "strings"

// Section IDs in render order.
const (
	SectionHero           = "hero"
	SectionAbout          = "about"
	SectionServices       = "services"
	SectionExperience     = "experience"
	SectionCertifications = "certifications"
	SectionContact        = "contact"
)

type Link struct {
	Label    string
	URL      string
	External bool
}

type Service struct {
	Icon  string
	Title string
	Items []string
}

type Experience struct {
	Title       string
	Company     string
	Period      string
	Description string
}

// Paragraphs splits the description into its newline-separated entries.
func (e Experience) Paragraphs() []string {
	var out []string
	for _, p := range strings.Split(e.Description, "\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type Certification struct {
	Icon   string
	Title  string
	Issuer string
}

// ContactForm carries the labels of the contact form. The form has no
// submission target yet; wiring it needs an external form-submission
// service accepting name, email and message.
type ContactForm struct {
	NameLabel    string
	EmailLabel   string
	MessageLabel string
	SubmitLabel  string
}

type Profile struct {
	ShortName string
	FullName  string
	Headline  string
	Photo     string

	LinkedIn Link
	Email    Link
	Phone    string
	Location string

	AboutTitle string
	About      []string

	ServicesTitle string
	Services      []Service

	ExperienceTitle string
	Experience      []Experience

	CertificationsTitle string
	Certifications      []Certification

	ContactTitle string
	Form         ContactForm

	Footer string
}

// Sections returns the section IDs in the order they are rendered.
func Sections() []string {
	return []string{
		SectionHero,
		SectionAbout,
		SectionServices,
		SectionExperience,
		SectionCertifications,
		SectionContact,
	}
}

// Default returns the portfolio content.
func Default() Profile {
	return Profile{
		ShortName: "Stephan Cicchelli",
		FullName:  "Stephan Valderrama de Queiroz Cicchelli",
		Headline:  "Engenheiro de Produção | Especialista em Normas Regulamentadoras | Coordenador de Projetos",
		Photo:     "https://images.unsplash.com/photo-1507679799987-c73779587ccf?auto=format&fit=crop&w=800",

		LinkedIn: Link{Label: "LinkedIn", URL: "https://www.linkedin.com/in/stephancicchelli/", External: true},
		Email:    Link{Label: "stephan.cicchelli@outlook.com", URL: "mailto:stephan.cicchelli@outlook.com"},
		Phone:    "(35) 99176-1212",
		Location: "Pouso Alegre - MG",

		AboutTitle: "Sobre Mim",
		About:      []string{AboutMe, AboutCertifications},

		ServicesTitle: "Serviços Oferecidos",
		Services: []Service{
			{Icon: "briefcase", Title: "Coordenação de Projetos", Items: []string{
				"Planejamento e gestão de cronogramas e orçamentos",
				"Liderança de equipes interdisciplinares",
				"Implementação de inovação e sustentabilidade",
				"Monitoramento de KPIs e melhoria contínua",
			}},
			{Icon: "wrench", Title: "Consultoria em Segurança", Items: []string{
				"Avaliação e adequação às NRs",
				"Análise de riscos e medidas corretivas",
				"Elaboração de planos de segurança",
				"Auditorias de conformidade",
			}},
			{Icon: "line-chart", Title: "Melhoria Contínua", Items: []string{
				"Diagnóstico de processos produtivos",
				"Implementação de metodologias Lean",
				"Redução de desperdícios",
				"Treinamento de equipes",
			}},
			{Icon: "factory", Title: "Engenharia de Processos", Items: []string{
				"Desenvolvimento e inovação",
				"Análise de viabilidade econômica",
				"Controle de CAPEX/OPEX",
				"Redução de custos",
			}},
			{Icon: "brain", Title: "Soluções Tecnológicas", Items: []string{
				"Ferramentas digitais para gestão",
				"Desenvolvimento fullstack",
				"Análise de dados",
				"Automação de processos",
			}},
		},

		ExperienceTitle: "Experiência Profissional",
		Experience: []Experience{
			{Title: "Coordenador de Projetos", Company: "Unilever", Period: "2025 - Atual", Description: ExperienceUnilever},
			{Title: "Coordenador de Projetos", Company: "General Mills", Period: "2024", Description: ExperienceGeneralMills},
			{Title: "Engenheiro", Company: "Vale", Period: "2020-2022", Description: ExperienceVale},
			{Title: "Engenheiro de Melhoria Contínua", Company: "Newell Brands", Period: "2017-2020", Description: ExperienceNewell},
		},

		CertificationsTitle: "Certificações e Qualificações",
		Certifications: []Certification{
			{Icon: "award", Title: "Black Belt Lean Six Sigma", Issuer: "FEPI"},
			{Icon: "graduation-cap", Title: "Engenharia de Segurança do Trabalho", Issuer: "IF Sul de Minas Gerais"},
		},

		ContactTitle: "Contato",
		Form: ContactForm{
			NameLabel:    "Nome",
			EmailLabel:   "Email",
			MessageLabel: "Mensagem",
			SubmitLabel:  "Enviar Mensagem",
		},

		Footer: "© 2024 Stephan Cicchelli. Todos os direitos reservados.",
	}
}

var glyphs = map[string]string{
	"briefcase":      "💼",
	"wrench":         "🔧",
	"line-chart":     "📈",
	"factory":        "🏭",
	"brain":          "🧠",
	"award":          "🏅",
	"graduation-cap": "🎓",
	"linkedin":       "in",
	"mail":           "✉",
	"phone":          "☎",
	"map-pin":        "📍",
	"sun":            "☀",
	"moon":           "☾",
}

// Glyph returns a text stand-in for the named icon, or "•" when unknown.
func Glyph(name string) string {
	if g, ok := glyphs[name]; ok {
		return g
	}
	return "•"
}
