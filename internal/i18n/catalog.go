// Package i18n holds the localized page copy for the public site. All pages
// share one catalog keyed by language and slug; unknown languages fall back
// to English so a page always renders.
package i18n

import (
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/domain"
)

// PageContent is the localized copy for one public page.
type PageContent struct {
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Headline     string   `json:"headline"`
	Sections     []string `json:"sections"`
	CallToAction string   `json:"call_to_action"`
}

// Page slugs served by the public site.
const (
	PageHome              = "home"
	PageAbout             = "about"
	PagePersonalInsurance = "personal-insurance"
	PageBusinessInsurance = "business-insurance"
	PageWorkersComp       = "workers-comp"
	PageContact           = "contact"
)

// Catalog resolves page copy by language with English fallback.
type Catalog struct {
	pages map[domain.Language]map[string]PageContent
}

// NewCatalog builds the built-in catalog.
func NewCatalog() *Catalog {
	return &Catalog{pages: builtinPages}
}

// Page returns the localized content for a slug, falling back to English when
// the language has no entry. The second return reports whether the slug exists.
func (c *Catalog) Page(lang domain.Language, slug string) (PageContent, bool) {
	if byLang, ok := c.pages[lang]; ok {
		if content, ok := byLang[slug]; ok {
			return content, true
		}
	}
	content, ok := c.pages[domain.LanguageEnglish][slug]
	return content, ok
}

// Slugs lists every page slug in the catalog.
func (c *Catalog) Slugs() []string {
	return []string{
		PageHome,
		PageAbout,
		PagePersonalInsurance,
		PageBusinessInsurance,
		PageWorkersComp,
		PageContact,
	}
}

var builtinPages = map[domain.Language]map[string]PageContent{
	domain.LanguageEnglish: {
		PageHome: {
			Slug:     PageHome,
			Title:    "Secure Haven Agency",
			Headline: "Protection for your family and your business",
			Sections: []string{
				"We compare plans from the carriers you trust and find coverage that fits your budget.",
				"Serving our community in English, Portuguese and Spanish for over a decade.",
			},
			CallToAction: "Request your free quote today",
		},
		PageAbout: {
			Slug:     PageAbout,
			Title:    "About Us",
			Headline: "An independent agency that works for you",
			Sections: []string{
				"Our licensed agents represent you, not the insurance company.",
				"We walk you through every policy in plain language before you sign.",
			},
			CallToAction: "Talk to an agent",
		},
		PagePersonalInsurance: {
			Slug:     PagePersonalInsurance,
			Title:    "Personal Insurance",
			Headline: "Auto, home and life coverage",
			Sections: []string{
				"Bundle auto and home policies to unlock multi-line discounts.",
				"Life insurance options for every stage of life.",
			},
			CallToAction: "Get a personal quote",
		},
		PageBusinessInsurance: {
			Slug:     PageBusinessInsurance,
			Title:    "Business Insurance",
			Headline: "Coverage that grows with your company",
			Sections: []string{
				"General liability, commercial auto and property policies for small businesses.",
				"Certificates of insurance issued same day.",
			},
			CallToAction: "Protect your business",
		},
		PageWorkersComp: {
			Slug:     PageWorkersComp,
			Title:    "Workers' Compensation",
			Headline: "Keep your team covered and compliant",
			Sections: []string{
				"Pay-as-you-go plans that match premiums to your actual payroll.",
				"Fast certificate turnaround for contractors and cleaning companies.",
			},
			CallToAction: "Ask about workers' comp",
		},
		PageContact: {
			Slug:     PageContact,
			Title:    "Contact",
			Headline: "We are here to help",
			Sections: []string{
				"Send us a message and we will get back to you within one business day.",
			},
			CallToAction: "Send a message",
		},
	},
	domain.LanguagePortuguese: {
		PageHome: {
			Slug:     PageHome,
			Title:    "Secure Haven Agency",
			Headline: "Proteção para a sua família e o seu negócio",
			Sections: []string{
				"Comparamos planos das seguradoras de confiança e encontramos a cobertura que cabe no seu bolso.",
				"Atendemos a nossa comunidade em inglês, português e espanhol há mais de uma década.",
			},
			CallToAction: "Peça sua cotação gratuita hoje",
		},
		PageAbout: {
			Slug:     PageAbout,
			Title:    "Sobre Nós",
			Headline: "Uma agência independente que trabalha para você",
			Sections: []string{
				"Nossos agentes licenciados representam você, não a seguradora.",
				"Explicamos cada apólice em linguagem simples antes de você assinar.",
			},
			CallToAction: "Fale com um agente",
		},
		PagePersonalInsurance: {
			Slug:     PagePersonalInsurance,
			Title:    "Seguro Pessoal",
			Headline: "Cobertura de auto, residência e vida",
			Sections: []string{
				"Combine apólices de auto e residência para obter descontos.",
				"Opções de seguro de vida para cada fase da vida.",
			},
			CallToAction: "Faça uma cotação pessoal",
		},
		PageBusinessInsurance: {
			Slug:     PageBusinessInsurance,
			Title:    "Seguro Empresarial",
			Headline: "Cobertura que cresce com a sua empresa",
			Sections: []string{
				"Responsabilidade civil, auto comercial e patrimônio para pequenas empresas.",
				"Certificados de seguro emitidos no mesmo dia.",
			},
			CallToAction: "Proteja o seu negócio",
		},
		PageWorkersComp: {
			Slug:     PageWorkersComp,
			Title:    "Workers' Compensation",
			Headline: "Mantenha sua equipe protegida e em conformidade",
			Sections: []string{
				"Planos pay-as-you-go que ajustam o prêmio à sua folha de pagamento real.",
				"Certificados rápidos para empreiteiros e empresas de limpeza.",
			},
			CallToAction: "Pergunte sobre workers' comp",
		},
		PageContact: {
			Slug:     PageContact,
			Title:    "Contato",
			Headline: "Estamos aqui para ajudar",
			Sections: []string{
				"Envie uma mensagem e retornaremos em até um dia útil.",
			},
			CallToAction: "Enviar mensagem",
		},
	},
	domain.LanguageSpanish: {
		PageHome: {
			Slug:     PageHome,
			Title:    "Secure Haven Agency",
			Headline: "Protección para su familia y su negocio",
			Sections: []string{
				"Comparamos planes de las aseguradoras de confianza y encontramos la cobertura que se ajusta a su presupuesto.",
				"Atendemos a nuestra comunidad en inglés, portugués y español desde hace más de una década.",
			},
			CallToAction: "Solicite su cotización gratis hoy",
		},
		PageAbout: {
			Slug:     PageAbout,
			Title:    "Sobre Nosotros",
			Headline: "Una agencia independiente que trabaja para usted",
			Sections: []string{
				"Nuestros agentes licenciados lo representan a usted, no a la aseguradora.",
				"Le explicamos cada póliza en lenguaje sencillo antes de firmar.",
			},
			CallToAction: "Hable con un agente",
		},
		PagePersonalInsurance: {
			Slug:     PagePersonalInsurance,
			Title:    "Seguro Personal",
			Headline: "Cobertura de auto, hogar y vida",
			Sections: []string{
				"Combine pólizas de auto y hogar para obtener descuentos.",
				"Opciones de seguro de vida para cada etapa de la vida.",
			},
			CallToAction: "Obtenga una cotización personal",
		},
		PageBusinessInsurance: {
			Slug:     PageBusinessInsurance,
			Title:    "Seguro Comercial",
			Headline: "Cobertura que crece con su empresa",
			Sections: []string{
				"Responsabilidad civil, auto comercial y propiedad para pequeñas empresas.",
				"Certificados de seguro emitidos el mismo día.",
			},
			CallToAction: "Proteja su negocio",
		},
		PageWorkersComp: {
			Slug:     PageWorkersComp,
			Title:    "Compensación Laboral",
			Headline: "Mantenga a su equipo cubierto y en regla",
			Sections: []string{
				"Planes pay-as-you-go que ajustan la prima a su nómina real.",
				"Certificados rápidos para contratistas y empresas de limpieza.",
			},
			CallToAction: "Pregunte por la compensación laboral",
		},
		PageContact: {
			Slug:     PageContact,
			Title:    "Contacto",
			Headline: "Estamos aquí para ayudar",
			Sections: []string{
				"Envíenos un mensaje y le responderemos dentro de un día hábil.",
			},
			CallToAction: "Enviar mensaje",
		},
	},
}
