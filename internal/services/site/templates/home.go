package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/lazyeholdings/site/internal/platform/branding"
	"github.com/lazyeholdings/site/internal/services/site/routepath"
	"github.com/lazyeholdings/site/internal/services/site/selection"
	"github.com/lazyeholdings/site/internal/services/site/venture"
)

// HomeData is what the landing page renders.
type HomeData struct {
	Loc       Localizer
	Ventures  []venture.Venture
	Selection selection.State
}

// Home renders the landing page sections in order: hero, ventures,
// principles, about and contact.
func Home(data HomeData) templ.Component {
	return htmlComponent(func(ctx context.Context, h *htmlWriter) {
		writeHero(h, data)
		writeVenturesSection(ctx, h, data)
		writePrinciples(h, data.Loc)
		writeAbout(h, data.Loc)
		writeContact(h, data.Loc)
	})
}

func writeHero(h *htmlWriter, data HomeData) {
	loc := data.Loc
	h.raw("<section class=\"hero\"><div class=\"container hero__grid\"><div>")
	h.raw("<div class=\"hero__badge\">")
	h.icon("icon icon--sm", iconCheckBadge, "2")
	h.element("span", "", T(loc, "hero.badge"))
	h.raw("</div><h1 class=\"hero__headline\">")
	h.text(T(loc, "hero.headline"))
	h.raw("<br>")
	h.element("span", "text-gold-gradient", T(loc, "hero.headline_accent"))
	h.raw("</h1>")
	h.element("p", "hero__body", T(loc, "hero.body"))

	h.raw("<div class=\"hero__stats\">")
	stats := []struct{ value, label string }{
		{strconv.Itoa(len(data.Ventures)), T(loc, "hero.stat_ventures")},
		{T(loc, "hero.stat_based_value"), T(loc, "hero.stat_based")},
		{strconv.Itoa(branding.FoundedYear), T(loc, "hero.stat_founded")},
	}
	for _, stat := range stats {
		h.raw("<div class=\"hero__stat\">")
		h.element("p", "hero__stat-value", stat.value)
		h.element("p", "hero__stat-label", stat.label)
		h.raw("</div>")
	}
	h.raw("</div><div class=\"hero__actions\">")
	h.open("a", "button button--primary")
	h.urlAttr("href", "#"+routepath.SectionVentures)
	h.raw(">")
	h.text(T(loc, "hero.cta_explore"))
	h.raw("</a>")
	h.open("a", "button button--outline")
	h.urlAttr("href", "#"+routepath.SectionContact)
	h.raw(">")
	h.text(T(loc, "hero.cta_contact"))
	h.raw("</a></div></div>")

	h.raw("<div class=\"hero__media\"><img")
	h.urlAttr("src", imageHero)
	h.attr("alt", T(loc, "hero.image_alt"))
	h.attr("loading", "eager")
	h.raw("></div></div></section>")
}

func writeVenturesSection(ctx context.Context, h *htmlWriter, data HomeData) {
	loc := data.Loc
	h.open("section", "section section--alt")
	h.attr("id", routepath.SectionVentures)
	h.raw("><div class=\"container container--narrow\"><div class=\"section__intro\">")
	h.element("p", "section__eyebrow", T(loc, "ventures.eyebrow"))
	h.element("h2", "section__heading", T(loc, "ventures.heading"))
	h.element("p", "section__body", T(loc, "ventures.body"))
	h.raw("</div>")
	h.component(ctx, VentureList(data.Ventures, data.Selection, loc))
	h.raw("</div></section>")
}

func writePrinciples(h *htmlWriter, loc Localizer) {
	h.raw("<section class=\"section\"><div class=\"container\"><div class=\"section__intro\">")
	h.element("p", "section__eyebrow", T(loc, "principles.eyebrow"))
	h.element("h2", "section__heading", T(loc, "principles.heading"))
	h.raw("</div><div class=\"principles\">")
	for _, principle := range []struct{ key, image string }{
		{"strategy", imageStrategy},
		{"technology", imageTechnology},
		{"quality", imageCollaboration},
	} {
		h.raw("<div class=\"principle\"><div class=\"principle__media\"><img")
		h.urlAttr("src", principle.image)
		h.attr("alt", T(loc, "principles."+principle.key+".alt"))
		h.attr("width", "400")
		h.attr("height", "300")
		h.attr("loading", "lazy")
		h.raw("></div>")
		h.element("h3", "principle__title", T(loc, "principles."+principle.key+".title"))
		h.element("p", "principle__body", T(loc, "principles."+principle.key+".body"))
		h.raw("</div>")
	}
	h.raw("</div></div></section>")
}

func writeAbout(h *htmlWriter, loc Localizer) {
	h.open("section", "section section--alt")
	h.attr("id", routepath.SectionAbout)
	h.raw("><div class=\"container container--narrow section__intro\">")
	h.element("p", "section__eyebrow", T(loc, "about.eyebrow"))
	h.element("h2", "section__heading", T(loc, "about.heading"))
	h.element("p", "section__lead", T(loc, "about.body"))
	h.raw("</div></section>")
}

func writeContact(h *htmlWriter, loc Localizer) {
	h.open("section", "section")
	h.attr("id", routepath.SectionContact)
	h.raw("><div class=\"container container--narrow section__intro\">")
	h.element("p", "section__eyebrow", T(loc, "contact.eyebrow"))
	h.element("h2", "section__heading", T(loc, "contact.heading"))
	h.element("p", "section__body", T(loc, "contact.body"))
	h.open("a", "button button--primary button--large contact__email")
	h.urlAttr("href", branding.MailtoURL())
	h.raw(">")
	h.icon("icon icon--md", iconMail, "2")
	h.text(branding.ContactEmail)
	h.raw("</a>")
	h.element("p", "contact__location", branding.Location)
	h.raw("</div></section>")
}
