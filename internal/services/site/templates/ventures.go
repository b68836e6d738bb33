package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/lazyeholdings/site/internal/services/site/routepath"
	"github.com/lazyeholdings/site/internal/services/site/selection"
	"github.com/lazyeholdings/site/internal/services/site/venture"
)

// VentureListID is the element id toggles swap.
const VentureListID = "venture-list"

// VentureList renders every card in catalog order with state deciding which
// one is expanded.
func VentureList(ventures []venture.Venture, state selection.State, loc Localizer) templ.Component {
	return htmlComponent(func(ctx context.Context, h *htmlWriter) {
		h.open("div", "venture-list")
		h.attr("id", VentureListID)
		h.attr("data-selected", state.String())
		h.raw(">")
		for _, v := range ventures {
			h.component(ctx, VentureCard(v, state.Expanded(v.ID), loc))
		}
		h.raw("</div>")
	})
}

// VentureCard renders one venture. Clicking anywhere on the card posts a
// toggle; the visit link stops propagation so it never toggles.
func VentureCard(v venture.Venture, expanded bool, loc Localizer) templ.Component {
	return htmlComponent(func(_ context.Context, h *htmlWriter) {
		cardState := selection.Collapsed
		if expanded {
			cardState = selection.Expanded
		}
		toggleURL := routepath.VentureToggle(v.ID)

		h.open("article", "venture-card venture-card--"+cardState.String())
		h.attr("id", "venture-"+v.ID)
		h.attr("data-venture-id", v.ID)
		h.attr("data-state", cardState.String())
		h.attr("role", "button")
		h.attr("tabindex", "0")
		h.boolAttr("aria-expanded", expanded)
		h.attr("hx-post", toggleURL)
		h.attr("hx-trigger", "click, keyup[key=='Enter']")
		h.attr("hx-target", "#"+VentureListID)
		h.attr("hx-swap", "outerHTML")
		h.raw(">")

		writeCardHeader(h, v)

		if expanded {
			h.open("div", "venture-card__details")
			h.raw(">")
			h.element("p", "venture-card__description", v.Description)
			if len(v.Features) > 0 {
				h.open("ul", "venture-card__features")
				h.attr("aria-label", T(loc, "ventures.features_label"))
				h.raw(">")
				for _, feature := range v.Features {
					h.element("li", "venture-card__feature", feature)
				}
				h.raw("</ul>")
			}
			h.open("div", "venture-card__actions")
			h.raw(">")
			writeVisitControl(h, v, loc)
			h.raw("</div></div>")
		} else {
			h.open("div", "venture-card__hint")
			h.raw("><span>")
			h.text(T(loc, "ventures.learn_more"))
			h.raw("</span>")
			h.icon("icon icon--sm", iconChevronDown, "2")
			h.raw("</div>")
		}

		// Without scripts the card falls back to a plain form post.
		h.raw("<noscript><form")
		h.attr("method", "post")
		h.attr("action", toggleURL)
		h.raw("><button")
		h.attr("type", "submit")
		h.attr("class", "venture-card__toggle")
		h.raw(">")
		h.text(v.Name)
		h.raw("</button></form></noscript>")

		h.raw("</article>")
	})
}

func writeCardHeader(h *htmlWriter, v venture.Venture) {
	h.open("div", "venture-card__header")
	h.raw(">")

	h.open("div", "venture-card__identity")
	h.raw(">")
	h.open("div", "venture-card__icon gradient-"+gradientClass(v.Gradient))
	h.raw(">")
	if v.Icon != "" {
		h.icon("icon icon--md", v.Icon, "1.5")
	}
	h.raw("</div><div>")
	h.element("h3", "venture-card__name", v.Name)
	h.element("p", "venture-card__tagline", v.Tagline)
	h.raw("</div></div>")

	status := v.StatusInfo()
	badge := "status-badge status-badge--default"
	if status.Launching() {
		badge = "status-badge status-badge--launching"
	}
	h.open("span", badge)
	h.attr("data-status", status.Kind.String())
	h.raw(">")
	h.text(v.Status)
	h.raw("</span>")

	h.raw("</div>")
}

func writeVisitControl(h *htmlWriter, v venture.Venture, loc Localizer) {
	if !v.HasURL() {
		h.open("span", "venture-card__coming-soon")
		h.attr("data-visit", "unavailable")
		h.raw(">")
		h.icon("icon icon--sm", iconClock, "2")
		h.text(T(loc, "ventures.coming_soon"))
		h.raw("</span>")
		return
	}
	h.open("a", "button button--primary venture-card__visit")
	h.urlAttr("href", routepath.VentureVisit(v.ID))
	h.attr("target", "_blank")
	h.attr("rel", "noopener noreferrer")
	h.attr("data-visit", v.URL)
	// The card toggles on click and Enter; neither may reach it from here.
	h.attr("hx-on:click", "event.stopPropagation()")
	h.attr("hx-on:keyup", "event.stopPropagation()")
	h.raw(">")
	h.text(T(loc, "ventures.visit"))
	h.icon("icon icon--sm", iconExternalLink, "2")
	h.raw("</a>")
}

func gradientClass(gradient string) string {
	switch gradient {
	case "blue", "emerald", "amber":
		return gradient
	default:
		return "neutral"
	}
}
