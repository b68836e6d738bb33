package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/lazyeholdings/site/internal/platform/branding"
	"github.com/lazyeholdings/site/internal/services/site/routepath"
)

// LanguageOption is one entry of the footer language picker.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// LayoutData is the per-request context of the page shell.
type LayoutData struct {
	Lang          string
	Title         string
	Loc           Localizer
	HTMXScriptURL string
	Languages     []LanguageOption
	Year          int
	// Indexable adds robots index,follow; error pages set it false.
	Indexable bool
}

// Layout renders the document shell: head metadata, navigation, the child
// component as main content, and the footer.
func Layout(data LayoutData) templ.Component {
	return htmlComponent(func(ctx context.Context, h *htmlWriter) {
		children := templ.GetChildren(ctx)
		if children == nil {
			children = templ.NopComponent
		}
		ctx = templ.ClearChildren(ctx)

		lang := data.Lang
		if lang == "" {
			lang = "en-US"
		}
		h.raw("<!doctype html><html")
		h.attr("lang", lang)
		h.attr("class", "scroll-smooth")
		h.raw(">")
		writeHead(h, data)
		h.raw("<body><div class=\"page\">")
		writeNav(h, data.Loc)
		h.raw("<main id=\"main\">")
		h.component(ctx, children)
		h.raw("</main>")
		writeFooter(h, data)
		h.raw("</div></body></html>")
	})
}

func writeHead(h *htmlWriter, data LayoutData) {
	loc := data.Loc
	title := data.Title
	if title == "" {
		title = T(loc, "meta.title")
	}
	h.raw("<head><meta charset=\"utf-8\">")
	meta := func(name, content string) {
		h.raw("<meta")
		h.attr("name", name)
		h.attr("content", content)
		h.raw(">")
	}
	property := func(name, content string) {
		h.raw("<meta")
		h.attr("property", name)
		h.attr("content", content)
		h.raw(">")
	}
	meta("viewport", "width=device-width, initial-scale=1, maximum-scale=1, viewport-fit=cover")
	meta("theme-color", branding.ThemeColor)
	h.element("title", "", title)
	meta("description", T(loc, "meta.description"))
	meta("keywords", T(loc, "meta.keywords"))
	meta("author", branding.LegalName)
	meta("creator", branding.LegalName)
	if data.Indexable {
		meta("robots", "index, follow")
	} else {
		meta("robots", "noindex")
	}
	property("og:type", "website")
	property("og:locale", ogLocale(data.Lang))
	property("og:title", T(loc, "meta.og_title"))
	property("og:description", T(loc, "meta.og_description"))
	property("og:site_name", branding.AppName)
	meta("twitter:card", "summary_large_image")
	meta("twitter:title", T(loc, "meta.twitter_title"))
	meta("twitter:description", T(loc, "meta.twitter_description"))

	h.raw("<link")
	h.attr("rel", "icon")
	h.attr("type", "image/svg+xml")
	h.urlAttr("href", branding.LogoPath)
	h.raw("><link")
	h.attr("rel", "apple-touch-icon")
	h.urlAttr("href", branding.LogoPath)
	h.raw("><link")
	h.attr("rel", "stylesheet")
	h.urlAttr("href", routepath.Static("site.css"))
	h.raw(">")
	if data.HTMXScriptURL != "" {
		h.raw("<script")
		h.urlAttr("src", data.HTMXScriptURL)
		h.raw("></script>")
	}
	h.raw("<script")
	h.urlAttr("src", routepath.Static("site.js"))
	h.attr("defer", "defer")
	h.raw("></script></head>")
}

func writeNav(h *htmlWriter, loc Localizer) {
	h.raw("<nav class=\"site-nav\"><div class=\"container site-nav__inner\">")
	h.open("a", "site-nav__brand")
	h.urlAttr("href", "#")
	h.raw(">")
	writeLogo(h, 40)
	h.element("span", "site-nav__name", branding.AppName)
	h.raw("</a><div class=\"site-nav__links\">")
	h.open("a", "site-nav__link")
	h.urlAttr("href", "#"+routepath.SectionVentures)
	h.raw(">")
	h.text(T(loc, "nav.ventures"))
	h.raw("</a>")
	h.open("a", "site-nav__link")
	h.urlAttr("href", "#"+routepath.SectionAbout)
	h.raw(">")
	h.text(T(loc, "nav.about"))
	h.raw("</a>")
	h.open("a", "button button--primary site-nav__cta")
	h.urlAttr("href", "#"+routepath.SectionContact)
	h.raw(">")
	h.text(T(loc, "nav.contact"))
	h.raw("</a></div></div></nav>")
}

func writeLogo(h *htmlWriter, size int) {
	h.open("img", "logo")
	h.urlAttr("src", branding.LogoPath)
	h.attr("alt", branding.AppName)
	h.intAttr("width", size)
	h.intAttr("height", size)
	h.raw(">")
}

func writeFooter(h *htmlWriter, data LayoutData) {
	loc := data.Loc
	h.raw("<footer class=\"site-footer\"><div class=\"container site-footer__inner\"><div class=\"site-footer__brand\">")
	writeLogo(h, 32)
	h.element("span", "site-footer__copyright", T(loc, "footer.copyright", strconv.Itoa(data.Year)))
	h.raw("</div><div class=\"site-footer__links\">")
	for _, link := range []struct{ section, key string }{
		{routepath.SectionVentures, "nav.ventures"},
		{routepath.SectionAbout, "nav.about"},
		{routepath.SectionContact, "nav.contact"},
	} {
		h.open("a", "site-footer__link")
		h.urlAttr("href", "#"+link.section)
		h.raw(">")
		h.text(T(loc, link.key))
		h.raw("</a>")
	}
	h.raw("</div>")
	if len(data.Languages) > 0 {
		h.open("div", "site-footer__languages")
		h.attr("aria-label", T(loc, "nav.language"))
		h.raw(">")
		for _, option := range data.Languages {
			h.open("a", "site-footer__language")
			h.urlAttr("href", option.URL)
			h.attr("hreflang", option.Tag)
			if option.Active {
				h.attr("aria-current", "true")
			}
			h.raw(">")
			h.text(option.Label)
			h.raw("</a>")
		}
		h.raw("</div>")
	}
	h.raw("</div></footer>")
}

func ogLocale(lang string) string {
	switch lang {
	case "es-US":
		return "es_US"
	default:
		return "en_US"
	}
}
