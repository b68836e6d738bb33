package templates

import (
	"context"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/lazyeholdings/site/internal/services/site/routepath"
)

// NormalizeErrorStatus folds statuses without their own copy into 500.
func NormalizeErrorStatus(statusCode int) int {
	switch statusCode {
	case http.StatusNotFound, http.StatusTooManyRequests:
		return statusCode
	default:
		return http.StatusInternalServerError
	}
}

func errorKey(statusCode int, suffix string) string {
	return "error." + strconv.Itoa(NormalizeErrorStatus(statusCode)) + "." + suffix
}

// ErrorPageTitle returns the browser title for an error page.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	return T(loc, "error.page_title", T(loc, errorKey(statusCode, "heading")))
}

// ErrorState renders the error panel shown as main content. A non-empty
// detailKey replaces the status's generic body copy.
func ErrorState(statusCode int, detailKey string, loc Localizer) templ.Component {
	return htmlComponent(func(_ context.Context, h *htmlWriter) {
		status := NormalizeErrorStatus(statusCode)
		h.open("section", "section error-state")
		h.attr("id", "error-state")
		h.intAttr("data-status", status)
		h.raw("><div class=\"container container--narrow section__intro\">")
		h.element("p", "section__eyebrow", strconv.Itoa(status))
		h.element("h1", "section__heading", T(loc, errorKey(status, "heading")))
		bodyKey := errorKey(status, "body")
		if detailKey != "" {
			bodyKey = detailKey
		}
		h.element("p", "section__body", T(loc, bodyKey))
		h.open("a", "button button--primary")
		h.urlAttr("href", routepath.Root)
		h.raw(">")
		h.text(T(loc, "error.back_home"))
		h.raw("</a></div></section>")
	})
}
