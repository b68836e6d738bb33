// Package weberror renders localized error responses for site modules.
package weberror

import (
	"net/http"

	"github.com/a-h/templ"
	module "github.com/lazyeholdings/site/internal/services/site/module"
	apperrors "github.com/lazyeholdings/site/internal/services/site/platform/errors"
	"github.com/lazyeholdings/site/internal/services/site/platform/httpx"
	"github.com/lazyeholdings/site/internal/services/site/platform/pagerender"
	"github.com/lazyeholdings/site/internal/services/site/templates"
)

// ShouldRenderErrorPage reports whether status gets the error page rather
// than a plain-text body.
func ShouldRenderErrorPage(statusCode int) bool {
	return statusCode == http.StatusNotFound ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}

// WriteErrorPage writes the localized error page, or only its panel for htmx
// requests.
func WriteErrorPage(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	writeErrorPage(w, r, statusCode, "", deps)
}

func writeErrorPage(w http.ResponseWriter, r *http.Request, statusCode int, detailKey string, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderErrorPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	// Headers are written before rendering starts, so a render error has no
	// better response left to send.
	_ = pagerender.WritePage(w, r, deps, pagerender.Page{
		StatusCode: statusCode,
		Title: func(loc templates.Localizer) string {
			return templates.ErrorPageTitle(statusCode, loc)
		},
		Fragment: func(loc templates.Localizer) templ.Component {
			return templates.ErrorState(statusCode, detailKey, loc)
		},
	})
}

// WriteModuleError maps err to a status and writes the matching response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderErrorPage(statusCode) {
		writeErrorPage(w, r, statusCode, apperrors.LocalizationKey(err), deps)
		return
	}
	httpx.WriteError(w, err)
}
