// Package routepath centralizes site URL paths and route patterns.
package routepath

import "net/url"

const (
	Root         = "/"
	Health       = "/health"
	Metrics      = "/metrics"
	StaticPrefix = "/static/"

	Ventures       = "/ventures"
	VenturesPrefix = "/ventures/"

	// VentureTogglePattern and VentureVisitPattern are mux patterns whose
	// {id} wildcard is read with Request.PathValue.
	VentureTogglePattern = VenturesPrefix + "{id}/toggle"
	VentureVisitPattern  = VenturesPrefix + "{id}/visit"
)

// Page section anchors.
const (
	SectionVentures = "ventures"
	SectionAbout    = "about"
	SectionContact  = "contact"
)

// VentureToggle returns the toggle endpoint for a venture card.
func VentureToggle(id string) string {
	return VenturesPrefix + url.PathEscape(id) + "/toggle"
}

// VentureVisit returns the visit-site endpoint for a venture.
func VentureVisit(id string) string {
	return VenturesPrefix + url.PathEscape(id) + "/visit"
}

// Anchor returns the root path scrolled to section.
func Anchor(section string) string {
	return Root + "#" + section
}

// Static returns the URL of an embedded asset.
func Static(name string) string {
	return StaticPrefix + name
}
