// Package venture models the holding company's portfolio: the ventures shown
// as cards on the site and the immutable, ordered catalog that holds them.
package venture

import "strings"

// Venture is one portfolio business rendered as a card.
//
// URL is empty while the venture has no public site; Icon and Gradient are
// presentation hints with no behavior attached.
type Venture struct {
	ID          string
	Name        string
	Tagline     string
	Description string
	Status      string
	Features    []string
	URL         string
	Icon        string
	Gradient    string
}

// HasURL reports whether the venture has a public site to visit.
func (v Venture) HasURL() bool {
	return strings.TrimSpace(v.URL) != ""
}

// StatusInfo classifies the free-text status.
func (v Venture) StatusInfo() Status {
	return ClassifyStatus(v.Status)
}

func (v Venture) clone() Venture {
	out := v
	if v.Features != nil {
		out.Features = append([]string(nil), v.Features...)
	}
	return out
}
