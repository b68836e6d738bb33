// Package branding holds the company identity shared by every surface.
package branding

// AppName is the public display name.
const AppName = "Lazy E Holdings"

// LegalName is the registered company name used in copyright lines.
const LegalName = "Lazy E Holdings LLC"

// ContactEmail is the public inbox behind the contact link.
const ContactEmail = "admin@lazyeholdings.com"

// Location is the public company location.
const Location = "Dallas-Fort Worth, Texas"

// FoundedYear is the year the company was founded.
const FoundedYear = 2024

// LogoPath is the static asset path of the company logo.
const LogoPath = "/static/images/lazy-e-logo.svg"

// ThemeColor is the browser theme color advertised in page metadata.
const ThemeColor = "#0a0a0a"

// MailtoURL returns the contact link target.
func MailtoURL() string {
	return "mailto:" + ContactEmail
}
