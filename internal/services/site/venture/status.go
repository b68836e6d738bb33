package venture

import "strings"

// StatusKind is the lifecycle bucket a free-text status falls into.
type StatusKind int

const (
	StatusOther StatusKind = iota
	StatusInDevelopment
	StatusLaunching
)

const launchingMarker = "Launching"

// String returns a stable lowercase name used in CSS classes and metrics.
func (k StatusKind) String() string {
	switch k {
	case StatusInDevelopment:
		return "in_development"
	case StatusLaunching:
		return "launching"
	default:
		return "other"
	}
}

// Status is the classified form of a venture's status text. Label is always
// the raw text; LaunchWindow is the remainder after "Launching" when the
// kind is StatusLaunching (for example "April 2026").
type Status struct {
	Kind         StatusKind
	Label        string
	LaunchWindow string
}

// ClassifyStatus maps status text onto a StatusKind. Any text containing
// "Launching" is a launch, matching the badge rule the site has always used.
func ClassifyStatus(text string) Status {
	trimmed := strings.TrimSpace(text)
	status := Status{Kind: StatusOther, Label: trimmed}
	if idx := strings.Index(trimmed, launchingMarker); idx >= 0 {
		status.Kind = StatusLaunching
		status.LaunchWindow = strings.TrimSpace(trimmed[idx+len(launchingMarker):])
		return status
	}
	if strings.EqualFold(trimmed, "In Development") {
		status.Kind = StatusInDevelopment
	}
	return status
}

// Launching reports whether the status gets the launch badge treatment.
func (s Status) Launching() bool {
	return s.Kind == StatusLaunching
}
