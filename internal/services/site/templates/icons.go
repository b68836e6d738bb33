package templates

const (
	iconChevronDown  = "M19 9l-7 7-7-7"
	iconExternalLink = "M10 6H6a2 2 0 00-2 2v10a2 2 0 002 2h10a2 2 0 002-2v-4M14 4h6m0 0v6m0-6L10 14"
	iconClock        = "M12 8v4l3 3m6-3a9 9 0 11-18 0 9 9 0 0118 0z"
	iconMail         = "M3 8l7.89 5.26a2 2 0 002.22 0L21 8M5 19h14a2 2 0 002-2V7a2 2 0 00-2-2H5a2 2 0 00-2 2v10a2 2 0 002 2z"
	iconCheckBadge   = "M9 12.75L11.25 15 15 9.75M21 12a9 9 0 11-18 0 9 9 0 0118 0z"
)

// Section photography, served from Unsplash.
const (
	imageHero          = "https://images.unsplash.com/photo-1497366216548-37526070297c?w=1200&q=80"
	imageStrategy      = "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?w=800&q=80"
	imageTechnology    = "https://images.unsplash.com/photo-1551434678-e076c223a692?w=800&q=80"
	imageCollaboration = "https://images.unsplash.com/photo-1522071820081-009f0129c71c?w=800&q=80"
)
