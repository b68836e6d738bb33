package preview

import "github.com/charmbracelet/lipgloss"

// Palette follows the site's gradients: slate text with blue, emerald and
// amber accents.
const (
	colorText     lipgloss.Color = "#e2e8f0"
	colorMuted    lipgloss.Color = "#94a3b8"
	colorSurface  lipgloss.Color = "#1e293b"
	colorBlue     lipgloss.Color = "#60a5fa"
	colorEmerald  lipgloss.Color = "#34d399"
	colorAmber    lipgloss.Color = "#fbbf24"
	colorNeutral  lipgloss.Color = "#cbd5e1"
	colorLaunch   lipgloss.Color = "#065f46"
	colorDefault  lipgloss.Color = "#334155"
	colorFocusRim lipgloss.Color = "#f8fafc"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	helpStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	statusStyle  = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface).Padding(0, 1)
	taglineStyle = lipgloss.NewStyle().Foreground(colorMuted)
	bodyStyle    = lipgloss.NewStyle().Foreground(colorText)
	featureStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface).Padding(0, 1)
	hintStyle    = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	launchingBadgeStyle = lipgloss.NewStyle().Foreground(colorEmerald).Background(colorLaunch).Padding(0, 1)
	defaultBadgeStyle   = lipgloss.NewStyle().Foreground(colorNeutral).Background(colorDefault).Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDefault).
			Padding(0, 1)
	focusedCardStyle = cardStyle.BorderForeground(colorFocusRim)
)

func gradientColor(gradient string) lipgloss.Color {
	switch gradient {
	case "blue":
		return colorBlue
	case "emerald":
		return colorEmerald
	case "amber":
		return colorAmber
	default:
		return colorNeutral
	}
}
