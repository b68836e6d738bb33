// Package preview renders the venture catalog in a terminal so copy and
// ordering can be reviewed without a browser. It drives the same selection
// controller as the site.
package preview

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lazyeholdings/site/internal/services/site/selection"
	"github.com/lazyeholdings/site/internal/services/site/venture"
	"golang.org/x/text/message"
)

// visitedMsg reports the outcome of handing a venture URL to the opener.
type visitedMsg struct {
	name string
	err  error
}

// Model is the bubbletea model for the preview.
type Model struct {
	ventures   []venture.Venture
	controller *selection.Controller
	opener     Opener
	loc        *message.Printer

	cursor   int
	width    int
	status   string
	quitting bool
}

// New starts the preview with defaultID expanded and the cursor on it. With a
// nil opener, visiting shows the venture's URL in the status line.
func New(catalog *venture.Catalog, defaultID string, opener Opener, loc *message.Printer) Model {
	ventures := catalog.Ventures()
	cursor := 0
	for i, v := range ventures {
		if v.ID == defaultID {
			cursor = i
			break
		}
	}
	return Model{
		ventures:   ventures,
		controller: selection.NewController(defaultID),
		opener:     opener,
		loc:        loc,
		cursor:     cursor,
	}
}

// Selection returns the current selection.
func (m Model) Selection() selection.State {
	return m.controller.State()
}

// Cursor returns the index of the focused card.
func (m Model) Cursor() int {
	return m.cursor
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case visitedMsg:
		if msg.err != nil {
			m.status = m.t("preview.open_failed", msg.name, msg.err.Error())
		} else {
			m.status = m.t("preview.opened", msg.name)
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.ventures)-1 {
			m.cursor++
		}
	case "enter", " ", "space":
		if v, ok := m.focused(); ok {
			m.controller.Toggle(v.ID)
			m.status = ""
		}
	case "o":
		v, ok := m.focused()
		if !ok {
			break
		}
		if !v.HasURL() {
			m.status = m.t("preview.no_site", v.Name)
			break
		}
		if m.opener == nil {
			m.status = m.t("preview.link", v.Name, v.URL)
			break
		}
		m.status = m.t("preview.opening", v.URL)
		return m, visit(m.opener, v)
	}
	return m, nil
}

// visit never touches the selection.
func visit(opener Opener, v venture.Venture) tea.Cmd {
	return func() tea.Msg {
		err := opener.Open(context.Background(), v.URL)
		return visitedMsg{name: v.Name, err: err}
	}
}

func (m Model) focused() (venture.Venture, bool) {
	if m.cursor < 0 || m.cursor >= len(m.ventures) {
		return venture.Venture{}, false
	}
	return m.ventures[m.cursor], true
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.t("preview.title")))
	b.WriteString("\n\n")
	if len(m.ventures) == 0 {
		b.WriteString(hintStyle.Render(m.t("preview.empty")))
		b.WriteString("\n")
	}
	state := m.controller.State()
	for i, v := range m.ventures {
		b.WriteString(m.renderCard(v, state.Expanded(v.ID), i == m.cursor))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.t("preview.help")))
	return b.String()
}

func (m Model) renderCard(v venture.Venture, expanded bool, focused bool) string {
	badgeStyle := defaultBadgeStyle
	if v.StatusInfo().Launching() {
		badgeStyle = launchingBadgeStyle
	}
	icon := lipgloss.NewStyle().Foreground(gradientColor(v.Gradient)).Render("■")
	header := icon + " " + titleStyle.Render(v.Name) + "  " + badgeStyle.Render(v.Status)

	lines := []string{header, taglineStyle.Render(v.Tagline)}
	if expanded {
		if v.Description != "" {
			lines = append(lines, "", bodyStyle.Render(v.Description))
		}
		if len(v.Features) > 0 {
			tags := make([]string, 0, len(v.Features))
			for _, feature := range v.Features {
				tags = append(tags, featureStyle.Render(feature))
			}
			lines = append(lines, "", strings.Join(tags, " "))
		}
		visitLine := m.t("ventures.coming_soon")
		if v.HasURL() {
			visitLine = m.t("ventures.visit") + ": " + v.URL
		}
		lines = append(lines, "", hintStyle.Render(visitLine))
	} else {
		lines = append(lines, hintStyle.Render(m.t("preview.expand_hint")))
	}

	style := cardStyle
	if focused {
		style = focusedCardStyle
	}
	if m.width > 8 {
		style = style.Width(m.width - 4)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) t(key string, args ...any) string {
	if m.loc == nil {
		return key
	}
	return m.loc.Sprintf(key, args...)
}
