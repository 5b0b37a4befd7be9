// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package tabs

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/sporetrack/sporetrack/cmd/tracker/theme"
)

const (
	HeavyHorizontal = "━"
	HeavyLeft       = "╸"
	HeavyRight      = "╺"
)

// Tab is one entry in the bar.
type Tab struct {
	ID    string
	Title string
}

type Styles struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
	Hover    lipgloss.Style
	BarOn    lipgloss.Style
	BarOff   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Active: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(theme.OnPrimary).
			Padding(0, 1),
		Inactive: lipgloss.NewStyle().
			Foreground(theme.TextMuted).
			Padding(0, 1),
		Hover: lipgloss.NewStyle().
			Background(theme.Surface).
			Padding(0, 1),
		BarOn:  lipgloss.NewStyle().Foreground(theme.Primary),
		BarOff: lipgloss.NewStyle().Foreground(theme.Line),
	}
}

// slide is one underline animation from the previous tab's edges to the
// active tab's edges.
type slide struct {
	fromLeft  float64
	fromRight float64
	toLeft    float64
	toRight   float64
	started   time.Time
	active    bool
}

// Model renders a row of tabs with an animated underline bar. Mouse hover
// and clicks are resolved through bubblezone marks.
type Model struct {
	Tabs     []Tab
	Active   int
	Hovered  int
	Styles   Styles
	Duration time.Duration

	zone   *zone.Manager
	prefix string
	widths []int
	anim   slide
}

func New(items []Tab, zoneManager *zone.Manager, zonePrefix string) Model {
	m := Model{
		Tabs:     items,
		Active:   0,
		Hovered:  -1,
		Styles:   DefaultStyles(),
		Duration: 200 * time.Millisecond,
		zone:     zoneManager,
		prefix:   zonePrefix,
	}
	m.measure()
	if len(m.Tabs) > 0 {
		m.anim = m.restingSlide(m.Active)
	}
	return m
}

func (m *Model) measure() {
	m.widths = make([]int, len(m.Tabs))
	for i, tab := range m.Tabs {
		m.widths[i] = lipgloss.Width(m.Styles.Active.Render(tab.Title))
	}
}

// TotalWidth is the rendered width of the tab row.
func (m Model) TotalWidth() int {
	total := 0
	for _, w := range m.widths {
		total += w
	}
	return total
}

// edges returns the underline span for a tab, inset one cell on each side.
func (m Model) edges(index int) (float64, float64) {
	start := 0
	for i := 0; i < index; i++ {
		start += m.widths[i]
	}
	return float64(start) + 1, float64(start+m.widths[index]) - 1
}

func (m Model) restingSlide(index int) slide {
	left, right := m.edges(index)
	return slide{fromLeft: left, fromRight: right, toLeft: left, toRight: right}
}

func easeOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

func (s slide) progress(duration time.Duration) float64 {
	if !s.active {
		return 1.0
	}
	p := float64(time.Since(s.started)) / float64(duration)
	if p > 1.0 {
		return 1.0
	}
	return p
}

func (m Model) currentEdges() (float64, float64) {
	t := easeOutQuad(m.anim.progress(m.Duration))
	left := m.anim.fromLeft + (m.anim.toLeft-m.anim.fromLeft)*t
	right := m.anim.fromRight + (m.anim.toRight-m.anim.fromRight)*t
	return left, right
}

// SetActive switches to the tab at index and starts the underline slide.
func (m *Model) SetActive(index int) tea.Cmd {
	if index < 0 || index >= len(m.Tabs) || index == m.Active {
		return nil
	}
	curLeft, curRight := m.currentEdges()
	m.Active = index
	toLeft, toRight := m.edges(index)
	m.anim = slide{
		fromLeft:  curLeft,
		fromRight: curRight,
		toLeft:    toLeft,
		toRight:   toRight,
		started:   time.Now(),
		active:    true,
	}
	return tickCmd()
}

// ActiveTab returns the currently active tab, or the zero Tab when empty.
func (m Model) ActiveTab() Tab {
	if m.Active >= 0 && m.Active < len(m.Tabs) {
		return m.Tabs[m.Active]
	}
	return Tab{}
}

type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// TabChangedMsg is emitted when a tab is activated with the mouse.
type TabChangedMsg struct {
	Index int
	Tab   Tab
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion {
			m.Hovered = -1
			for i, tab := range m.Tabs {
				if m.zone.Get(m.prefix + tab.ID).InBounds(msg) {
					m.Hovered = i
					break
				}
			}
			return m, nil
		}
		if msg.Action != tea.MouseActionRelease {
			return m, nil
		}
		for i, tab := range m.Tabs {
			if !m.zone.Get(m.prefix + tab.ID).InBounds(msg) {
				continue
			}
			if i == m.Active {
				return m, nil
			}
			cmd := m.SetActive(i)
			changed := TabChangedMsg{Index: i, Tab: tab}
			return m, tea.Batch(cmd, func() tea.Msg { return changed })
		}

	case TickMsg:
		if !m.anim.active {
			return m, nil
		}
		if m.anim.progress(m.Duration) >= 1.0 {
			m.anim = m.restingSlide(m.Active)
			return m, nil
		}
		return m, tickCmd()
	}

	return m, nil
}

func (m Model) View() string {
	if len(m.Tabs) == 0 {
		return ""
	}

	var row strings.Builder
	for i, tab := range m.Tabs {
		var cell string
		switch {
		case i == m.Active:
			cell = m.Styles.Active.Render(tab.Title)
		case i == m.Hovered:
			cell = m.Styles.Hover.Render(tab.Title)
		default:
			cell = m.Styles.Inactive.Render(tab.Title)
		}
		row.WriteString(m.zone.Mark(m.prefix+tab.ID, cell))
	}

	return lipgloss.JoinVertical(lipgloss.Left, row.String(), m.renderBar())
}

func (m Model) renderBar() string {
	width := m.TotalWidth()
	if width <= 0 {
		return ""
	}

	left, right := m.currentEdges()
	l := int(left + 0.5)
	r := int(right + 0.5)
	if l < 0 {
		l = 0
	}
	if r > width {
		r = width
	}

	var bar strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i == l-1 && l > 0:
			bar.WriteString(m.Styles.BarOff.Render(HeavyLeft))
		case i == r && r < width:
			bar.WriteString(m.Styles.BarOff.Render(HeavyRight))
		case i >= l && i < r:
			bar.WriteString(m.Styles.BarOn.Render(HeavyHorizontal))
		default:
			bar.WriteString(m.Styles.BarOff.Render(HeavyHorizontal))
		}
	}

	return bar.String()
}
