// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/sporetrack/sporetrack/cmd/tracker/theme"
)

type growStage int

const (
	stageInoculation growStage = iota
	stageColonization
	stagePinning
	stageFruiting
	stageHarvest
)

func (s growStage) String() string {
	switch s {
	case stageInoculation:
		return "Inoculation"
	case stageColonization:
		return "Colonization"
	case stagePinning:
		return "Pinning"
	case stageFruiting:
		return "Fruiting"
	case stageHarvest:
		return "Harvest"
	}
	return "Unknown"
}

func (s growStage) fraction() float64 {
	return float64(s) / float64(stageHarvest)
}

type growItem struct {
	Name    string
	Species string
	Method  string
	Stage   growStage
	Notes   string
}

func defaultGrowItems() []growItem {
	return []growItem{
		{
			Name:    "Batch 1 — Kitchen Shelf",
			Species: "Oyster (Pleurotus ostreatus)",
			Method:  "Rice Washing",
			Stage:   stageFruiting,
			Notes:   "First flush pinned overnight. Misting twice a day.",
		},
		{
			Name:    "Batch 2 — Closet Tub",
			Species: "Shiitake (Lentinula edodes)",
			Method:  "Supplemented Sawdust",
			Stage:   stageColonization,
			Notes:   "Block about 60% colonized. Keep in the dark another week.",
		},
		{
			Name:    "Batch 3 — Balcony Bucket",
			Species: "Milky (Calocybe indica)",
			Method:  "Straw Bucket",
			Stage:   stageInoculation,
			Notes:   "Spawned on pasteurized straw. Watch for green mold near the lid holes.",
		},
	}
}

const (
	growBarVertical = "┃"
	growBarTop      = "╻"
	growBarBottom   = "╹"
	growItemHeight  = 2
	growItemGap     = 1
	growFilterMax   = 32
)

type growsStyles struct {
	Title           lipgloss.Style
	Count           lipgloss.Style
	Name            lipgloss.Style
	Species         lipgloss.Style
	NameSelected    lipgloss.Style
	SpeciesSelected lipgloss.Style
	NameHover       lipgloss.Style
	SpeciesHover    lipgloss.Style
	FilterPrompt    lipgloss.Style
	FilterText      lipgloss.Style
	Bar             lipgloss.Style
	BarHover        lipgloss.Style
	DetailTitle     lipgloss.Style
	DetailLabel     lipgloss.Style
	DetailValue     lipgloss.Style
	DetailSubtle    lipgloss.Style
}

func defaultGrowsStyles() growsStyles {
	return growsStyles{
		Title:           lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		Count:           lipgloss.NewStyle().Foreground(theme.TextSubtle),
		Name:            lipgloss.NewStyle().Foreground(theme.TextMuted).Bold(true),
		Species:         lipgloss.NewStyle().Foreground(theme.TextSubtle),
		NameSelected:    lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		SpeciesSelected: lipgloss.NewStyle().Foreground(theme.Accent),
		NameHover:       lipgloss.NewStyle().Foreground(theme.TextMuted).Bold(true).Underline(true),
		SpeciesHover:    lipgloss.NewStyle().Foreground(theme.TextMuted),
		FilterPrompt:    lipgloss.NewStyle().Foreground(theme.TextSubtle),
		FilterText:      lipgloss.NewStyle().Foreground(theme.TextMuted),
		Bar:             lipgloss.NewStyle().Foreground(theme.Accent),
		BarHover:        lipgloss.NewStyle().Foreground(theme.Line),
		DetailTitle:     lipgloss.NewStyle().Bold(true),
		DetailLabel:     lipgloss.NewStyle().Foreground(theme.TextSubtle),
		DetailValue:     lipgloss.NewStyle().Foreground(theme.TextMuted),
		DetailSubtle:    lipgloss.NewStyle().Foreground(theme.TextSubtle),
	}
}

type growsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Clear  key.Binding
}

func newGrowsKeyMap(loc localizer) growsKeyMap {
	return growsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", loc.Text(textHelpUp)),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", loc.Text(textHelpDown)),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", loc.Text(textHelpFilter)),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", loc.Text(textHelpClearFilter)),
		),
	}
}

type growsModel struct {
	keys   growsKeyMap
	zone   *zone.Manager
	loc    localizer
	styles growsStyles

	items    []growItem
	filtered []int
	selected int
	hovered  int

	filterValue string
	filterDraft string
	filtering   bool

	stageBar progress.Model

	duration     time.Duration
	startTop     float64
	startBottom  float64
	targetTop    float64
	targetBottom float64
	animStart    time.Time
	animating    bool
}

func newGrowsModel(zoneManager *zone.Manager, loc localizer, items []growItem) growsModel {
	if items == nil {
		items = defaultGrowItems()
	}
	filtered := make([]int, 0, len(items))
	for i := range items {
		filtered = append(filtered, i)
	}

	bar := progress.New(progress.WithSolidFill("#98c379"), progress.WithoutPercentage())
	bar.Width = 24

	m := growsModel{
		keys:     newGrowsKeyMap(loc),
		zone:     zoneManager,
		loc:      loc,
		styles:   defaultGrowsStyles(),
		items:    items,
		filtered: filtered,
		selected: 0,
		hovered:  -1,
		stageBar: bar,
		duration: 120 * time.Millisecond,
	}
	m.snapBarToSelection()
	return m
}

func (m growsModel) Init() tea.Cmd {
	return nil
}

func (m growsModel) Capturing() bool {
	return m.filtering
}

func (m growsModel) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Filter, m.keys.Clear}
}

func (m growsModel) FullHelp() [][]key.Binding {
	return [][]key.Binding{{m.keys.Up, m.keys.Down}, {m.keys.Filter, m.keys.Clear}}
}

type growsTickMsg time.Time

func growsTickCmd() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg {
		return growsTickMsg(t)
	})
}

func easeOutCubic(t float64) float64 {
	return 1 - (1-t)*(1-t)*(1-t)
}

func (m growsModel) Update(msg tea.Msg) (growsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			switch msg.Type {
			case tea.KeyEnter:
				m.filtering = false
				m.filterValue = m.filterDraft
				m.applyFilter()
				return m, nil
			case tea.KeyEsc:
				m.filtering = false
				m.filterDraft = m.filterValue
				return m, nil
			case tea.KeyBackspace, tea.KeyDelete:
				if len(m.filterDraft) > 0 {
					_, size := utf8.DecodeLastRuneInString(m.filterDraft)
					m.filterDraft = m.filterDraft[:len(m.filterDraft)-size]
				}
				return m, nil
			case tea.KeyRunes:
				if len(m.filterDraft) < growFilterMax {
					m.filterDraft += string(msg.Runes)
				}
				return m, nil
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			return m.moveSelection(-1)
		case key.Matches(msg, m.keys.Down):
			return m.moveSelection(1)
		case key.Matches(msg, m.keys.Filter):
			m.filtering = true
			m.filterDraft = m.filterValue
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			if m.filterValue != "" {
				m.filterValue = ""
				m.filterDraft = ""
				m.applyFilter()
			}
			return m, nil
		}

	case tea.MouseMsg:
		switch msg.Type {
		case tea.MouseWheelUp:
			return m.moveSelection(-1)
		case tea.MouseWheelDown:
			return m.moveSelection(1)
		}
		switch msg.Action {
		case tea.MouseActionMotion:
			m.hovered = m.indexAtMouse(msg)
			return m, nil
		case tea.MouseActionRelease:
			index := m.indexAtMouse(msg)
			if index >= 0 && index < len(m.filtered) && index != m.selected {
				m.selected = index
				return m, m.startAnim(index)
			}
			return m, nil
		}

	case growsTickMsg:
		if !m.animating {
			return m, nil
		}
		if m.animProgress() >= 1.0 {
			m.startTop = m.targetTop
			m.startBottom = m.targetBottom
			m.animating = false
			return m, nil
		}
		return m, growsTickCmd()
	}
	return m, nil
}

func (m growsModel) moveSelection(delta int) (growsModel, tea.Cmd) {
	if len(m.filtered) == 0 {
		return m, nil
	}
	next := m.selected + delta
	if next < 0 {
		next = 0
	}
	if next >= len(m.filtered) {
		next = len(m.filtered) - 1
	}
	if next == m.selected {
		return m, nil
	}
	m.selected = next
	return m, m.startAnim(next)
}

func (m *growsModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filterValue))
	m.filtered = m.filtered[:0]
	for i, item := range m.items {
		if query == "" ||
			strings.Contains(strings.ToLower(item.Name), query) ||
			strings.Contains(strings.ToLower(item.Species), query) ||
			strings.Contains(strings.ToLower(item.Method), query) {
			m.filtered = append(m.filtered, i)
		}
	}

	m.hovered = -1
	if len(m.filtered) == 0 {
		m.selected = -1
		m.animating = false
		return
	}
	if m.selected < 0 || m.selected >= len(m.filtered) {
		m.selected = 0
	}
	m.snapBarToSelection()
}

// itemEdges returns the selection-bar span for a list row. Rows are a fixed
// two lines tall with a one-line gap.
func itemEdges(index int) (float64, float64) {
	top := float64(index * (growItemHeight + growItemGap))
	return top, top + growItemHeight
}

func (m *growsModel) snapBarToSelection() {
	if m.selected < 0 {
		m.animating = false
		return
	}
	top, bottom := itemEdges(m.selected)
	m.startTop = top
	m.startBottom = bottom
	m.targetTop = top
	m.targetBottom = bottom
	m.animating = false
}

func (m *growsModel) startAnim(index int) tea.Cmd {
	if index < 0 || index >= len(m.filtered) {
		return nil
	}
	curTop, curBottom := m.currentBarEdges()
	m.startTop = curTop
	m.startBottom = curBottom
	m.targetTop, m.targetBottom = itemEdges(index)
	m.animStart = time.Now()
	m.animating = true
	return growsTickCmd()
}

func (m growsModel) animProgress() float64 {
	if !m.animating {
		return 1.0
	}
	p := float64(time.Since(m.animStart)) / float64(m.duration)
	if p > 1.0 {
		return 1.0
	}
	return p
}

func (m growsModel) currentBarEdges() (float64, float64) {
	t := easeOutCubic(m.animProgress())
	top := m.startTop + (m.targetTop-m.startTop)*t
	bottom := m.startBottom + (m.targetBottom-m.startBottom)*t
	return top, bottom
}

func growBarCharForRow(row int, top, bottom float64) string {
	fRow := float64(row)
	if fRow+1 <= top || fRow >= bottom {
		return ""
	}
	if fRow < top && top-fRow >= 0.5 {
		return growBarTop
	}
	if fRow+1 > bottom && bottom-fRow <= 0.5 {
		return growBarBottom
	}
	return growBarVertical
}

func (m *growsModel) renderGrowsTab(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	gap := 2
	leftWidth := int(float64(width) * 0.4)
	if leftWidth < 22 {
		leftWidth = 22
	}
	if leftWidth > width-gap-12 {
		leftWidth = width - gap - 12
	}
	if leftWidth < 0 {
		leftWidth = 0
	}
	rightWidth := width - leftWidth - gap
	if rightWidth < 0 {
		rightWidth = 0
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Width(leftWidth).Height(height).Render(m.renderList(leftWidth, height)),
		strings.Repeat(" ", gap),
		lipgloss.NewStyle().Width(rightWidth).Height(height).Render(m.renderDetails(rightWidth, height)),
	)
}

func (m *growsModel) renderList(width, height int) string {
	header := []string{m.styles.Title.Render(m.loc.Text(textGrowsListTitle))}

	countLabel := fmt.Sprintf("%d / %d", len(m.filtered), len(m.items))
	header = append(header, m.styles.Count.Render(countLabel))

	if m.filtering {
		header = append(header, m.styles.FilterPrompt.Render("/ "+m.filterDraft+"_"))
	} else if m.filterValue != "" {
		header = append(header, m.styles.FilterText.Render("/ "+m.filterValue))
	}
	header = append(header, "")

	listHeight := height - len(header)
	if listHeight < 0 {
		listHeight = 0
	}

	lines := append([]string{}, header...)
	lines = append(lines, m.renderListRows(width, listHeight)...)
	return strings.Join(lines, "\n")
}

func (m *growsModel) renderListRows(width, height int) []string {
	contentWidth := width - 2
	if contentWidth < 0 {
		contentWidth = 0
	}

	barTop, barBottom := m.currentBarEdges()
	showBar := m.selected >= 0

	var lines []string
	for row := 0; row < height; row++ {
		block := row / (growItemHeight + growItemGap)
		lineInItem := row % (growItemHeight + growItemGap)
		if block >= len(m.filtered) {
			lines = append(lines, strings.Repeat(" ", width))
			continue
		}

		bar := " "
		if block == m.hovered && lineInItem < growItemHeight {
			bar = m.styles.BarHover.Render(growBarVertical)
		}
		if showBar {
			if ch := growBarCharForRow(row, barTop, barBottom); ch != "" {
				bar = m.styles.Bar.Render(ch)
			}
		}

		item := m.items[m.filtered[block]]
		content := ""
		switch lineInItem {
		case 0:
			switch {
			case block == m.selected:
				content = m.styles.NameSelected.Render(item.Name)
			case block == m.hovered:
				content = m.styles.NameHover.Render(item.Name)
			default:
				content = m.styles.Name.Render(item.Name)
			}
		case 1:
			line := item.Species + " · " + item.Stage.String()
			switch {
			case block == m.selected:
				content = m.styles.SpeciesSelected.Render(line)
			case block == m.hovered:
				content = m.styles.SpeciesHover.Render(line)
			default:
				content = m.styles.Species.Render(line)
			}
		}

		content = lipgloss.NewStyle().Width(contentWidth).MaxHeight(1).Render(content)
		line := lipgloss.NewStyle().Width(width).Render(bar + " " + content)
		if lineInItem < growItemHeight {
			line = m.zone.Mark(m.zoneID(block, lineInItem), line)
		}
		lines = append(lines, line)
	}
	return lines
}

func (m growsModel) renderDetails(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	if len(m.filtered) == 0 || m.selected < 0 || m.selected >= len(m.filtered) {
		return lipgloss.NewStyle().Width(width).Height(height).
			Render(m.styles.DetailSubtle.Render(m.loc.Text(textGrowsNoMatch)))
	}

	item := m.items[m.filtered[m.selected]]

	stageBar := m.stageBar
	if width-4 < stageBar.Width {
		stageBar.Width = width - 4
	}

	lines := []string{
		m.styles.DetailTitle.Render(item.Name),
		"",
		m.styles.DetailLabel.Render(m.loc.Text(textGrowsSpecies)) + " " + m.styles.DetailValue.Render(item.Species),
		m.styles.DetailLabel.Render(m.loc.Text(textGrowsMethod)) + " " + m.styles.DetailValue.Render(item.Method),
		m.styles.DetailLabel.Render(m.loc.Text(textGrowsStage)) + " " + m.styles.DetailValue.Render(item.Stage.String()),
		stageBar.ViewAs(item.Stage.fraction()),
		"",
		m.styles.DetailLabel.Render(m.loc.Text(textGrowsNotes)),
		lipgloss.NewStyle().Width(width).Foreground(theme.TextMuted).Render(item.Notes),
	}

	return lipgloss.NewStyle().Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

func (m growsModel) indexAtMouse(msg tea.MouseMsg) int {
	for i := 0; i < len(m.filtered); i++ {
		for line := 0; line < growItemHeight; line++ {
			if m.zone.Get(m.zoneID(i, line)).InBounds(msg) {
				return i
			}
		}
	}
	return -1
}

func (m growsModel) zoneID(itemIndex, line int) string {
	return fmt.Sprintf("grow-item-%d-%d", itemIndex, line)
}

func (m *model) renderGrowsTab(width, height int) string {
	return m.grows.renderGrowsTab(width, height)
}
