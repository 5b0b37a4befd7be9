// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"go.uber.org/zap"

	"github.com/sporetrack/sporetrack/cmd/tracker/tabs"
	"github.com/sporetrack/sporetrack/cmd/tracker/theme"
	"github.com/sporetrack/sporetrack/internal/activity"
	"github.com/sporetrack/sporetrack/internal/authapi"
	"github.com/sporetrack/sporetrack/internal/config"
	"github.com/sporetrack/sporetrack/internal/logging"
	"github.com/sporetrack/sporetrack/internal/profile"
	"github.com/sporetrack/sporetrack/internal/store"
)

const (
	maxWidth          = 120
	minContentHeight  = 5
	minViewportWidth  = 40
	minViewportHeight = 11

	storeTimeout = 3 * time.Second
)

type model struct {
	w           int
	h           int
	zone        *zone.Manager
	loc         localizer
	tabs        tabs.Model
	contentArea lipgloss.Style
	barStyle    lipgloss.Style
	titleStyle  lipgloss.Style
	keys        keyMap
	help        help.Model
	grows       growsModel
	profile     profileModel
}

type helpKeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

type helpBindings struct {
	short []key.Binding
}

func (h helpBindings) ShortHelp() []key.Binding {
	return h.short
}

func (h helpBindings) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.short}
}

type keyMap struct {
	Quit    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
}

func newKeyMap(loc localizer) keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", loc.Text(textHelpQuit)),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", loc.Text(textHelpNextTab)),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", loc.Text(textHelpPrevTab)),
		),
	}
}

func (m model) contextualKeyMap() helpKeyMap {
	switch m.tabs.ActiveTab().ID {
	case "grows":
		return m.grows
	case "profile":
		return m.profile
	}
	return nil
}

func (m model) inputCaptured() bool {
	switch m.tabs.ActiveTab().ID {
	case "grows":
		return m.grows.Capturing()
	case "profile":
		return m.profile.Capturing()
	default:
		return false
	}
}

func (m model) globalHelpKeyMap() helpKeyMap {
	if m.inputCaptured() {
		return nil
	}
	return helpBindings{
		short: []key.Binding{m.keys.NextTab, m.keys.PrevTab, m.keys.Quit},
	}
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(os.Stdout, termenv.WithColorCache(true)))

	zoneManager := zone.New()
	loc := detectLocalizer()

	var st *store.Store
	if cfg.Database.URL != "" {
		db, err := sql.Open("libsql", cfg.Database.URL)
		if err != nil {
			logger.Error("failed to open database", zap.Error(err))
			os.Exit(1)
		}
		st = store.New(db)
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		if err := st.Init(ctx); err != nil {
			logger.Warn("schema init failed, running on demo data", zap.Error(err))
			st = nil
		}
		cancel()
	}

	snap, feed := loadContent(st, logger)

	menuTabs := []tabs.Tab{
		{ID: "grows", Title: loc.Text(textTabGrows)},
		{ID: "profile", Title: loc.Text(textTabProfile)},
		{ID: "about", Title: loc.Text(textTabAbout)},
	}

	p := tea.NewProgram(&model{
		zone:        zoneManager,
		loc:         loc,
		tabs:        tabs.New(menuTabs, zoneManager, "tracker-tab-"),
		contentArea: lipgloss.NewStyle().Padding(1, 2),
		barStyle:    lipgloss.NewStyle().Foreground(theme.Line),
		titleStyle:  lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		keys:        newKeyMap(loc),
		help:        help.New(),
		grows:       newGrowsModel(zoneManager, loc, nil),
		profile: newProfileModel(zoneManager, loc, profileOptions{
			Snapshot:        snap,
			Feed:            feed,
			OnUpdateProfile: profileSaver(st, logger),
			OnUpdateAvatar: func() {
				logger.Info("avatar update requested")
			},
			Auth:   authapi.NewClient(cfg.Auth.BaseURL, nil),
			Tokens: authapi.StaticTokenSource(cfg.Auth.IDToken),
			Log:    logger,
		}),
	}, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

// loadContent pulls the stored profile and feed, falling back to the demo
// content when no store is configured or the rows are missing.
func loadContent(st *store.Store, logger *zap.Logger) (profile.Snapshot, []activity.Item) {
	snap := profile.Default()
	feed := activity.DefaultFeed()
	if st == nil {
		return snap, feed
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	stored, err := st.Profile(ctx)
	switch {
	case err == nil:
		snap = stored
	case errors.Is(err, store.ErrNotFound):
	default:
		logger.Warn("failed to load profile", zap.Error(err))
	}

	items, err := st.Activity(ctx)
	if err != nil {
		logger.Warn("failed to load activity", zap.Error(err))
	} else if len(items) > 0 {
		feed = items
	}

	return snap, feed
}

// profileSaver is the persistence sink behind the profile tab. Writes are
// fire-and-forget so typing in the edit form never blocks the UI.
func profileSaver(st *store.Store, logger *zap.Logger) profileSink {
	return func(snap profile.Snapshot) {
		logger.Debug("profile updated", zap.String("name", snap.Name))
		if st == nil {
			return
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
			defer cancel()
			if err := st.SaveProfile(ctx, snap); err != nil {
				logger.Warn("failed to save profile", zap.Error(err))
			}
		}()
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(m.tabs.Init(), m.grows.Init(), m.profile.Init())
}

func (m *model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := message.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if msg.String() == "q" && m.inputCaptured() {
				break
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			// While a tab is capturing input the key belongs to it, not to
			// tab switching: editing uses tab to move between fields.
			if m.inputCaptured() {
				break
			}
			next := (m.tabs.Active + 1) % len(m.tabs.Tabs)
			return m, m.tabs.SetActive(next)
		case key.Matches(msg, m.keys.PrevTab):
			if m.inputCaptured() {
				break
			}
			prev := m.tabs.Active - 1
			if prev < 0 {
				prev = len(m.tabs.Tabs) - 1
			}
			return m, m.tabs.SetActive(prev)
		}

	case tea.WindowSizeMsg:
		m.w = msg.Width
		m.h = msg.Height
		return m, nil

	case tabs.TabChangedMsg:
		return m, nil

	// Sign-in outcomes and spinner frames reach the profile tab even when
	// another tab is active.
	case signInResultMsg, spinner.TickMsg:
		var cmd tea.Cmd
		m.profile, cmd = m.profile.Update(message)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	if m.tabs.ActiveTab().ID == "grows" {
		m.grows, cmd = m.grows.Update(message)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	} else if m.tabs.ActiveTab().ID == "profile" {
		m.profile, cmd = m.profile.Update(message)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	m.tabs, cmd = m.tabs.Update(message)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) renderAboutTab(width, height int) string {
	body := lipgloss.NewStyle().Width(width).Foreground(theme.TextMuted).Render(m.loc.Text(textAboutBody))
	return lipgloss.NewStyle().Width(width).Height(height).Render(body)
}

func (m *model) View() string {
	tabsView := m.tabs.View()
	tabsWidth := m.tabs.TotalWidth()
	title := m.titleStyle.Render(" " + m.loc.Text(textHeaderTitle))
	titleWidth := lipgloss.Width(title)

	viewportWidth := maxWidth
	if m.w < viewportWidth {
		viewportWidth = m.w
	}
	requiredWidth := minViewportWidth
	if titleWidth+tabsWidth+1 > requiredWidth {
		requiredWidth = titleWidth + tabsWidth + 1
	}
	if viewportWidth < requiredWidth || m.h < minViewportHeight {
		return lipgloss.Place(m.w, m.h, lipgloss.Center, lipgloss.Center, m.loc.Text(textWindowTooSmall))
	}

	paddingTotal := viewportWidth - tabsWidth
	if paddingTotal < 0 {
		paddingTotal = 0
	}
	leftPad := paddingTotal / 2
	minLeftPad := titleWidth + 1
	if leftPad < minLeftPad {
		leftPad = minLeftPad
	}
	rightPad := viewportWidth - leftPad - tabsWidth
	if rightPad < 0 {
		rightPad = 0
	}

	tabLines := strings.Split(tabsView, "\n")
	var centeredTabs strings.Builder
	centeredTabs.WriteString(strings.Repeat(" ", viewportWidth))
	centeredTabs.WriteString("\n")
	if len(tabLines) > 0 {
		line := title + strings.Repeat(" ", leftPad-titleWidth) + tabLines[0] + strings.Repeat(" ", rightPad)
		centeredTabs.WriteString(lipgloss.NewStyle().Width(viewportWidth).Render(line))
	}
	if len(tabLines) > 1 {
		centeredTabs.WriteString("\n")
		barLine := m.barStyle.Render(strings.Repeat(tabs.HeavyHorizontal, leftPad)) + tabLines[1] +
			m.barStyle.Render(strings.Repeat(tabs.HeavyHorizontal, rightPad))
		centeredTabs.WriteString(lipgloss.NewStyle().Width(viewportWidth).Render(barLine))
	}

	centeredTabsView := lipgloss.NewStyle().Width(viewportWidth).Render(centeredTabs.String())

	m.help.Width = viewportWidth
	var helpLines []string
	if keyMap := m.contextualKeyMap(); keyMap != nil {
		helpLines = append(helpLines, lipgloss.NewStyle().Width(viewportWidth).Render(m.help.View(keyMap)))
	}
	if keyMap := m.globalHelpKeyMap(); keyMap != nil {
		helpLines = append(helpLines, lipgloss.NewStyle().Width(viewportWidth).Render(m.help.View(keyMap)))
	}
	helpLines = append(helpLines, strings.Repeat(" ", viewportWidth))
	helpView := strings.Join(helpLines, "\n")
	helpHeight := lipgloss.Height(helpView)

	contentHeight := m.h - lipgloss.Height(centeredTabsView) - helpHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	contentPaddingY := 1
	contentPaddingX := 2
	if contentHeight <= minContentHeight+2 {
		contentPaddingY = 0
		contentPaddingX = 1
	}

	contentWidth := viewportWidth - 2*contentPaddingX
	contentHeightInner := contentHeight - 2*contentPaddingY
	if contentWidth < 0 {
		contentWidth = 0
	}
	if contentHeightInner < 0 {
		contentHeightInner = 0
	}

	var content string
	switch m.tabs.ActiveTab().ID {
	case "grows":
		content = m.renderGrowsTab(contentWidth, contentHeightInner)
	case "profile":
		content = m.renderProfileTab(contentWidth, contentHeightInner)
	case "about":
		content = m.renderAboutTab(contentWidth, contentHeightInner)
	default:
		content = m.loc.Text(textUnknownTab)
	}

	styledContent := m.contentArea.
		Padding(contentPaddingY, contentPaddingX).
		Width(viewportWidth).
		Height(contentHeight).
		Render(content)

	fullView := lipgloss.JoinVertical(lipgloss.Left, centeredTabsView, styledContent, helpView)
	return m.zone.Scan(lipgloss.Place(m.w, m.h, lipgloss.Center, lipgloss.Top, fullView))
}
