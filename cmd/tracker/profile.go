// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/sporetrack/sporetrack/cmd/tracker/theme"
	"github.com/sporetrack/sporetrack/internal/activity"
	"github.com/sporetrack/sporetrack/internal/authapi"
	"github.com/sporetrack/sporetrack/internal/profile"
)

const defaultTip = "Keep humidity above 80% during pinning. Oyster mushrooms fruit best with plenty of fresh air exchange."

const (
	zoneProfileEdit   = "profile-edit"
	zoneProfileAvatar = "profile-avatar"
	zoneProfileSignIn = "profile-signin"
)

// Indexes into profileModel.inputs.
const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldCount
)

// profileSink receives the full profile snapshot after every field edit,
// not only on commit.
type profileSink func(profile.Snapshot)

type profileOptions struct {
	Snapshot profile.Snapshot
	Feed     []activity.Item
	Tip      string

	OnUpdateProfile profileSink
	OnUpdateAvatar  func()

	Auth   *authapi.Client
	Tokens authapi.TokenSource
	Log    *zap.Logger
}

type profileModel struct {
	keys   profileKeyMap
	zone   *zone.Manager
	loc    localizer
	styles profileStyles

	snap profile.Snapshot
	feed []activity.Item
	tip  string

	onUpdateProfile profileSink
	onUpdateAvatar  func()

	auth   *authapi.Client
	tokens authapi.TokenSource
	log    *zap.Logger

	inputs  []textinput.Model
	focus   int
	editing bool

	spin      spinner.Model
	signingIn bool
	formError string
}

type profileKeyMap struct {
	Edit      key.Binding
	Avatar    key.Binding
	SignIn    key.Binding
	NextField key.Binding
	Done      key.Binding
	Cancel    key.Binding
}

func newProfileKeyMap(loc localizer) profileKeyMap {
	return profileKeyMap{
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", loc.Text(textHelpEdit)),
		),
		Avatar: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", loc.Text(textHelpAvatar)),
		),
		SignIn: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", loc.Text(textHelpSignIn)),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", loc.Text(textHelpNextField)),
		),
		Done: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", loc.Text(textHelpDone)),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", loc.Text(textHelpCancel)),
		),
	}
}

type profileStyles struct {
	SectionTitle lipgloss.Style
	Name         lipgloss.Style
	Label        lipgloss.Style
	Value        lipgloss.Style
	Subtle       lipgloss.Style
	Avatar       lipgloss.Style
	LevelBadge   lipgloss.Style
	Button       lipgloss.Style
	Error        lipgloss.Style
	TipPanel     lipgloss.Style
}

func defaultProfileStyles() profileStyles {
	return profileStyles{
		SectionTitle: lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		Name:         lipgloss.NewStyle().Bold(true),
		Label:        lipgloss.NewStyle().Foreground(theme.TextSubtle),
		Value:        lipgloss.NewStyle().Foreground(theme.TextMuted),
		Subtle:       lipgloss.NewStyle().Foreground(theme.TextSubtle),
		Avatar: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(theme.OnPrimary).
			Bold(true).
			Padding(0, 2),
		LevelBadge: lipgloss.NewStyle().
			Background(theme.Surface).
			Padding(0, 1),
		Button: lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		Error:  lipgloss.NewStyle().Foreground(theme.Danger),
		TipPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Line).
			Padding(0, 1),
	}
}

func newProfileModel(zoneManager *zone.Manager, loc localizer, opts profileOptions) profileModel {
	if opts.Snapshot == (profile.Snapshot{}) {
		opts.Snapshot = profile.Default()
	}
	if opts.Feed == nil {
		opts.Feed = activity.DefaultFeed()
	}
	if opts.Tip == "" {
		opts.Tip = defaultTip
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 64
		inputs[i] = in
	}

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
	)

	return profileModel{
		keys:            newProfileKeyMap(loc),
		zone:            zoneManager,
		loc:             loc,
		styles:          defaultProfileStyles(),
		snap:            opts.Snapshot,
		feed:            opts.Feed,
		tip:             opts.Tip,
		onUpdateProfile: opts.OnUpdateProfile,
		onUpdateAvatar:  opts.OnUpdateAvatar,
		auth:            opts.Auth,
		tokens:          opts.Tokens,
		log:             opts.Log,
		inputs:          inputs,
		spin:            sp,
	}
}

func (m profileModel) Init() tea.Cmd {
	return nil
}

// Capturing reports whether the tab is consuming raw keystrokes.
func (m profileModel) Capturing() bool {
	return m.editing
}

func (m profileModel) ShortHelp() []key.Binding {
	if m.editing {
		return []key.Binding{m.keys.NextField, m.keys.Done}
	}
	return []key.Binding{m.keys.Edit, m.keys.Avatar, m.keys.SignIn}
}

func (m profileModel) FullHelp() [][]key.Binding {
	if m.editing {
		return [][]key.Binding{{m.keys.NextField}, {m.keys.Done, m.keys.Cancel}}
	}
	return [][]key.Binding{{m.keys.Edit, m.keys.Avatar}, {m.keys.SignIn}}
}

// signInResultMsg carries the outcome of one sign-in round trip.
type signInResultMsg struct {
	user *authapi.User
	err  error
}

func signInCmd(client *authapi.Client, tokens authapi.TokenSource, log *zap.Logger) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		token, err := tokens.IdentityToken(ctx)
		if err != nil {
			log.Warn("identity token unavailable", zap.Error(err))
			return signInResultMsg{err: err}
		}
		user, err := client.SignInWithGoogle(ctx, token)
		if err != nil {
			log.Warn("google sign-in failed", zap.Error(err))
			return signInResultMsg{err: err}
		}
		log.Info("google sign-in succeeded", zap.String("email", user.Email))
		return signInResultMsg{user: user}
	}
}

func (m profileModel) Update(msg tea.Msg) (profileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Edit):
			return m.enterEdit()
		case key.Matches(msg, m.keys.Avatar):
			m.requestAvatarUpdate()
			return m, nil
		case key.Matches(msg, m.keys.SignIn):
			return m.startSignIn()
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease {
			return m, nil
		}
		switch {
		case m.zone.Get(zoneProfileEdit).InBounds(msg):
			if m.editing {
				m.exitEdit()
				return m, nil
			}
			return m.enterEdit()
		case m.zone.Get(zoneProfileAvatar).InBounds(msg):
			m.requestAvatarUpdate()
			return m, nil
		case m.zone.Get(zoneProfileSignIn).InBounds(msg):
			return m.startSignIn()
		}

	case signInResultMsg:
		// The loading flag drops on every exit path.
		m.signingIn = false
		if msg.err != nil {
			m.formError = authapi.Message(msg.err)
			return m, nil
		}
		m.formError = ""
		m.snap.Name = msg.user.FullName
		m.snap.Email = msg.user.Email
		m.syncInputs()
		return m, nil

	case spinner.TickMsg:
		if !m.signingIn {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m profileModel) updateEditing(msg tea.KeyMsg) (profileModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Done), key.Matches(msg, m.keys.Cancel):
		m.exitEdit()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		return m.focusField((m.focus + 1) % len(m.inputs))
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.applyEdits()
	return m, cmd
}

func (m *profileModel) enterEdit() (profileModel, tea.Cmd) {
	m.editing = true
	m.syncInputs()
	return m.focusField(fieldName)
}

func (m *profileModel) exitEdit() {
	m.editing = false
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m *profileModel) focusField(index int) (profileModel, tea.Cmd) {
	m.focus = index
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == index {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return *m, cmd
}

func (m *profileModel) syncInputs() {
	m.inputs[fieldName].SetValue(m.snap.Name)
	m.inputs[fieldEmail].SetValue(m.snap.Email)
	m.inputs[fieldPhone].SetValue(m.snap.Phone)
}

// applyEdits folds the current input values into the snapshot. A changed
// field overwrites only itself; every other field keeps its prior value,
// and the sink sees the full record on every keystroke.
func (m *profileModel) applyEdits() {
	next := m.snap
	next.Name = m.inputs[fieldName].Value()
	next.Email = m.inputs[fieldEmail].Value()
	next.Phone = m.inputs[fieldPhone].Value()
	if next == m.snap {
		return
	}
	m.snap = next
	m.notify()
}

func (m profileModel) notify() {
	if m.onUpdateProfile != nil {
		m.onUpdateProfile(m.snap)
	}
}

func (m profileModel) requestAvatarUpdate() {
	if m.onUpdateAvatar != nil {
		m.onUpdateAvatar()
	}
}

func (m *profileModel) startSignIn() (profileModel, tea.Cmd) {
	// The flag is the guard, not the disabled button: overlapping triggers
	// are dropped here regardless of what the view shows. A model without
	// an auth client or token source cannot sign in at all.
	if m.signingIn || m.auth == nil || m.tokens == nil {
		return *m, nil
	}
	m.signingIn = true
	m.formError = ""
	return *m, tea.Batch(m.spin.Tick, signInCmd(m.auth, m.tokens, m.log))
}

func (m *profileModel) renderProfileTab(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	gap := 2
	leftWidth := int(float64(width) * 0.42)
	if leftWidth < 24 {
		leftWidth = 24
	}
	if leftWidth > width-gap-16 {
		leftWidth = width - gap - 16
	}
	if leftWidth < 0 {
		leftWidth = 0
	}
	rightWidth := width - leftWidth - gap
	if rightWidth < 0 {
		rightWidth = 0
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderCard(leftWidth),
		"",
		m.renderContact(leftWidth),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderFeed(rightWidth),
		"",
		m.renderTip(rightWidth),
	)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Width(leftWidth).Height(height).Render(left),
		strings.Repeat(" ", gap),
		lipgloss.NewStyle().Width(rightWidth).Height(height).Render(right),
	)
}

func (m *profileModel) renderCard(width int) string {
	avatar := m.styles.Avatar.Render(m.snap.Initials())
	if m.snap.Avatar != "" {
		avatar = m.styles.Avatar.Render("◉") + " " + m.styles.Subtle.Render(m.loc.Text(textProfilePhotoSet))
	}
	avatar = m.zone.Mark(zoneProfileAvatar, avatar)

	name := m.styles.Name.Render(m.snap.Name)
	if m.editing {
		name = m.inputs[fieldName].View()
	}

	editLabel := m.loc.Text(textProfileEdit)
	if m.editing {
		editLabel = m.loc.Text(textProfileDoneEditing)
	}
	edit := m.zone.Mark(zoneProfileEdit, m.styles.Button.Render(editLabel))

	lines := []string{
		avatar,
		"",
		name,
		m.styles.Subtle.Render(m.loc.Text(textProfileMemberSince) + " " + m.snap.JoinDate),
		"",
		m.styles.Label.Render(m.loc.Text(textProfileExperience)) + " " + m.styles.LevelBadge.Render(m.snap.ExperienceLevel),
		m.styles.Label.Render(m.loc.Text(textProfileFavoriteMethod)) + " " + m.styles.Value.Render(m.snap.FavoriteMethod),
		"",
		edit,
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func (m *profileModel) renderContact(width int) string {
	email := m.styles.Value.Render(m.snap.Email)
	phone := m.styles.Value.Render(m.snap.Phone)
	if m.editing {
		email = m.inputs[fieldEmail].View()
		phone = m.inputs[fieldPhone].View()
	}

	lines := []string{
		m.styles.SectionTitle.Render(m.loc.Text(textProfileContact)),
		m.styles.Label.Render(m.loc.Text(textProfileEmail)) + " " + email,
		m.styles.Label.Render(m.loc.Text(textProfilePhone)) + " " + phone,
		"",
	}

	if m.signingIn {
		lines = append(lines, m.spin.View()+m.styles.Subtle.Render(m.loc.Text(textProfileSigningIn)))
	} else {
		lines = append(lines, m.zone.Mark(zoneProfileSignIn, m.styles.Button.Render(m.loc.Text(textProfileSignIn))))
	}
	if m.formError != "" {
		lines = append(lines, m.styles.Error.Render(m.formError))
	}

	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func (m *profileModel) renderFeed(width int) string {
	lines := []string{m.styles.SectionTitle.Render(m.loc.Text(textProfileRecentActivity))}
	if len(m.feed) == 0 {
		lines = append(lines, m.styles.Subtle.Render(m.loc.Text(textProfileNoActivity)))
	}
	for _, item := range m.feed {
		lines = append(lines, renderActivityItem(item, width))
	}
	return strings.Join(lines, "\n")
}

func (m *profileModel) renderTip(width int) string {
	inner := width - 4
	if inner < 1 {
		inner = 1
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.SectionTitle.Render(m.loc.Text(textProfileTipTitle)),
		lipgloss.NewStyle().Width(inner).Foreground(theme.TextMuted).Render(m.tip),
	)
	return m.styles.TipPanel.Width(width - 2).Render(body)
}

func (m *model) renderProfileTab(width, height int) string {
	return m.profile.renderProfileTab(width, height)
}
