// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sporetrack/sporetrack/internal/authapi"
	"github.com/sporetrack/sporetrack/internal/profile"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestProfile(opts profileOptions) profileModel {
	return newProfileModel(zone.New(), newLocalizer(), opts)
}

func TestProfileModel_Defaults(t *testing.T) {
	m := newTestProfile(profileOptions{})

	assert.Equal(t, "Juan Dela Cruz", m.snap.Name)
	assert.Equal(t, "JD", m.snap.Initials())
	assert.Len(t, m.feed, 3)
	assert.Equal(t, defaultTip, m.tip)
}

func TestProfileModel_EditUpdatesAndNotifies(t *testing.T) {
	var got []profile.Snapshot
	m := newTestProfile(profileOptions{
		OnUpdateProfile: func(s profile.Snapshot) { got = append(got, s) },
	})
	before := m.snap

	m, _ = m.Update(keyRunes("e"))
	require.True(t, m.Capturing())

	m, _ = m.Update(keyRunes("X"))

	assert.Equal(t, before.Name+"X", m.snap.Name)
	assert.Equal(t, before.Email, m.snap.Email)
	assert.Equal(t, before.Phone, m.snap.Phone)
	assert.Equal(t, before.JoinDate, m.snap.JoinDate)
	assert.Equal(t, before.ExperienceLevel, m.snap.ExperienceLevel)
	assert.Equal(t, before.Avatar, m.snap.Avatar)

	// The sink sees the full record on every keystroke.
	require.Len(t, got, 1)
	assert.Equal(t, m.snap, got[0])

	m, _ = m.Update(keyRunes("Y"))
	require.Len(t, got, 2)
	assert.Equal(t, before.Name+"XY", got[1].Name)
}

func TestProfileModel_EditOtherFieldPreservesName(t *testing.T) {
	m := newTestProfile(profileOptions{})
	before := m.snap

	m, _ = m.Update(keyRunes("e"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(keyRunes("z"))

	assert.Equal(t, before.Name, m.snap.Name)
	assert.Equal(t, before.Email+"z", m.snap.Email)
	assert.Equal(t, before.Phone, m.snap.Phone)
}

func TestProfileModel_CommitExitsEditMode(t *testing.T) {
	m := newTestProfile(profileOptions{})

	m, _ = m.Update(keyRunes("e"))
	require.True(t, m.Capturing())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Capturing())

	m, _ = m.Update(keyRunes("e"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Capturing())
}

func TestProfileModel_AvatarCallback(t *testing.T) {
	calls := 0
	m := newTestProfile(profileOptions{
		OnUpdateAvatar: func() { calls++ },
	})

	m, _ = m.Update(keyRunes("a"))
	assert.Equal(t, 1, calls)

	// Absent callback must not panic.
	m = newTestProfile(profileOptions{})
	_, _ = m.Update(keyRunes("a"))
}

func TestProfileModel_SignInSetsLoadingAndGuards(t *testing.T) {
	m := newTestProfile(profileOptions{
		Tokens: authapi.StaticTokenSource("tok"),
		Auth:   authapi.NewClient("http://localhost:0", nil),
	})

	m, cmd := m.Update(keyRunes("g"))
	require.True(t, m.signingIn)
	assert.Empty(t, m.formError)
	assert.NotNil(t, cmd)

	// A second trigger while loading is dropped at the logic layer.
	m, cmd = m.Update(keyRunes("g"))
	assert.True(t, m.signingIn)
	assert.Nil(t, cmd)
}

func TestProfileModel_SignInRequiresWiring(t *testing.T) {
	// No auth client or token source: the trigger must be a safe no-op,
	// never a panic inside the command.
	m := newTestProfile(profileOptions{})

	m, cmd := m.Update(keyRunes("g"))
	assert.False(t, m.signingIn)
	assert.Nil(t, cmd)

	m = newTestProfile(profileOptions{Tokens: authapi.StaticTokenSource("tok")})
	m, cmd = m.Update(keyRunes("g"))
	assert.False(t, m.signingIn)
	assert.Nil(t, cmd)
}

func TestProfileModel_SignInSuccess(t *testing.T) {
	m := newTestProfile(profileOptions{})
	before := m.snap
	m.signingIn = true
	m.formError = "stale"

	m, _ = m.Update(signInResultMsg{user: &authapi.User{
		FullName: "Maria Clara",
		Email:    "maria@example.com",
	}})

	assert.False(t, m.signingIn)
	assert.Empty(t, m.formError)
	assert.Equal(t, "Maria Clara", m.snap.Name)
	assert.Equal(t, "maria@example.com", m.snap.Email)
	assert.Equal(t, before.Phone, m.snap.Phone)
	assert.Equal(t, before.JoinDate, m.snap.JoinDate)
	assert.Equal(t, before.ExperienceLevel, m.snap.ExperienceLevel)
	assert.Equal(t, before.Avatar, m.snap.Avatar)
}

func TestProfileModel_SignInFailure(t *testing.T) {
	m := newTestProfile(profileOptions{})
	m.signingIn = true

	m, _ = m.Update(signInResultMsg{err: &authapi.SignInError{Message: "Invalid token"}})
	assert.False(t, m.signingIn)
	assert.Equal(t, "Invalid token", m.formError)

	m.signingIn = true
	m, _ = m.Update(signInResultMsg{err: errors.New("connection reset")})
	assert.False(t, m.signingIn)
	assert.Equal(t, authapi.FallbackMessage, m.formError)
}

func TestProfileModel_Render(t *testing.T) {
	m := newTestProfile(profileOptions{})

	out := m.renderProfileTab(100, 30)
	assert.Contains(t, out, "Juan Dela Cruz")
	assert.Contains(t, out, "JD")
	assert.Contains(t, out, "Recent Activity")
	assert.Contains(t, out, "Sign in with Google")

	m.formError = "Invalid token"
	m.signingIn = true
	out = m.renderProfileTab(100, 30)
	assert.Contains(t, out, "Invalid token")
	assert.Contains(t, out, "Signing in")
	assert.NotContains(t, out, "Sign in with Google")

	assert.Empty(t, m.renderProfileTab(0, 0))
}
