// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package tabs

import (
	"testing"
	"time"

	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel() Model {
	return New([]Tab{
		{ID: "grows", Title: "Grows"},
		{ID: "profile", Title: "Profile"},
		{ID: "about", Title: "About"},
	}, zone.New(), "test-tab-")
}

func TestNew(t *testing.T) {
	m := newTestModel()

	assert.Equal(t, 0, m.Active)
	assert.Equal(t, -1, m.Hovered)
	assert.Equal(t, "grows", m.ActiveTab().ID)
	assert.Greater(t, m.TotalWidth(), 0)
}

func TestSetActive(t *testing.T) {
	m := newTestModel()

	cmd := m.SetActive(1)
	require.NotNil(t, cmd)
	assert.Equal(t, "profile", m.ActiveTab().ID)

	// Same index and out-of-range indexes are no-ops.
	assert.Nil(t, m.SetActive(1))
	assert.Nil(t, m.SetActive(-1))
	assert.Nil(t, m.SetActive(99))
	assert.Equal(t, 1, m.Active)
}

func TestSlideSettles(t *testing.T) {
	m := newTestModel()
	m.Duration = time.Nanosecond

	require.NotNil(t, m.SetActive(2))
	time.Sleep(time.Millisecond)

	m, cmd := m.Update(TickMsg(time.Now()))
	assert.Nil(t, cmd)

	left, right := m.currentEdges()
	wantLeft, wantRight := m.edges(2)
	assert.InDelta(t, wantLeft, left, 0.01)
	assert.InDelta(t, wantRight, right, 0.01)
}

func TestView(t *testing.T) {
	m := newTestModel()
	out := m.View()

	assert.Contains(t, out, "Grows")
	assert.Contains(t, out, "Profile")
	assert.Contains(t, out, HeavyHorizontal)

	empty := New(nil, zone.New(), "x-")
	assert.Empty(t, empty.View())
}

func TestActiveTab_Empty(t *testing.T) {
	empty := New(nil, zone.New(), "x-")
	assert.Equal(t, Tab{}, empty.ActiveTab())
}
