// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGrows() growsModel {
	return newGrowsModel(zone.New(), newLocalizer(), nil)
}

func TestGrowsFilter_Applies(t *testing.T) {
	m := newTestGrows()
	require.Len(t, m.filtered, 3)

	m, _ = m.Update(keyRunes("/"))
	require.True(t, m.Capturing())

	m, _ = m.Update(keyRunes("oyster"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.Capturing())
	require.Len(t, m.filtered, 1)
	assert.Equal(t, "Batch 1 — Kitchen Shelf", m.items[m.filtered[0]].Name)
}

func TestGrowsFilter_BackspaceTrimsRune(t *testing.T) {
	m := newTestGrows()

	m, _ = m.Update(keyRunes("/"))
	m, _ = m.Update(keyRunes("añ"))
	require.Equal(t, "añ", m.filterDraft)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "a", m.filterDraft)
	assert.True(t, utf8.ValidString(m.filterDraft))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Empty(t, m.filterDraft)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Empty(t, m.filterDraft)
}
