// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/sporetrack/sporetrack/internal/activity"
)

func TestGlyphFor_CoversAllTypes(t *testing.T) {
	seen := map[string]bool{}
	for _, typ := range activity.Types() {
		glyph := glyphFor(typ)
		assert.NotEqual(t, "?", glyph, "type %q has no glyph", typ)
		assert.False(t, seen[glyph], "glyph %q reused", glyph)
		seen[glyph] = true
	}

	assert.Equal(t, "◎", glyphFor(activity.TypeScan))
	assert.Equal(t, "★", glyphFor(activity.TypeAchievement))
	assert.Equal(t, "▲", glyphFor(activity.TypeAlert))
}

func TestPaletteFor_CoversAllColors(t *testing.T) {
	for _, color := range activity.StatusColors() {
		pal := paletteFor(color)
		// Every palette carries a padded badge cell.
		assert.Equal(t, 3, lipgloss.Width(pal.Badge.Render("x")), "color %q has no palette", color)
	}
}

func TestRenderActivityItem(t *testing.T) {
	scan := activity.Item{
		ID: 1, Type: activity.TypeScan, Title: "Identified Oyster Mushroom",
		Time: "2 hours ago", Status: "Healthy", StatusColor: activity.StatusGreen,
	}
	out := renderActivityItem(scan, 60)
	assert.Contains(t, out, "◎")
	assert.Contains(t, out, "Healthy")
	assert.Contains(t, out, "2 hours ago")
	assert.Equal(t, 2, len(strings.Split(out, "\n")))

	badge := activity.Item{
		ID: 2, Type: activity.TypeAchievement, Title: "Earned Spore Starter badge",
		Time: "1 day ago", Status: "New", StatusColor: activity.StatusYellow,
	}
	out = renderActivityItem(badge, 60)
	assert.Contains(t, out, "★")
	assert.Contains(t, out, "New")
}

func TestRenderActivityItem_TruncatesLongTitles(t *testing.T) {
	item := activity.Item{
		ID: 3, Type: activity.TypeAlert, Title: strings.Repeat("contamination ", 10),
		Time: "now", Status: "Check", StatusColor: activity.StatusRed,
	}
	out := renderActivityItem(item, 30)
	first := strings.Split(out, "\n")[0]
	assert.Contains(t, first, "…")
}
