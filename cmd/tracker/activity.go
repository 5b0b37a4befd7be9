// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/sporetrack/sporetrack/cmd/tracker/theme"
	"github.com/sporetrack/sporetrack/internal/activity"
)

// glyphFor maps each activity type to its icon. Feed items are validated
// on load, so every reachable value has a case.
func glyphFor(t activity.Type) string {
	switch t {
	case activity.TypeScan:
		return "◎"
	case activity.TypeAchievement:
		return "★"
	case activity.TypeAlert:
		return "▲"
	}
	return "?"
}

// paletteFor maps each status color to its rendering palette.
func paletteFor(c activity.StatusColor) theme.Status {
	switch c {
	case activity.StatusGreen:
		return theme.StatusGreen
	case activity.StatusYellow:
		return theme.StatusYellow
	case activity.StatusRed:
		return theme.StatusRed
	case activity.StatusBlue:
		return theme.StatusBlue
	}
	return theme.Status{}
}

var (
	activityTitle = lipgloss.NewStyle().Foreground(theme.TextMuted).Bold(true)
	activityTime  = lipgloss.NewStyle().Foreground(theme.TextSubtle)
)

// renderActivityItem lays out one feed entry as two lines: an icon cell,
// the title with the status badge right-aligned, and the relative time
// indented underneath.
func renderActivityItem(item activity.Item, width int) string {
	pal := paletteFor(item.StatusColor)
	icon := pal.Icon.Render(glyphFor(item.Type))
	badge := pal.Badge.Render(item.Status)

	titleMax := width - lipgloss.Width(icon) - lipgloss.Width(badge) - 2
	if titleMax < 1 {
		titleMax = 1
	}
	title := activityTitle.Render(ansi.Truncate(item.Title, titleMax, "…"))

	pad := width - lipgloss.Width(icon) - 1 - lipgloss.Width(title) - lipgloss.Width(badge)
	if pad < 1 {
		pad = 1
	}

	first := icon + " " + title + lipgloss.NewStyle().Width(pad).Render("") + badge
	second := lipgloss.NewStyle().MarginLeft(lipgloss.Width(icon)+1).Render(activityTime.Render(item.Time))
	return first + "\n" + second
}
