// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	Primary = lipgloss.AdaptiveColor{Light: "#7a5c2e", Dark: "#d19a66"}
	Accent  = lipgloss.AdaptiveColor{Light: "#50a14f", Dark: "#98c379"}

	OnPrimary = lipgloss.AdaptiveColor{Light: "231", Dark: "235"}

	TextMuted  = lipgloss.AdaptiveColor{Light: "238", Dark: "252"}
	TextSubtle = lipgloss.AdaptiveColor{Light: "240", Dark: "249"}
	Line       = lipgloss.AdaptiveColor{Light: "245", Dark: "248"}
	Surface    = lipgloss.AdaptiveColor{Light: "252", Dark: "240"}
	Danger     = lipgloss.AdaptiveColor{Light: "160", Dark: "203"}
)

// Status is the rendering palette for one status color: a filled badge, a
// plain text variant, and an icon cell.
type Status struct {
	Badge lipgloss.Style
	Text  lipgloss.Style
	Icon  lipgloss.Style
}

var (
	StatusGreen  = newStatus("#2bb673")
	StatusYellow = newStatus("#d7a14b")
	StatusRed    = newStatus("#e05c5c")
	StatusBlue   = newStatus("#4f9cf0")
)

func newStatus(hex string) Status {
	fg := lipgloss.AdaptiveColor{
		Light: shade(hex, "#000000", 0.35),
		Dark:  shade(hex, "#ffffff", 0.25),
	}
	bg := lipgloss.AdaptiveColor{
		Light: shade(hex, "#ffffff", 0.85),
		Dark:  shade(hex, "#16181d", 0.75),
	}
	return Status{
		Badge: lipgloss.NewStyle().Foreground(fg).Background(bg).Padding(0, 1),
		Text:  lipgloss.NewStyle().Foreground(fg),
		Icon:  lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Background(bg).Padding(0, 1),
	}
}

// shade blends a base color toward a target in Lab space, which keeps the
// hue stable across the light and dark variants.
func shade(baseHex, towardHex string, amount float64) string {
	base, err := colorful.Hex(baseHex)
	if err != nil {
		return baseHex
	}
	toward, err := colorful.Hex(towardHex)
	if err != nil {
		return baseHex
	}
	return base.BlendLab(toward, amount).Clamped().Hex()
}
