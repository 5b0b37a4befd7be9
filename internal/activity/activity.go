// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package activity

import "fmt"

// Type categorizes a feed entry. The set is closed: anything outside it is
// rejected when items are decoded or loaded, never rendered as a blank.
type Type string

const (
	TypeScan        Type = "scan"
	TypeAchievement Type = "achievement"
	TypeAlert       Type = "alert"
)

// Types lists every valid Type. Rendering tables are checked against it.
func Types() []Type {
	return []Type{TypeScan, TypeAchievement, TypeAlert}
}

func (t Type) Valid() bool {
	switch t {
	case TypeScan, TypeAchievement, TypeAlert:
		return true
	}
	return false
}

// UnmarshalText rejects unknown types at decode time.
func (t *Type) UnmarshalText(text []byte) error {
	v := Type(text)
	if !v.Valid() {
		return fmt.Errorf("unknown activity type %q", string(text))
	}
	*t = v
	return nil
}

// StatusColor selects the palette a status badge is rendered with.
type StatusColor string

const (
	StatusGreen  StatusColor = "green"
	StatusYellow StatusColor = "yellow"
	StatusRed    StatusColor = "red"
	StatusBlue   StatusColor = "blue"
)

// StatusColors lists every valid StatusColor.
func StatusColors() []StatusColor {
	return []StatusColor{StatusGreen, StatusYellow, StatusRed, StatusBlue}
}

func (c StatusColor) Valid() bool {
	switch c {
	case StatusGreen, StatusYellow, StatusRed, StatusBlue:
		return true
	}
	return false
}

// UnmarshalText rejects unknown status colors at decode time.
func (c *StatusColor) UnmarshalText(text []byte) error {
	v := StatusColor(text)
	if !v.Valid() {
		return fmt.Errorf("unknown status color %q", string(text))
	}
	*c = v
	return nil
}

// Item is one entry in the recent-activity feed. Items are supplied in
// display order and never mutated by the UI.
type Item struct {
	ID          int         `json:"id"`
	Type        Type        `json:"type"`
	Title       string      `json:"title"`
	Time        string      `json:"time"`
	Status      string      `json:"status"`
	StatusColor StatusColor `json:"status_color"`
}

// Validate reports the first invalid enum field, if any.
func (i Item) Validate() error {
	if !i.Type.Valid() {
		return fmt.Errorf("activity %d: unknown type %q", i.ID, i.Type)
	}
	if !i.StatusColor.Valid() {
		return fmt.Errorf("activity %d: unknown status color %q", i.ID, i.StatusColor)
	}
	return nil
}

// ValidateFeed checks every item in a feed.
func ValidateFeed(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// DefaultFeed is the demo feed shown when no stored activity exists.
func DefaultFeed() []Item {
	return []Item{
		{
			ID:          1,
			Type:        TypeScan,
			Title:       "Identified Oyster Mushroom",
			Time:        "2 hours ago",
			Status:      "Healthy",
			StatusColor: StatusGreen,
		},
		{
			ID:          2,
			Type:        TypeAchievement,
			Title:       "Earned Spore Starter badge",
			Time:        "1 day ago",
			Status:      "New",
			StatusColor: StatusYellow,
		},
		{
			ID:          3,
			Type:        TypeAlert,
			Title:       "Contamination risk on Batch 3",
			Time:        "2 days ago",
			Status:      "Check",
			StatusColor: StatusRed,
		},
	}
}
