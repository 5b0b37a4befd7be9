// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package profile

import (
	"strings"
	"unicode/utf8"
)

// Snapshot is the set of user-identifying fields shown and edited in the
// profile tab. It is a value type: copying it and overwriting one field is
// the field-level update, every other field keeps its prior value.
type Snapshot struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	JoinDate        string `json:"join_date"`
	ExperienceLevel string `json:"experience_level"`
	FavoriteMethod  string `json:"favorite_method"`
	Avatar          string `json:"avatar,omitempty"`
}

// Default is the demo profile shown when no stored profile exists.
func Default() Snapshot {
	return Snapshot{
		Name:            "Juan Dela Cruz",
		Email:           "juan.delacruz@example.com",
		Phone:           "+63 912 345 6789",
		JoinDate:        "March 2024",
		ExperienceLevel: "Beginner",
		FavoriteMethod:  "Rice Washing",
	}
}

// Initials returns the upper-cased first rune of each whitespace-separated
// name token, concatenated in order and capped at two characters, so "Juan
// Dela Cruz" yields "JD". An empty name yields an empty string.
func (s Snapshot) Initials() string {
	var b strings.Builder
	for i, token := range strings.Fields(s.Name) {
		if i == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(token)
		b.WriteString(strings.ToUpper(string(r)))
	}
	return b.String()
}
