// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

type textKey string

const (
	textHeaderTitle    textKey = "header.title"
	textTabGrows       textKey = "tab.grows"
	textTabProfile     textKey = "tab.profile"
	textTabAbout       textKey = "tab.about"
	textWindowTooSmall textKey = "window.tooSmall"
	textUnknownTab     textKey = "tab.unknown"
	textAboutBody      textKey = "about.body"

	textHelpQuit    textKey = "help.quit"
	textHelpNextTab textKey = "help.nextTab"
	textHelpPrevTab textKey = "help.prevTab"

	textProfileMemberSince    textKey = "profile.memberSince"
	textProfileExperience     textKey = "profile.experience"
	textProfileFavoriteMethod textKey = "profile.favoriteMethod"
	textProfileContact        textKey = "profile.contact"
	textProfileEmail          textKey = "profile.email"
	textProfilePhone          textKey = "profile.phone"
	textProfileEdit           textKey = "profile.edit"
	textProfileDoneEditing    textKey = "profile.doneEditing"
	textProfilePhotoSet       textKey = "profile.photoSet"
	textProfileSignIn         textKey = "profile.signIn"
	textProfileSigningIn      textKey = "profile.signingIn"
	textProfileRecentActivity textKey = "profile.recentActivity"
	textProfileNoActivity     textKey = "profile.noActivity"
	textProfileTipTitle       textKey = "profile.tipTitle"

	textHelpEdit      textKey = "help.edit"
	textHelpAvatar    textKey = "help.avatar"
	textHelpSignIn    textKey = "help.signIn"
	textHelpNextField textKey = "help.nextField"
	textHelpDone      textKey = "help.done"
	textHelpCancel    textKey = "help.cancel"

	textGrowsListTitle textKey = "grows.listTitle"
	textGrowsNoMatch   textKey = "grows.noMatch"
	textGrowsSpecies   textKey = "grows.species"
	textGrowsMethod    textKey = "grows.method"
	textGrowsStage     textKey = "grows.stage"
	textGrowsNotes     textKey = "grows.notes"

	textHelpUp          textKey = "help.up"
	textHelpDown        textKey = "help.down"
	textHelpFilter      textKey = "help.filter"
	textHelpClearFilter textKey = "help.clearFilter"
)

var supportedLanguages = []language.Tag{
	language.English,
	language.Filipino,
}

type localizer struct {
	matcher language.Matcher
	tag     language.Tag
}

func newLocalizer() localizer {
	return localizer{
		matcher: language.NewMatcher(supportedLanguages),
		tag:     language.English,
	}
}

// detectLocalizer picks the UI language from the locale environment.
func detectLocalizer() localizer {
	l := newLocalizer()
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		raw := os.Getenv(name)
		if raw == "" {
			continue
		}
		raw, _, _ = strings.Cut(raw, ".")
		tag, err := language.Parse(raw)
		if err != nil {
			continue
		}
		l.SetPreferred([]language.Tag{tag})
		break
	}
	return l
}

func (l *localizer) SetPreferred(preferred []language.Tag) bool {
	next := language.English
	if len(preferred) > 0 {
		next, _, _ = l.matcher.Match(preferred...)
	}
	if next == l.tag {
		return false
	}
	l.tag = next
	return true
}

func (l localizer) Text(key textKey) string {
	if l.tag == language.Filipino {
		if s := filipinoText(key); s != "" {
			return s
		}
	}
	return englishText(key)
}

func englishText(key textKey) string {
	switch key {
	case textHeaderTitle:
		return "SporeTrack"
	case textTabGrows:
		return "Grows"
	case textTabProfile:
		return "Profile"
	case textTabAbout:
		return "About"
	case textWindowTooSmall:
		return "Window must be larger"
	case textUnknownTab:
		return "Unknown tab"
	case textAboutBody:
		return "SporeTrack keeps your mushroom cultivation on track: log grow batches, scan for contamination, and watch your harvests stack up."
	case textHelpQuit:
		return "quit"
	case textHelpNextTab:
		return "next tab"
	case textHelpPrevTab:
		return "prev tab"
	case textProfileMemberSince:
		return "Member since"
	case textProfileExperience:
		return "Experience:"
	case textProfileFavoriteMethod:
		return "Favorite method:"
	case textProfileContact:
		return "Contact"
	case textProfileEmail:
		return "Email:"
	case textProfilePhone:
		return "Phone:"
	case textProfileEdit:
		return "Edit profile"
	case textProfileDoneEditing:
		return "Done editing"
	case textProfilePhotoSet:
		return "photo set"
	case textProfileSignIn:
		return "Sign in with Google"
	case textProfileSigningIn:
		return "Signing in…"
	case textProfileRecentActivity:
		return "Recent Activity"
	case textProfileNoActivity:
		return "Nothing logged yet."
	case textProfileTipTitle:
		return "Tip for you"
	case textHelpEdit:
		return "edit profile"
	case textHelpAvatar:
		return "change photo"
	case textHelpSignIn:
		return "google sign-in"
	case textHelpNextField:
		return "next field"
	case textHelpDone:
		return "done"
	case textHelpCancel:
		return "cancel"
	case textGrowsListTitle:
		return "Grow Batches"
	case textGrowsNoMatch:
		return "No batches match the current filter."
	case textGrowsSpecies:
		return "Species:"
	case textGrowsMethod:
		return "Method:"
	case textGrowsStage:
		return "Stage:"
	case textGrowsNotes:
		return "Notes"
	case textHelpUp:
		return "up"
	case textHelpDown:
		return "down"
	case textHelpFilter:
		return "filter"
	case textHelpClearFilter:
		return "clear filter"
	}
	return string(key)
}

func filipinoText(key textKey) string {
	switch key {
	case textTabGrows:
		return "Mga Batch"
	case textTabProfile:
		return "Profil"
	case textTabAbout:
		return "Tungkol"
	case textWindowTooSmall:
		return "Palakihin ang window"
	case textUnknownTab:
		return "Di-kilalang tab"
	case textAboutBody:
		return "Sinusubaybayan ng SporeTrack ang iyong pagtatanim ng kabute: itala ang mga batch, i-scan para sa kontaminasyon, at bantayan ang iyong ani."
	case textHelpQuit:
		return "lumabas"
	case textHelpNextTab:
		return "susunod na tab"
	case textHelpPrevTab:
		return "nakaraang tab"
	case textProfileMemberSince:
		return "Miyembro mula"
	case textProfileExperience:
		return "Karanasan:"
	case textProfileFavoriteMethod:
		return "Paboritong paraan:"
	case textProfileContact:
		return "Kontak"
	case textProfilePhone:
		return "Telepono:"
	case textProfileEdit:
		return "I-edit ang profile"
	case textProfileDoneEditing:
		return "Tapos na"
	case textProfilePhotoSet:
		return "may litrato"
	case textProfileSignIn:
		return "Mag-sign in gamit ang Google"
	case textProfileSigningIn:
		return "Nagsa-sign in…"
	case textProfileRecentActivity:
		return "Mga Huling Aktibidad"
	case textProfileNoActivity:
		return "Wala pang naitala."
	case textProfileTipTitle:
		return "Tip para sa iyo"
	case textHelpEdit:
		return "i-edit ang profile"
	case textHelpAvatar:
		return "palitan ang litrato"
	case textHelpSignIn:
		return "google sign-in"
	case textHelpNextField:
		return "susunod na field"
	case textHelpDone:
		return "tapos"
	case textHelpCancel:
		return "kanselahin"
	case textGrowsListTitle:
		return "Mga Grow Batch"
	case textGrowsNoMatch:
		return "Walang batch na tumutugma sa filter."
	case textGrowsSpecies:
		return "Uri:"
	case textGrowsMethod:
		return "Paraan:"
	case textGrowsStage:
		return "Yugto:"
	case textGrowsNotes:
		return "Mga Tala"
	case textHelpUp:
		return "taas"
	case textHelpDown:
		return "baba"
	case textHelpFilter:
		return "i-filter"
	case textHelpClearFilter:
		return "alisin ang filter"
	}
	return ""
}
