// Copyright (c) 2026 winnieeechen
// Word Flashcards - vocabulary flashcard trainer
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/winnieeechen/word-flashcards/internal/i18n"
)

// languageModel holds the state for the language selection screen. Key
// handling lives in the router since the screen is a plain picker.
type languageModel struct {
	choices     map[string]string // lang code -> display name
	orderedKeys []string          // for stable iteration
	cursor      int
}

func newLanguageModel() languageModel {
	choices := map[string]string{
		"en": "English",
		"de": "Deutsch",
	}
	keys := make([]string, 0, len(choices))
	for k := range choices {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return languageModel{choices: choices, orderedKeys: keys}
}

// View renders the language picker.
func (m languageModel) View() string {
	var listItems []string
	listItems = append(listItems, titleStyle.Render(i18n.T("language.select")), "")

	for i, langCode := range m.orderedKeys {
		displayName := m.choices[langCode]
		if m.cursor == i {
			listItems = append(listItems, selectedItemStyle.Render("▸ "+displayName))
		} else {
			listItems = append(listItems, itemStyle.Render("  "+displayName))
		}
	}

	listPane := paneStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, listItems...))
	help := helpStyle.Render(i18n.T("language.help"))

	return lipgloss.JoinVertical(lipgloss.Left, listPane, "", help)
}
