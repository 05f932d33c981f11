// Copyright (c) 2026 winnieeechen
// Word Flashcards - vocabulary flashcard trainer
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for Word Flashcards.
// This file contains the set form used by both the create and edit
// screens: a name input, a words textarea and a submit button. In edit
// mode the name field stays editable and submits through a rename.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/winnieeechen/word-flashcards/internal/deck"
	"github.com/winnieeechen/word-flashcards/internal/i18n"
	"github.com/winnieeechen/word-flashcards/internal/model"
)

// Focus order within the form.
const (
	focusName = iota
	focusWords
	focusSubmit
)

// setFormModel holds the state for the create/edit form.
type setFormModel struct {
	lib        model.Library
	editing    string // original set name in edit mode, "" when creating
	focusIndex int
	name       textinput.Model
	words      textarea.Model
	err        string
}

// newSetFormModel creates the form. editing == "" means create mode;
// otherwise the fields are prefilled from the named set.
func newSetFormModel(lib model.Library, editing string) setFormModel {
	name := textinput.New()
	name.Placeholder = i18n.T("form.name_placeholder")
	name.CharLimit = 128
	name.Width = 40
	name.Focus()

	words := textarea.New()
	words.Placeholder = i18n.T("form.words_placeholder")
	words.CharLimit = 0
	words.SetWidth(48)
	words.SetHeight(10)
	words.ShowLineNumbers = false

	if editing != "" {
		name.SetValue(editing)
		words.SetValue(strings.Join(lib[editing], "\n"))
	}

	return setFormModel{
		lib:        lib,
		editing:    editing,
		focusIndex: focusName,
		name:       name,
		words:      words,
	}
}

// Init starts the cursor blinking.
func (m setFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles focus movement, submission and text entry.
func (m setFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return backToSetsMsg{} }

		case "tab", "shift+tab":
			if keyMsg.String() == "tab" {
				m.focusIndex = (m.focusIndex + 1) % 3
			} else {
				m.focusIndex = (m.focusIndex + 2) % 3
			}
			m.name.Blur()
			m.words.Blur()
			switch m.focusIndex {
			case focusName:
				cmd = m.name.Focus()
			case focusWords:
				cmd = m.words.Focus()
			}
			return m, cmd

		case "enter":
			// Enter inside the textarea inserts a newline; on the name
			// field it moves focus on; on the button it submits.
			switch m.focusIndex {
			case focusName:
				m.focusIndex = focusWords
				m.name.Blur()
				return m, m.words.Focus()
			case focusSubmit:
				return m.submit()
			}
		}
	}

	switch m.focusIndex {
	case focusName:
		m.name, cmd = m.name.Update(msg)
	case focusWords:
		m.words, cmd = m.words.Update(msg)
	}
	return m, cmd
}

// submit validates through the deck package and reports the change to the
// router. Domain errors render inline and keep the form open.
func (m setFormModel) submit() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.name.Value())
	raw := m.words.Value()

	if m.editing == "" {
		words, err := deck.Create(m.lib, name, raw)
		if err != nil {
			m.err = errorMessage(err)
			return m, nil
		}
		status := statusMessageStyle.Render(i18n.T("sets.saved", name, len(words)))
		return m, func() tea.Msg {
			return libraryChangedMsg{status: status, selectName: name}
		}
	}

	// Edit mode: rename first so the words land under the final name.
	// Renaming onto a different existing set is rejected before any change.
	if err := deck.Rename(m.lib, m.editing, name); err != nil {
		m.err = errorMessage(err)
		return m, nil
	}
	words, err := deck.Edit(m.lib, name, raw)
	if err != nil {
		// The rename already happened; put the name back so a failed edit
		// leaves the library exactly as it was.
		_ = deck.Rename(m.lib, name, m.editing)
		m.err = errorMessage(err)
		return m, nil
	}
	status := statusMessageStyle.Render(i18n.T("sets.updated", name, len(words)))
	return m, func() tea.Msg {
		return libraryChangedMsg{status: status, selectName: name}
	}
}

// View renders the form.
func (m setFormModel) View() string {
	title := i18n.T("form.create_title")
	submitLabel := i18n.T("form.submit_create")
	if m.editing != "" {
		title = i18n.T("form.edit_title", m.editing)
		submitLabel = i18n.T("form.submit_update")
	}
	header := mainTitleStyle.Render(title)

	nameLabel := formItemStyle
	wordsLabel := formItemStyle
	switch m.focusIndex {
	case focusName:
		nameLabel = formSelectedItemStyle
	case focusWords:
		wordsLabel = formSelectedItemStyle
	}

	var items []string
	items = append(items, nameLabel.Render(i18n.T("form.name_label")), m.name.View(), "")
	items = append(items, wordsLabel.Render(i18n.T("form.words_label")), m.words.View(), "")

	if m.focusIndex == focusSubmit {
		items = append(items, activeButtonStyle.Render(submitLabel))
	} else {
		items = append(items, buttonStyle.Render(submitLabel))
	}

	formPane := paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left, items...))

	var footer []string
	if m.err != "" {
		footer = append(footer, errorStyle.Render(m.err))
	}
	footer = append(footer, helpStyle.Render(i18n.T("form.hint")))
	footer = append(footer, helpStyle.Render(i18n.T("form.help")))

	sections := append([]string{header, formPane}, footer...)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
