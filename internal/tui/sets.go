// Copyright (c) 2026 winnieeechen
// Word Flashcards - vocabulary flashcard trainer
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for Word Flashcards.
// This file contains the set-selection screen: the list of word sets on
// the left, a small library dashboard on the right, and the delete
// confirmation dialog.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/winnieeechen/word-flashcards/internal/deck"
	"github.com/winnieeechen/word-flashcards/internal/i18n"
	"github.com/winnieeechen/word-flashcards/internal/model"
)

// setsModel is the model for the set-selection screen.
type setsModel struct {
	lib    model.Library
	names  []string // display order, sorted case-insensitively
	cursor int
	status string

	// Delete confirmation dialog state.
	isConfirmingDelete bool
	setToDelete        string
	confirmCursor      int // 0 for Cancel, 1 for Delete

	// Set by the 'L' key; the router opens the language screen.
	wantLanguage bool

	width, height int
}

// newSetsModel builds the screen from the current library. If selectName
// names an existing set, the cursor starts on it.
func newSetsModel(lib model.Library, selectName string) setsModel {
	m := setsModel{lib: lib, names: lib.Names()}
	for i, name := range m.names {
		if name == selectName {
			m.cursor = i
			break
		}
	}
	return m
}

// selected returns the name under the cursor, or "" for an empty library.
func (m setsModel) selected() string {
	if len(m.names) == 0 || m.cursor >= len(m.names) {
		return ""
	}
	return m.names[m.cursor]
}

func (m setsModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses on the set list and the delete dialog.
func (m setsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sizeMsg.Width
		m.height = sizeMsg.Height
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.isConfirmingDelete {
		return m.updateDeleteDialog(keyMsg)
	}

	switch keyMsg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "enter":
		if name := m.selected(); name != "" {
			return m, func() tea.Msg { return openReviewMsg{name: name} }
		}
	case "n":
		return m, func() tea.Msg { return openCreateMsg{} }
	case "e":
		if name := m.selected(); name != "" {
			return m, func() tea.Msg { return openEditMsg{name: name} }
		}
	case "d":
		if name := m.selected(); name != "" {
			m.isConfirmingDelete = true
			m.setToDelete = name
			m.confirmCursor = 0
			m.status = ""
		}
	case "L":
		m.wantLanguage = true
	}
	return m, nil
}

// updateDeleteDialog handles keys while the confirmation dialog is open.
func (m setsModel) updateDeleteDialog(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "q", "n":
		m.isConfirmingDelete = false
	case "left", "right", "tab", "h", "l":
		m.confirmCursor = 1 - m.confirmCursor
	case "y":
		return m.deleteConfirmed()
	case "enter":
		if m.confirmCursor == 1 {
			return m.deleteConfirmed()
		}
		m.isConfirmingDelete = false
	}
	return m, nil
}

// deleteConfirmed removes the set and asks the router to persist.
func (m setsModel) deleteConfirmed() (tea.Model, tea.Cmd) {
	name := m.setToDelete
	m.isConfirmingDelete = false
	if err := deck.Delete(m.lib, name); err != nil {
		m.status = errorStyle.Render(errorMessage(err))
		return m, nil
	}
	status := statusMessageStyle.Render(i18n.T("sets.deleted", name))
	return m, func() tea.Msg {
		return libraryChangedMsg{status: status}
	}
}

// View renders the set list, dashboard pane and any open dialog.
func (m setsModel) View() string {
	title := mainTitleStyle.Render(i18n.T("app.title"))
	subTitle := helpStyle.Render(i18n.T("app.subtitle"))
	header := lipgloss.JoinVertical(lipgloss.Left, title, subTitle)

	paneTitleStyle := lipgloss.NewStyle().Bold(true)

	// Set list (left pane)
	var listItems []string
	listItems = append(listItems, paneTitleStyle.Render(i18n.T("sets.title")), "")
	if len(m.names) == 0 {
		listItems = append(listItems, helpStyle.Render(i18n.T("sets.empty")))
	}
	for i, name := range m.names {
		line := fmt.Sprintf("%s  %s", name, helpStyle.Render(i18n.T("sets.words", len(m.lib[name]))))
		if m.cursor == i {
			listItems = append(listItems, selectedItemStyle.Render("▸ "+line))
		} else {
			listItems = append(listItems, itemStyle.Render("  "+line))
		}
	}
	listPane := paneStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, listItems...))

	// Dashboard (right pane)
	largest := m.lib.Largest()
	if largest == "" {
		largest = i18n.T("dashboard.none")
	}
	dashboardItems := []string{
		paneTitleStyle.Render(i18n.T("dashboard.title")),
		"",
		formatLabelPadding(i18n.T("dashboard.sets"), fmt.Sprintf("%d", len(m.lib)), 14),
		formatLabelPadding(i18n.T("dashboard.words"), fmt.Sprintf("%d", m.lib.WordCount()), 14),
		formatLabelPadding(i18n.T("dashboard.largest"), largest, 14),
	}
	dashboardPane := paneStyle.Width(34).Render(lipgloss.JoinVertical(lipgloss.Left, dashboardItems...))

	body := lipgloss.JoinHorizontal(lipgloss.Top, listPane, " ", dashboardPane)
	help := helpStyle.Render(i18n.T("sets.help"))

	sections := []string{header, "", body, "", help}
	if m.status != "" {
		sections = append(sections, "", m.status)
	}
	screen := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.isConfirmingDelete {
		dialog := m.deleteDialogView()
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
		}
		return dialog
	}
	return screen
}

// deleteDialogView renders the delete confirmation dialog.
func (m setsModel) deleteDialogView() string {
	question := specialStyle.Render(i18n.T("confirm.delete_title", m.setToDelete))
	body := helpStyle.Render(i18n.T("confirm.delete_body"))

	cancel := buttonStyle.Render(i18n.T("confirm.no"))
	confirm := buttonStyle.Render(i18n.T("confirm.yes"))
	if m.confirmCursor == 0 {
		cancel = activeButtonStyle.Render(i18n.T("confirm.no"))
	} else {
		confirm = activeButtonStyle.Render(i18n.T("confirm.yes"))
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, cancel, "  ", confirm)

	return dialogBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center, question, body, buttons))
}

// formatLabelPadding aligns a label/value pair into two columns. Width is
// measured in display cells so translated labels with multibyte runes line
// up with ASCII ones.
func formatLabelPadding(label, value string, labelWidth int) string {
	w := lipgloss.Width(label)
	if w >= labelWidth {
		return label + " " + value
	}
	return label + strings.Repeat(" ", labelWidth-w) + " " + value
}
