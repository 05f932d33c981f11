// Copyright (c) 2026 winnieeechen
// Word Flashcards - vocabulary flashcard trainer
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for Word Flashcards.
// This file contains the flashcard review screen: one card at a time,
// wraparound navigation, a reveal toggle and reshuffling.
package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/winnieeechen/word-flashcards/internal/i18n"
	"github.com/winnieeechen/word-flashcards/internal/review"
)

// reviewModel is the model for the flashcard review screen. The session is
// transient; leaving the screen discards it.
type reviewModel struct {
	setName  string
	session  *review.Session
	revealed bool // visual only, never persisted
	status   string
}

// newReviewModel starts the screen over an already-created session.
func newReviewModel(setName string, session *review.Session) reviewModel {
	return reviewModel{
		setName:  setName,
		session:  session,
		revealed: true,
	}
}

func (m reviewModel) Init() tea.Cmd {
	return nil
}

// Update handles card navigation. Navigation and shuffling reset the
// reveal state so each card starts face up.
func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		return m, func() tea.Msg { return backToSetsMsg{} }
	case "left", "h":
		m.session.Previous()
		m.revealed = true
		m.status = ""
	case "right", "l":
		m.session.Next()
		m.revealed = true
		m.status = ""
	case " ":
		m.revealed = !m.revealed
	case "s":
		m.session.Shuffle()
		m.revealed = true
		m.status = ""
	case "c":
		word, err := m.session.Current()
		if err != nil {
			m.status = errorStyle.Render(i18n.T("error.generic", err))
			break
		}
		if err := clipboard.WriteAll(word); err != nil {
			m.status = errorStyle.Render(i18n.T("review.copy_failed", err))
		} else {
			m.status = successStyle.Render(i18n.T("review.copied", word))
		}
	case "e":
		name := m.setName
		return m, func() tea.Msg { return openEditMsg{name: name} }
	}
	return m, nil
}

// View renders the current card with progress and help lines.
func (m reviewModel) View() string {
	title := mainTitleStyle.Render(i18n.T("review.title", m.setName))

	word, err := m.session.Current()
	if err != nil {
		// Saved sets are never empty; guard anyway.
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			errorStyle.Render(i18n.T("error.generic", err)),
			helpStyle.Render(i18n.T("review.help")),
		)
	}

	face := cardWordStyle.Render(word)
	if !m.revealed {
		face = helpStyle.Render(i18n.T("review.hidden"))
	}
	card := cardStyle.Render(face)

	progress := helpStyle.Render(i18n.T("review.progress", m.session.Cursor()+1, m.session.Len()))
	help := helpStyle.Render(i18n.T("review.help"))

	sections := []string{title, card, progress, "", help}
	if m.status != "" {
		sections = append(sections, "", m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
