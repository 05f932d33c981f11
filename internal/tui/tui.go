// Copyright (c) 2026 winnieeechen
// Word Flashcards - vocabulary flashcard trainer
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for Word Flashcards.
// This file, tui.go, is the main entry point for the TUI, containing the
// top-level model that acts as a router to all other screens.
package tui // import "github.com/winnieeechen/word-flashcards/internal/tui"

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/winnieeechen/word-flashcards/internal/config"
	"github.com/winnieeechen/word-flashcards/internal/deck"
	"github.com/winnieeechen/word-flashcards/internal/i18n"
	"github.com/winnieeechen/word-flashcards/internal/logging"
	"github.com/winnieeechen/word-flashcards/internal/model"
	"github.com/winnieeechen/word-flashcards/internal/review"
	"github.com/winnieeechen/word-flashcards/internal/store"
)

// viewState represents which screen is currently active.
type viewState int

const (
	// setsView is the set-selection screen and the implicit initial state.
	setsView viewState = iota
	createView
	editView
	reviewView
	languageView
)

// backToSetsMsg signals that the active screen wants to return to the
// set-selection screen.
type backToSetsMsg struct{}

// openCreateMsg opens the create-set form.
type openCreateMsg struct{}

// openEditMsg opens the edit form for an existing set.
type openEditMsg struct{ name string }

// openReviewMsg starts a review session for an existing set.
type openReviewMsg struct{ name string }

// libraryChangedMsg signals that the in-memory library was mutated and
// must be persisted. status is shown on the sets screen; selectName moves
// the cursor to that set afterwards.
type libraryChangedMsg struct {
	status     string
	selectName string
}

// languageChangedMsg signals that the UI language changed and every screen
// must be rebuilt with new translations.
type languageChangedMsg struct{}

// mainModel is the top-level model for the TUI. It acts as a state machine
// and router, delegating updates and view rendering to the currently
// active screen.
type mainModel struct {
	state    viewState
	lib      model.Library
	dataFile string

	sets     setsModel
	form     setFormModel
	reviewer reviewModel
	language languageModel

	width  int
	height int
	err    error
}

// newMainModel creates the starting state of the TUI on the set-selection
// screen.
func newMainModel(lib model.Library, dataFile string) mainModel {
	return mainModel{
		state:    setsView,
		lib:      lib,
		dataFile: dataFile,
		sets:     newSetsModel(lib, ""),
	}
}

// rebuildSets recreates the set-selection screen from the current library,
// preserving the window size.
func (m mainModel) rebuildSets(selectName string) setsModel {
	s := newSetsModel(m.lib, selectName)
	s.width, s.height = m.width, m.height
	return s
}

// Init is the first function called by the Bubble Tea runtime.
func (m mainModel) Init() tea.Cmd {
	return nil
}

// Update is the main message loop. It handles navigation and persistence
// messages itself and delegates everything else to the active screen.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings that work everywhere.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case backToSetsMsg:
		m.state = setsView
		m.sets = m.rebuildSets(m.sets.selected())
		return m, nil

	case openCreateMsg:
		m.state = createView
		m.form = newSetFormModel(m.lib, "")
		return m, m.form.Init()

	case openEditMsg:
		if _, ok := m.lib[msg.name]; !ok {
			m.state = setsView
			m.sets = m.rebuildSets("")
			m.sets.status = errorStyle.Render(i18n.T("error.not_found"))
			return m, nil
		}
		m.state = editView
		m.form = newSetFormModel(m.lib, msg.name)
		return m, m.form.Init()

	case openReviewMsg:
		words, ok := m.lib[msg.name]
		if !ok {
			m.state = setsView
			m.sets = m.rebuildSets("")
			m.sets.status = errorStyle.Render(i18n.T("error.not_found"))
			return m, nil
		}
		session := review.New(words)
		session.Shuffle()
		m.state = reviewView
		m.reviewer = newReviewModel(msg.name, session)
		return m, nil

	case libraryChangedMsg:
		// One choke point for persistence: every mutation flows through
		// here before the UI returns to the sets screen.
		status := msg.status
		if err := store.Save(m.dataFile, m.lib); err != nil {
			logging.Errorf("saving library: %v", err)
			status = errorStyle.Render(i18n.T("error.save", err))
		}
		m.state = setsView
		m.sets = m.rebuildSets(msg.selectName)
		m.sets.status = status
		return m, nil

	case languageChangedMsg:
		// Rebuild the whole model so new translations apply everywhere.
		newModel := newMainModel(m.lib, m.dataFile)
		newModel.width = m.width
		newModel.height = m.height
		return newModel, newModel.Init()
	}

	// Delegate to the currently active screen.
	switch m.state {
	case createView, editView:
		var newForm tea.Model
		newForm, cmd = m.form.Update(msg)
		m.form = newForm.(setFormModel)
	case reviewView:
		var newReviewer tea.Model
		newReviewer, cmd = m.reviewer.Update(msg)
		m.reviewer = newReviewer.(reviewModel)
	case languageView:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "q", "esc":
				m.state = setsView
				m.sets = m.rebuildSets(m.sets.selected())
				return m, nil
			case "up", "k":
				if m.language.cursor > 0 {
					m.language.cursor--
				}
			case "down", "j":
				if m.language.cursor < len(m.language.orderedKeys)-1 {
					m.language.cursor++
				}
			case "enter":
				langCode := m.language.orderedKeys[m.language.cursor]
				i18n.SetLang(langCode)
				viper.Set("language", langCode)
				cfg := config.Config{}
				if err := viper.Unmarshal(&cfg); err != nil {
					logging.Warnf("could not persist language choice: %v", err)
				} else if err := config.WriteFile(&cfg, false); err != nil {
					logging.Warnf("could not persist language choice: %v", err)
				}
				return m, func() tea.Msg { return languageChangedMsg{} }
			}
		}
	default: // setsView
		var newSets tea.Model
		newSets, cmd = m.sets.Update(msg)
		m.sets = newSets.(setsModel)
		// The sets screen opens the language picker itself.
		if m.sets.wantLanguage {
			m.sets.wantLanguage = false
			m.state = languageView
			m.language = newLanguageModel()
		}
	}

	return m, cmd
}

// View renders the TUI, delegating to the currently active screen.
func (m mainModel) View() string {
	if m.err != nil {
		return errorStyle.Padding(1, 2).Render(i18n.T("error.generic", m.err))
	}

	switch m.state {
	case createView, editView:
		return m.form.View()
	case reviewView:
		return m.reviewer.View()
	case languageView:
		return m.language.View()
	default: // setsView
		return m.sets.View()
	}
}

// errorMessage maps a domain error to its localized user-facing message.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, deck.ErrEmptySet):
		return i18n.T("error.empty_set")
	case errors.Is(err, deck.ErrEmptyName):
		return i18n.T("error.empty_name")
	case errors.Is(err, deck.ErrDuplicateName):
		return i18n.T("error.duplicate_name")
	case errors.Is(err, deck.ErrNotFound):
		return i18n.T("error.not_found")
	default:
		return i18n.T("error.generic", err)
	}
}

// Run loads the library and runs the Bubble Tea program until the user
// quits. A corrupt data file must be resolved by the caller before Run.
func Run(lib model.Library, dataFile string) error {
	p := tea.NewProgram(newMainModel(lib, dataFile), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Errorf("TUI run error: %v", err)
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
