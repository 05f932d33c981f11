// Copyright (c) 2026 winnieeechen
// Word Flashcards - vocabulary flashcard trainer
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	clog "github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"github.com/winnieeechen/word-flashcards/internal/i18n"
	"github.com/winnieeechen/word-flashcards/internal/logging"
	"github.com/winnieeechen/word-flashcards/internal/model"
	"github.com/winnieeechen/word-flashcards/internal/store"
)

func TestMainModel_StartsOnSetsScreen(t *testing.T) {
	i18n.Init("en")
	m := newMainModel(model.Library{"Animals": {"cat"}}, "unused.json")
	if m.state != setsView {
		t.Fatalf("initial state = %d, want setsView", m.state)
	}
	if !strings.Contains(m.View(), "Animals") {
		t.Fatalf("initial view missing set list:\n%s", m.View())
	}
}

func TestMainModel_ScreenTransitions(t *testing.T) {
	i18n.Init("en")
	lib := model.Library{"Animals": {"cat", "dog"}}
	m := newMainModel(lib, "unused.json")

	updated, _ := m.Update(openCreateMsg{})
	m = updated.(mainModel)
	if m.state != createView {
		t.Fatalf("state after openCreateMsg = %d, want createView", m.state)
	}

	updated, _ = m.Update(backToSetsMsg{})
	m = updated.(mainModel)
	if m.state != setsView {
		t.Fatalf("state after backToSetsMsg = %d, want setsView", m.state)
	}

	updated, _ = m.Update(openEditMsg{name: "Animals"})
	m = updated.(mainModel)
	if m.state != editView {
		t.Fatalf("state after openEditMsg = %d, want editView", m.state)
	}
	if got := m.form.editing; got != "Animals" {
		t.Fatalf("form editing = %q, want Animals", got)
	}

	updated, _ = m.Update(openReviewMsg{name: "Animals"})
	m = updated.(mainModel)
	if m.state != reviewView {
		t.Fatalf("state after openReviewMsg = %d, want reviewView", m.state)
	}
	if m.reviewer.session.Len() != 2 {
		t.Fatalf("review session length = %d, want 2", m.reviewer.session.Len())
	}
}

func TestMainModel_ReviewSessionCopiesWords(t *testing.T) {
	i18n.Init("en")
	lib := model.Library{"Animals": {"cat", "dog", "owl"}}
	m := newMainModel(lib, "unused.json")

	updated, _ := m.Update(openReviewMsg{name: "Animals"})
	m = updated.(mainModel)

	// Shuffling at session start must never reorder the stored set.
	if !reflect.DeepEqual(lib["Animals"], []string{"cat", "dog", "owl"}) {
		t.Fatalf("starting a review mutated the stored set: %v", lib["Animals"])
	}
}

func TestMainModel_OpenMissingSetShowsError(t *testing.T) {
	i18n.Init("en")
	m := newMainModel(model.Library{}, "unused.json")

	updated, _ := m.Update(openReviewMsg{name: "Gone"})
	m = updated.(mainModel)
	if m.state != setsView {
		t.Fatalf("state = %d, want setsView", m.state)
	}
	if !strings.Contains(m.sets.status, i18n.T("error.not_found")) {
		t.Fatalf("missing not-found status, got %q", m.sets.status)
	}
}

func TestMainModel_LibraryChangedPersists(t *testing.T) {
	i18n.Init("en")
	path := filepath.Join(t.TempDir(), "library.json")
	lib := model.Library{"Animals": {"cat"}}
	m := newMainModel(lib, path)

	updated, _ := m.Update(libraryChangedMsg{status: "saved", selectName: "Animals"})
	m = updated.(mainModel)

	if m.state != setsView {
		t.Fatalf("state = %d, want setsView", m.state)
	}
	if m.sets.status != "saved" {
		t.Fatalf("status = %q, want %q", m.sets.status, "saved")
	}

	onDisk, err := store.Load(path)
	if err != nil {
		t.Fatalf("loading persisted library: %v", err)
	}
	if !reflect.DeepEqual(onDisk, lib) {
		t.Fatalf("persisted library = %v, want %v", onDisk, lib)
	}
}

func TestMainModel_CreateFlowEndToEnd(t *testing.T) {
	i18n.Init("en")
	path := filepath.Join(t.TempDir(), "library.json")
	lib := model.Library{}
	m := newMainModel(lib, path)

	updated, _ := m.Update(openCreateMsg{})
	m = updated.(mainModel)

	m.form.name.SetValue("Animals")
	m.form.words.SetValue("cat\nCat\ndog\n\n")
	m.form.focusIndex = focusSubmit

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(mainModel)
	if cmd == nil {
		t.Fatal("submit returned no command")
	}

	updated, _ = m.Update(cmd())
	m = updated.(mainModel)
	if m.state != setsView {
		t.Fatalf("state after save = %d, want setsView", m.state)
	}
	if m.sets.selected() != "Animals" {
		t.Fatalf("cursor not on the new set: %q", m.sets.selected())
	}

	onDisk, err := store.Load(path)
	if err != nil {
		t.Fatalf("loading persisted library: %v", err)
	}
	if !reflect.DeepEqual(onDisk["Animals"], []string{"cat", "dog"}) {
		t.Fatalf("persisted set = %v, want [cat dog]", onDisk["Animals"])
	}
}

func TestMainModel_LanguagePersistFailureIsLogged(t *testing.T) {
	i18n.Init("en")
	defer i18n.SetLang("en")

	// A config shape viper cannot unmarshal into config.Config.
	viper.Set("data", 42)
	defer viper.Reset()

	var buf bytes.Buffer
	prev := logging.L
	logging.L = clog.New(&buf)
	defer func() { logging.L = prev }()

	m := newMainModel(model.Library{}, "unused.json")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("L")})
	m = updated.(mainModel)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("selecting a language returned no command")
	}
	if _, ok := cmd().(languageChangedMsg); !ok {
		t.Fatalf("expected languageChangedMsg, got %T", cmd())
	}
	if !strings.Contains(buf.String(), "could not persist language choice") {
		t.Fatalf("unmarshal failure was not logged: %q", buf.String())
	}
}

func TestMainModel_LanguageScreenRoundTrip(t *testing.T) {
	i18n.Init("en")
	m := newMainModel(model.Library{}, "unused.json")

	// 'L' on the sets screen opens the language picker.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("L")})
	m = updated.(mainModel)
	if m.state != languageView {
		t.Fatalf("state = %d, want languageView", m.state)
	}
	if !strings.Contains(m.View(), "English") || !strings.Contains(m.View(), "Deutsch") {
		t.Fatalf("language picker missing choices:\n%s", m.View())
	}

	// esc returns to the sets screen.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(mainModel)
	if m.state != setsView {
		t.Fatalf("state after esc = %d, want setsView", m.state)
	}
}
