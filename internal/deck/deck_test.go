// Copyright (c) 2026 winnieeechen
// Word Flashcards - vocabulary flashcard trainer
// This source code is licensed under the MIT license found in the LICENSE file.

package deck

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/winnieeechen/word-flashcards/internal/model"
)

func TestNormalize_TrimDedupeKeepFirstCasing(t *testing.T) {
	got := Normalize("cat\nCat\ndog\n\n")
	want := []string{"cat", "dog"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalize_TrimsWhitespaceAndWindowsLineEndings(t *testing.T) {
	got := Normalize("  owl  \r\n\tOWL\r\n raven ")
	want := []string{"owl", "raven"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	once := Normalize("cat\nCat\ndog\nDOG\nbird")
	twice := Normalize(strings.Join(once, "\n"))
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("Normalize not idempotent: first %v, second %v", once, twice)
	}
}

func TestNormalize_NoCaseInsensitiveDuplicates(t *testing.T) {
	words := Normalize("Apple\napple\nAPPLE\nbanana\nBanana\ncherry")
	seen := make(map[string]bool)
	for _, w := range words {
		key := strings.ToLower(w)
		if seen[key] {
			t.Fatalf("duplicate word %q in normalized output %v", w, words)
		}
		seen[key] = true
	}
}

func TestCreate_InsertsNormalizedSet(t *testing.T) {
	lib := model.Library{}
	words, err := Create(lib, "Animals", "cat\nCat\ndog\n\n")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	want := []string{"cat", "dog"}
	if !reflect.DeepEqual(words, want) {
		t.Fatalf("Create returned %v, want %v", words, want)
	}
	if !reflect.DeepEqual(lib["Animals"], want) {
		t.Fatalf("library entry = %v, want %v", lib["Animals"], want)
	}
}

func TestCreate_RejectsDuplicateName(t *testing.T) {
	lib := model.Library{"Animals": {"cat"}}
	if _, err := Create(lib, "Animals", "dog"); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestCreate_RejectsEmptyNameAndEmptySet(t *testing.T) {
	lib := model.Library{}
	if _, err := Create(lib, "   ", "cat"); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if _, err := Create(lib, "Animals", "\n  \n"); !errors.Is(err, ErrEmptySet) {
		t.Fatalf("expected ErrEmptySet, got %v", err)
	}
	if len(lib) != 0 {
		t.Fatalf("failed Create mutated the library: %v", lib)
	}
}

func TestEdit_ReplacesEntryInPlace(t *testing.T) {
	lib := model.Library{
		"Animals": {"cat", "dog"},
		"Cities":  {"Oslo"},
	}
	words, err := Edit(lib, "Animals", "dog\nbird")
	if err != nil {
		t.Fatalf("Edit returned error: %v", err)
	}
	want := []string{"dog", "bird"}
	if !reflect.DeepEqual(words, want) {
		t.Fatalf("Edit returned %v, want %v", words, want)
	}
	if len(lib) != 2 {
		t.Fatalf("Edit changed the number of sets: %v", lib)
	}
	if !reflect.DeepEqual(lib["Animals"], want) {
		t.Fatalf("library entry = %v, want %v", lib["Animals"], want)
	}
	if !reflect.DeepEqual(lib["Cities"], []string{"Oslo"}) {
		t.Fatalf("Edit touched an unrelated set: %v", lib["Cities"])
	}
}

func TestEdit_MissingSetAndEmptyResult(t *testing.T) {
	lib := model.Library{"Animals": {"cat"}}
	if _, err := Edit(lib, "Plants", "fern"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := Edit(lib, "Animals", "\n\n"); !errors.Is(err, ErrEmptySet) {
		t.Fatalf("expected ErrEmptySet, got %v", err)
	}
	if !reflect.DeepEqual(lib["Animals"], []string{"cat"}) {
		t.Fatalf("failed Edit mutated the set: %v", lib["Animals"])
	}
}

func TestRename(t *testing.T) {
	lib := model.Library{
		"Animals": {"cat"},
		"Cities":  {"Oslo"},
	}
	if err := Rename(lib, "Animals", "Beasts"); err != nil {
		t.Fatalf("Rename returned error: %v", err)
	}
	if _, ok := lib["Animals"]; ok {
		t.Fatalf("old name still present after rename: %v", lib)
	}
	if !reflect.DeepEqual(lib["Beasts"], []string{"cat"}) {
		t.Fatalf("renamed set lost its words: %v", lib["Beasts"])
	}

	if err := Rename(lib, "Beasts", "Cities"); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
	if err := Rename(lib, "Beasts", "Beasts"); err != nil {
		t.Fatalf("rename to same name should be a no-op, got %v", err)
	}
	if err := Rename(lib, "Gone", "Anywhere"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := Rename(lib, "Beasts", "  "); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	lib := model.Library{"Animals": {"cat"}}
	if err := Delete(lib, "Animals"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(lib) != 0 {
		t.Fatalf("set still present after delete: %v", lib)
	}
	if err := Delete(lib, "Animals"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
