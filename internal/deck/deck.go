// Copyright (c) 2026 winnieeechen
// Word Flashcards - vocabulary flashcard trainer
// This source code is licensed under the MIT license found in the LICENSE file.

// package deck holds the set editing logic: normalizing raw word input and
// applying create/edit/rename/delete operations to the library. All
// operations mutate the library in memory only; persistence is the
// caller's job.
package deck // import "github.com/winnieeechen/word-flashcards/internal/deck"

import (
	"errors"
	"strings"

	"github.com/winnieeechen/word-flashcards/internal/model"
)

var (
	// ErrEmptySet means normalization left zero words.
	ErrEmptySet = errors.New("set has no words")
	// ErrEmptyName means the set name is empty or whitespace only.
	ErrEmptyName = errors.New("set name is empty")
	// ErrDuplicateName means the name collides with a different existing set.
	ErrDuplicateName = errors.New("a set with this name already exists")
	// ErrNotFound means the named set does not exist.
	ErrNotFound = errors.New("no such set")
)

// Normalize splits raw text into one word per line, trims whitespace,
// drops blank lines and removes case-insensitive duplicates. The first
// occurrence wins and keeps its original casing, so Normalize is
// idempotent.
func Normalize(raw string) []string {
	seen := make(map[string]struct{})
	var words []string
	for _, line := range strings.Split(raw, "\n") {
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		key := strings.ToLower(word)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		words = append(words, word)
	}
	return words
}

// Create normalizes raw and inserts a new set under name. The name must be
// non-blank and must not collide with an existing set.
func Create(lib model.Library, name, raw string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if _, exists := lib[name]; exists {
		return nil, ErrDuplicateName
	}
	words := Normalize(raw)
	if len(words) == 0 {
		return nil, ErrEmptySet
	}
	lib[name] = words
	return words, nil
}

// Edit normalizes raw and replaces the words of the existing set name in
// place. Other sets are untouched and the set never collides with itself.
func Edit(lib model.Library, name, raw string) ([]string, error) {
	if _, exists := lib[name]; !exists {
		return nil, ErrNotFound
	}
	words := Normalize(raw)
	if len(words) == 0 {
		return nil, ErrEmptySet
	}
	lib[name] = words
	return words, nil
}

// Rename moves the set old to newName. Renaming a set to its own name is a
// no-op; renaming onto a different existing set is rejected.
func Rename(lib model.Library, old, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrEmptyName
	}
	words, exists := lib[old]
	if !exists {
		return ErrNotFound
	}
	if newName == old {
		return nil
	}
	if _, exists := lib[newName]; exists {
		return ErrDuplicateName
	}
	delete(lib, old)
	lib[newName] = words
	return nil
}

// Delete removes the named set from the library.
func Delete(lib model.Library, name string) error {
	if _, exists := lib[name]; !exists {
		return ErrNotFound
	}
	delete(lib, name)
	return nil
}
