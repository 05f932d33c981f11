// Copyright (c) 2026 winnieeechen
// Word Flashcards - vocabulary flashcard trainer
// This source code is licensed under the MIT license found in the LICENSE file.

// package model defines the core data structures shared by the storage,
// editing and review packages.
package model // import "github.com/winnieeechen/word-flashcards/internal/model"

import (
	"sort"
	"strings"
)

// Library is the full collection of word sets, keyed by set name.
// It is loaded wholesale at startup and saved wholesale after every
// mutation. The on-disk shape is the same map, serialized as JSON.
type Library map[string][]string

// WordSet is a named, ordered list of distinct words. Words are distinct
// case-insensitively; the name is compared case-sensitively for identity.
type WordSet struct {
	Name  string
	Words []string
}

// Names returns the set names sorted case-insensitively, for stable
// display in lists.
func (l Library) Names() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}

// Sets returns the library as WordSet values in display order.
func (l Library) Sets() []WordSet {
	sets := make([]WordSet, 0, len(l))
	for _, name := range l.Names() {
		sets = append(sets, WordSet{Name: name, Words: l[name]})
	}
	return sets
}

// WordCount returns the total number of words across all sets.
func (l Library) WordCount() int {
	n := 0
	for _, words := range l {
		n += len(words)
	}
	return n
}

// Largest returns the name of the set with the most words, or "" for an
// empty library. Ties resolve to the first name in display order so the
// dashboard is deterministic.
func (l Library) Largest() string {
	best := ""
	bestLen := 0
	for _, name := range l.Names() {
		if len(l[name]) > bestLen {
			best = name
			bestLen = len(l[name])
		}
	}
	return best
}
