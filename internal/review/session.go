// Copyright (c) 2026 winnieeechen
// Word Flashcards - vocabulary flashcard trainer
// This source code is licensed under the MIT license found in the LICENSE file.

// package review implements the transient flashcard review session: an
// independent, optionally shuffled copy of one set's words plus a
// navigation cursor. Sessions are never persisted.
package review // import "github.com/winnieeechen/word-flashcards/internal/review"

import (
	"errors"
	"math/rand"
)

// ErrEmptySession is returned by Current on a session with zero words.
// Saved sets are never empty, so this is a defensive guard.
var ErrEmptySession = errors.New("review session has no words")

// Session holds a working copy of a word set and a cursor into it.
// Navigation wraps around at both ends so review can loop continuously.
type Session struct {
	words  []string
	cursor int
}

// New creates a session over an independent copy of words, so shuffling
// and navigating never mutate the stored set. The cursor starts at 0.
func New(words []string) *Session {
	copied := make([]string, len(words))
	copy(copied, words)
	return &Session{words: copied}
}

// Shuffle applies a uniform random permutation to the session's copy and
// resets the cursor to 0. This is the only randomness in the application.
func (s *Session) Shuffle() {
	rand.Shuffle(len(s.words), func(i, j int) {
		s.words[i], s.words[j] = s.words[j], s.words[i]
	})
	s.cursor = 0
}

// Next advances the cursor by one, wrapping past the last word back to 0.
func (s *Session) Next() {
	if len(s.words) == 0 {
		return
	}
	s.cursor = (s.cursor + 1) % len(s.words)
}

// Previous moves the cursor back by one, wrapping below 0 to the last word.
func (s *Session) Previous() {
	if len(s.words) == 0 {
		return
	}
	s.cursor = (s.cursor + len(s.words) - 1) % len(s.words)
}

// Current returns the word under the cursor.
func (s *Session) Current() (string, error) {
	if len(s.words) == 0 {
		return "", ErrEmptySession
	}
	return s.words[s.cursor], nil
}

// Len returns the number of words in the session.
func (s *Session) Len() int { return len(s.words) }

// Cursor returns the zero-based cursor position.
func (s *Session) Cursor() int { return s.cursor }

// Words returns the session's working copy in its current order.
func (s *Session) Words() []string { return s.words }
