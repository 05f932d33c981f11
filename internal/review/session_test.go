// Copyright (c) 2026 winnieeechen
// Word Flashcards - vocabulary flashcard trainer
// This source code is licensed under the MIT license found in the LICENSE file.

package review

import (
	"errors"
	"sort"
	"testing"
)

func TestNew_CopiesWordsAndStartsAtZero(t *testing.T) {
	words := []string{"a", "b", "c"}
	s := New(words)
	if s.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", s.Cursor())
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	// Mutating the session copy must not touch the source slice.
	s.Words()[0] = "z"
	if words[0] != "a" {
		t.Fatalf("session mutated the source words: %v", words)
	}
}

func TestNextPrevious_WrapAround(t *testing.T) {
	s := New([]string{"a", "b", "c"})

	s.Previous()
	if s.Cursor() != 2 {
		t.Fatalf("Previous from 0 should wrap to 2, got %d", s.Cursor())
	}
	s.Next()
	if s.Cursor() != 0 {
		t.Fatalf("Next from last should wrap to 0, got %d", s.Cursor())
	}
}

func TestNextPrevious_ComposeToIdentity(t *testing.T) {
	s := New([]string{"a", "b", "c", "d"})
	for i := 0; i < 7; i++ {
		s.Next()
	}
	for i := 0; i < 7; i++ {
		s.Previous()
	}
	if s.Cursor() != 0 {
		t.Fatalf("cursor after equal next/previous calls = %d, want 0", s.Cursor())
	}
}

func TestNavigation_EmptySessionIsNoop(t *testing.T) {
	s := New(nil)
	s.Next()
	s.Previous()
	if s.Cursor() != 0 {
		t.Fatalf("cursor moved on empty session: %d", s.Cursor())
	}
	if _, err := s.Current(); !errors.Is(err, ErrEmptySession) {
		t.Fatalf("expected ErrEmptySession, got %v", err)
	}
}

func TestShuffle_PreservesMultisetAndResetsCursor(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e"}
	s := New(words)
	s.Next()
	s.Next()

	s.Shuffle()
	if s.Cursor() != 0 {
		t.Fatalf("cursor after shuffle = %d, want 0", s.Cursor())
	}
	if s.Len() != len(words) {
		t.Fatalf("shuffle changed session length: %d", s.Len())
	}

	got := append([]string(nil), s.Words()...)
	want := append([]string(nil), words...)
	sort.Strings(got)
	sort.Strings(want)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("shuffle changed the word multiset: got %v, want %v", got, want)
		}
	}
}

func TestCurrent_FollowsCursor(t *testing.T) {
	s := New([]string{"a", "b", "c"})
	s.Next()
	word, err := s.Current()
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if word != "b" {
		t.Fatalf("Current = %q, want %q", word, "b")
	}
}
