// Copyright (c) 2026 winnieeechen
// Word Flashcards - vocabulary flashcard trainer
// This source code is licensed under the MIT license found in the LICENSE file.

// package store persists the word set library as a single flat JSON
// document. The whole library is read at startup and rewritten after every
// mutation; writes go to a temp file in the same directory and are renamed
// over the target so a reader never observes a partial document.
package store // import "github.com/winnieeechen/word-flashcards/internal/store"

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/winnieeechen/word-flashcards/internal/model"
)

// ErrCorruptData is returned by Load when the data file exists but does not
// contain a JSON object mapping set names to arrays of strings.
var ErrCorruptData = errors.New("data file is corrupt")

// Load reads the library from path. A missing file is not an error and
// yields an empty library; any malformed content is reported as
// ErrCorruptData so the caller can decide whether to start over.
//
// The document must be a JSON object mapping set names to non-empty arrays
// of non-blank strings. json.Unmarshal treats null as a no-op, so the
// shapes are validated explicitly; an existing file never silently loads
// as an empty or partially empty library.
func Load(path string) (model.Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Library{}, nil
		}
		return nil, fmt.Errorf("reading data file %s: %w", path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptData, path, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: %s: document is null", ErrCorruptData, path)
	}

	lib := make(model.Library, len(raw))
	for name, value := range raw {
		words, err := decodeWords(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: set %q: %v", ErrCorruptData, path, name, err)
		}
		lib[name] = words
	}
	return lib, nil
}

// decodeWords decodes one set value, rejecting null, empty arrays and
// null, non-string or blank elements.
func decodeWords(value json.RawMessage) ([]string, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(value, &elems); err != nil {
		return nil, err
	}
	if elems == nil {
		return nil, errors.New("value is null")
	}
	if len(elems) == 0 {
		return nil, errors.New("set has no words")
	}

	words := make([]string, len(elems))
	for i, elem := range elems {
		var word *string
		if err := json.Unmarshal(elem, &word); err != nil {
			return nil, err
		}
		if word == nil {
			return nil, fmt.Errorf("word %d is null", i)
		}
		if strings.TrimSpace(*word) == "" {
			return nil, fmt.Errorf("word %d is blank", i)
		}
		words[i] = *word
	}
	return words, nil
}

// Save atomically replaces the data file at path with the serialized
// library. The parent directory is created if needed.
func Save(path string, lib model.Library) error {
	data, err := json.MarshalIndent(lib, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding library: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating data directory %s: %w", dir, err)
	}

	// Write-to-temp-then-rename so a crash mid-write cannot truncate the
	// existing library.
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing data file %s: %w", path, err)
	}
	return nil
}
