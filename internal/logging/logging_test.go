// Copyright (c) 2026 winnieeechen
// Word Flashcards - vocabulary flashcard trainer
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"bytes"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

// The helpers format into the package-level logger L. The test swaps L for
// a buffer-backed logger and restores it afterwards.
func TestHelpers_WriteToPackageLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	L.SetLevel(clog.DebugLevel)
	defer func() { L = prev }()

	Debugf("loaded %d sets", 3)
	Infof("saved library to %s", "library.json")
	Warnf("slow save")
	Errorf("save failed: %v", "disk full")

	out := buf.String()
	for _, want := range []string{"loaded 3 sets", "saved library to library.json", "slow save", "save failed: disk full"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in log output: %s", want, out)
		}
	}
}
