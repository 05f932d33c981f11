// Copyright (c) 2026 winnieeechen
// Word Flashcards - vocabulary flashcard trainer
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Word Flashcards.
//
// Usage:
//
//	go run . [flags]
//	./word-flashcards [flags]
//
// Running without a subcommand launches the interactive TUI. See --help
// for options.
package main

import (
	"log"
	"os"

	"github.com/winnieeechen/word-flashcards/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Printf("word-flashcards error: %v", err)
		os.Exit(1)
	}
}
