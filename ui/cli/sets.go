// Copyright (c) 2026 winnieeechen
// Word Flashcards - vocabulary flashcard trainer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/winnieeechen/word-flashcards/internal/store"
)

// newSetsCmd lists the word sets and their sizes without entering the TUI.
func newSetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sets",
		Short: "List word sets and their word counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := store.Load(appConfig.Data.File)
			if err != nil {
				return err
			}
			if len(lib) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no word sets")
				return nil
			}
			for _, set := range lib.Sets() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", set.Name, len(set.Words))
			}
			return nil
		},
	}
}
