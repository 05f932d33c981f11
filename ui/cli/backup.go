// Copyright (c) 2026 winnieeechen
// Word Flashcards - vocabulary flashcard trainer
// This source code is licensed under the MIT license found in the LICENSE file.

// backup.go implements the 'backup' and 'restore' subcommands, which dump
// the library to and restore it from a Zstandard-compressed JSON file.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"
	"github.com/winnieeechen/word-flashcards/internal/model"
	"github.com/winnieeechen/word-flashcards/internal/store"
)

// newBackupCmd creates the 'backup' command.
func newBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup [output-file]",
		Short: "Create a compressed (zstd) JSON backup of the library",
		Long: `Dumps all word sets into a single, Zstandard-compressed JSON file.

If an output file is specified, '.zst' will be appended to the name if it's
not already present. If no output file is specified, a default filename
'word-flashcards-backup-YYYY-MM-DD.json.zst' is used.

Examples:
  # Backup to a default file
  word-flashcards backup

  # Backup to a specific file
  word-flashcards backup my-backup.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var outputFile string
			if len(args) == 0 {
				outputFile = fmt.Sprintf("word-flashcards-backup-%s.json.zst", time.Now().Format("2006-01-02"))
			} else {
				outputFile = args[0]
				if !strings.HasSuffix(outputFile, ".zst") {
					outputFile += ".zst"
				}
			}

			// Load through the store so a corrupt library is rejected
			// instead of being archived.
			lib, err := store.Load(appConfig.Data.File)
			if err != nil {
				return err
			}
			if err := writeCompressedBackup(outputFile, lib); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "backed up %d sets to %s\n", len(lib), outputFile)
			return nil
		},
	}
}

// newRestoreCmd creates the 'restore' command.
func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <backup-file.zst>",
		Short: "Restore the library from a compressed JSON backup",
		Long: `Replaces the current library with the contents of a Zstandard-compressed
JSON backup file created by 'word-flashcards backup'.

WARNING: this overwrites the existing data file after confirmation.

Example:
  word-flashcards restore ./word-flashcards-backup-2026-08-26.json.zst`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := readCompressedBackup(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "restore %d sets over %s? [y/N]: ", len(lib), appConfig.Data.File)
			if !confirm(cmd.InOrStdin()) {
				fmt.Fprintln(cmd.OutOrStdout(), "restore aborted")
				return nil
			}
			if err := store.Save(appConfig.Data.File, lib); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "restored %d sets to %s\n", len(lib), appConfig.Data.File)
			return nil
		},
	}
}

// writeCompressedBackup streams the JSON encoding of the library directly
// into a zstd writer.
func writeCompressedBackup(filename string, lib model.Library) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	zstdWriter, err := zstd.NewWriter(file)
	if err != nil {
		return fmt.Errorf("could not create zstd writer: %w", err)
	}
	defer func() { _ = zstdWriter.Close() }()

	encoder := json.NewEncoder(zstdWriter)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(lib); err != nil {
		return fmt.Errorf("could not encode json to zstd writer: %w", err)
	}

	return nil
}

// readCompressedBackup reads and decodes a zstd-compressed JSON backup.
func readCompressedBackup(filename string) (model.Library, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	zstdReader, err := zstd.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("could not create zstd reader: %w", err)
	}
	defer zstdReader.Close()

	var lib model.Library
	if err := json.NewDecoder(zstdReader).Decode(&lib); err != nil {
		return nil, fmt.Errorf("could not decode json from zstd reader: %w", err)
	}
	if lib == nil {
		lib = model.Library{}
	}
	return lib, nil
}
