// Copyright (c) 2026 winnieeechen
// Word Flashcards - vocabulary flashcard trainer
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for Word Flashcards using the
// Cobra library. Running the root command without a subcommand launches
// the interactive TUI; subcommands cover listing, backup and restore.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/winnieeechen/word-flashcards/internal/config"
	"github.com/winnieeechen/word-flashcards/internal/i18n"
	"github.com/winnieeechen/word-flashcards/internal/model"
	"github.com/winnieeechen/word-flashcards/internal/store"
	"github.com/winnieeechen/word-flashcards/internal/tui"
)

var version = "dev" // set at build time with -ldflags

var (
	cfgFile         string
	verbose         bool
	showVersionFlag bool
)

var appConfig config.Config

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// setupDefaultServices loads the configuration and initializes i18n. It
// runs before every command so subcommands see the same config the TUI
// does.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := map[string]any{
		"data.file": "./word-flashcards.json",
		"language":  "en",
	}

	appConfig, err = config.Load(cmd, defaults, optionalConfigPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Guard against empty values from a hand-edited config file.
	if appConfig.Data.File == "" {
		appConfig.Data.File = defaults["data.file"].(string)
	}
	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
	}

	// Mirror the resolved config into the global viper so the TUI can
	// persist changes (e.g. the language picker) without re-reading files.
	viper.Set("data.file", appConfig.Data.File)
	viper.Set("language", appConfig.Language)

	// First run: persist a default config so subsequent runs have a file
	// to inspect.
	if exists, statErr := config.UserFileExists(); statErr == nil && !exists {
		if writeErr := config.WriteFile(&appConfig, false); writeErr != nil {
			log.Warnf("could not write default config file: %v", writeErr)
		}
	}

	i18n.Init(appConfig.Language)
	return nil
}

// getConfigPathFromCli returns the --config value when the user set it
// explicitly, after checking the file exists.
func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// loadLibrary reads the library for the root command, handling a corrupt
// data file with an explicit confirmation: the user must agree before the
// app continues on an empty library, and declining aborts startup.
func loadLibrary(path string, in io.Reader, out io.Writer) (model.Library, error) {
	lib, err := store.Load(path)
	if err == nil {
		return lib, nil
	}
	if !errors.Is(err, store.ErrCorruptData) {
		return nil, err
	}

	fmt.Fprintf(out, "The data file %s is corrupt:\n  %v\n", path, err)
	fmt.Fprint(out, "Start with an empty library? The file will be overwritten on the next save. [y/N]: ")
	if !confirm(in) {
		return nil, fmt.Errorf("refusing to start on a corrupt data file: %w", err)
	}
	log.Warnf("continuing with an empty library; %s will be overwritten on save", path)
	return model.Library{}, nil
}

// confirm reads one line and accepts y/yes (case-insensitive).
func confirm(in io.Reader) bool {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// NewRootCmd creates and configures a new root cobra command. Fresh
// instances are also used for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "word-flashcards",
		Short: "Word Flashcards is a local vocabulary flashcard trainer.",
		Long: `Word Flashcards keeps named word sets in a single local JSON file.
Create a set from pasted lines, shuffle it and flip through the cards with
the arrow keys. Nothing ever leaves your machine.

Running without a subcommand launches the interactive TUI.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				fmt.Printf("%s\n", version)
				os.Exit(0)
			}
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			return setupDefaultServices(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loadLibrary(appConfig.Data.File, os.Stdin, os.Stderr)
			if err != nil {
				return err
			}
			return tui.Run(lib, appConfig.Data.File)
		},
	}

	cmd.Version = version

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose log output")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("data.file", "./word-flashcards.json", "Path of the JSON library file")
	cmd.PersistentFlags().String("language", "en", `TUI language ("en", "de")`)

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newSetsCmd())
	cmd.AddCommand(newBackupCmd())
	cmd.AddCommand(newRestoreCmd())

	return cmd
}

// newVersionCmd returns a lightweight `version` subcommand so users and CI
// can run `word-flashcards version`.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "word-flashcards %s\n", version)
		},
	}
}
