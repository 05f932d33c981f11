// Copyright (c) 2026 winnieeechen
// Word Flashcards - vocabulary flashcard trainer
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides localization for all user-facing strings. It loads
// embedded YAML message files through go-i18n, so the binary ships with
// its translations.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// bundle stores all loaded translation messages.
var bundle *i18n.Bundle

// localizer translates messages into the active language.
var localizer *i18n.Localizer

// Init parses the embedded locale files and activates lang.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		bundle.ParseMessageFileBytes(data, f.Name())
	}

	localizer = i18n.NewLocalizer(bundle, lang)
}

// T translates a message by its ID, formatting any args into the result.
// An unknown ID falls back to the ID itself so missing translations are
// visible rather than fatal.
func T(messageID string, args ...interface{}) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// SetLang switches the active language.
func SetLang(lang string) {
	Init(lang)
}
