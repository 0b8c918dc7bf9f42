package game

import (
	"strings"
	"unicode"
)

// MaskPrompt hides a prompt from guessers: every letter becomes an
// underscore while spaces and punctuation stay visible, so the word shape
// still reads.
func MaskPrompt(prompt string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return '_'
		}
		return r
	}, prompt)
}
