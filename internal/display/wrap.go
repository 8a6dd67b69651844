package display

import (
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DefaultWidth = 80

var titler = cases.Title(language.English, cases.NoLower)

// Wrap word-wraps text to DefaultWidth, preserving ANSI escape sequences.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}

// Title uppercases the first letter of each word, leaving the rest of
// the word untouched.
func Title(s string) string {
	return titler.String(s)
}
