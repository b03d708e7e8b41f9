package kolaw

import (
	"errors"

	"github.com/Alfex4936/kolaw/internal/hangul"
)

var (
	// ErrEmptyQuery signals a blank search word, replacement or query.
	ErrEmptyQuery = errors.New("kolaw: empty query")

	// ErrEmptyDocument signals a registry that returned no law and no error.
	ErrEmptyDocument = errors.New("kolaw: empty document")

	// ErrInvalidInput signals a word whose last character is not a Hangul
	// syllable, so no particle can be chosen for it.
	ErrInvalidInput = hangul.ErrInvalidInput
)
