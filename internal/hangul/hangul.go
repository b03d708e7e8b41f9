// Package hangul classifies the final syllable of a Korean word by its
// final consonant (받침), which drives every particle choice downstream.
package hangul

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Precomposed syllable block: 가 (U+AC00) .. 힣 (U+D7A3).
// offset = initial*588 + medial*28 + final
const (
	first      = 0xAC00
	last       = 0xD7A3
	finals     = 28
	rieulFinal = 8 // ㄹ
)

// ErrInvalidInput is returned when the last character of a word is not a
// precomposed Hangul syllable.
var ErrInvalidInput = errors.New("hangul: last character is not a Hangul syllable")

// Class is the phonetic class of a word's last syllable.
type Class struct {
	Batchim bool // any final consonant
	Rieul   bool // final consonant is ㄹ
}

// Classify returns the batchim class of word's last syllable.
// The word is NFC-normalised first so conjoining jamo compose.
func Classify(word string) (Class, error) {
	w := norm.NFC.String(word)
	r, _ := utf8.DecodeLastRuneInString(w)
	if w == "" || r < first || r > last {
		return Class{}, fmt.Errorf("%w: %q", ErrInvalidInput, word)
	}
	final := (int(r) - first) % finals
	return Class{Batchim: final != 0, Rieul: final == rieulFinal}, nil
}

// HasBatchim reports whether the last syllable of word has a final consonant.
func HasBatchim(word string) (bool, error) {
	c, err := Classify(word)
	return c.Batchim, err
}

// HasRieulBatchim reports whether the last syllable of word ends in ㄹ.
func HasRieulBatchim(word string) (bool, error) {
	c, err := Classify(word)
	return c.Rieul, err
}

// TakesRo reports whether 로 (rather than 으로) follows this class:
// no final consonant, or ㄹ.
func (c Class) TakesRo() bool { return !c.Batchim || c.Rieul }
