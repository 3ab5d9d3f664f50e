package xsampa

import (
	"errors"
	"fmt"
)

// ErrMalformedWord is matched by every error reporting an input word the
// pipeline cannot process.
var ErrMalformedWord = errors.New("malformed input word")

var (
	// ErrEmptyWord is returned for words without any character.
	ErrEmptyWord = fmt.Errorf("%w: empty word", ErrMalformedWord)
	// ErrWordTooShort is returned when a pass has to inspect a position
	// beyond the end of the word.
	ErrWordTooShort = fmt.Errorf("%w: word too short", ErrMalformedWord)
)

// WordError attributes a transcription failure to a word.
type WordError struct {
	Word  string
	Pass  string // pipeline pass which needed the missing position
	Index int    // slot index which does not exist
	Err   error
}

func (e *WordError) Error() string {
	if e.Pass == "" {
		return fmt.Sprintf("transcribe %q: %v", e.Word, e.Err)
	}
	return fmt.Sprintf("transcribe %q: %s needs slot %d: %v", e.Word, e.Pass, e.Index, e.Err)
}

func (e *WordError) Unwrap() error { return e.Err }
