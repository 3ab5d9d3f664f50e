/*
Package tsvexceptions reads transcription exception lexicons in a
tab-separated format.

Each entry occupies one line: the word, a tab, and the transcription slots
separated by spaces.

	# word	slots
	الله	?a l l A: h
	هذا	h A: D A:

Blank lines and lines starting with '#' are ignored. A leading byte order
mark is dropped.
*/
package tsvexceptions

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/xsampa"
)

// Reader streams exceptions from a tab-separated lexicon.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// LoadExceptions parses lexicon data from reader and adds all entries to
// the exceptions of tr.
func LoadExceptions(tr *xsampa.Transcriber, reader io.Reader) error {
	return tr.LoadExceptions(NewReader(reader))
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Line returns the number of the line most recently read.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next exception as (word, slots).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, []string, error) {
	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Text()
		if r.line == 1 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, transcription, found := strings.Cut(line, "\t")
		if !found {
			return "", nil, fmt.Errorf("lexicon line %d: missing tab between word and transcription", r.line)
		}
		word = strings.TrimSpace(word)
		if word == "" {
			return "", nil, fmt.Errorf("lexicon line %d: empty word", r.line)
		}
		slots := strings.Fields(transcription)
		if len(slots) == 0 {
			return "", nil, fmt.Errorf("lexicon line %d: empty transcription for %q", r.line, word)
		}
		return word, slots, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", nil, err
	}
	return "", nil, io.EOF
}
