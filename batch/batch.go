/*
Package batch streams word lists through a transcriber.

Input is read line by line. Each line holds one word, or several
whitespace-separated words if Options.SplitFields is set. For every word one
output line is written:

	<word> TAB <transcription> NEWLINE

Output order equals input order. Words the pipeline rejects are either
skipped or abort the run, depending on Options.Policy; in both cases the
fault is reported with its line number.
*/
package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/xsampa"
)

// tracer writes to trace with key 'xsampa.batch'
func tracer() tracing.Trace {
	return tracing.Select("xsampa.batch")
}

const maxLineLength = 1 << 20

// MaxFaults limits the faults kept in Stats. Every skipped word is traced
// and counted regardless.
const MaxFaults = 100

// Policy decides what happens to words the transcriber rejects.
type Policy int

const (
	PolicySkip  Policy = iota // report and continue with the next word
	PolicyAbort               // stop the run at the first malformed word
)

func (p Policy) String() string {
	if p == PolicyAbort {
		return "abort"
	}
	return "skip"
}

// ParsePolicy converts "skip" or "abort" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "skip":
		return PolicySkip, nil
	case "abort":
		return PolicyAbort, nil
	}
	return PolicySkip, fmt.Errorf("unknown malformed-word policy %q (must be \"skip\" or \"abort\")", s)
}

// Options control a batch run.
type Options struct {
	Policy      Policy
	SplitFields bool // more than one word per line
	NFC         bool // normalize words to Unicode NFC before transcription
}

// LineError reports a word which could not be transcribed.
type LineError struct {
	Line int // 1-based
	Word string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Stats summarizes a batch run.
type Stats struct {
	Lines   int          // input lines read
	Words   int          // words transcribed and written
	Skipped int          // malformed words skipped
	Faults  []*LineError // the first MaxFaults skipped words
}

// Run transcribes every word from in and writes the results to out.
//
// I/O errors end the run. A malformed word ends the run only with
// PolicyAbort; the returned error is then a *LineError. Stats reflect the
// work done up to the point of return.
func Run(tr *xsampa.Transcriber, in io.Reader, out io.Writer, opts Options) (stats Stats, err error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	w := bufio.NewWriter(out)
	defer func() {
		if ferr := w.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("write transcriptions: %w", ferr)
		}
	}()
	for scanner.Scan() {
		stats.Lines++
		for _, word := range splitLine(scanner.Text(), opts) {
			t, terr := tr.TranscribeString(word)
			if terr != nil {
				lerr := &LineError{Line: stats.Lines, Word: word, Err: terr}
				if opts.Policy == PolicyAbort || !errors.Is(terr, xsampa.ErrMalformedWord) {
					tracer().Errorf("aborting: %v", lerr)
					return stats, lerr
				}
				tracer().Errorf("skipping: %v", lerr)
				stats.Skipped++
				if len(stats.Faults) < MaxFaults {
					stats.Faults = append(stats.Faults, lerr)
				}
				continue
			}
			if err = writeEntry(w, word, t); err != nil {
				return stats, fmt.Errorf("write transcriptions: %w", err)
			}
			stats.Words++
		}
	}
	if err = scanner.Err(); err != nil {
		return stats, fmt.Errorf("read words: %w", err)
	}
	tracer().Infof("transcribed %d words from %d lines, skipped %d", stats.Words, stats.Lines, stats.Skipped)
	return stats, nil
}

// splitLine returns the cleaned, non-empty words of one input line.
func splitLine(line string, opts Options) []string {
	line = xsampa.CleanWord(line, opts.NFC)
	if line == "" {
		return nil
	}
	if !opts.SplitFields {
		return []string{line}
	}
	return strings.Fields(line)
}

func writeEntry(w *bufio.Writer, word string, t xsampa.Transcription) error {
	if _, err := w.WriteString(word); err != nil {
		return err
	}
	if err := w.WriteByte('\t'); err != nil {
		return err
	}
	for _, slot := range t {
		if _, err := w.WriteString(slot); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}
