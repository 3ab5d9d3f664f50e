package xsampa

import (
	"errors"
	"io"
	"reflect"
	"testing"
)

type sliceExceptionReader struct {
	entries []struct {
		word  string
		slots []string
	}
	index int
	err   error
}

func (r *sliceExceptionReader) Next() (string, []string, error) {
	if r.index >= len(r.entries) {
		if r.err != nil {
			return "", nil, r.err
		}
		return "", nil, io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry.word, entry.slots, nil
}

func TestExceptionReaderAPI(t *testing.T) {
	tr := NewTranscriber(nil)
	err := tr.LoadExceptions(&sliceExceptionReader{
		entries: []struct {
			word  string
			slots []string
		}{
			{word: "الله", slots: []string{"?a", "l", "l", "A:", "h"}},
			{word: "ب", slots: []string{"b", "a"}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	got, err := tr.TranscribeString("الله")
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "?allA:h" {
		t.Fatalf("الله should be ?allA:h, is %s", got)
	}
	// exceptions bypass length validation
	got, err = tr.TranscribeString("ب")
	if err != nil {
		t.Fatalf("exception for a lone consonant rejected: %v", err)
	}
	if got.String() != "ba" {
		t.Fatalf("ب should be ba, is %s", got)
	}
}

func TestExceptionReaderError(t *testing.T) {
	tr := NewTranscriber(nil)
	broken := errors.New("broken lexicon")
	err := tr.LoadExceptions(&sliceExceptionReader{err: broken})
	if !errors.Is(err, broken) {
		t.Fatalf("expected reader error, got %v", err)
	}
}

func TestExceptionListAPI(t *testing.T) {
	tr := NewTranscriber(nil)
	tr.LoadExceptionList(map[string][]string{
		"كتاب":  {"k", "i", "t", "A:", "b"},
		"كتب":   {"k", "u", "t", "u", "b"},
		"مكتبة": {"m", "a", "k", "t", "a", "b", "a"},
	})
	if !tr.HasException("كتب") || tr.HasException("كت") {
		t.Fatalf("exception lookup must match whole words only")
	}
	words := tr.ExceptionsWithPrefix("كت")
	if !reflect.DeepEqual(words, []string{"كتاب", "كتب"}) {
		t.Fatalf("prefix search: got %q", words)
	}
	if n := len(tr.ExceptionsWithPrefix("")); n != 3 {
		t.Fatalf("expected 3 exceptions, have %d", n)
	}
}

func TestExceptionOverwriteAndCopy(t *testing.T) {
	tr := NewTranscriber(nil)
	slots := []string{"k", "A:"}
	tr.AddException("كا", slots)
	slots[0] = "X"
	tr.AddException("كا", []string{"q", "A:"})
	got, err := tr.TranscribeString("كا")
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "qA:" {
		t.Fatalf("overwritten exception: got %s, want qA:", got)
	}
	got[0] = "Z"
	again, _ := tr.TranscribeString("كا")
	if again.String() != "qA:" {
		t.Fatalf("exception storage leaked to caller: %s", again)
	}
	if n := len(tr.ExceptionsWithPrefix("")); n != 1 {
		t.Fatalf("expected 1 exception after overwrite, have %d", n)
	}
}

func TestNoExceptions(t *testing.T) {
	tr := NewTranscriber(nil)
	if tr.HasException("كا") || tr.ExceptionsWithPrefix("") != nil {
		t.Fatalf("fresh transcriber must not have exceptions")
	}
	tr.AddException("", []string{"x"})
	if tr.ExceptionsWithPrefix("") != nil {
		t.Fatalf("empty word must not be registered")
	}
}
