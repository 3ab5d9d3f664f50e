package tsvexceptions

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/xsampa"
)

func TestReader(t *testing.T) {
	src := strings.NewReader("\uFEFF# comment\n" +
		"الله\t?a l l A: h\r\n" +
		"\n" +
		"هذا\th A: D A:\n")
	r := NewReader(src)
	word, slots, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if word != "الله" {
		t.Fatalf("word mismatch: got %q", word)
	}
	if !reflect.DeepEqual(slots, []string{"?a", "l", "l", "A:", "h"}) {
		t.Fatalf("slots mismatch: %q", slots)
	}
	word, slots, err = r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if word != "هذا" || !reflect.DeepEqual(slots, []string{"h", "A:", "D", "A:"}) {
		t.Fatalf("entry mismatch: %q => %q", word, slots)
	}
	if r.Line() != 4 {
		t.Fatalf("expected to be at line 4, is at %d", r.Line())
	}
	_, _, err = r.Next()
	if err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestReaderRejectsMalformedLines(t *testing.T) {
	for _, src := range []string{
		"الله ?a l l A: h\n",
		"\t?a\n",
		"الله\t  \n",
	} {
		_, _, err := NewReader(strings.NewReader(src)).Next()
		if err == nil || err == io.EOF {
			t.Fatalf("expected error for %q, got %v", src, err)
		}
		if !strings.Contains(err.Error(), "line 1") {
			t.Fatalf("error should carry line number: %v", err)
		}
	}
}

func TestLoadExceptionsFixture(t *testing.T) {
	f, err := os.Open(filepath.Join("..", "testdata", "lexicon.tsv"))
	if err != nil {
		t.Fatalf("cannot open fixture: %v", err)
	}
	defer f.Close()
	tr := xsampa.NewTranscriber(nil)
	if err := LoadExceptions(tr, f); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		word string
		want string
	}{
		{word: "الله", want: "?allA:h"},
		{word: "هذا", want: "hA:DA:"},
		{word: "كتاب", want: "kitA:b"}, // overrides the pipeline's katA:b
	}
	for _, tt := range tests {
		got, err := tr.TranscribeString(tt.word)
		if err != nil {
			t.Fatal(err)
		}
		if got.String() != tt.want {
			t.Fatalf("transcription mismatch for %q: got %q, want %q", tt.word, got, tt.want)
		}
	}
}
