package xsampa

import (
	"io"
	"slices"

	"github.com/derekparker/trie"
)

// ExceptionReader yields transcription exceptions one-by-one.
// It should return io.EOF when the stream is exhausted.
type ExceptionReader interface {
	Next() (word string, slots []string, err error)
}

// LoadExceptions loads exception entries from a streaming source.
func (tr *Transcriber) LoadExceptions(reader ExceptionReader) (err error) {
	n := 0
	for {
		var word string
		var slots []string
		word, slots, err = reader.Next()
		if err == io.EOF {
			tracer().Infof("loaded %d transcription exceptions", n)
			return nil
		} else if err != nil {
			break
		}
		tr.AddException(word, slots)
		n++
	}
	return err
}

// LoadExceptionList loads explicit exception entries from an in-memory map.
func (tr *Transcriber) LoadExceptionList(exceptions map[string][]string) {
	for word, slots := range exceptions {
		tr.AddException(word, slots)
	}
}

// AddException registers one explicit transcription. Transcribe returns it
// verbatim for word, bypassing the pipeline. Empty words are ignored.
func (tr *Transcriber) AddException(word string, slots []string) {
	if word == "" {
		return
	}
	if tr.exceptions == nil {
		tr.exceptions = trie.New()
	}
	tr.exceptions.Add(word, Transcription(slices.Clone(slots))) // replaces an existing entry
}

// HasException reports whether word has an explicit transcription.
func (tr *Transcriber) HasException(word string) bool {
	_, found := tr.exception(word)
	return found
}

// ExceptionsWithPrefix lists all exception words starting with prefix,
// in lexical order. An empty prefix lists all of them.
func (tr *Transcriber) ExceptionsWithPrefix(prefix string) []string {
	if tr.exceptions == nil {
		return nil
	}
	words := tr.exceptions.PrefixSearch(prefix)
	slices.Sort(words)
	return words
}

func (tr *Transcriber) exception(word string) (Transcription, bool) {
	if tr.exceptions == nil {
		return nil, false
	}
	node, found := tr.exceptions.Find(word)
	if !found {
		return nil, false
	}
	t, ok := node.Meta().(Transcription)
	if !ok {
		return nil, false
	}
	return slices.Clone(t), true
}
