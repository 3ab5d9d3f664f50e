/*
Package xsampa transcribes Arabic-script words into X-SAMPA phoneme strings.

Arabic orthography under-specifies pronunciation: short vowels are optional
diacritics, the letters yeh and waw read either as long vowels or as glide
consonants, and the definite article assimilates into a following "sun letter".
A Transcriber resolves these cases deterministically with a fixed pipeline of
rewrite passes over one symbol slot per input character:

	literal mapping → ending normalization → article assimilation
	               → glide disambiguation → epenthesis

Only the epenthesis pass changes the number of slots, by inserting a single
short vowel into a vowel-less first syllable.

Typical usage:

	tr := xsampa.NewTranscriber(xsampa.StandardTables())
	t, err := tr.TranscribeString("كتاب")
	if err != nil { ... }
	fmt.Println(t) // katA:b

Words too short for the positions the pipeline inspects are rejected with a
*WordError instead of faulting. Characters outside the tables are not an
error; they produce empty slots.

File formats are outside of the base package. Package tsvexceptions reads
exception lexicons, package batch streams word lists.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package xsampa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'xsampa'
func tracer() tracing.Trace {
	return tracing.Select("xsampa")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
