package xsampa

import (
	"fmt"
	"sync"

	"github.com/npillmayer/xsampa/runemap"
)

// Class is the orthographic class of a source character.
type Class uint8

// Character classes. A character has exactly one class after classification.
const (
	Unrecognized Class = iota
	Consonant
	ShortVowel
	LongVowel
	Hamza      // letter combined with hamza, e.g. alef with hamza above
	Diacritic  // non-vowel mark: shadda, sukun
	CaseEnding // tanween
)

func (c Class) String() string {
	switch c {
	case Consonant:
		return "consonant"
	case ShortVowel:
		return "short-vowel"
	case LongVowel:
		return "long-vowel"
	case Hamza:
		return "hamza"
	case Diacritic:
		return "diacritic"
	case CaseEnding:
		return "case-ending"
	}
	return "unrecognized"
}

// Letters with a role of their own in the rewrite rules.
const (
	Alef        = 'ا'
	Lam         = 'ل'
	AlefMaqsura = 'ى'
)

// Fixed tokens produced by the rewrite passes.
const (
	glottalStop     = "?"
	lengthMark      = ":"
	epentheticVowel = "a"
	articleHamza    = "?a"
	longA           = "A:"
	feminineEnding  = "a" // reading of teh marbuta
)

// TableEntry maps one source character to its X-SAMPA phoneme.
type TableEntry struct {
	Char    rune
	Phoneme string
}

var consonantTable = []TableEntry{
	{'ب', "b"}, {'ت', "t"}, {'ث', "T"}, {'ج', "dZ"},
	{'ح', `X\`}, {'خ', "x"}, {'د', "d"}, {'ذ', "D"},
	{'ر', "4"}, {'ز', "z"}, {'س', "s"}, {'ش', "S"},
	{'ص', `s_?\`}, {'ض', `d_?\`}, {'ط', `t_?\`}, {'ظ', `T_?\`},
	{'ع', `?\`}, {'غ', "G"}, {'ف', "f"}, {'ق', "q"},
	{'ك', "k"}, {'ل', "l"}, {'م', "m"}, {'ن', "n"},
	{'ه', "h"}, {'ي', "y"}, {'و', "w"}, {'ة', feminineEnding},
}

// fatha, damma, kasra
var shortVowelTable = []TableEntry{
	{'\u064E', "a"}, {'\u064F', "u"}, {'\u0650', "I"},
}

var longVowelTable = []TableEntry{
	{Alef, longA}, {'ي', "i:"}, {'و', "u:"}, {AlefMaqsura, longA},
}

var hamzaTable = []TableEntry{
	{'أ', "?a"}, {'ؤ', "?u"}, {'إ', "?I"},
}

// shadda, sukun
var diacriticTable = []TableEntry{
	{'\u0651', lengthMark}, {'\u0652', ""},
}

var tanweenTable = []TableEntry{
	{'\u064B', "an"}, {'\u064C', "un"}, {'\u064D', "in"},
}

var sunLetters = []string{
	"t", "T", "dZ", "D", "4", "z", "s", "S", `s_?\`, `d_?\`, `t_?\`, `T_?\`, "l", "n",
}

var glideConsonants = map[string]string{
	longA: "?a",
	"u:":  "w",
	"i:":  "y",
}

// --- Tables ----------------------------------------------------------------

type letter struct {
	class   Class
	phoneme string
	glide   bool // has a consonant reading besides its long-vowel reading
}

// Tables holds the read-only lookup data of the transcription pipeline.
//
// Tables are built once and never mutated afterwards; one instance may be
// shared by any number of transcribers and goroutines.
type Tables struct {
	index          runemap.Map
	letters        []letter // indexed by runemap ID, slot 0 unused
	consonants     map[string]bool
	shortVowels    map[string]bool
	sunLetters     map[string]bool
	glideConsonant map[string]string
}

var (
	standardOnce   sync.Once
	standardTables *Tables
)

// StandardTables returns the shared tables for Modern Standard Arabic.
func StandardTables() *Tables {
	standardOnce.Do(func() {
		standardTables = buildTables()
	})
	return standardTables
}

func buildTables() *Tables {
	t := &Tables{
		letters:        make([]letter, 1, 48),
		consonants:     phonemeSet(consonantTable),
		shortVowels:    phonemeSet(shortVowelTable),
		sunLetters:     make(map[string]bool, len(sunLetters)),
		glideConsonant: make(map[string]string, len(glideConsonants)),
	}
	for _, s := range sunLetters {
		t.sunLetters[s] = true
	}
	for k, v := range glideConsonants {
		t.glideConsonant[k] = v
	}
	// precedence: the first table to claim a character wins
	for _, group := range []struct {
		class   Class
		entries []TableEntry
	}{
		{Consonant, consonantTable},
		{Hamza, hamzaTable},
		{Diacritic, diacriticTable},
		{CaseEnding, tanweenTable},
		{ShortVowel, shortVowelTable},
	} {
		for _, e := range group.entries {
			if t.index.Has(e.Char) {
				continue
			}
			t.add(e.Char, letter{class: group.class, phoneme: e.Phoneme})
		}
	}
	// the long-vowel reading always overrides, turning w and y into glides
	for _, e := range longVowelTable {
		id := t.index.Lookup(e.Char)
		if id == 0 {
			t.add(e.Char, letter{class: LongVowel, phoneme: e.Phoneme})
			continue
		}
		prev := t.letters[id]
		t.letters[id] = letter{
			class:   LongVowel,
			phoneme: e.Phoneme,
			glide:   prev.class == Consonant,
		}
	}
	tracer().Debugf("transcription tables: %d characters on %d page(s)",
		t.index.Len(), t.index.NumPages())
	return t
}

func (t *Tables) add(r rune, l letter) {
	assert(len(t.letters) < 0xFFFF, "too many table entries")
	id := uint16(len(t.letters))
	t.letters = append(t.letters, l)
	if !t.index.Set(r, id) {
		panic(fmt.Sprintf("table character %U outside the BMP", r))
	}
}

func phonemeSet(entries []TableEntry) map[string]bool {
	set := make(map[string]bool, len(entries))
	for _, e := range entries {
		set[e.Phoneme] = true
	}
	return set
}

func (t *Tables) lookup(r rune) letter {
	if id := t.index.Lookup(r); id != 0 {
		return t.letters[id]
	}
	return letter{}
}

// Classify returns the class of r. Glide letters classify as LongVowel.
func (t *Tables) Classify(r rune) Class {
	return t.lookup(r).class
}

// Literal returns the first-pass phoneme for r, or "" for characters
// which contribute no phoneme of their own.
func (t *Tables) Literal(r rune) string {
	return t.lookup(r).phoneme
}

// IsGlide reports whether r reads either as a long vowel or as a consonant.
func (t *Tables) IsGlide(r rune) bool {
	return t.lookup(r).glide
}

// IsSunLetter reports whether phoneme assimilates the article's "l".
func (t *Tables) IsSunLetter(phoneme string) bool {
	return t.sunLetters[phoneme]
}

// GlideConsonant returns the consonant reading of a long-vowel token.
func (t *Tables) GlideConsonant(phoneme string) (string, bool) {
	c, ok := t.glideConsonant[phoneme]
	return c, ok
}

// IsConsonantValue reports whether phoneme is produced by the consonant table.
func (t *Tables) IsConsonantValue(phoneme string) bool {
	return t.consonants[phoneme]
}

// IsShortVowelValue reports whether phoneme is a short-vowel reading.
func (t *Tables) IsShortVowelValue(phoneme string) bool {
	return t.shortVowels[phoneme]
}

// HasArticle reports whether word starts with the definite article.
func HasArticle(word []rune) bool {
	return len(word) >= 2 && word[0] == Alef && word[1] == Lam
}
