package xsampa

import (
	"slices"
	"strings"

	"github.com/derekparker/trie"
)

// Transcription is the finished symbol slot array for one word.
// Slots may be empty; they contribute nothing to the transcription string.
type Transcription []string

// String concatenates all slots without separator.
//
// Example:
//
//	[ "k", "a", "t", "A:", "b" ] => "katA:b".
func (t Transcription) String() string {
	return strings.Join(t, "")
}

// Phonemes returns the non-empty slots of t.
func (t Transcription) Phonemes() []string {
	pp := make([]string, 0, len(t))
	for _, s := range t {
		if s != "" {
			pp = append(pp, s)
		}
	}
	return pp
}

// Transcriber converts single Arabic words into X-SAMPA transcriptions.
//
// A transcriber is safe for concurrent use by multiple goroutines, as long as
// no exceptions are added concurrently.
type Transcriber struct {
	tables     *Tables
	exceptions *trie.Trie // explicit transcriptions, e.g. "الله" => [ "?a", "l", "l", "A:", "h" ]
}

// NewTranscriber creates a transcriber working on tables. If tables is nil,
// StandardTables will be used.
func NewTranscriber(tables *Tables) *Transcriber {
	if tables == nil {
		tables = StandardTables()
	}
	return &Transcriber{tables: tables}
}

// Tables returns the lookup tables of tr.
func (tr *Transcriber) Tables() *Tables {
	return tr.tables
}

// TranscribeString transcribes word. It is a shortcut for
// Transcribe([]rune(word)).
func (tr *Transcriber) TranscribeString(word string) (Transcription, error) {
	return tr.Transcribe([]rune(word))
}

// Transcribe runs the resolution pipeline on word, after consulting the
// exception lexicon. The result holds one slot per character of word, plus
// one if a short vowel had to be inserted into the first syllable.
//
// Words without any character, words consisting of the definite article only,
// and words too short for epenthesis (e.g., a lone consonant) are rejected
// with a *WordError wrapping ErrMalformedWord.
func (tr *Transcriber) Transcribe(word []rune) (Transcription, error) {
	if len(word) == 0 {
		return nil, &WordError{Err: ErrEmptyWord}
	}
	if t, found := tr.exception(string(word)); found {
		tracer().Debugf("%q transcribed from exception: %v", string(word), t)
		return t, nil
	}
	r := &resolution{
		tables:  tr.tables,
		word:    word,
		slots:   make([]string, len(word), len(word)+1),
		article: HasArticle(word),
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	r.mapLiterals()
	r.normalizeEndings()
	if r.article {
		r.assimilateArticle()
	}
	r.disambiguateGlides()
	if err := r.insertEpenthesis(); err != nil {
		return nil, err
	}
	return Transcription(r.slots), nil
}

// --- Resolution pipeline ---------------------------------------------------

// resolution is the per-word state of the pipeline. Slots are aligned with
// word until epenthesis inserts one.
type resolution struct {
	tables  *Tables
	word    []rune
	slots   []string
	article bool
}

// start is the first slot of the word's own initial syllable, skipping the
// article.
func (r *resolution) start() int {
	if r.article {
		return 2
	}
	return 0
}

func (r *resolution) fail(pass string, index int) error {
	tracer().Debugf("%q: %s cannot access slot %d", string(r.word), pass, index)
	return &WordError{
		Word:  string(r.word),
		Pass:  pass,
		Index: index,
		Err:   ErrWordTooShort,
	}
}

// validate rejects words shorter than the positions the passes read
// unconditionally. Epenthesis reads ahead conditionally and checks for
// itself.
func (r *resolution) validate() error {
	if r.article && len(r.word) <= 2 {
		return r.fail("article assimilation", 2)
	}
	return nil
}

// mapLiterals assigns each slot its table reading. Table precedence is
// settled when building the tables: glides read as long vowels.
func (r *resolution) mapLiterals() {
	for i, ch := range r.word {
		r.slots[i] = r.tables.Literal(ch)
	}
	tracer().Debugf("%q: literal slots %v", string(r.word), r.slots)
}

// normalizeEndings fixes alef maqsura after hamza and tanween carried by a
// long vowel.
func (r *resolution) normalizeEndings() {
	last := len(r.word) - 1
	if last < 1 {
		return
	}
	final, carrier := r.word[last], r.tables.Classify(r.word[last-1])
	if final == AlefMaqsura && carrier == Hamza {
		r.slots[last-1] = glottalStop
		tracer().Debugf("%q: alef maqsura after hamza, slot %d = %q", string(r.word), last-1, glottalStop)
	}
	if r.tables.Classify(final) == CaseEnding && carrier == LongVowel {
		r.slots[last-1] = ""
		tracer().Debugf("%q: tanween elides long vowel in slot %d", string(r.word), last-1)
	}
}

// assimilateArticle rewrites slots 0…2 of article-prefixed words. Before a
// sun letter the article's "l" turns into a copy of the following consonant,
// which is then lengthened.
func (r *resolution) assimilateArticle() {
	assert(len(r.slots) > 2, "article assimilation on word of length < 3")
	r.slots[0] = articleHamza
	if r.tables.IsSunLetter(r.slots[2]) {
		r.slots[1] = r.slots[2]
		r.slots[2] = lengthMark
		tracer().Debugf("%q: article assimilated to sun letter %q", string(r.word), r.slots[1])
	}
}

// disambiguateGlides turns long-vowel readings into consonants at the start
// of the word and in front of another long vowel. The scan is a single pass
// from left to right.
func (r *resolution) disambiguateGlides() {
	s := r.start()
	if c, ok := r.tables.GlideConsonant(r.slots[s]); ok {
		tracer().Debugf("%q: word-initial %q => %q", string(r.word), r.slots[s], c)
		r.slots[s] = c
	}
	for i := s + 1; i < len(r.slots)-1; i++ {
		if _, ok := r.tables.GlideConsonant(r.slots[i+1]); !ok {
			continue
		}
		if c, ok := r.tables.GlideConsonant(r.slots[i]); ok {
			tracer().Debugf("%q: %q before long vowel => %q", string(r.word), r.slots[i], c)
			r.slots[i] = c
		}
	}
}

// insertEpenthesis adds a short "a" after an initial consonant which is not
// followed by any vowel. A glide following the inserted vowel becomes a
// consonant.
func (r *resolution) insertEpenthesis() error {
	s := r.start()
	if !r.tables.IsConsonantValue(r.slots[s]) {
		return nil
	}
	if s+1 >= len(r.slots) {
		return r.fail("epenthesis", s+1)
	}
	next := r.slots[s+1]
	if r.tables.IsShortVowelValue(next) || next == feminineEnding || next == longA {
		return nil
	}
	r.slots = slices.Insert(r.slots, s+1, epentheticVowel)
	if c, ok := r.tables.GlideConsonant(next); ok {
		r.slots[s+2] = c
	}
	tracer().Debugf("%q: epenthesis at slot %d => %v", string(r.word), s+1, r.slots)
	return nil
}
