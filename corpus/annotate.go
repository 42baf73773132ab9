package corpus

import (
	"strings"

	"github.com/EMarquer/phono/alphabet"
	"github.com/EMarquer/phono/syllable"
)

// An Annotator produces annotated records from lexicon entries. It holds
// the text and phonetic alphabets and a syllabifier over the phonetic
// one.
type Annotator struct {
	Text *alphabet.Set
	Phon *alphabet.Set
	Syll *syllable.Syllabifier
}

// NewAnnotator creates an Annotator over a text and a phonetic alphabet.
func NewAnnotator(text, phon *alphabet.Set) *Annotator {
	return &Annotator{Text: text, Phon: phon, Syll: syllable.New(phon)}
}

// Annotate computes the six columns of an entry: CV pattern of the word,
// CV pattern of the transcription (per variant), and the syllabified
// transcription with its syllabified CV pattern.
func (a *Annotator) Annotate(e Entry) Record {
	rec := Record{Word: e.Word, Phon: e.Phon}
	rec.WordPattern = a.Text.Pattern(e.Word)
	variants := strings.Split(e.Phon, a.Syll.VariantSep)
	patterns := make([]string, len(variants))
	for i, v := range variants {
		patterns[i] = a.Phon.Pattern(v)
	}
	rec.PhonPattern = strings.Join(patterns, a.Syll.VariantSep)
	rec.SyllPhon, rec.SyllPattern = a.Syll.Syllabify(e.Phon, rec.PhonPattern)
	return rec
}

// withLedgers returns an Annotator view recording unknown characters into
// the given ledgers. The alphabets' tables are shared; parallel workers
// each take a view of their own.
func (a *Annotator) withLedgers(text, phon *alphabet.Ledger) *Annotator {
	return NewAnnotator(a.Text.WithLedger(text), a.Phon.WithLedger(phon))
}
