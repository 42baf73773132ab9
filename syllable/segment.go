package syllable

import (
	"fmt"

	"github.com/EMarquer/phono"
	"github.com/EMarquer/phono/internal/tracing"
)

// A Syllabifier splits phonetic words into syllables, consulting a
// phonology for CV categories and sonority ranks. The zero value is not
// usable; create Syllabifiers with New.
//
// A Syllabifier holds no per-word state. It may be shared between
// goroutines as long as its phonology may; alphabet sets with per-worker
// ledgers get one Syllabifier per worker instead.
type Syllabifier struct {
	SyllableSep string // joins the syllables of one pronunciation
	VariantSep  string // joins multiple pronunciation variants
	phonology   phono.Phonology
}

// New creates a Syllabifier on top of a phonology, with the default
// separators of package phono.
func New(phonology phono.Phonology) *Syllabifier {
	return &Syllabifier{
		SyllableSep: phono.SyllableSeparator,
		VariantSep:  phono.VariantSeparator,
		phonology:   phonology,
	}
}

// Segment partitions a phonetic word into onset, nucleus and coda
// constituents. pattern is the CV pattern of phon; both must hold the
// same number of characters or Segment fails. Clients usually do not
// call Segment directly but go through Syllabify, which derives the
// pattern itself.
//
// The word is consumed vowel by vowel. Every vowel becomes a nucleus of
// its own. Consonants before the first vowel form the initial onset,
// consonants after the last vowel the final coda. A consonant cluster
// between two vowels is split into a coda and the following onset:
// consonants move from the front of the cluster into the coda, one at a
// time, until the remainder is a legal onset (see LegalOnset). Emitted
// onsets and codas may be empty, empty constituents are recorded rather
// than dropped.
func (sy *Syllabifier) Segment(phon, pattern string) ([]Constituent, error) {
	return sy.segment([]rune(phon), []rune(pattern), nil)
}

// segment appends the constituents of a word to cs and returns it,
// reusing whatever capacity cs brings along.
func (sy *Syllabifier) segment(phon, pattern []rune, cs []Constituent) ([]Constituent, error) {
	if len(phon) != len(pattern) {
		return nil, fmt.Errorf("phonetic string %q and CV pattern %q differ in length: %d vs %d",
			string(phon), string(pattern), len(phon), len(pattern))
	}
	n := len(phon)
	if n == 0 {
		return cs, nil
	}
	i := nextNucleus(pattern, 0)
	cs = appendConstituent(cs, Onset, phon[:i], pattern[:i])
	for i < n {
		// pattern[i] == 'V'
		cs = appendConstituent(cs, Nucleus, phon[i:i+1], pattern[i:i+1])
		i++
		if i == n {
			break
		}
		j := nextNucleus(pattern, i)
		if j == n {
			// no vowel left, the rest of the word is a final coda
			cs = appendConstituent(cs, Coda, phon[i:], pattern[i:])
			break
		}
		// split the cluster phon[i:j] into coda and following onset
		k := i
		for k < j && !sy.legalOnset(phon[k:j]) {
			k++
		}
		cs = appendConstituent(cs, Coda, phon[i:k], pattern[i:k])
		cs = appendConstituent(cs, Onset, phon[k:j], pattern[k:j])
		i = j
	}
	tracing.Debugf("segmented %q into %d constituents", string(phon), len(cs))
	return cs, nil
}

// nextNucleus returns the position of the first vowel at or after i, or
// the pattern length if no vowel is left.
func nextNucleus(pattern []rune, i int) int {
	for i < len(pattern) && pattern[i] != rune(phono.Vowel) {
		i++
	}
	return i
}

// legalOnset checks cluster legality on the sonority ranks of the
// characters (see LegalOnset).
func (sy *Syllabifier) legalOnset(cluster []rune) bool {
	if len(cluster) < 2 {
		return true
	}
	ranks := make([]int, len(cluster))
	for i, r := range cluster {
		ranks[i] = sy.phonology.Class(r).Rank
	}
	return LegalOnset(ranks)
}

func appendConstituent(cs []Constituent, kind ConstituentKind, phon, pattern []rune) []Constituent {
	return append(cs, Constituent{Kind: kind, Phon: string(phon), Pattern: string(pattern)})
}
