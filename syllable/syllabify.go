package syllable

import (
	"strings"

	"github.com/EMarquer/phono/internal/tracing"
)

// Syllabify splits a phonetic word into syllables and returns the
// syllabified phonetic spelling and the syllabified CV pattern, syllables
// joined with the syllable separator.
//
// patternHint may carry the CV pattern of phon if the caller knows it
// already; a hint that is absent or does not match phon in length is
// recomputed from the phonology.
//
// A phon holding several pronunciation variants, joined with the variant
// separator, is split apart, each variant is syllabified on its own, and
// the results are rejoined with the variant separator. The hint does not
// apply across a split and is discarded.
func (sy *Syllabifier) Syllabify(phon, patternHint string) (string, string) {
	if strings.Contains(phon, sy.VariantSep) {
		parts := strings.Split(phon, sy.VariantSep)
		phons := make([]string, len(parts))
		patterns := make([]string, len(parts))
		for i, part := range parts {
			phons[i], patterns[i] = sy.Syllabify(part, "")
		}
		return strings.Join(phons, sy.VariantSep), strings.Join(patterns, sy.VariantSep)
	}
	runes := []rune(phon)
	pattern := []rune(patternHint)
	if len(pattern) != len(runes) {
		if patternHint != "" {
			tracing.Infof("CV pattern %q does not match %q, recomputing", patternHint, phon)
		}
		pattern = sy.pattern(runes)
	}
	s := borrowScratch()
	cs, err := sy.segment(runes, pattern, s.constituents)
	if err != nil {
		// cannot happen, pattern length is ensured above
		tracing.Errorf("segmentation of %q failed: %v", phon, err)
		returnScratch(s)
		return phon, string(pattern)
	}
	s.constituents = cs
	p, cv := Assemble(cs, sy.SyllableSep)
	returnScratch(s)
	return p, cv
}

// Syllables returns the syllables of a single pronunciation. The CV
// pattern is derived from the phonology.
func (sy *Syllabifier) Syllables(phon string) []Syllable {
	runes := []rune(phon)
	s := borrowScratch()
	cs, _ := sy.segment(runes, sy.pattern(runes), s.constituents)
	s.constituents = cs
	var sylls []Syllable
	scanner := NewScanner(cs)
	for scanner.Next() {
		sylls = append(sylls, scanner.Syllable())
	}
	returnScratch(s)
	return sylls
}

// pattern derives the CV pattern of a word from the phonology.
func (sy *Syllabifier) pattern(runes []rune) []rune {
	pattern := make([]rune, len(runes))
	for i, r := range runes {
		pattern[i] = rune(sy.phonology.CV(r))
	}
	return pattern
}
