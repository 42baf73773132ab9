package syllable

import "strings"

// A Scanner steps through the syllables of a segmented word. It provides
// an interface similar to bufio.Scanner: successive calls to Next() move
// to the next syllable, which is available through Syllable().
//
//	scanner := syllable.NewScanner(cs)
//	for scanner.Next() {
//		// do something with scanner.Syllable()
//	}
//
// A new syllable begins wherever an onset or nucleus immediately follows
// a coda or nucleus. Empty constituents contribute no characters, but
// they fully take part in these boundary transitions; a cluster split
// into an empty coda and a non-empty onset still separates two
// syllables.
type Scanner struct {
	constituents []Constituent
	pos          int
	active       Syllable
}

// NewScanner creates a Scanner over a constituent sequence, usually the
// output of Syllabifier.Segment.
func NewScanner(cs []Constituent) *Scanner {
	return &Scanner{constituents: cs}
}

// Next advances the scanner to the next syllable. It returns false when
// the constituents are exhausted.
func (sc *Scanner) Next() bool {
	if sc.pos >= len(sc.constituents) {
		return false
	}
	var phon, pattern strings.Builder
	c := sc.constituents[sc.pos]
	phon.WriteString(c.Phon)
	pattern.WriteString(c.Pattern)
	sc.pos++
	for sc.pos < len(sc.constituents) {
		prev, cur := c.Kind, sc.constituents[sc.pos].Kind
		if (prev == Coda || prev == Nucleus) && (cur == Onset || cur == Nucleus) {
			break
		}
		c = sc.constituents[sc.pos]
		phon.WriteString(c.Phon)
		pattern.WriteString(c.Pattern)
		sc.pos++
	}
	sc.active = Syllable{Phon: phon.String(), Pattern: pattern.String()}
	return true
}

// Syllable returns the syllable the scanner moved to with the most recent
// call to Next.
func (sc *Scanner) Syllable() Syllable {
	return sc.active
}

// Assemble flattens a constituent sequence into the syllabified phonetic
// spelling and CV pattern of the word, with sep joining the syllables.
// Both results break at identical character offsets.
func Assemble(cs []Constituent, sep string) (phon, pattern string) {
	var p, cv strings.Builder
	scanner := NewScanner(cs)
	first := true
	for scanner.Next() {
		if !first {
			p.WriteString(sep)
			cv.WriteString(sep)
		}
		first = false
		syll := scanner.Syllable()
		p.WriteString(syll.Phon)
		cv.WriteString(syll.Pattern)
	}
	return p.String(), cv.String()
}
