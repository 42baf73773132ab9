package syllable

import "fmt"

// ConstituentKind is the position a constituent takes within a syllable.
type ConstituentKind int8

// The three constituent kinds of the syllable template.
const (
	Onset ConstituentKind = iota
	Nucleus
	Coda
)

func (k ConstituentKind) String() string {
	switch k {
	case Onset:
		return "Onset"
	case Nucleus:
		return "Nucleus"
	case Coda:
		return "Coda"
	}
	return fmt.Sprintf("ConstituentKind(%d)", k)
}

// A Constituent is a typed slice of a word: an onset, nucleus or coda,
// carrying both the phonetic spelling and the CV pattern of its
// characters. Onsets and codas may be empty; a word starting with a vowel
// has an empty initial onset, recorded rather than omitted.
type Constituent struct {
	Kind    ConstituentKind
	Phon    string // phonetic spelling
	Pattern string // CV pattern, position-aligned with Phon
}

// IsEmpty reports whether the constituent spans no characters.
func (c Constituent) IsEmpty() bool {
	return len(c.Phon) == 0
}

func (c Constituent) String() string {
	return fmt.Sprintf("%s[%s|%s]", c.Kind, c.Phon, c.Pattern)
}

// A Syllable is a maximal run of constituents around a single nucleus,
// flattened to its phonetic spelling and its CV pattern.
type Syllable struct {
	Phon    string
	Pattern string
}

func (s Syllable) String() string {
	return fmt.Sprintf("[%s|%s]", s.Phon, s.Pattern)
}
