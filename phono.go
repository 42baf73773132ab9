package phono

// CV is the consonant/vowel category of a single character. Classified
// characters are categorized as Consonant or Vowel. Characters declared as
// non-letters, as well as characters missing from the tables, act as a
// category of their own: their CV category is the character itself.
type CV rune

// The two classifying CV categories.
const (
	Consonant CV = 'C'
	Vowel     CV = 'V'
)

func (cv CV) String() string {
	return string(rune(cv))
}

// UnknownRank is the sonority rank of characters without a phonologic key.
const UnknownRank = -1

// Class is the phonologic key of a phonetic character: the name of its
// phonetic class and the position of that class on the sonority scale.
type Class struct {
	Rank  int    // position on the sonority scale, or UnknownRank
	Label string // name of the phonetic class; empty if unknown
}

// Unclassified is the phonologic key of characters missing from the tables.
var Unclassified = Class{Rank: UnknownRank}

// Known reports whether c carries a usable phonologic key. The zero Class
// does not.
func (c Class) Known() bool {
	return c.Label != ""
}

// Phonology is the interface through which the syllabification engine
// consults an alphabet. The canonical implementation is alphabet.Set.
type Phonology interface {
	CV(r rune) CV       // CV category of a character
	Class(r rune) Class // phonologic key of a character
}
