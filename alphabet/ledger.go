package alphabet

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// A Ledger collects the characters an alphabet could not classify. Failed
// lookups record into it as a side effect; recording is deduplicating, a
// character is held once no matter how often it missed the tables.
//
// Ledgers are diagnostic. A corpus run keeps going when characters are
// unknown and reports the collected ledger at the end.
//
// A ledger is not safe for concurrent use. Goroutines working in parallel
// each record into a ledger of their own (see Set.WithLedger) and merge
// them when done.
type Ledger struct {
	runes *treeset.Set
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{runes: treeset.NewWith(utils.RuneComparator)}
}

// record adds a character to the ledger. It reports whether the character
// has not been recorded before.
func (l *Ledger) record(r rune) bool {
	if l.runes.Contains(r) {
		return false
	}
	l.runes.Add(r)
	return true
}

// Len returns the number of distinct characters recorded.
func (l *Ledger) Len() int {
	return l.runes.Size()
}

// Contains reports whether a character has been recorded.
func (l *Ledger) Contains(r rune) bool {
	return l.runes.Contains(r)
}

// Runes returns the recorded characters in ascending code-point order.
func (l *Ledger) Runes() []rune {
	runes := make([]rune, 0, l.runes.Size())
	it := l.runes.Iterator()
	for it.Next() {
		runes = append(runes, it.Value().(rune))
	}
	return runes
}

// Merge adds all characters recorded in other to l.
func (l *Ledger) Merge(other *Ledger) {
	it := other.runes.Iterator()
	for it.Next() {
		l.runes.Add(it.Value())
	}
}

// String returns the recorded characters, quoted and space separated, in
// ascending code-point order.
func (l *Ledger) String() string {
	var b strings.Builder
	for i, r := range l.Runes() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('\'')
		b.WriteRune(r)
		b.WriteByte('\'')
	}
	return b.String()
}
