package alphabet

import (
	"fmt"
	"io"

	"github.com/EMarquer/phono"
	"github.com/EMarquer/phono/internal/tabparse"
)

// Load reads a classification table set from a tabular table file.
//
// Each data line is one table row. Text rows hold two fields, category and
// letters; phonetic rows hold three fields, category, phonologic class and
// letters:
//
//	V aeiouy
//	C liquid lʁ
//
// The category field is a single character: 'C' for consonants, 'V' for
// vowels, anything else declares its letters as non-letters. '#' starts a
// comment, blank lines carry no data. A file may not mix two-field and
// three-field rows.
//
// Classes named on the Sonority scale get their rank from the scale; other
// classes are ranked by first appearance, after the scale.
func Load(r io.Reader, name string) (*Set, error) {
	var entries []Entry
	var perr error
	fields := 0
	ranks := newRankTable()
	err := tabparse.Parse(r, func(token *tabparse.Token) {
		if perr != nil {
			return
		}
		if fields == 0 {
			fields = len(token.Fields)
		}
		if len(token.Fields) != fields || fields < 2 || fields > 3 {
			perr = fmt.Errorf("table %q, line %d: expected %d fields, have %d",
				name, token.LineNo, fields, len(token.Fields))
			return
		}
		cat := []rune(token.Field(1))
		if len(cat) != 1 {
			perr = fmt.Errorf("table %q, line %d: category must be a single character, have %q",
				name, token.LineNo, token.Field(1))
			return
		}
		entry := Entry{Cat: phono.CV(cat[0])}
		if fields == 3 {
			entry.Class = ranks.classFor(token.Field(2))
			entry.Letters = token.Field(3)
		} else {
			entry.Letters = token.Field(2)
		}
		entries = append(entries, entry)
	})
	if err != nil {
		return nil, err
	}
	if perr != nil {
		return nil, perr
	}
	return NewSet(name, entries)
}

// rankTable assigns sonority ranks to class labels while a table file is
// read. Labels on the Sonority scale keep their scale rank; other labels
// get the next free rank in order of first appearance.
type rankTable struct {
	assigned map[string]int
	next     int
}

func newRankTable() *rankTable {
	t := &rankTable{assigned: make(map[string]int)}
	for _, rank := range Sonority {
		if rank >= t.next {
			t.next = rank + 1
		}
	}
	return t
}

func (t *rankTable) classFor(label string) phono.Class {
	if rank, ok := t.assigned[label]; ok {
		return phono.Class{Rank: rank, Label: label}
	}
	rank, ok := Sonority[label]
	if !ok {
		rank = t.next
		t.next++
	}
	t.assigned[label] = rank
	return phono.Class{Rank: rank, Label: label}
}
