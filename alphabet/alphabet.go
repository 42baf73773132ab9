package alphabet

/*
BSD License

Copyright (c) 2021–22, E. Marquer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/EMarquer/phono"
	"github.com/EMarquer/phono/internal/tracing"
)

//go:generate go run ./internal/generator

// Sonority is the sonority scale the phonologic classes are ranked on.
// Larger means more sonorous. Two consonants may only stand together in a
// syllable onset if their ranks differ by a minimal distance, see package
// syllable.
var Sonority = map[string]int{
	"stop":      0,
	"fricative": 1,
	"nasal":     2,
	"liquid":    3,
	"glide":     4,
	"vowel":     5,
}

// ClassFor returns the phonologic key for a class label, ranked on the
// Sonority scale. Labels missing from the scale yield phono.Unclassified.
func ClassFor(label string) phono.Class {
	if rank, ok := Sonority[label]; ok {
		return phono.Class{Rank: rank, Label: label}
	}
	return phono.Unclassified
}

// Entry is one row of a classification table: a set of characters together
// with their CV category and, for phonetic alphabets, their phonologic key.
type Entry struct {
	Cat     phono.CV    // Consonant, Vowel, or any other category
	Class   phono.Class // phonologic key of the row; zero for text rows
	Letters string      // the characters of this row
}

// Set is the classification table set of one alphabet. It answers, for a
// single character, the CV category and the phonologic key.
//
// A set is built once and immutable afterwards, so lookups may run
// concurrently. The two exceptions are the ledger of unknown characters,
// which each goroutine isolates with WithLedger, and resolver memoization,
// which restricts resolver-backed sets to a single goroutine.
type Set struct {
	name    string
	cv      map[rune]phono.CV
	classes map[rune]phono.Class
	keyed   bool // the set carries phonologic keys
	fold    bool // lower-case characters before lookup
	ledger  *Ledger
	resolve Resolver
}

// NewSet builds a classification table set from table rows. Rows of the
// same category are unioned; a character appearing with two different
// categories or two different phonologic keys is an error.
//
// Rows with category Consonant or Vowel classify their characters. Rows
// with any other category declare their characters as non-letters, which
// map to themselves.
//
// A set without phonologic keys describes spelling and folds characters to
// lower case on lookup; a set with keys is case-sensitive, as phonetic
// notations distinguish case.
func NewSet(name string, entries []Entry) (*Set, error) {
	set := &Set{
		name:    name,
		cv:      make(map[rune]phono.CV),
		classes: make(map[rune]phono.Class),
		ledger:  NewLedger(),
	}
	for _, e := range entries {
		if e.Class.Known() {
			set.keyed = true
			break
		}
	}
	set.fold = !set.keyed
	for _, e := range entries {
		for _, r := range e.Letters {
			if set.fold {
				r = unicode.ToLower(r)
			}
			cat := e.Cat
			if cat != phono.Consonant && cat != phono.Vowel {
				cat = phono.CV(r)
			}
			if have, ok := set.cv[r]; ok && have != cat {
				return nil, fmt.Errorf("alphabet %q: character %q declared as %v and as %v",
					name, r, have, cat)
			}
			if have, ok := set.classes[r]; ok && e.Class.Known() && have != e.Class {
				return nil, fmt.Errorf("alphabet %q: character %q in classes %q and %q",
					name, r, have.Label, e.Class.Label)
			}
			set.cv[r] = cat
			if e.Class.Known() {
				set.classes[r] = e.Class
			}
		}
	}
	tracing.P("alphabet", name).Debugf("table set with %d characters", len(set.cv))
	return set, nil
}

// Name returns the name the set was built with.
func (s *Set) Name() string {
	return s.name
}

// CV returns the CV category of a character: Consonant or Vowel for
// classified characters, the character itself for declared non-letters.
// Characters missing from the tables are handed to the resolver, if one is
// set; without an answer they are recorded in the ledger and map to
// themselves.
func (s *Set) CV(r rune) phono.CV {
	if s.fold {
		r = unicode.ToLower(r)
	}
	if cv, ok := s.cv[r]; ok {
		return cv
	}
	if s.resolve != nil {
		if cv, class, ok := s.resolve(r); ok {
			s.learn(r, cv, class)
			return cv
		}
	}
	if s.ledger.record(r) {
		tracing.P("alphabet", s.name).Infof("unknown character %q", r)
	}
	return phono.CV(r)
}

// Class returns the phonologic key of a character, or phono.Unclassified
// if the set does not know one. Sets without phonologic keys answer
// phono.Unclassified for every character.
func (s *Set) Class(r rune) phono.Class {
	if s.fold {
		r = unicode.ToLower(r)
	}
	if class, ok := s.classes[r]; ok {
		return class
	}
	if !s.keyed {
		return phono.Unclassified
	}
	if _, ok := s.cv[r]; ok {
		return phono.Unclassified
	}
	if s.resolve != nil {
		if cv, class, ok := s.resolve(r); ok {
			s.learn(r, cv, class)
			if class.Known() {
				return class
			}
			return phono.Unclassified
		}
	}
	if s.ledger.record(r) {
		tracing.P("alphabet", s.name).Infof("unknown character %q", r)
	}
	return phono.Unclassified
}

// Rank returns the sonority rank of a character, or phono.UnknownRank.
func (s *Set) Rank(r rune) int {
	class := s.Class(r)
	if !class.Known() {
		return phono.UnknownRank
	}
	return class.Rank
}

// Label returns the phonologic class label of a character, or the empty
// string.
func (s *Set) Label(r rune) string {
	return s.Class(r).Label
}

// Pattern returns the CV pattern of a word: the concatenation of the CV
// categories of its characters. The pattern holds exactly one category per
// character of the input.
func (s *Set) Pattern(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		b.WriteRune(rune(s.CV(r)))
	}
	return b.String()
}

// Ledger returns the ledger the set records unknown characters into.
func (s *Set) Ledger() *Ledger {
	return s.ledger
}

// WithLedger returns a view of the set recording unknown characters into
// ledger. The view shares the tables with s; goroutines annotating in
// parallel each take their own view.
func (s *Set) WithLedger(ledger *Ledger) *Set {
	view := *s
	view.ledger = ledger
	return &view
}

// WithResolver returns a view of the set that consults resolve before
// giving up on an unknown character. Answers are memoized into the shared
// tables, so resolver views must stay within a single goroutine.
func (s *Set) WithResolver(resolve Resolver) *Set {
	view := *s
	view.resolve = resolve
	return &view
}

// HasResolver reports whether the set consults a resolver for unknown
// characters.
func (s *Set) HasResolver() bool {
	return s.resolve != nil
}

// learn memoizes a resolver answer.
func (s *Set) learn(r rune, cv phono.CV, class phono.Class) {
	s.cv[r] = cv
	if class.Known() {
		s.classes[r] = class
	}
	tracing.P("alphabet", s.name).Infof("learned character %q as %v", r, cv)
}
