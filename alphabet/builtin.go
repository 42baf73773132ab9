package alphabet

import "sync"

// The built-in table sets are constructed lazily and exactly once. The
// canonical sets stay private; accessors hand out views with a fresh
// ledger, so that no two callers accumulate unknown characters into
// shared state.

var setupOnce sync.Once
var frenchText, frenchPhon *Set

func setupFrenchSets() {
	var err error
	if frenchText, err = NewSet("fr", frenchTextEntries); err != nil {
		panic("alphabet: built-in French text table is inconsistent: " + err.Error())
	}
	if frenchPhon, err = NewSet("fr-phon", frenchPhonEntries); err != nil {
		panic("alphabet: built-in French phonetic table is inconsistent: " + err.Error())
	}
}

// French returns the classification table set of the written French
// alphabet. The returned set records unknown characters into a ledger of
// its own.
func French() *Set {
	setupOnce.Do(setupFrenchSets)
	return frenchText.WithLedger(NewLedger())
}

// FrenchPhonetic returns the classification table set of the French
// phonetic alphabet, phonologic keys included. The returned set records
// unknown characters into a ledger of its own.
func FrenchPhonetic() *Set {
	setupOnce.Do(setupFrenchSets)
	return frenchPhon.WithLedger(NewLedger())
}
