package alphabet

import "github.com/EMarquer/phono"

// A Resolver is a callback a Set may consult about a character missing from
// its tables, before the character is given up on and recorded in the
// ledger. A resolver answers the CV category of the character, optionally a
// phonologic key, and whether it had an answer at all.
//
// The typical resolver prompts a human; the original workflow of this
// package had a linguist classify every character the tables did not cover.
// Such a resolver lives at the application boundary, for instance in
// cmd/phono, and is injected with Set.WithResolver. The library itself
// never reads from a console.
//
// Answers are memoized into the set consulted, so sets carrying a resolver
// are restricted to a single goroutine. The corpus runner refuses to
// parallelize over resolver-backed sets for this reason.
type Resolver func(r rune) (phono.CV, phono.Class, bool)
