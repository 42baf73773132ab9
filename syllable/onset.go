package syllable

// MinSonorityDistance is the minimal distance between the sonority ranks
// of adjacent onset characters. With the built-in scale a distance of 2
// admits onsets like /tʁ/ (stop + liquid) and rejects /st/ (fricative +
// stop), which instead splits between coda and onset.
var MinSonorityDistance = 2

// LegalOnset decides whether a consonant cluster with the given sonority
// ranks is admissible as a syllable onset: every pair of adjacent ranks
// must lie at least MinSonorityDistance apart. Clusters of length 0 or 1
// are vacuously legal.
//
// Unknown characters carry the rank sentinel phono.UnknownRank and
// participate with it; classification problems surface in the ledger of
// the alphabet, not here.
func LegalOnset(ranks []int) bool {
	for i := 1; i < len(ranks); i++ {
		d := ranks[i] - ranks[i-1]
		if d < 0 {
			d = -d
		}
		if d < MinSonorityDistance {
			return false
		}
	}
	return true
}
