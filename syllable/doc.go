/*
Package syllable splits phonetic words into syllables.

Syllable boundaries are computed from the CV pattern of a word and from the
sonority ranks of its characters. The segmentation follows the classic
phonological template: every syllable has a single vowel nucleus, preceded
by an onset and followed by a coda, both possibly empty. Consonants between
two nuclei are attached to the following onset as far as the sonority
constraint permits (the maximal onset principle): two consonants may stand
together in an onset only if their sonority ranks lie at least
MinSonorityDistance apart.

Typical Usage

A Syllabifier holds the phonology to consult, usually an alphabet.Set, and
drives segmentation and assembly:

	phon := alphabet.FrenchPhonetic()
	syll := syllable.New(phon)
	s, cv := syll.Syllabify("abEs", "")
	// s == "a-bEs", cv == "V-CVC"

Clients needing the individual syllables use a Scanner, which provides an
interface similar to bufio.Scanner over the constituents of a word:

	cs, err := syll.Segment("pomiE", "CVCVV")
	scanner := syllable.NewScanner(cs)
	for scanner.Next() {
		// do something with scanner.Syllable()
	}

A phonetic field holding several pronunciation variants, separated by ';',
is handled by Syllabify as a whole: each variant is syllabified on its own
and the results are rejoined.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021–22 E. Marquer
*/
package syllable
