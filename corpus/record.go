/*
Package corpus reads, annotates and writes pronunciation lexicons.

A lexicon is a line-oriented file with two space-separated columns, the
written word and its phonetic transcription. The phonetic column may hold
several pronunciation variants, joined with ';':

	abaisses abEs
	hérétique eʁetik
	poêle pwal;pwɛl

Annotation adds the CV patterns of both columns and the syllabified
pronunciation, giving the six-column annotated format:

	abaisses VCVVCCVC abEs VCVC a-bEs V-CVC

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021–22 E. Marquer
*/
package corpus

// An Entry is one line of a lexicon: a word and its phonetic
// transcription, the latter possibly holding several variants.
type Entry struct {
	Word string
	Phon string
}

// A Record is one line of an annotated corpus: the six columns produced
// for an Entry.
type Record struct {
	Word        string // written word
	WordPattern string // CV pattern of the word
	Phon        string // phonetic transcription, variants joined with ';'
	PhonPattern string // CV pattern per variant
	SyllPhon    string // syllabified transcription
	SyllPattern string // syllabified CV pattern
}
