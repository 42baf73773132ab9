/*
Package phono is about classifying characters of written and phonetic text
and about splitting phonetic words into syllables.

Description

Linguists annotating a corpus frequently work with two parallel views of
every word: the spelling and a phonetic transcription. Both views get
abstracted into a CV skeleton, where each character is replaced by 'C' for
a consonant or 'V' for a vowel ("bonjour" becomes "CVCCVVC"). The phonetic
view additionally gets split into syllables.

Syllable boundaries are computed with a sonority scale. Every phonetic
character belongs to a phonologic class (stop, fricative, nasal, liquid,
glide, vowel) and the classes are ranked by sonority. A sequence of
consonants may start a syllable only if the sonority of its characters
rises steeply enough. Within that constraint, consonants between two
vowels are attached to the following syllable as far as possible; this
is commonly known as the maximal onset principle.

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

Contents

The work is done in the sub-packages of phono. Package alphabet holds the
classification tables of an alphabet, reports the CV category and the
phonologic key of characters, and keeps a ledger of characters the tables
do not know. Package syllable implements the syllabification engine on top
of an alphabet. Package corpus reads and writes annotated corpora and runs
the annotation over many words, package stats counts syllable shapes in an
annotated corpus, and cmd/phono wraps everything into a command line tool.

Base package phono provides the vocabulary shared by those packages: the
CV category type, the phonologic key, and the Phonology interface through
which the syllabification engine consults an alphabet.
*/
package phono

// Default separators of the syllabified output format. A syllabified word
// reads like "a-bɛs"; a word with several pronunciations like "pwal;pwɛl".
const (
	SyllableSeparator = "-" // joins the syllables of one pronunciation
	VariantSeparator  = ";" // joins multiple pronunciation variants
)
