// Package testdata holds small classification tables and corpus snippets
// for testing.
package testdata

// LettersText is a written-alphabet table file.
const LettersText = `# test table, written French
V aeiouy
V àâéèêëîïôûùüÿ
C bcdfghjklmnpqrstvwxz
C ç
N ;'-
`

// LettersPhon is a phonetic table file with phonologic classes.
const LettersPhon = `# test table, French phones
C stop pbtdkg
C fricative fvszʃʒSZ
C nasal mnɲŋ
C liquid lʁ
C glide jwɥ
V vowel aeiouyøœɛɔəEO@
`

// Lexicon is a two-column word/pronunciation file.
const Lexicon = `# word and pronunciation
abaisses abEs
hérétique eʁetik
poêle pwal;pwɛl
`

// Annotated is the annotated six-column form of Lexicon.
const Annotated = `abaisses VCVVCCVC abEs VCVC a-bEs V-CVC
hérétique CVCVCVCVV eʁetik VCVCVC e-ʁe-tik V-CV-CVC
poêle CVVCV pwal;pwɛl CCVC;CCVC pwal;pwɛl CCVC;CCVC
`
