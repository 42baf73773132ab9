package alphabet

// This file has been generated by internal/generator from the table files
// tables/letters_text.tab and tables/letters_phon.tab -- DO NOT EDIT !

import (
	"github.com/EMarquer/phono"
)

// Classification table rows of the written French alphabet.
var frenchTextEntries = []Entry{
	{Cat: phono.Vowel, Letters: "aeiouy"},
	{Cat: phono.Vowel, Letters: "àâéèêëîïôûùüÿ"},
	{Cat: phono.Vowel, Letters: "œæ"},
	{Cat: phono.Consonant, Letters: "bcdfghjklmnpqrstvwxz"},
	{Cat: phono.Consonant, Letters: "ç"},
	{Cat: phono.CV('N'), Letters: ";'-"},
}

// Classification table rows of the French phonetic alphabet. Characters
// cover IPA as well as the SAMPA notation common in French lexicons.
var frenchPhonEntries = []Entry{
	{Cat: phono.Consonant, Class: phono.Class{Rank: 0, Label: "stop"}, Letters: "pbtdkg"},
	{Cat: phono.Consonant, Class: phono.Class{Rank: 1, Label: "fricative"}, Letters: "fvszʃʒSZ"},
	{Cat: phono.Consonant, Class: phono.Class{Rank: 2, Label: "nasal"}, Letters: "mnɲŋNJ"},
	{Cat: phono.Consonant, Class: phono.Class{Rank: 3, Label: "liquid"}, Letters: "lʁRL"},
	{Cat: phono.Consonant, Class: phono.Class{Rank: 4, Label: "glide"}, Letters: "jwɥH8"},
	{Cat: phono.Vowel, Class: phono.Class{Rank: 5, Label: "vowel"}, Letters: "aeiouyøœɛɔəɑAEO@29"},
}
