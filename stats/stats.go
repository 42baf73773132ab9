/*
Package stats counts syllable shapes in an annotated corpus.

Three shape questions are answered over the syllabified columns of an
annotated corpus: the frequency of CV syllable shapes, of phonologic
class shapes, and of phonetic syllable shapes. Each extractor yields the
flat list of syllable shapes, duplicates kept; a Tally counts them and
ranks the most frequent ones.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021–22 E. Marquer
*/
package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	"github.com/EMarquer/phono/alphabet"
	"github.com/EMarquer/phono/corpus"
)

// A Freq is one entry of a frequency ranking: a shape and how often it
// occurred.
type Freq struct {
	Shape string
	Count int
}

// A Tally counts shape occurrences. Shapes are kept sorted, so totals and
// rankings come out deterministic.
type Tally struct {
	counts *treemap.Map // shape -> count
	total  int
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	return &Tally{counts: treemap.NewWithStringComparator()}
}

// Add counts one occurrence of a shape.
func (t *Tally) Add(shape string) {
	count := 0
	if have, ok := t.counts.Get(shape); ok {
		count = have.(int)
	}
	t.counts.Put(shape, count+1)
	t.total++
}

// AddAll counts one occurrence of every shape in the list.
func (t *Tally) AddAll(shapes []string) {
	for _, shape := range shapes {
		t.Add(shape)
	}
}

// Total returns the number of occurrences counted, duplicates included.
func (t *Tally) Total() int {
	return t.total
}

// Distinct returns the number of different shapes counted.
func (t *Tally) Distinct() int {
	return t.counts.Size()
}

// Top returns the n most frequent shapes, most frequent first. Shapes
// with equal counts are ordered alphabetically. n larger than the number
// of distinct shapes returns all of them.
func (t *Tally) Top(n int) []Freq {
	ranking := arraylist.New()
	it := t.counts.Iterator()
	for it.Next() {
		ranking.Add(Freq{Shape: it.Key().(string), Count: it.Value().(int)})
	}
	ranking.Sort(func(a, b interface{}) int {
		fa, fb := a.(Freq), b.(Freq)
		if fa.Count != fb.Count {
			return fb.Count - fa.Count
		}
		return utils.StringComparator(fa.Shape, fb.Shape)
	})
	if n > ranking.Size() || n < 0 {
		n = ranking.Size()
	}
	top := make([]Freq, n)
	for i := 0; i < n; i++ {
		f, _ := ranking.Get(i)
		top[i] = f.(Freq)
	}
	return top
}

// PatternShapes extracts the CV shape of every syllable in the records,
// duplicates kept. The separators must be the ones the corpus was
// annotated with, usually phono.VariantSeparator and
// phono.SyllableSeparator.
func PatternShapes(records []corpus.Record, variantSep, syllableSep string) []string {
	var shapes []string
	for _, rec := range records {
		shapes = append(shapes, splitSyllables(rec.SyllPattern, variantSep, syllableSep)...)
	}
	return shapes
}

// PhonShapes extracts the phonetic shape of every syllable in the
// records, duplicates kept. See PatternShapes for the separators.
func PhonShapes(records []corpus.Record, variantSep, syllableSep string) []string {
	var shapes []string
	for _, rec := range records {
		shapes = append(shapes, splitSyllables(rec.SyllPhon, variantSep, syllableSep)...)
	}
	return shapes
}

// ClassShapes extracts the phonologic class shape of every syllable in
// the records: each character of a phonetic syllable is replaced by its
// class label, labels joined with '.'. Characters without a class keep
// their own spelling. See PatternShapes for the separators.
func ClassShapes(records []corpus.Record, phon *alphabet.Set, variantSep, syllableSep string) []string {
	var shapes []string
	for _, rec := range records {
		for _, syll := range splitSyllables(rec.SyllPhon, variantSep, syllableSep) {
			labels := make([]string, 0, len(syll))
			for _, r := range syll {
				label := phon.Label(r)
				if label == "" {
					label = string(r)
				}
				labels = append(labels, label)
			}
			shapes = append(shapes, strings.Join(labels, "."))
		}
	}
	return shapes
}

// Report writes a ranked frequency report for a tally: a title line, the
// totals, and the n most frequent shapes with their counts.
func Report(w io.Writer, title string, t *Tally, n int) error {
	_, err := fmt.Fprintf(w, "%s\n(total forms: %d, total different forms: %d)\n",
		title, t.Total(), t.Distinct())
	if err != nil {
		return err
	}
	for _, f := range t.Top(n) {
		if _, err = fmt.Fprintf(w, "%6d  %s\n", f.Count, f.Shape); err != nil {
			return err
		}
	}
	return nil
}

// splitSyllables splits a syllabified field into its syllables, variants
// first, syllables second.
func splitSyllables(field, variantSep, syllableSep string) []string {
	var sylls []string
	for _, variant := range strings.Split(field, variantSep) {
		sylls = append(sylls, strings.Split(variant, syllableSep)...)
	}
	return sylls
}
