package corpus_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/EMarquer/phono"
	"github.com/EMarquer/phono/alphabet"
	"github.com/EMarquer/phono/corpus"
	"github.com/EMarquer/phono/internal/testdata"
	"github.com/EMarquer/phono/internal/tracing"
)

func TestReadLexicon(t *testing.T) {
	tracing.SetTestingLog(t)
	entries, err := corpus.ReadLexicon(strings.NewReader(testdata.Lexicon))
	if err != nil {
		t.Fatalf("reading the lexicon failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, have %d", len(entries))
	}
	if entries[2].Word != "poêle" || entries[2].Phon != "pwal;pwɛl" {
		t.Errorf("last entry should be poêle / pwal;pwɛl, is %v", entries[2])
	}
}

func TestReadLexiconRejectsBadColumns(t *testing.T) {
	tracing.SetTestingLog(t)
	if _, err := corpus.ReadLexicon(strings.NewReader("word\n")); err == nil {
		t.Error("a one-column line should fail to read")
	}
}

func TestReadLexiconNormalizesNFC(t *testing.T) {
	tracing.SetTestingLog(t)
	// 'é' as 'e' + combining acute accent
	entries, err := corpus.ReadLexicon(strings.NewReader("café kafe\n"))
	if err != nil {
		t.Fatalf("reading failed: %v", err)
	}
	if entries[0].Word != "café" {
		t.Errorf("combining accents should be composed, word is %q", entries[0].Word)
	}
}

func TestAnnotate(t *testing.T) {
	tracing.SetTestingLog(t)
	annotator := corpus.NewAnnotator(alphabet.French(), alphabet.FrenchPhonetic())
	rec := annotator.Annotate(corpus.Entry{Word: "abaisses", Phon: "abEs"})
	want := corpus.Record{
		Word:        "abaisses",
		WordPattern: "VCVVCCVC",
		Phon:        "abEs",
		PhonPattern: "VCVC",
		SyllPhon:    "a-bEs",
		SyllPattern: "V-CVC",
	}
	if rec != want {
		t.Errorf("expected record %v, have %v", want, rec)
	}
}

func TestAnnotateVariants(t *testing.T) {
	tracing.SetTestingLog(t)
	annotator := corpus.NewAnnotator(alphabet.French(), alphabet.FrenchPhonetic())
	rec := annotator.Annotate(corpus.Entry{Word: "poêle", Phon: "pwal;pwɛl"})
	if rec.PhonPattern != "CCVC;CCVC" {
		t.Errorf("per-variant pattern should be CCVC;CCVC, is %s", rec.PhonPattern)
	}
	if rec.SyllPhon != "pwal;pwɛl" || rec.SyllPattern != "CCVC;CCVC" {
		t.Errorf("monosyllabic variants should stay unseparated, have %s / %s",
			rec.SyllPhon, rec.SyllPattern)
	}
}

func TestAnnotatedRoundTrip(t *testing.T) {
	tracing.SetTestingLog(t)
	records, err := corpus.ReadAnnotated(strings.NewReader(testdata.Annotated))
	if err != nil {
		t.Fatalf("reading the annotated corpus failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, have %d", len(records))
	}
	var buf bytes.Buffer
	if err = corpus.WriteAnnotated(&buf, records); err != nil {
		t.Fatalf("writing the annotated corpus failed: %v", err)
	}
	if buf.String() != testdata.Annotated {
		t.Errorf("round trip changed the corpus:\n%s", buf.String())
	}
}

func TestRunnerMatchesSerialRun(t *testing.T) {
	tracing.SetTestingLog(t)
	entries, err := corpus.ReadLexicon(strings.NewReader(testdata.Lexicon))
	if err != nil {
		t.Fatal(err)
	}
	var batch []corpus.Entry
	for i := 0; i < 8; i++ {
		batch = append(batch, entries...)
	}
	serial := &corpus.Runner{
		Annotator: corpus.NewAnnotator(alphabet.French(), alphabet.FrenchPhonetic()),
	}
	want, err := serial.Run(batch)
	if err != nil {
		t.Fatal(err)
	}
	parallel := &corpus.Runner{
		Annotator: corpus.NewAnnotator(alphabet.French(), alphabet.FrenchPhonetic()),
		Workers:   4,
	}
	have, err := parallel.Run(batch)
	if err != nil {
		t.Fatal(err)
	}
	for i := range want {
		if have[i] != want[i] {
			t.Errorf("record %d differs between serial and parallel run: %v vs %v",
				i, want[i], have[i])
		}
	}
}

func TestRunnerMergesWorkerLedgers(t *testing.T) {
	tracing.SetTestingLog(t)
	annotator := corpus.NewAnnotator(alphabet.French(), alphabet.FrenchPhonetic())
	runner := &corpus.Runner{Annotator: annotator, Workers: 3}
	batch := []corpus.Entry{
		{Word: "abc!", Phon: "abk"},
		{Word: "def", Phon: "d?f"},
		{Word: "ghi", Phon: "gi"},
		{Word: "jkl", Phon: "ʒkl"},
	}
	if _, err := runner.Run(batch); err != nil {
		t.Fatal(err)
	}
	if !annotator.Text.Ledger().Contains('!') {
		t.Errorf("text ledger should hold '!' after the run, holds %s", annotator.Text.Ledger())
	}
	if !annotator.Phon.Ledger().Contains('?') {
		t.Errorf("phonetic ledger should hold '?' after the run, holds %s", annotator.Phon.Ledger())
	}
}

func TestRunnerRefusesParallelResolvers(t *testing.T) {
	tracing.SetTestingLog(t)
	text := alphabet.French().WithResolver(
		func(r rune) (phono.CV, phono.Class, bool) { return phono.Consonant, phono.Unclassified, true })
	runner := &corpus.Runner{
		Annotator: corpus.NewAnnotator(text, alphabet.FrenchPhonetic()),
		Workers:   2,
	}
	_, err := runner.Run(make([]corpus.Entry, 4))
	if err != corpus.ErrResolverParallel {
		t.Errorf("expected ErrResolverParallel, have %v", err)
	}
}
