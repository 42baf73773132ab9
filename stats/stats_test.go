package stats_test

import (
	"strings"
	"testing"

	"github.com/EMarquer/phono"
	"github.com/EMarquer/phono/alphabet"
	"github.com/EMarquer/phono/corpus"
	"github.com/EMarquer/phono/internal/testdata"
	"github.com/EMarquer/phono/internal/tracing"
	"github.com/EMarquer/phono/stats"
)

func annotated(t *testing.T) []corpus.Record {
	t.Helper()
	records, err := corpus.ReadAnnotated(strings.NewReader(testdata.Annotated))
	if err != nil {
		t.Fatal(err)
	}
	return records
}

func TestTallyCountsAndRanks(t *testing.T) {
	tracing.SetTestingLog(t)
	tally := stats.NewTally()
	tally.AddAll([]string{"CV", "CVC", "CV", "V", "CVC", "CV"})
	if tally.Total() != 6 {
		t.Errorf("total should be 6, is %d", tally.Total())
	}
	if tally.Distinct() != 3 {
		t.Errorf("distinct should be 3, is %d", tally.Distinct())
	}
	top := tally.Top(2)
	if len(top) != 2 || top[0].Shape != "CV" || top[0].Count != 3 {
		t.Errorf("most frequent shape should be CV with 3, have %v", top)
	}
	if top[1].Shape != "CVC" || top[1].Count != 2 {
		t.Errorf("second shape should be CVC with 2, have %v", top)
	}
}

func TestTallyBreaksTiesAlphabetically(t *testing.T) {
	tracing.SetTestingLog(t)
	tally := stats.NewTally()
	tally.AddAll([]string{"VC", "CV", "V", "CV", "VC"})
	top := tally.Top(3)
	want := []string{"CV", "VC", "V"}
	for i, shape := range want {
		if top[i].Shape != shape {
			t.Errorf("rank %d should be %s, is %s", i, shape, top[i].Shape)
		}
	}
}

func TestTallyTopClampsToDistinct(t *testing.T) {
	tracing.SetTestingLog(t)
	tally := stats.NewTally()
	tally.Add("CV")
	if top := tally.Top(15); len(top) != 1 {
		t.Errorf("Top(15) over one shape should return 1 entry, returned %d", len(top))
	}
}

func TestPatternShapes(t *testing.T) {
	tracing.SetTestingLog(t)
	shapes := stats.PatternShapes(annotated(t), phono.VariantSeparator, phono.SyllableSeparator)
	// a-bEs, e-ʁe-tik and the two pwal variants: 7 syllables
	if len(shapes) != 7 {
		t.Fatalf("expected 7 syllable shapes, have %d: %v", len(shapes), shapes)
	}
	tally := stats.NewTally()
	tally.AddAll(shapes)
	// CCVC, CVC and V are tied at 2; ties rank alphabetically
	top := tally.Top(3)
	want := []stats.Freq{{Shape: "CCVC", Count: 2}, {Shape: "CVC", Count: 2}, {Shape: "V", Count: 2}}
	for i, f := range want {
		if top[i] != f {
			t.Errorf("rank %d should be %v, is %v", i, f, top[i])
		}
	}
}

func TestPhonShapes(t *testing.T) {
	tracing.SetTestingLog(t)
	shapes := stats.PhonShapes(annotated(t), phono.VariantSeparator, phono.SyllableSeparator)
	if len(shapes) != 7 {
		t.Fatalf("expected 7 syllables, have %d: %v", len(shapes), shapes)
	}
	if shapes[0] != "a" || shapes[1] != "bEs" {
		t.Errorf("first record should yield syllables a and bEs, have %v", shapes[:2])
	}
}

func TestClassShapes(t *testing.T) {
	tracing.SetTestingLog(t)
	shapes := stats.ClassShapes(annotated(t), alphabet.FrenchPhonetic(),
		phono.VariantSeparator, phono.SyllableSeparator)
	if shapes[0] != "vowel" {
		t.Errorf("syllable 'a' should map to class shape 'vowel', is %q", shapes[0])
	}
	if shapes[1] != "stop.vowel.fricative" {
		t.Errorf("syllable 'bEs' should map to stop.vowel.fricative, is %q", shapes[1])
	}
}

func TestShapesHonorConfiguredSeparators(t *testing.T) {
	tracing.SetTestingLog(t)
	// a corpus annotated with '|' between syllables and '~' between variants
	records := []corpus.Record{
		{SyllPhon: "a|bEs", SyllPattern: "V|CVC"},
		{SyllPhon: "pwal~pwɛl", SyllPattern: "CCVC~CCVC"},
	}
	shapes := stats.PatternShapes(records, "~", "|")
	want := []string{"V", "CVC", "CCVC", "CCVC"}
	if len(shapes) != len(want) {
		t.Fatalf("expected %d shapes, have %d: %v", len(want), len(shapes), shapes)
	}
	for i, w := range want {
		if shapes[i] != w {
			t.Errorf("shape %d should be %s, is %s", i, w, shapes[i])
		}
	}
	phons := stats.PhonShapes(records, "~", "|")
	if phons[1] != "bEs" || phons[2] != "pwal" {
		t.Errorf("phonetic shapes should split on the given separators, have %v", phons)
	}
	classes := stats.ClassShapes(records, alphabet.FrenchPhonetic(), "~", "|")
	if classes[2] != "stop.glide.vowel.liquid" {
		t.Errorf("class shape of pwal should be stop.glide.vowel.liquid, is %q", classes[2])
	}
}

func TestReportFormat(t *testing.T) {
	tracing.SetTestingLog(t)
	tally := stats.NewTally()
	tally.AddAll([]string{"CV", "CV", "V"})
	var b strings.Builder
	if err := stats.Report(&b, "CV syllable shapes", tally, 15); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "(total forms: 3, total different forms: 2)") {
		t.Errorf("report misses the totals line:\n%s", out)
	}
	if !strings.Contains(out, "CV") {
		t.Errorf("report misses the ranked shapes:\n%s", out)
	}
}
