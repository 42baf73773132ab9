package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/EMarquer/phono/corpus"
	"github.com/EMarquer/phono/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "rank syllable shapes of an annotated corpus",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringP("input", "i", "", "annotated file to read (default stdin)")
	statsCmd.Flags().Int("top", 15, "ranking size")
}

func runStats(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	in := os.Stdin
	if input != "" {
		f, err := os.Open(input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	_, phon, err := alphabets()
	if err != nil {
		return err
	}
	records, err := corpus.ReadAnnotated(in)
	if err != nil {
		return err
	}
	reports := []struct {
		title  string
		shapes []string
	}{
		{"CV syllable shapes", stats.PatternShapes(records, cfg.VariantSep, cfg.SyllableSep)},
		{"phonologic class shapes", stats.ClassShapes(records, phon, cfg.VariantSep, cfg.SyllableSep)},
		{"phonetic syllable shapes", stats.PhonShapes(records, cfg.VariantSep, cfg.SyllableSep)},
	}
	for i, rep := range reports {
		if i > 0 {
			fmt.Println()
		}
		tally := stats.NewTally()
		tally.AddAll(rep.shapes)
		if err := stats.Report(os.Stdout, rep.title, tally, cfg.TopN); err != nil {
			return err
		}
	}
	return nil
}
