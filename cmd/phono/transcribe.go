package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/EMarquer/phono"
	"github.com/EMarquer/phono/alphabet"
	"github.com/EMarquer/phono/corpus"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe",
	Short: "annotate a lexicon with CV patterns and syllables",
	RunE:  runTranscribe,
}

func init() {
	transcribeCmd.Flags().StringP("input", "i", "", "lexicon file to read (default stdin)")
	transcribeCmd.Flags().StringP("output", "o", "", "annotated file to write (default stdout)")
	transcribeCmd.Flags().Int("workers", 1, "parallel annotation workers")
	transcribeCmd.Flags().Bool("interactive", false, "prompt for unknown characters")
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	in, out, cleanup, err := openFiles(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	text, phon, err := alphabets()
	if err != nil {
		return err
	}
	if cfg.Interactive {
		prompt := newPromptResolver(os.Stdin, os.Stderr)
		text = text.WithResolver(prompt.resolveText)
		phon = phon.WithResolver(prompt.resolvePhon)
	}
	entries, err := corpus.ReadLexicon(in)
	if err != nil {
		return err
	}
	annotator := corpus.NewAnnotator(text, phon)
	annotator.Syll.SyllableSep = cfg.SyllableSep
	annotator.Syll.VariantSep = cfg.VariantSep
	runner := &corpus.Runner{Annotator: annotator, Workers: cfg.Workers}
	records, err := runner.Run(entries)
	if err != nil {
		return err
	}
	if err = corpus.WriteAnnotated(out, records); err != nil {
		return err
	}
	reportUnknown("text", text)
	reportUnknown("phonetic", phon)
	return nil
}

func openFiles(cmd *cobra.Command) (in io.Reader, out io.Writer, cleanup func(), err error) {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	in, out = os.Stdin, os.Stdout
	var closers []func()
	cleanup = func() {
		for _, c := range closers {
			c()
		}
	}
	if input != "" {
		f, ferr := os.Open(input)
		if ferr != nil {
			return nil, nil, cleanup, ferr
		}
		closers = append(closers, func() { f.Close() })
		in = f
	}
	if output != "" {
		f, ferr := os.Create(output)
		if ferr != nil {
			cleanup()
			return nil, nil, func() {}, ferr
		}
		closers = append(closers, func() { f.Close() })
		out = f
	}
	return in, out, cleanup, nil
}

func reportUnknown(kind string, set *alphabet.Set) {
	if set.Ledger().Len() == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "%d unknown %s characters: %s\n",
		set.Ledger().Len(), kind, set.Ledger())
}

// A promptResolver asks the user to classify characters the tables do not
// know, the way the original annotation workflow did. It lives strictly
// at the CLI boundary; the library never reads from a console.
type promptResolver struct {
	in  *bufio.Reader
	out io.Writer
}

func newPromptResolver(in io.Reader, out io.Writer) *promptResolver {
	return &promptResolver{in: bufio.NewReader(in), out: out}
}

func (p *promptResolver) resolveText(r rune) (phono.CV, phono.Class, bool) {
	return p.ask(r)
}

func (p *promptResolver) resolvePhon(r rune) (phono.CV, phono.Class, bool) {
	return p.ask(r)
}

func (p *promptResolver) ask(r rune) (phono.CV, phono.Class, bool) {
	for {
		fmt.Fprintf(p.out, "The character %q is unknown. Is it a:\n"+
			"(C) Consonant\n(V) Vowel\n(N) Not a letter\n"+
			"(Please input the letter in parenthesis corresponding to the correct answer):\n", r)
		line, err := p.in.ReadString('\n')
		if err != nil {
			return 0, phono.Unclassified, false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "c":
			return phono.Consonant, phono.Unclassified, true
		case "v":
			return phono.Vowel, phono.Unclassified, true
		case "n":
			return phono.CV(r), phono.Unclassified, true
		}
		fmt.Fprintln(p.out, "Invalid input")
	}
}
