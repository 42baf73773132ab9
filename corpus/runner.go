package corpus

import (
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/EMarquer/phono/alphabet"
	"github.com/EMarquer/phono/internal/tracing"
)

// ErrResolverParallel is returned by Runner.Run when a resolver-backed
// alphabet is combined with more than one worker. Resolver answers are
// memoized into the alphabet's tables, which is only safe on a single
// goroutine.
var ErrResolverParallel = errors.New("resolver-backed alphabets cannot be used with parallel workers")

// A Runner annotates a batch of lexicon entries, optionally sharded over
// parallel workers. Words are processed independently; the only shared
// resource is the ledger of unknown characters, so every worker records
// into ledgers of its own, which are merged into the annotator's
// alphabets after the batch.
type Runner struct {
	Annotator *Annotator
	Workers   int // number of parallel workers; 0 or 1 runs serially
}

// Run annotates all entries and returns the records in input order.
func (run *Runner) Run(entries []Entry) ([]Record, error) {
	workers := run.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(entries) && len(entries) > 0 {
		workers = len(entries)
	}
	if workers > 1 && (run.Annotator.Text.HasResolver() || run.Annotator.Phon.HasResolver()) {
		return nil, ErrResolverParallel
	}
	records := make([]Record, len(entries))
	if workers == 1 {
		for i, e := range entries {
			records[i] = run.Annotator.Annotate(e)
		}
		return records, nil
	}
	tracing.Infof("annotating %d entries with %d workers", len(entries), workers)
	textLedgers := make([]*alphabet.Ledger, workers)
	phonLedgers := make([]*alphabet.Ledger, workers)
	g := new(errgroup.Group)
	for w := 0; w < workers; w++ {
		w := w
		textLedgers[w] = alphabet.NewLedger()
		phonLedgers[w] = alphabet.NewLedger()
		worker := run.Annotator.withLedgers(textLedgers[w], phonLedgers[w])
		g.Go(func() error {
			for i := w; i < len(entries); i += workers {
				records[i] = worker.Annotate(entries[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for w := 0; w < workers; w++ {
		run.Annotator.Text.Ledger().Merge(textLedgers[w])
		run.Annotator.Phon.Ledger().Merge(phonLedgers[w])
	}
	return records, nil
}
