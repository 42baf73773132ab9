package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/EMarquer/phono/internal/tracing"
)

// ReadLexicon reads a two-column lexicon. Blank lines and lines starting
// with '#' are skipped. Input is normalized to NFC, so combining
// diacritics in source data match the single-character table entries.
func ReadLexicon(r io.Reader) ([]Entry, error) {
	var entries []Entry
	err := readColumns(r, 2, func(fields []string) {
		entries = append(entries, Entry{Word: fields[0], Phon: fields[1]})
	})
	if err != nil {
		return nil, err
	}
	tracing.Infof("read lexicon with %d entries", len(entries))
	return entries, nil
}

// ReadAnnotated reads a six-column annotated corpus (see Record).
func ReadAnnotated(r io.Reader) ([]Record, error) {
	var records []Record
	err := readColumns(r, 6, func(fields []string) {
		records = append(records, Record{
			Word:        fields[0],
			WordPattern: fields[1],
			Phon:        fields[2],
			PhonPattern: fields[3],
			SyllPhon:    fields[4],
			SyllPattern: fields[5],
		})
	})
	if err != nil {
		return nil, err
	}
	tracing.Infof("read annotated corpus with %d records", len(records))
	return records, nil
}

func readColumns(r io.Reader, columns int, f func(fields []string)) error {
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(norm.NFC.String(line))
		if len(fields) != columns {
			return fmt.Errorf("line %d: expected %d columns, have %d", lineno, columns, len(fields))
		}
		f(fields)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("line %d: %w", lineno, err)
	}
	return nil
}
