package corpus

import (
	"bufio"
	"fmt"
	"io"
)

// WriteAnnotated writes records in the six-column annotated format, one
// record per line, columns separated by single spaces.
func WriteAnnotated(w io.Writer, records []Record) error {
	buf := bufio.NewWriter(w)
	for _, rec := range records {
		_, err := fmt.Fprintf(buf, "%s %s %s %s %s %s\n",
			rec.Word, rec.WordPattern, rec.Phon, rec.PhonPattern, rec.SyllPhon, rec.SyllPattern)
		if err != nil {
			return err
		}
	}
	return buf.Flush()
}
