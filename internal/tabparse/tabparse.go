/*
Package tabparse provides a parser for tabular alphabet table files.

Table files are line-oriented. A '#' starts a comment which reaches to the
end of the line. Blank lines and pure comment lines carry no data. All other
lines are data lines, holding whitespace-separated fields:

   V aeiouy     # a text table row: category and letters
   C liquid lʁ  # a phonetic table row: category, class and letters

The parser does not interpret fields. It hands every data line to a callback
as a Token and leaves the semantics to the caller.
*/
package tabparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/EMarquer/phono/internal/tracing"
)

// Token is the content of one data line of a table file.
type Token struct {
	LineNo  int      // line number within the input source, starting at 1
	Fields  []string // whitespace-separated fields of the line
	Comment string   // rest-of-line comment, if any
}

func (token *Token) String() string {
	return fmt.Sprintf("line[%d: %v]", token.LineNo, token.Fields)
}

// Field gets field #i (1…n) from the data line.
// For an out-of-range i, Field returns the empty string.
func (token *Token) Field(i int) string {
	if i >= 1 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Parse iterates over each line of a table file and calls callback f for
// every data line. Blank lines and pure comment lines are skipped.
func Parse(r io.Reader, f func(token *Token)) error {
	if r == nil {
		return errors.New("no input present")
	}
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		token := &Token{LineNo: lineno}
		if inx := strings.IndexByte(line, '#'); inx >= 0 {
			token.Comment = strings.TrimSpace(line[inx+1:])
			line = line[:inx]
		}
		token.Fields = strings.Fields(line)
		if len(token.Fields) == 0 {
			continue
		}
		tracing.Debugf("new %s", token)
		f(token)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("table input, line %d: %w", lineno, err)
	}
	return nil
}
