/*
Generator for the built-in French classification tables.

The generator reads the tabular table files in the tables/ directory and
writes them out as Go table rows, ready to be compiled into package
alphabet.

Usage

The generator has one option, a "verbose" flag.

   generator [-v]

This creates a file "tables_fr.go" in the alphabet directory. It is
designed to be called from the alphabet directory via go generate.
*/
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"text/template"
	"time"

	"github.com/EMarquer/phono/alphabet"
	"github.com/EMarquer/phono/internal/tabparse"
)

var logger = log.New(os.Stderr, "tables generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

type row struct {
	Cat     string
	Rank    int
	Label   string
	Letters string
}

// Load one tabular table file and return its rows.
func loadTableFile(path string, phonetic bool) ([]row, error) {
	if verbose {
		logger.Printf("reading %s", path)
	}
	defer timeTrack(time.Now(), "loading "+path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var rows []row
	var perr error
	ranks := make(map[string]int)
	next := len(alphabet.Sonority)
	err = tabparse.Parse(f, func(token *tabparse.Token) {
		if perr != nil {
			return
		}
		want := 2
		if phonetic {
			want = 3
		}
		if len(token.Fields) != want {
			perr = fmt.Errorf("%s, line %d: expected %d fields, have %d",
				path, token.LineNo, want, len(token.Fields))
			return
		}
		r := row{Cat: token.Field(1)}
		if phonetic {
			label := token.Field(2)
			rank, ok := ranks[label]
			if !ok {
				if rank, ok = alphabet.Sonority[label]; !ok {
					rank = next
					next++
				}
				ranks[label] = rank
			}
			r.Rank = rank
			r.Label = label
			r.Letters = token.Field(3)
		} else {
			r.Letters = token.Field(2)
		}
		rows = append(rows, r)
	})
	if err != nil {
		return nil, err
	}
	return rows, perr
}

func catExpr(cat string) string {
	switch cat {
	case "C":
		return "phono.Consonant"
	case "V":
		return "phono.Vowel"
	}
	return fmt.Sprintf("phono.CV(%q)", []rune(cat)[0])
}

var tablesTemplate = template.Must(template.New("tables").Funcs(template.FuncMap{
	"cat": catExpr,
}).Parse(`package alphabet

// This file has been generated by internal/generator from the table files
// tables/letters_text.tab and tables/letters_phon.tab -- DO NOT EDIT !

import (
	"github.com/EMarquer/phono"
)

// Classification table rows of the written French alphabet.
var frenchTextEntries = []Entry{
{{range .Text}}	{Cat: {{cat .Cat}}, Letters: {{printf "%q" .Letters}}},
{{end}}}

// Classification table rows of the French phonetic alphabet. Characters
// cover IPA as well as the SAMPA notation common in French lexicons.
var frenchPhonEntries = []Entry{
{{range .Phon}}	{Cat: {{cat .Cat}}, Class: phono.Class{Rank: {{.Rank}}, Label: {{printf "%q" .Label}}}, Letters: {{printf "%q" .Letters}}},
{{end}}}
`))

func main() {
	flag.BoolVar(&verbose, "v", false, "verbose output")
	flag.Parse()
	text, err := loadTableFile("internal/generator/tables/letters_text.tab", false)
	if err != nil {
		log.Fatal(err)
	}
	phon, err := loadTableFile("internal/generator/tables/letters_phon.tab", true)
	if err != nil {
		log.Fatal(err)
	}
	var buf bytes.Buffer
	data := struct{ Text, Phon []row }{text, phon}
	if err = tablesTemplate.Execute(&buf, data); err != nil {
		log.Fatal(err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err = os.WriteFile("tables_fr.go", src, 0644); err != nil {
		log.Fatal(err)
	}
	if verbose {
		logger.Printf("generated tables_fr.go with %d + %d rows", len(text), len(phon))
	}
}

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	if verbose {
		logger.Printf("timing: %s took %s", name, elapsed)
	}
}
