/*
Command phono annotates pronunciation lexicons.

	phono transcribe -i lexicon.txt -o annotated.txt
	phono stats -i annotated.txt

The transcribe command reads a two-column lexicon (word and phonetic
transcription), adds the CV patterns of both columns and the syllabified
transcription, and writes the six-column annotated corpus. The stats
command ranks the syllable shapes of an annotated corpus.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021–22 E. Marquer
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/EMarquer/phono/alphabet"
	"github.com/EMarquer/phono/config"
)

var cfgFile string
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "phono",
	Short:         "CV classification and syllabification of pronunciation lexicons",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.LoadFile(cfgFile)
		} else {
			cfg = config.Default()
		}
		if err != nil {
			return err
		}
		applyFlags(cmd)
		return cfg.Validate()
	},
}

// applyFlags lets command line flags override configuration file values.
func applyFlags(cmd *cobra.Command) {
	if f := cmd.Flags().Lookup("workers"); f != nil && f.Changed {
		cfg.Workers, _ = cmd.Flags().GetInt("workers")
	}
	if f := cmd.Flags().Lookup("interactive"); f != nil && f.Changed {
		cfg.Interactive, _ = cmd.Flags().GetBool("interactive")
	}
	if f := cmd.Flags().Lookup("language"); f != nil && f.Changed {
		cfg.Language, _ = cmd.Flags().GetString("language")
	}
	if f := cmd.Flags().Lookup("top"); f != nil && f.Changed {
		cfg.TopN, _ = cmd.Flags().GetInt("top")
	}
}

// alphabets builds the text and phonetic table sets from the
// configuration: from table files when given, from the built-in tables of
// the configured or detected language otherwise.
func alphabets() (text, phon *alphabet.Set, err error) {
	if cfg.TextTable != "" {
		if text, err = loadTable(cfg.TextTable); err != nil {
			return nil, nil, err
		}
		if phon, err = loadTable(cfg.PhonTable); err != nil {
			return nil, nil, err
		}
		return text, phon, nil
	}
	if cfg.Language != "" {
		text, phon = alphabet.ForLanguage(language.Make(cfg.Language))
		return text, phon, nil
	}
	text, phon = alphabet.FromEnvironment()
	return text, phon, nil
}

func loadTable(path string) (*alphabet.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return alphabet.Load(f, path)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file (YAML)")
	rootCmd.PersistentFlags().String("language", "", "language of the built-in tables (BCP 47 tag)")
	rootCmd.AddCommand(transcribeCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "phono:", err)
		os.Exit(1)
	}
}
