// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kemu-chem/bibcite/internal/bibtex"
	"github.com/kemu-chem/bibcite/internal/fetch"
	"github.com/kemu-chem/bibcite/internal/library"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [doi ...]",
	Short: "Fetch entry metadata from Crossref by DOI",
	Long: `Fetch resolves each DOI against the Crossref API and renders the result,
or emits it as BibTeX. DOIs come from the arguments, from --file (one per
line), or from stdin. Lookups are paced to one request per second; a DOI
that fails to resolve is reported and skipped.

Examples:
  bibcite fetch 10.1016/s0040-4039(00)97443-4
  bibcite fetch --file dois.txt --bibtex > refs.bib
  bibcite fetch 10.1038/nature12373 --style Nature
  bibcite fetch --file dois.txt --save`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("file", "", "read DOIs from this file, one per line")
	fetchCmd.Flags().Bool("bibtex", false, "emit fetched entries as BibTeX")
	fetchCmd.Flags().Bool("save", false, "save fetched entries to the library")
	fetchCmd.Flags().String("style", "", "reference style key")
	fetchCmd.Flags().String("format", "", "output encoding: plain, rtf, or html")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dois := append([]string{}, args...)
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}
		dois = append(dois, strings.Split(string(data), "\n")...)
	}
	if len(dois) == 0 {
		source, err := readSource(nil)
		if err != nil {
			return err
		}
		dois = strings.Split(source, "\n")
	}

	client := fetch.NewClient(cfg.Fetch)
	entries := client.FetchAll(cmd.Context(), dois)
	if len(entries) == 0 {
		return fmt.Errorf("no DOIs could be resolved")
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		store, err := library.Open(cfg.Library.Path)
		if err != nil {
			return err
		}
		defer store.Close()
		for _, e := range entries {
			key, err := store.Save(e)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "saved %s\n", key)
		}
	}

	if asBibtex, _ := cmd.Flags().GetBool("bibtex"); asBibtex {
		fmt.Print(bibtex.Format(entries))
		return nil
	}

	rc := mergeRenderFlags(cmd, cfg.Render)
	return writeCitations(os.Stdout, entries, rc, "")
}
