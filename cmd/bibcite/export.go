// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kemu-chem/bibcite/internal/cite"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export entries as CSL-YAML",
	Long: `Export parses bibliography entries from a file (or stdin) and writes them
as a CSL-YAML list consumable by Pandoc and reference managers.

Examples:
  bibcite export refs.bib > refs.yaml
  bibcite export refs.ris --ris`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().Bool("ris", false, "input is RIS instead of BibTeX")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}
	isRIS, _ := cmd.Flags().GetBool("ris")
	entries, err := parseEntries(source, isRIS)
	if err != nil {
		return err
	}
	return cite.WriteCSL(entries, os.Stdout)
}
