// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kemu-chem/bibcite/internal/bibtex"
	"github.com/kemu-chem/bibcite/internal/cite"
	"github.com/kemu-chem/bibcite/internal/markup"
	"github.com/kemu-chem/bibcite/internal/ris"
	"github.com/kemu-chem/bibcite/pkg/types"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a BibTeX or RIS file as formatted citations",
	Long: `Render parses bibliography entries from a file (or stdin) and prints one
citation per entry in the requested style and encoding.

Examples:
  bibcite render refs.bib --style ACS
  bibcite render refs.ris --ris --style "APA (7th)" --format html
  bibcite render refs.bib --intext "(Author, Year)"
  bibcite render refs.bib --format rtf > refs.rtf`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("style", "", "reference style key (see 'bibcite styles')")
	renderCmd.Flags().String("intext", "", "render in-text citations with this style instead")
	renderCmd.Flags().String("format", "", "output encoding: plain, rtf, or html")
	renderCmd.Flags().Int("max-authors", 0, "author cap (0 = style default)")
	renderCmd.Flags().Bool("omit-title", false, "drop the title segment")
	renderCmd.Flags().Bool("reverse-authors", false, "swap the first and last author bylines")
	renderCmd.Flags().String("sort", "", "entry order: appearance, author-asc, author-desc, year-asc, year-desc")
	renderCmd.Flags().Bool("ris", false, "input is RIS instead of BibTeX")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	source, err := readSource(args)
	if err != nil {
		return err
	}

	isRIS, _ := cmd.Flags().GetBool("ris")
	if !isRIS && len(args) == 1 && strings.HasSuffix(strings.ToLower(args[0]), ".ris") {
		isRIS = true
	}

	entries, err := parseEntries(source, isRIS)
	if err != nil {
		return err
	}

	rc := mergeRenderFlags(cmd, cfg.Render)
	if err := cite.SortEntries(entries, cite.Order(rc.Sort)); err != nil {
		return err
	}

	intext, _ := cmd.Flags().GetString("intext")
	return writeCitations(os.Stdout, entries, rc, intext)
}

// readSource reads the single file argument, or stdin when absent.
func readSource(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

func parseEntries(source string, isRIS bool) ([]types.Entry, error) {
	if isRIS {
		return ris.Parse(source)
	}
	return bibtex.Parse(source)
}

// mergeRenderFlags overlays the command's changed flags on the configured
// render defaults.
func mergeRenderFlags(cmd *cobra.Command, rc types.RenderConfig) types.RenderConfig {
	if cmd.Flags().Changed("style") {
		rc.Style, _ = cmd.Flags().GetString("style")
	}
	if cmd.Flags().Changed("format") {
		rc.Format, _ = cmd.Flags().GetString("format")
	}
	if cmd.Flags().Changed("max-authors") {
		rc.MaxAuthors, _ = cmd.Flags().GetInt("max-authors")
	}
	if cmd.Flags().Changed("omit-title") {
		rc.OmitTitle, _ = cmd.Flags().GetBool("omit-title")
	}
	if cmd.Flags().Changed("reverse-authors") {
		rc.ReverseAuthors, _ = cmd.Flags().GetBool("reverse-authors")
	}
	if cmd.Flags().Changed("sort") {
		rc.Sort, _ = cmd.Flags().GetString("sort")
	}
	return rc
}

// writeCitations renders every entry and writes the requested encoding:
// plain text one citation per line, a wrapped RTF document, or HTML
// transcoded from the RTF encoding.
func writeCitations(w io.Writer, entries []types.Entry, rc types.RenderConfig, intextKey string) error {
	opts := cite.Options{
		MaxAuthors:     rc.MaxAuthors,
		OmitTitle:      rc.OmitTitle,
		ReverseAuthors: rc.ReverseAuthors,
	}

	render := func(f cite.Fields, idx int) (cite.Rendered, error) {
		return cite.Render(rc.Style, f, idx, opts)
	}
	if intextKey != "" {
		fn, err := cite.InTextStyle(intextKey)
		if err != nil {
			return err
		}
		render = func(f cite.Fields, idx int) (cite.Rendered, error) {
			return fn(f, idx), nil
		}
	}

	var plain, rich []string
	for i, e := range entries {
		r, err := render(cite.ExtractFields(e), i+1)
		if err != nil {
			return err
		}
		plain = append(plain, r.Plain)
		rich = append(rich, r.Markup)
	}

	var rtf markup.RTF
	switch rc.Format {
	case "plain", "":
		for _, line := range plain {
			fmt.Fprintln(w, line)
		}
	case "rtf":
		doc := rtf.DocumentWrap(strings.Join(rich, rtf.ParagraphBreak()))
		fmt.Fprintln(w, doc)
	case "html":
		doc := rtf.DocumentWrap(strings.Join(rich, rtf.ParagraphBreak()))
		fmt.Fprintln(w, markup.ToHTML(doc))
	default:
		return fmt.Errorf("unknown output format %q (want plain, rtf, or html)", rc.Format)
	}
	return nil
}
