// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kemu-chem/bibcite/internal/cite"
	"github.com/kemu-chem/bibcite/internal/library"
	"github.com/kemu-chem/bibcite/pkg/types"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage the local bibliography store",
	Long: `Library keeps parsed and fetched entries in a local SQLite database so
they can be listed and re-rendered without another parse or network
round trip.`,
}

var libraryAddCmd = &cobra.Command{
	Use:   "add [file]",
	Short: "Add entries from a BibTeX or RIS file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLibraryAdd,
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored entries by citekey",
	RunE:  runLibraryList,
}

var libraryRemoveCmd = &cobra.Command{
	Use:   "remove <citekey>",
	Short: "Remove one stored entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryRemove,
}

var libraryRenderCmd = &cobra.Command{
	Use:   "render [citekey ...]",
	Short: "Render stored entries as citations",
	RunE:  runLibraryRender,
}

func init() {
	libraryAddCmd.Flags().Bool("ris", false, "input is RIS instead of BibTeX")

	libraryRenderCmd.Flags().String("style", "", "reference style key")
	libraryRenderCmd.Flags().String("format", "", "output encoding: plain, rtf, or html")
	libraryRenderCmd.Flags().Int("max-authors", 0, "author cap (0 = style default)")
	libraryRenderCmd.Flags().Bool("omit-title", false, "drop the title segment")
	libraryRenderCmd.Flags().Bool("reverse-authors", false, "swap the first and last author bylines")
	libraryRenderCmd.Flags().String("sort", "", "entry order")

	libraryCmd.AddCommand(libraryAddCmd, libraryListCmd, libraryRemoveCmd, libraryRenderCmd)
	rootCmd.AddCommand(libraryCmd)
}

func openLibrary() (*library.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return library.Open(cfg.Library.Path)
}

func runLibraryAdd(cmd *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}
	isRIS, _ := cmd.Flags().GetBool("ris")
	entries, err := parseEntries(source, isRIS)
	if err != nil {
		return err
	}

	store, err := openLibrary()
	if err != nil {
		return err
	}
	defer store.Close()

	for _, e := range entries {
		key, err := store.Save(e)
		if err != nil {
			return err
		}
		fmt.Printf("added %s\n", key)
	}
	return nil
}

func runLibraryList(cmd *cobra.Command, args []string) error {
	store, err := openLibrary()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List()
	if err != nil {
		return err
	}
	for _, e := range entries {
		f := cite.ExtractFields(e)
		author := ""
		if len(f.Authors) > 0 {
			author = f.Authors[0].Family
		}
		fmt.Printf("%-24s %s %s  %s\n", e.Citekey(), author, f.Year, f.Title)
	}
	return nil
}

func runLibraryRemove(cmd *cobra.Command, args []string) error {
	store, err := openLibrary()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("removed %s\n", args[0])
	return nil
}

func runLibraryRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := library.Open(cfg.Library.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	var entries []types.Entry
	if len(args) > 0 {
		for _, key := range args {
			e, err := store.Get(key)
			if err != nil {
				return err
			}
			entries = append(entries, e)
		}
	} else {
		entries, err = store.List()
		if err != nil {
			return err
		}
	}

	rc := mergeRenderFlags(cmd, cfg.Render)
	if err := cite.SortEntries(entries, cite.Order(rc.Sort)); err != nil {
		return err
	}
	return writeCitations(os.Stdout, entries, rc, "")
}
