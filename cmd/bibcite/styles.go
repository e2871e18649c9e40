// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kemu-chem/bibcite/internal/cite"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the available reference and in-text styles",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Reference styles:")
		for _, k := range cite.ReferenceStyleKeys() {
			fmt.Printf("  %s\n", k)
		}
		fmt.Println("In-text styles:")
		for _, k := range cite.InTextStyleKeys() {
			fmt.Printf("  %s\n", k)
		}
	},
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}
