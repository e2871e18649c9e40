// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/kemu-chem/bibcite/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local preview server",
	Long: `Serve starts a local HTTP server with a form for pasting BibTeX or RIS
text and reading the rendered bibliography in the browser.

Example:
  bibcite serve --addr :8000`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8000)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	addr := cfg.Server.Addr
	if flagAddr, _ := cmd.Flags().GetString("addr"); flagAddr != "" {
		addr = flagAddr
	}

	fmt.Fprintf(os.Stderr, "preview server listening on http://localhost%s/\n", addr)
	fmt.Fprintln(os.Stderr, "press Ctrl+C to stop")
	return http.ListenAndServe(addr, server.Handler(cfg.Render))
}
