// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/patent-lens/internal/dashboard"
	"github.com/pdiddy/patent-lens/internal/search"
	"github.com/pdiddy/patent-lens/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the interactive search dashboard",
	Long: `Serve hosts the HTTP dashboard: a keyword form, the result table,
insight charts, and CSV/XLSX downloads. Every request runs a fresh
search against the PatentsView API; the server keeps no state.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	client, err := search.NewClient(searchConfig(cmd))
	if err != nil {
		return err
	}

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = viper.GetString("server.addr")
	}
	if addr == "" {
		addr = ":8080"
	}

	srv := dashboard.New(types.ServerConfig{Addr: addr}, client, insightConfig())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	fmt.Fprintln(os.Stderr, "Shutting down dashboard...")
	return srv.Shutdown()
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default: :8080)")
	serveCmd.Flags().String("api-key", "", "PatentsView API key (default: .secrets/patentsview-api-key)")
	serveCmd.Flags().Int("per-page", 0, "results per page, capped at 1000 (0 = default)")

	rootCmd.AddCommand(serveCmd)
}
