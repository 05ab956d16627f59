// Command outlet serves a configured site.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	outleterrors "github.com/vango-dev/outlet/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", formatError(err))
		os.Exit(1)
	}
}

// formatError prefers the structured form, which carries the hint.
func formatError(err error) string {
	var oe *outleterrors.Error
	if errors.As(err, &oe) {
		return oe.FormatCompact()
	}
	return err.Error()
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "outlet",
		Short: "Server-driven single-page sites",
		Long: `Outlet serves a single-page site whose pages are rendered on the
server and kept in sync with the browser over a WebSocket.

Routes, content sources and observability are configured in outlet.yaml.
Every setting can be overridden with an OUTLET_ environment variable,
for example OUTLET_LISTEN=:9000 or OUTLET_LOG_LEVEL=debug.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: outlet.yaml in this or a parent directory)")

	rootCmd.AddCommand(
		serveCmd(&configPath),
		renderCmd(&configPath),
		routesCmd(&configPath),
		versionCmd(),
	)
	return rootCmd
}
