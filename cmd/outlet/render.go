package main

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

func renderCmd(configPath *string) *cobra.Command {
	var titleOnly bool

	cmd := &cobra.Command{
		Use:   "render <path>",
		Short: "Render one page to stdout",
		Long: `Render the page at path without starting a server and print its
document title followed by the outlet HTML.

Examples:
  outlet render /
  outlet render /about --title`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), *configPath, args[0], titleOnly)
		},
	}

	cmd.Flags().BoolVarP(&titleOnly, "title", "t", false, "Print only the document title")

	return cmd
}

func runRender(ctx context.Context, out, errOut io.Writer, configPath, path string, titleOnly bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := newApp(ctx, cfg, errOut, errOut)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	title, html, status, err := a.server.RenderPath(ctx, path)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		fmt.Fprintf(errOut, "%s: %d %s\n", path, status, http.StatusText(status))
	}

	fmt.Fprintln(out, title)
	if !titleOnly {
		fmt.Fprintln(out, html)
	}
	return nil
}
