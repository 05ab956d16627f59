package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/outlet/internal/config"
)

func routesCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the route table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			routes := append([]config.RouteConfig(nil), cfg.Routes...)
			sort.Slice(routes, func(i, j int) bool { return routes[i].Path < routes[j].Path })

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PATH\tTITLE\tSOURCE")
			for _, rc := range routes {
				source := "page:" + rc.Page
				if rc.Content != "" {
					source = "content:" + rc.Content
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", rc.Path, rc.Title, source)
			}
			return tw.Flush()
		},
	}
}
