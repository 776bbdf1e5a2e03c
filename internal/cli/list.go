// internal/cli/list.go
package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/javajoker/product-catalog/internal/client"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		filter string
		page   int
		rows   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Long:  "Lists one page of products, optionally filtered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rows == 0 {
				rows = opts.settings.RowsPerPage
			}

			catalog := client.NewCatalog(opts.client(), nil)
			if err := catalog.Refresh(cmd.Context()); err != nil {
				return err
			}

			var rowsErr error
			catalog.View(func(v *client.ListView) {
				if rowsErr = v.SetRowsPerPage(rows); rowsErr != nil {
					return
				}
				v.SetFilter(filter)
				v.SetPage(page)

				out := cmd.OutOrStdout()
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tPRICE\tSTATUS\tIMAGES")
				for _, p := range v.Visible() {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", p.ID, p.Name, p.Price.String(), statusLabel(p.Status), len(p.Images))
				}
				tw.Flush()

				pages := v.PageCount()
				if pages == 0 {
					pages = 1
				}
				fmt.Fprintf(out, "\nPage %d of %d (%d products)\n", v.Page(), pages, len(v.Filtered()))
			})
			return rowsErr
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "case-insensitive name filter")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number")
	cmd.Flags().IntVarP(&rows, "rows", "r", 0, "rows per page (5, 10 or 15)")
	return cmd
}
