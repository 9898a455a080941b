package commands

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"evalvault/pkg/core"
	"evalvault/pkg/taxonomy"
)

func newTaxonomyCommand() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "taxonomy",
		Short: "Print the failure-mode catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := taxonomy.NewRegistry()

			entries := registry.All()
			if category != "" {
				cat := core.Category(category)
				if !cat.Valid() {
					return errors.Newf("unknown category: %s", category)
				}
				entries = registry.ByCategory(cat)
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header([]string{"ID", "Category", "Name", "Description"})
			for _, entry := range entries {
				table.Append([]string{
					strconv.Itoa(entry.ID),
					entry.Category.Title(),
					entry.Name,
					entry.Description,
				})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category (A-F)")

	return cmd
}
