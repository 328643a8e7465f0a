package cmd

import (
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/mongotour/internal/catalog"
)

var listOpsCmd = &cobra.Command{
	Use:   "list-ops",
	Short: "List the catalog of operations the tour will run",
	Long: `List-ops displays every operation in the fixed catalog, in execution
order, without touching the database.

Example:
  mongotour list-ops`,
	RunE: runListOps,
}

func init() {
	rootCmd.AddCommand(listOpsCmd)
}

func runListOps(cmd *cobra.Command, args []string) error {
	entries := catalog.New().Entries()

	// Align the name and kind columns by display width
	nameWidth := 0
	kindWidth := 0
	for _, op := range entries {
		if w := runewidth.StringWidth(op.Name); w > nameWidth {
			nameWidth = w
		}
		if w := runewidth.StringWidth(op.Kind.String()); w > kindWidth {
			kindWidth = w
		}
	}

	cmd.Printf("Catalog operations, in execution order:\n\n")
	for i, op := range entries {
		cmd.Printf("%2d. %s  %s  %s\n",
			i+1,
			runewidth.FillRight(op.Name, nameWidth),
			runewidth.FillRight(op.Kind.String(), kindWidth),
			op.Description,
		)
	}
	cmd.Printf("\nTotal: %d operation(s)\n", len(entries))

	return nil
}
