// Package column holds all cli commands related to the semesters of a board
//
// e.g., syllabus column ...
package column

import (
	"github.com/spf13/cobra"
)

// ColumnCmd returns the column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "column",
		Aliases: []string{"semester"},
		Short:   "Manage the semesters of a board",
		Long: `Semesters are referred to by ID, by 1-based position or by title.

Examples:
  syllabus column add "Computer Science" --title="Summer term"
  syllabus column rename "Computer Science" 3 --title="Exchange semester"
  syllabus column move "Computer Science" "Summer term" --to=1
  syllabus column remove "Computer Science" 9
`,
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(RemoveCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}
