// Package board holds all cli commands related to curriculum boards
//
// e.g., syllabus board ...
package board

import (
	"github.com/spf13/cobra"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage curriculum boards",
		Long: `A board lays subjects out over ordered semesters.

Boards are referred to by ID or by name.`,
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ValidateCmd())
	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(ReportCmd())
	cmd.AddCommand(UndoCmd())

	return cmd
}
