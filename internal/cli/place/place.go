// Package place holds the cli commands that put subjects into semesters
//
// e.g., syllabus place ...
package place

import (
	"github.com/spf13/cobra"
)

// PlaceCmd returns the place parent command
func PlaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "place",
		Short: "Place subjects into the semesters of a board",
		Long: `A subject can be placed at most once per board. Semesters are referred to
by ID, 1-based position or title; --at takes a 1-based position inside the
semester.

Examples:
  syllabus place add "Computer Science" CS101 --column=1
  syllabus place add "Computer Science" MATH101 --column="Semester 1" --at=1
  syllabus place move "Computer Science" CS201 --column=3
  syllabus place remove "Computer Science" CS101
`,
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(RemoveCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}
