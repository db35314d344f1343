package cli

import (
	"fmt"
	"slices"

	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/render"
	"github.com/thenoetrevino/syllabus/internal/services/board"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// PrintWarnings lists advisory prerequisite warnings after a change
func PrintWarnings(warnings []models.Warning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Printf("⚠ %d prerequisite warning(s):\n", len(warnings))
	for _, w := range warnings {
		fmt.Printf("  %s\n", render.WarningLine(w))
	}
}

// ReportResult prints the outcome of a board change: the board ID in quiet
// mode, the result envelope in JSON mode, otherwise message and warnings
func ReportResult(formatter *OutputFormatter, res *board.Result, message string) error {
	if formatter.Quiet {
		fmt.Println(res.Board.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.Success(res)
	}
	fmt.Println(message)
	PrintWarnings(res.Warnings)
	return nil
}

// ColumnPosition returns the 1-based position of a column on the board, or 0
func ColumnPosition(b *models.Board, id types.ColumnID) int {
	return slices.Index(b.ColumnOrder, id) + 1
}
