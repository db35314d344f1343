package curriculum

import (
	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// Validate reports prerequisites that are scheduled in a later column than
// the subject needing them, or that are not on the board at all. A
// prerequisite in the same column is accepted. Warnings come out in board
// order, then by prerequisite ID.
func Validate(b *models.Board, g *PrerequisiteGraph) []models.Warning {
	columnOf := make(map[types.SubjectID]int)
	for colIdx, col := range b.OrderedColumns() {
		for _, id := range col.SubjectIDs {
			columnOf[id] = colIdx
		}
	}

	var warnings []models.Warning
	for colIdx, col := range b.OrderedColumns() {
		for _, id := range col.SubjectIDs {
			for _, p := range g.Requires(id) {
				pIdx, placed := columnOf[p]
				switch {
				case !placed:
					warnings = append(warnings, models.Warning{
						SubjectID:      id,
						PrerequisiteID: p,
						Reason:         models.ReasonMissing,
					})
				case pIdx > colIdx:
					warnings = append(warnings, models.Warning{
						SubjectID:      id,
						PrerequisiteID: p,
						Reason:         models.ReasonScheduledAfter,
					})
				}
			}
		}
	}
	return warnings
}
