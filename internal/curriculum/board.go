// Package curriculum holds the curriculum board model: pure mutations over
// immutable board snapshots, the prerequisite graph and its validator, and a
// small session type that keeps the current snapshot for an editor.
package curriculum

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// Generators for new identifiers. Tests replace them to get stable IDs.
var (
	newBoardID  = func() types.BoardID { return types.BoardID(uuid.NewString()) }
	newColumnID = func() types.ColumnID { return types.ColumnID(uuid.NewString()) }
)

// Placement is where a subject sits on a board
type Placement struct {
	ColumnID    types.ColumnID
	ColumnIndex int
	Index       int
}

// NewBoard creates an empty board with no columns
func NewBoard(name, boardType string) *models.Board {
	return &models.Board{
		ID:          newBoardID(),
		Name:        name,
		Type:        boardType,
		ColumnOrder: []types.ColumnID{},
		Columns:     make(map[types.ColumnID]*models.Column),
	}
}

// NewBoardWithSemesters creates a board with n empty columns titled "Semester 1".."Semester n"
func NewBoardWithSemesters(name, boardType string, n int) *models.Board {
	b := NewBoard(name, boardType)
	b.ColumnOrder = make([]types.ColumnID, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		id := newColumnID()
		b.Columns[id] = &models.Column{ID: id, Title: SemesterTitle(i), SubjectIDs: []types.SubjectID{}}
		b.ColumnOrder = append(b.ColumnOrder, id)
	}
	return b
}

// SemesterTitle is the default title of the i-th column (1-based)
func SemesterTitle(i int) string {
	return fmt.Sprintf("Semester %d", i)
}

// Clone returns a deep copy of b. A nil board clones to nil.
func Clone(b *models.Board) *models.Board {
	if b == nil {
		return nil
	}
	out := *b
	out.ColumnOrder = slices.Clone(b.ColumnOrder)
	if out.ColumnOrder == nil {
		out.ColumnOrder = []types.ColumnID{}
	}
	out.Columns = make(map[types.ColumnID]*models.Column, len(b.Columns))
	for id, col := range b.Columns {
		c := *col
		c.SubjectIDs = slices.Clone(col.SubjectIDs)
		if c.SubjectIDs == nil {
			c.SubjectIDs = []types.SubjectID{}
		}
		out.Columns[id] = &c
	}
	return &out
}

// Locate finds the column and position of a subject on the board
func Locate(b *models.Board, subjectID types.SubjectID) (Placement, bool) {
	for colIdx, colID := range b.ColumnOrder {
		col, ok := b.Columns[colID]
		if !ok {
			continue
		}
		if i := slices.Index(col.SubjectIDs, subjectID); i >= 0 {
			return Placement{ColumnID: colID, ColumnIndex: colIdx, Index: i}, true
		}
	}
	return Placement{}, false
}

// Placed returns every placed subject in board order
func Placed(b *models.Board) []types.SubjectID {
	var ids []types.SubjectID
	for _, col := range b.OrderedColumns() {
		ids = append(ids, col.SubjectIDs...)
	}
	return ids
}

// Unplaced returns the registry subjects that are not on the board, sorted by ID
func Unplaced(b *models.Board, reg *Registry) []models.Subject {
	placed := make(map[types.SubjectID]bool)
	for _, id := range Placed(b) {
		placed[id] = true
	}
	var out []models.Subject
	for _, s := range reg.All() {
		if !placed[s.ID] {
			out = append(out, s)
		}
	}
	return out
}

// CheckConsistency verifies that the column order matches the column map and
// that no subject is placed twice. Used on snapshots read back from storage.
func CheckConsistency(b *models.Board) error {
	if len(b.ColumnOrder) != len(b.Columns) {
		return fmt.Errorf("%w: %d ordered columns, %d in mapping",
			ErrInconsistentBoard, len(b.ColumnOrder), len(b.Columns))
	}
	seenCols := make(map[types.ColumnID]bool, len(b.ColumnOrder))
	seenSubjects := make(map[types.SubjectID]types.ColumnID)
	for _, colID := range b.ColumnOrder {
		if seenCols[colID] {
			return fmt.Errorf("%w: column %s ordered twice", ErrInconsistentBoard, colID)
		}
		seenCols[colID] = true

		col, ok := b.Columns[colID]
		if !ok {
			return fmt.Errorf("%w: column %s missing from mapping", ErrInconsistentBoard, colID)
		}
		if col.ID != colID {
			return fmt.Errorf("%w: column key %s holds column %s", ErrInconsistentBoard, colID, col.ID)
		}
		for _, s := range col.SubjectIDs {
			if prev, dup := seenSubjects[s]; dup {
				return fmt.Errorf("%w: subject %s placed in %s and %s", ErrInconsistentBoard, s, prev, colID)
			}
			seenSubjects[s] = colID
		}
	}
	return nil
}
