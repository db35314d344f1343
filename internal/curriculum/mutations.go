package curriculum

import (
	"slices"

	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// Every mutation below returns a new snapshot and leaves its input untouched.
// On error the returned board is nil.

// AddColumn appends a new empty column to the board
func AddColumn(b *models.Board, title string) *models.Board {
	next := Clone(b)
	id := newColumnID()
	next.Columns[id] = &models.Column{ID: id, Title: title, SubjectIDs: []types.SubjectID{}}
	next.ColumnOrder = append(next.ColumnOrder, id)
	return next
}

// RemoveColumn drops a column and its order entry. Subjects that were in it
// become unplaced.
func RemoveColumn(b *models.Board, columnID types.ColumnID) (*models.Board, error) {
	if _, ok := b.Columns[columnID]; !ok {
		return nil, unknownColumn("remove column", columnID)
	}
	next := Clone(b)
	delete(next.Columns, columnID)
	next.ColumnOrder = slices.DeleteFunc(next.ColumnOrder, func(id types.ColumnID) bool {
		return id == columnID
	})
	return next, nil
}

// RenameColumn changes the title of a column
func RenameColumn(b *models.Board, columnID types.ColumnID, title string) (*models.Board, error) {
	if _, ok := b.Columns[columnID]; !ok {
		return nil, unknownColumn("rename column", columnID)
	}
	next := Clone(b)
	next.Columns[columnID].Title = title
	return next, nil
}

// MoveColumn moves the column at fromIndex to toIndex in the column order
func MoveColumn(b *models.Board, fromIndex, toIndex int) (*models.Board, error) {
	n := len(b.ColumnOrder)
	if fromIndex < 0 || fromIndex >= n {
		return nil, outOfRange("move column", "", fromIndex)
	}
	if toIndex < 0 || toIndex >= n {
		return nil, outOfRange("move column", "", toIndex)
	}
	next := Clone(b)
	id := next.ColumnOrder[fromIndex]
	next.ColumnOrder = slices.Delete(next.ColumnOrder, fromIndex, fromIndex+1)
	next.ColumnOrder = slices.Insert(next.ColumnOrder, toIndex, id)
	return next, nil
}

// AddSubject appends a subject to the end of a column. The subject must not be
// placed anywhere on the board yet.
func AddSubject(b *models.Board, columnID types.ColumnID, subjectID types.SubjectID) (*models.Board, error) {
	col, ok := b.Columns[columnID]
	if !ok {
		return nil, unknownColumn("add subject", columnID)
	}
	return insertSubject(b, "add subject", columnID, len(col.SubjectIDs), subjectID)
}

// InsertSubject places a subject at a given position of a column, shifting the
// entries at and after it. index may equal the column length (append).
func InsertSubject(b *models.Board, columnID types.ColumnID, index int, subjectID types.SubjectID) (*models.Board, error) {
	if _, ok := b.Columns[columnID]; !ok {
		return nil, unknownColumn("insert subject", columnID)
	}
	return insertSubject(b, "insert subject", columnID, index, subjectID)
}

func insertSubject(b *models.Board, op string, columnID types.ColumnID, index int, subjectID types.SubjectID) (*models.Board, error) {
	if at, placed := Locate(b, subjectID); placed {
		return nil, &MutationError{Op: op, Kind: ErrAlreadyPlaced, ColumnID: at.ColumnID, SubjectID: subjectID}
	}
	col := b.Columns[columnID]
	if index < 0 || index > len(col.SubjectIDs) {
		return nil, outOfRange(op, columnID, index)
	}
	next := Clone(b)
	dst := next.Columns[columnID]
	dst.SubjectIDs = slices.Insert(dst.SubjectIDs, index, subjectID)
	return next, nil
}

// RemoveSubject takes a subject out of a column
func RemoveSubject(b *models.Board, columnID types.ColumnID, subjectID types.SubjectID) (*models.Board, error) {
	col, ok := b.Columns[columnID]
	if !ok {
		return nil, unknownColumn("remove subject", columnID)
	}
	i := slices.Index(col.SubjectIDs, subjectID)
	if i < 0 {
		return nil, &MutationError{Op: "remove subject", Kind: ErrUnknownSubject, ColumnID: columnID, SubjectID: subjectID}
	}
	next := Clone(b)
	c := next.Columns[columnID]
	c.SubjectIDs = slices.Delete(c.SubjectIDs, i, i+1)
	return next, nil
}

// Reorder moves the subject at (sourceColumn, sourceIndex) to
// (destColumn, destIndex). For a move within one column destIndex is the
// position after the subject has been taken out, so it ranges over
// [0, len-1]; for a move across columns it ranges over [0, len(dest)].
func Reorder(b *models.Board, sourceColumn types.ColumnID, sourceIndex int, destColumn types.ColumnID, destIndex int) (*models.Board, error) {
	src, ok := b.Columns[sourceColumn]
	if !ok {
		return nil, unknownColumn("reorder", sourceColumn)
	}
	dst, ok := b.Columns[destColumn]
	if !ok {
		return nil, unknownColumn("reorder", destColumn)
	}
	if sourceIndex < 0 || sourceIndex >= len(src.SubjectIDs) {
		return nil, outOfRange("reorder", sourceColumn, sourceIndex)
	}

	limit := len(dst.SubjectIDs)
	if sourceColumn == destColumn {
		limit--
	}
	if destIndex < 0 || destIndex > limit {
		return nil, outOfRange("reorder", destColumn, destIndex)
	}

	next := Clone(b)
	from := next.Columns[sourceColumn]
	moved := from.SubjectIDs[sourceIndex]
	from.SubjectIDs = slices.Delete(from.SubjectIDs, sourceIndex, sourceIndex+1)

	to := next.Columns[destColumn]
	to.SubjectIDs = slices.Insert(to.SubjectIDs, destIndex, moved)
	return next, nil
}
