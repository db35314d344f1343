package models

import (
	"time"

	"github.com/thenoetrevino/syllabus/internal/types"
)

// Board is one curriculum track laid out as ordered semester columns.
// ColumnOrder holds exactly the keys of Columns.
type Board struct {
	ID          types.BoardID              `json:"id" yaml:"id"`
	Name        string                     `json:"name" yaml:"name"`
	Type        string                     `json:"type" yaml:"type"`
	ColumnOrder []types.ColumnID           `json:"column_order" yaml:"column_order"`
	Columns     map[types.ColumnID]*Column `json:"columns" yaml:"columns"`
	CreatedAt   time.Time                  `json:"created_at,omitzero" yaml:"created_at,omitempty"`
	UpdatedAt   time.Time                  `json:"updated_at,omitzero" yaml:"updated_at,omitempty"`
}

// Column is a semester slot; the order of SubjectIDs is the sequence within it
type Column struct {
	ID         types.ColumnID    `json:"id" yaml:"id"`
	Title      string            `json:"title" yaml:"title"`
	SubjectIDs []types.SubjectID `json:"subject_ids" yaml:"subject_ids"`
}

// BoardSummary is a DTO for listing boards without their placements
type BoardSummary struct {
	ID          types.BoardID `json:"id"`
	Name        string        `json:"name"`
	Type        string        `json:"type"`
	ColumnCount int           `json:"column_count"`
	Placed      int           `json:"placed"`
	UpdatedAt   time.Time     `json:"updated_at,omitzero"`
}

// OrderedColumns returns the columns in ColumnOrder sequence
func (b *Board) OrderedColumns() []*Column {
	cols := make([]*Column, 0, len(b.ColumnOrder))
	for _, id := range b.ColumnOrder {
		if col, ok := b.Columns[id]; ok {
			cols = append(cols, col)
		}
	}
	return cols
}

// SubjectCount returns the number of placements across all columns
func (b *Board) SubjectCount() int {
	total := 0
	for _, col := range b.Columns {
		total += len(col.SubjectIDs)
	}
	return total
}
