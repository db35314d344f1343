package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// BoardRepo persists board snapshots. A save replaces the stored columns and
// placements of the board with those of the snapshot.
type BoardRepo struct {
	db *sql.DB
}

// Save writes the snapshot in a single transaction
func (r *BoardRepo) Save(ctx context.Context, b *models.Board) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return saveBoard(ctx, tx, b)
	})
}

// SaveWithHistory writes next and records prev as its undo snapshot in one
// transaction. Only the newest limit snapshots of the board are kept.
func (r *BoardRepo) SaveWithHistory(ctx context.Context, next, prev *models.Board, limit int) error {
	data, err := json.Marshal(prev)
	if err != nil {
		return fmt.Errorf("encoding snapshot of board %s: %w", prev.ID, err)
	}
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := saveBoard(ctx, tx, next); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO board_history (board_id, seq, snapshot)
			VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM board_history WHERE board_id = ?), ?)`,
			string(next.ID), string(next.ID), string(data),
		)
		if err != nil {
			return fmt.Errorf("recording history of board %s: %w", next.ID, err)
		}
		_, err = tx.ExecContext(ctx, `
			DELETE FROM board_history WHERE board_id = ? AND seq NOT IN (
				SELECT seq FROM board_history WHERE board_id = ? ORDER BY seq DESC LIMIT ?
			)`,
			string(next.ID), string(next.ID), limit,
		)
		if err != nil {
			return fmt.Errorf("trimming history of board %s: %w", next.ID, err)
		}
		return nil
	})
}

// History returns the undo snapshots of a board, oldest first
func (r *BoardRepo) History(ctx context.Context, id types.BoardID) ([]*models.Board, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT snapshot FROM board_history WHERE board_id = ? ORDER BY seq`, string(id))
	if err != nil {
		return nil, fmt.Errorf("querying history of board %s: %w", id, err)
	}
	defer rows.Close()

	history := []*models.Board{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		var b models.Board
		if err := json.Unmarshal([]byte(data), &b); err != nil {
			return nil, fmt.Errorf("decoding snapshot of board %s: %w", id, err)
		}
		history = append(history, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history rows: %w", err)
	}
	return history, nil
}

// Restore writes b and drops its newest undo snapshot in one transaction
func (r *BoardRepo) Restore(ctx context.Context, b *models.Board) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := saveBoard(ctx, tx, b); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			DELETE FROM board_history WHERE board_id = ?
			AND seq = (SELECT MAX(seq) FROM board_history WHERE board_id = ?)`,
			string(b.ID), string(b.ID),
		)
		if err != nil {
			return fmt.Errorf("popping history of board %s: %w", b.ID, err)
		}
		return nil
	})
}

func saveBoard(ctx context.Context, tx *sql.Tx, b *models.Board) error {
	now := time.Now().UTC()
	_, err := tx.ExecContext(ctx, `
		INSERT INTO boards (id, name, type, created_at, updated_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, type = excluded.type, updated_at = excluded.updated_at`,
		string(b.ID), b.Name, b.Type, now, now,
	)
	if err != nil {
		return fmt.Errorf("upserting board %s: %w", b.ID, err)
	}

	// Placements cascade from their columns
	if _, err := tx.ExecContext(ctx, `DELETE FROM board_columns WHERE board_id = ?`, string(b.ID)); err != nil {
		return fmt.Errorf("clearing columns of board %s: %w", b.ID, err)
	}

	for pos, colID := range b.ColumnOrder {
		col, ok := b.Columns[colID]
		if !ok {
			return fmt.Errorf("column %s is ordered but missing from board %s", colID, b.ID)
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO board_columns (id, board_id, title, position) VALUES (?, ?, ?, ?)`,
			string(col.ID), string(b.ID), col.Title, pos,
		)
		if err != nil {
			return fmt.Errorf("inserting column %s: %w", col.ID, err)
		}

		for i, subjectID := range col.SubjectIDs {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO placements (board_id, column_id, subject_id, position) VALUES (?, ?, ?, ?)`,
				string(b.ID), string(col.ID), string(subjectID), i,
			)
			if err != nil {
				return fmt.Errorf("placing subject %s in column %s: %w", subjectID, col.ID, err)
			}
		}
	}
	return nil
}

// GetByID loads a board snapshot. Returns sql.ErrNoRows (wrapped) if absent.
func (r *BoardRepo) GetByID(ctx context.Context, id types.BoardID) (*models.Board, error) {
	b := &models.Board{
		ID:          id,
		ColumnOrder: []types.ColumnID{},
		Columns:     make(map[types.ColumnID]*models.Column),
	}
	var createdAt, updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx,
		`SELECT name, type, created_at, updated_at FROM boards WHERE id = ?`, string(id),
	).Scan(&b.Name, &b.Type, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("getting board %s: %w", id, err)
	}
	b.CreatedAt = NullTimeToTime(createdAt)
	b.UpdatedAt = NullTimeToTime(updatedAt)

	colRows, err := r.db.QueryContext(ctx,
		`SELECT id, title FROM board_columns WHERE board_id = ? ORDER BY position`, string(id))
	if err != nil {
		return nil, fmt.Errorf("querying columns of board %s: %w", id, err)
	}
	defer colRows.Close()

	for colRows.Next() {
		var colID, title string
		if err := colRows.Scan(&colID, &title); err != nil {
			return nil, fmt.Errorf("scanning column row: %w", err)
		}
		cid := types.ColumnID(colID)
		b.ColumnOrder = append(b.ColumnOrder, cid)
		b.Columns[cid] = &models.Column{ID: cid, Title: title, SubjectIDs: []types.SubjectID{}}
	}
	if err := colRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating column rows: %w", err)
	}

	placeRows, err := r.db.QueryContext(ctx,
		`SELECT column_id, subject_id FROM placements WHERE board_id = ? ORDER BY column_id, position`, string(id))
	if err != nil {
		return nil, fmt.Errorf("querying placements of board %s: %w", id, err)
	}
	defer placeRows.Close()

	for placeRows.Next() {
		var colID, subjectID string
		if err := placeRows.Scan(&colID, &subjectID); err != nil {
			return nil, fmt.Errorf("scanning placement row: %w", err)
		}
		col, ok := b.Columns[types.ColumnID(colID)]
		if !ok {
			return nil, fmt.Errorf("placement references column %s outside board %s", colID, id)
		}
		col.SubjectIDs = append(col.SubjectIDs, types.SubjectID(subjectID))
	}
	if err := placeRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating placement rows: %w", err)
	}

	return b, nil
}

// List returns a summary of every board ordered by name
func (r *BoardRepo) List(ctx context.Context) ([]*models.BoardSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT b.id, b.name, b.type, b.updated_at,
			(SELECT COUNT(*) FROM board_columns c WHERE c.board_id = b.id),
			(SELECT COUNT(*) FROM placements p WHERE p.board_id = b.id)
		FROM boards b
		ORDER BY b.name, b.id`)
	if err != nil {
		return nil, fmt.Errorf("querying boards: %w", err)
	}
	defer rows.Close()

	summaries := []*models.BoardSummary{}
	for rows.Next() {
		s := &models.BoardSummary{}
		var id string
		var updatedAt sql.NullTime
		if err := rows.Scan(&id, &s.Name, &s.Type, &updatedAt, &s.ColumnCount, &s.Placed); err != nil {
			return nil, fmt.Errorf("scanning board row: %w", err)
		}
		s.ID = types.BoardID(id)
		s.UpdatedAt = NullTimeToTime(updatedAt)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating board rows: %w", err)
	}
	return summaries, nil
}

// Delete removes a board; columns and placements cascade, track steps are unbound
func (r *BoardRepo) Delete(ctx context.Context, id types.BoardID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("deleting board %s: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("deleting board %s: %w", id, sql.ErrNoRows)
	}
	return nil
}
