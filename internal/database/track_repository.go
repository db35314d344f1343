package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// TrackRepo persists study tracks and the wizard position within them.
type TrackRepo struct {
	db *sql.DB
}

// Create inserts a track with one step per name, positioned at the first step
func (r *TrackRepo) Create(ctx context.Context, name string, stepNames []string) (*models.Track, error) {
	var track *models.Track
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `INSERT INTO tracks (name) VALUES (?)`, name)
		if err != nil {
			return fmt.Errorf("inserting track: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting track ID: %w", err)
		}

		track = &models.Track{ID: types.TrackID(id), Name: name}
		for pos, stepName := range stepNames {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO track_steps (track_id, position, name) VALUES (?, ?, ?)`,
				id, pos, stepName,
			)
			if err != nil {
				return fmt.Errorf("inserting step %q: %w", stepName, err)
			}
			track.Steps = append(track.Steps, models.Step{Name: stepName})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return track, nil
}

// GetByID loads a track with its steps. Returns sql.ErrNoRows (wrapped) if absent.
func (r *TrackRepo) GetByID(ctx context.Context, id types.TrackID) (*models.Track, error) {
	track := &models.Track{ID: id}
	var createdAt sql.NullTime
	err := r.db.QueryRowContext(ctx,
		`SELECT name, current_step, created_at FROM tracks WHERE id = ?`, id.ToInt(),
	).Scan(&track.Name, &track.CurrentStep, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("getting track %d: %w", id, err)
	}
	track.CreatedAt = NullTimeToTime(createdAt)

	rows, err := r.db.QueryContext(ctx,
		`SELECT name, board_id FROM track_steps WHERE track_id = ? ORDER BY position`, id.ToInt())
	if err != nil {
		return nil, fmt.Errorf("querying steps of track %d: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var step models.Step
		var boardID sql.NullString
		if err := rows.Scan(&step.Name, &boardID); err != nil {
			return nil, fmt.Errorf("scanning step row: %w", err)
		}
		step.BoardID = nullStringToBoardID(boardID)
		track.Steps = append(track.Steps, step)
	}
	return track, rows.Err()
}

// GetByName loads a track by its unique name
func (r *TrackRepo) GetByName(ctx context.Context, name string) (*models.Track, error) {
	var id int
	err := r.db.QueryRowContext(ctx, `SELECT id FROM tracks WHERE name = ?`, name).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("getting track %q: %w", name, err)
	}
	return r.GetByID(ctx, types.TrackID(id))
}

// List returns every track without its steps, ordered by name
func (r *TrackRepo) List(ctx context.Context) ([]*models.Track, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, current_step, created_at FROM tracks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying tracks: %w", err)
	}
	defer rows.Close()

	tracks := []*models.Track{}
	for rows.Next() {
		t := &models.Track{}
		var id int
		var createdAt sql.NullTime
		if err := rows.Scan(&id, &t.Name, &t.CurrentStep, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning track row: %w", err)
		}
		t.ID = types.TrackID(id)
		t.CreatedAt = NullTimeToTime(createdAt)
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

// SetCurrentStep stores the wizard position of a track
func (r *TrackRepo) SetCurrentStep(ctx context.Context, id types.TrackID, step int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tracks SET current_step = ? WHERE id = ?`, step, id.ToInt())
	if err != nil {
		return fmt.Errorf("updating current step of track %d: %w", id, err)
	}
	return nil
}

// AttachBoard binds a board to the step at position; a nil board unbinds it
func (r *TrackRepo) AttachBoard(ctx context.Context, id types.TrackID, position int, boardID *types.BoardID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE track_steps SET board_id = ? WHERE track_id = ? AND position = ?`,
		boardIDToNullString(boardID), id.ToInt(), position,
	)
	if err != nil {
		return fmt.Errorf("attaching board to track %d step %d: %w", id, position, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("track %d has no step %d: %w", id, position, sql.ErrNoRows)
	}
	return nil
}

// Delete removes a track and its steps. Boards bound to the steps are kept.
func (r *TrackRepo) Delete(ctx context.Context, id types.TrackID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tracks WHERE id = ?`, id.ToInt())
	if err != nil {
		return fmt.Errorf("deleting track %d: %w", id, err)
	}
	return nil
}
