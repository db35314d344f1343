package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// SubjectRepo handles all subject and prerequisite database operations.
type SubjectRepo struct {
	db *sql.DB
}

// Upsert inserts or replaces a subject together with its prerequisite list
func (r *SubjectRepo) Upsert(ctx context.Context, s models.Subject) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return upsertSubject(ctx, tx, s)
	})
}

// UpsertAll writes many subjects in one transaction
func (r *SubjectRepo) UpsertAll(ctx context.Context, subjects []models.Subject) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, s := range subjects {
			if err := upsertSubject(ctx, tx, s); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsertSubject(ctx context.Context, tx *sql.Tx, s models.Subject) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO subjects (id, name, credits, hours) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, credits = excluded.credits, hours = excluded.hours`,
		string(s.ID), s.Name, s.Credits, s.Hours,
	)
	if err != nil {
		return fmt.Errorf("upserting subject %s: %w", s.ID, err)
	}
	return replacePrerequisites(ctx, tx, s.ID, s.Prerequisites)
}

func replacePrerequisites(ctx context.Context, tx *sql.Tx, id types.SubjectID, prereqs []types.SubjectID) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM prerequisites WHERE subject_id = ?`, string(id)); err != nil {
		return fmt.Errorf("clearing prerequisites of %s: %w", id, err)
	}
	for _, p := range prereqs {
		_, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO prerequisites (subject_id, requires_id) VALUES (?, ?)`,
			string(id), string(p),
		)
		if err != nil {
			return fmt.Errorf("adding prerequisite %s to %s: %w", p, id, err)
		}
	}
	return nil
}

// SetPrerequisites replaces the prerequisite list of an existing subject
func (r *SubjectRepo) SetPrerequisites(ctx context.Context, id types.SubjectID, prereqs []types.SubjectID) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM subjects WHERE id = ?`, string(id)).Scan(&exists)
		if err != nil {
			return fmt.Errorf("looking up subject %s: %w", id, err)
		}
		return replacePrerequisites(ctx, tx, id, prereqs)
	})
}

// GetAll retrieves every subject ordered by ID, prerequisites included
func (r *SubjectRepo) GetAll(ctx context.Context) ([]models.Subject, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, credits, hours FROM subjects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying subjects: %w", err)
	}
	defer rows.Close()

	var subjects []models.Subject
	index := make(map[types.SubjectID]int)
	for rows.Next() {
		var s models.Subject
		var id string
		if err := rows.Scan(&id, &s.Name, &s.Credits, &s.Hours); err != nil {
			return nil, fmt.Errorf("scanning subject row: %w", err)
		}
		s.ID = types.SubjectID(id)
		index[s.ID] = len(subjects)
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating subject rows: %w", err)
	}

	prereqRows, err := r.db.QueryContext(ctx,
		`SELECT subject_id, requires_id FROM prerequisites ORDER BY subject_id, requires_id`)
	if err != nil {
		return nil, fmt.Errorf("querying prerequisites: %w", err)
	}
	defer prereqRows.Close()

	for prereqRows.Next() {
		var subjectID, requiresID string
		if err := prereqRows.Scan(&subjectID, &requiresID); err != nil {
			return nil, fmt.Errorf("scanning prerequisite row: %w", err)
		}
		if i, ok := index[types.SubjectID(subjectID)]; ok {
			subjects[i].Prerequisites = append(subjects[i].Prerequisites, types.SubjectID(requiresID))
		}
	}
	if err := prereqRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating prerequisite rows: %w", err)
	}

	return subjects, nil
}

// GetByID retrieves one subject. Returns sql.ErrNoRows (wrapped) if absent.
func (r *SubjectRepo) GetByID(ctx context.Context, id types.SubjectID) (*models.Subject, error) {
	s := &models.Subject{ID: id}
	err := r.db.QueryRowContext(ctx,
		`SELECT name, credits, hours FROM subjects WHERE id = ?`, string(id),
	).Scan(&s.Name, &s.Credits, &s.Hours)
	if err != nil {
		return nil, fmt.Errorf("getting subject %s: %w", id, err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT requires_id FROM prerequisites WHERE subject_id = ? ORDER BY requires_id`, string(id))
	if err != nil {
		return nil, fmt.Errorf("querying prerequisites of %s: %w", id, err)
	}
	defer rows.Close()
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scanning prerequisite row: %w", err)
		}
		s.Prerequisites = append(s.Prerequisites, types.SubjectID(p))
	}
	return s, rows.Err()
}

// Delete removes a subject and its own prerequisite rows
func (r *SubjectRepo) Delete(ctx context.Context, id types.SubjectID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM subjects WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("deleting subject %s: %w", id, err)
	}
	return nil
}

// CountPlacements returns on how many boards the subject is placed
func (r *SubjectRepo) CountPlacements(ctx context.Context, id types.SubjectID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM placements WHERE subject_id = ?`, string(id),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting placements of %s: %w", id, err)
	}
	return count, nil
}
