// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// SubjectRepository is the subject-data collaborator of the curriculum core
type SubjectRepository interface {
	Upsert(ctx context.Context, s models.Subject) error
	UpsertAll(ctx context.Context, subjects []models.Subject) error
	SetPrerequisites(ctx context.Context, id types.SubjectID, prereqs []types.SubjectID) error
	GetAll(ctx context.Context) ([]models.Subject, error)
	GetByID(ctx context.Context, id types.SubjectID) (*models.Subject, error)
	Delete(ctx context.Context, id types.SubjectID) error
	CountPlacements(ctx context.Context, id types.SubjectID) (int, error)
}

// BoardRepository is the persistence collaborator that receives board snapshots
type BoardRepository interface {
	Save(ctx context.Context, b *models.Board) error
	SaveWithHistory(ctx context.Context, next, prev *models.Board, limit int) error
	History(ctx context.Context, id types.BoardID) ([]*models.Board, error)
	Restore(ctx context.Context, b *models.Board) error
	GetByID(ctx context.Context, id types.BoardID) (*models.Board, error)
	List(ctx context.Context) ([]*models.BoardSummary, error)
	Delete(ctx context.Context, id types.BoardID) error
}

// TrackRepository stores study tracks and their wizard position
type TrackRepository interface {
	Create(ctx context.Context, name string, stepNames []string) (*models.Track, error)
	GetByID(ctx context.Context, id types.TrackID) (*models.Track, error)
	GetByName(ctx context.Context, name string) (*models.Track, error)
	List(ctx context.Context) ([]*models.Track, error)
	SetCurrentStep(ctx context.Context, id types.TrackID, step int) error
	AttachBoard(ctx context.Context, id types.TrackID, position int, boardID *types.BoardID) error
	Delete(ctx context.Context, id types.TrackID) error
}

// Compile-time verification that the repos implement their interfaces
var (
	_ SubjectRepository = (*SubjectRepo)(nil)
	_ BoardRepository   = (*BoardRepo)(nil)
	_ TrackRepository   = (*TrackRepo)(nil)
)
