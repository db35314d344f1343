package track

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/syllabus/internal/database"
	"github.com/thenoetrevino/syllabus/internal/events"
	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/services/board"
	"github.com/thenoetrevino/syllabus/internal/types"
	"github.com/thenoetrevino/syllabus/internal/wizard"
)

// Service defines the study-track operations. A track is a persisted wizard:
// navigation goes through wizard.Navigator and the position is stored after
// every transition.
type Service interface {
	// Read operations
	GetTrack(ctx context.Context, id types.TrackID) (*models.Track, error)
	FindTrack(ctx context.Context, ref string) (*models.Track, error)
	ListTracks(ctx context.Context) ([]*models.Track, error)

	// Write operations
	CreateTrack(ctx context.Context, name string, steps []string) (*models.Track, error)
	DeleteTrack(ctx context.Context, id types.TrackID) error

	// Navigation. Each reports whether the position changed; an out-of-range
	// move leaves the track as it was.
	Next(ctx context.Context, id types.TrackID) (*models.Track, bool, error)
	Prev(ctx context.Context, id types.TrackID) (*models.Track, bool, error)
	GoTo(ctx context.Context, id types.TrackID, index int) (*models.Track, bool, error)

	// EnsureBoard creates and attaches a board for the current step when it
	// has none. Reports whether a board was created.
	EnsureBoard(ctx context.Context, id types.TrackID) (*models.Track, bool, error)
}

// BoardCreator is the part of the board service a track needs. DeleteBoard
// rolls back a board that could not be attached to its step.
type BoardCreator interface {
	CreateBoard(ctx context.Context, req board.CreateBoardRequest) (*models.Board, error)
	DeleteBoard(ctx context.Context, id types.BoardID) error
}

type service struct {
	repo          database.TrackRepository
	boards        BoardCreator
	eventClient   events.EventPublisher
	maxNameLength int
}

// NewService creates a new track service
func NewService(repo database.TrackRepository, boards BoardCreator, eventClient events.EventPublisher, maxNameLength int) Service {
	if maxNameLength <= 0 {
		maxNameLength = 80
	}
	return &service{
		repo:          repo,
		boards:        boards,
		eventClient:   eventClient,
		maxNameLength: maxNameLength,
	}
}

// GetTrack retrieves a track with its steps
func (s *service) GetTrack(ctx context.Context, id types.TrackID) (*models.Track, error) {
	t, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrTrackNotFound, id)
	}
	return t, err
}

// FindTrack looks a track up by numeric ID or by name
func (s *service) FindTrack(ctx context.Context, ref string) (*models.Track, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.Atoi(ref); err == nil {
		return s.GetTrack(ctx, types.TrackID(id))
	}
	t, err := s.repo.GetByName(ctx, ref)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrTrackNotFound, ref)
	}
	return t, err
}

// ListTracks returns every track without steps
func (s *service) ListTracks(ctx context.Context) ([]*models.Track, error) {
	return s.repo.List(ctx)
}

// CreateTrack creates a track positioned at its first step
func (s *service) CreateTrack(ctx context.Context, name string, steps []string) (*models.Track, error) {
	name = strings.TrimSpace(name)
	if err := s.validateName(name, ErrEmptyName); err != nil {
		return nil, err
	}
	cleaned := make([]string, len(steps))
	for i, step := range steps {
		cleaned[i] = strings.TrimSpace(step)
		if err := s.validateName(cleaned[i], ErrEmptyStepName); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	t, err := s.repo.Create(ctx, name, cleaned)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, fmt.Errorf("%w: %q", ErrTrackExists, name)
		}
		return nil, fmt.Errorf("failed to create track: %w", err)
	}
	slog.Info("track created", "track_id", t.ID, "steps", len(cleaned))
	s.publishTrackEvent()
	return t, nil
}

// DeleteTrack deletes a track; its boards are kept
func (s *service) DeleteTrack(ctx context.Context, id types.TrackID) error {
	if _, err := s.GetTrack(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete track: %w", err)
	}
	s.publishTrackEvent()
	return nil
}

func (s *service) Next(ctx context.Context, id types.TrackID) (*models.Track, bool, error) {
	return s.navigate(ctx, id, (*wizard.Navigator).Next)
}

func (s *service) Prev(ctx context.Context, id types.TrackID) (*models.Track, bool, error) {
	return s.navigate(ctx, id, (*wizard.Navigator).Prev)
}

func (s *service) GoTo(ctx context.Context, id types.TrackID, index int) (*models.Track, bool, error) {
	return s.navigate(ctx, id, func(n *wizard.Navigator) bool { return n.GoTo(index) })
}

// navigate applies one wizard transition and persists the new position
func (s *service) navigate(ctx context.Context, id types.TrackID, move func(*wizard.Navigator) bool) (*models.Track, bool, error) {
	t, err := s.GetTrack(ctx, id)
	if err != nil {
		return nil, false, err
	}
	nav := wizard.New(t.Steps, t.CurrentStep)
	if !move(nav) {
		t.CurrentStep = nav.CurrentIndex()
		return t, false, nil
	}

	if err := s.repo.SetCurrentStep(ctx, id, nav.CurrentIndex()); err != nil {
		return nil, false, fmt.Errorf("failed to save step: %w", err)
	}
	t.CurrentStep = nav.CurrentIndex()
	s.publishTrackEvent()
	return t, true, nil
}

// EnsureBoard creates the board of the current step if it is missing
func (s *service) EnsureBoard(ctx context.Context, id types.TrackID) (*models.Track, bool, error) {
	t, err := s.GetTrack(ctx, id)
	if err != nil {
		return nil, false, err
	}
	nav := wizard.New(t.Steps, t.CurrentStep)
	step, ok := nav.Current()
	if !ok {
		return nil, false, fmt.Errorf("%w: %s", ErrNoSteps, t.Name)
	}
	if !nav.NeedsBoard() {
		return t, false, nil
	}

	b, err := s.boards.CreateBoard(ctx, board.CreateBoardRequest{
		Name: t.Name + ": " + step.Name,
		Type: step.Name,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to create board for step %q: %w", step.Name, err)
	}
	if err := s.repo.AttachBoard(ctx, id, nav.CurrentIndex(), &b.ID); err != nil {
		if delErr := s.boards.DeleteBoard(context.WithoutCancel(ctx), b.ID); delErr != nil {
			slog.Error("failed to remove unattached board", "board_id", b.ID, "error", delErr)
		}
		return nil, false, fmt.Errorf("failed to attach board: %w", err)
	}

	nav.AttachBoard(b.ID)
	t.Steps = nav.Steps()
	t.CurrentStep = nav.CurrentIndex()
	s.publishTrackEvent()
	return t, true, nil
}

func (s *service) validateName(name string, emptyErr error) error {
	if name == "" {
		return emptyErr
	}
	if utf8.RuneCountInString(name) > s.maxNameLength {
		return fmt.Errorf("%w: limit is %d characters", ErrNameTooLong, s.maxNameLength)
	}
	return nil
}

func (s *service) publishTrackEvent() {
	_ = events.PublishWithRetry(s.eventClient, events.Event{Type: events.EventTrackChanged}, 3)
}
