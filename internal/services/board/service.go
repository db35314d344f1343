package board

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/syllabus/internal/curriculum"
	"github.com/thenoetrevino/syllabus/internal/database"
	"github.com/thenoetrevino/syllabus/internal/events"
	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// Service defines all board-related business operations. Every write loads
// the stored snapshot, applies one curriculum operation, saves the result and
// publishes EventBoardSaved.
type Service interface {
	// Read operations
	GetBoard(ctx context.Context, id types.BoardID) (*models.Board, error)
	ListBoards(ctx context.Context) ([]*models.BoardSummary, error)
	Overview(ctx context.Context, id types.BoardID) (*Overview, error)
	Validate(ctx context.Context, id types.BoardID) ([]models.Warning, error)

	// Board lifecycle
	CreateBoard(ctx context.Context, req CreateBoardRequest) (*models.Board, error)
	DeleteBoard(ctx context.Context, id types.BoardID) error

	// Column operations
	AddColumn(ctx context.Context, id types.BoardID, title string) (*Result, error)
	RemoveColumn(ctx context.Context, id types.BoardID, columnID types.ColumnID) (*Result, error)
	RenameColumn(ctx context.Context, id types.BoardID, columnID types.ColumnID, title string) (*Result, error)
	MoveColumn(ctx context.Context, id types.BoardID, fromIndex, toIndex int) (*Result, error)

	// Subject placement
	AddSubject(ctx context.Context, id types.BoardID, columnID types.ColumnID, subjectID types.SubjectID) (*Result, error)
	InsertSubject(ctx context.Context, id types.BoardID, columnID types.ColumnID, index int, subjectID types.SubjectID) (*Result, error)
	RemoveSubject(ctx context.Context, id types.BoardID, columnID types.ColumnID, subjectID types.SubjectID) (*Result, error)
	Reorder(ctx context.Context, id types.BoardID, req ReorderRequest) (*Result, error)

	// Undo restores the snapshot stored before the last write to the board
	Undo(ctx context.Context, id types.BoardID) (*Result, error)
}

// CreateBoardRequest encapsulates data for creating a board
type CreateBoardRequest struct {
	Name      string
	Type      string
	Semesters *int // nil = configured default
}

// ReorderRequest moves the subject at (SourceColumn, SourceIndex) to
// (DestColumn, DestIndex)
type ReorderRequest struct {
	SourceColumn types.ColumnID
	SourceIndex  int
	DestColumn   types.ColumnID
	DestIndex    int
}

// Result is the saved snapshot after a write, with the advisory warnings it has
type Result struct {
	Board    *models.Board    `json:"board"`
	Warnings []models.Warning `json:"warnings"`
	ColumnID types.ColumnID   `json:"column_id,omitempty"` // set by AddColumn
}

// Overview bundles a board with the registry it is validated against
type Overview struct {
	Board    *models.Board
	Registry *curriculum.Registry
	Warnings []models.Warning
}

// Options configures business rules taken from the config file
type Options struct {
	MaxNameLength    int
	DefaultSemesters int
	MaxSemesters     int
	BlockOnWarnings  bool
}

type service struct {
	boards      database.BoardRepository
	subjects    database.SubjectRepository
	eventClient events.EventPublisher
	opts        Options
}

// NewService creates a new board service
func NewService(boards database.BoardRepository, subjects database.SubjectRepository, eventClient events.EventPublisher, opts Options) Service {
	if opts.MaxNameLength <= 0 {
		opts.MaxNameLength = 80
	}
	if opts.MaxSemesters <= 0 {
		opts.MaxSemesters = 20
	}
	return &service{
		boards:      boards,
		subjects:    subjects,
		eventClient: eventClient,
		opts:        opts,
	}
}

// GetBoard retrieves a board snapshot
func (s *service) GetBoard(ctx context.Context, id types.BoardID) (*models.Board, error) {
	b, err := s.boards.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrBoardNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	if err := curriculum.CheckConsistency(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ListBoards returns a summary of every board
func (s *service) ListBoards(ctx context.Context) ([]*models.BoardSummary, error) {
	return s.boards.List(ctx)
}

// Overview loads a board, the subject registry and the current warnings
func (s *service) Overview(ctx context.Context, id types.BoardID) (*Overview, error) {
	b, err := s.GetBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	reg, err := s.registry(ctx)
	if err != nil {
		return nil, err
	}
	g, err := reg.Graph()
	if err != nil {
		return nil, err
	}
	return &Overview{Board: b, Registry: reg, Warnings: curriculum.Validate(b, g)}, nil
}

// Validate returns the prerequisite warnings of a stored board
func (s *service) Validate(ctx context.Context, id types.BoardID) ([]models.Warning, error) {
	ov, err := s.Overview(ctx, id)
	if err != nil {
		return nil, err
	}
	return ov.Warnings, nil
}

// CreateBoard creates a board with the requested number of empty semesters
func (s *service) CreateBoard(ctx context.Context, req CreateBoardRequest) (*models.Board, error) {
	name, err := s.validateName(req.Name)
	if err != nil {
		return nil, err
	}
	semesters := s.opts.DefaultSemesters
	if req.Semesters != nil {
		semesters = *req.Semesters
	}
	if semesters < 0 || semesters > s.opts.MaxSemesters {
		return nil, fmt.Errorf("%w: must be between 0 and %d", ErrInvalidSemesters, s.opts.MaxSemesters)
	}

	b := curriculum.NewBoardWithSemesters(name, strings.TrimSpace(req.Type), semesters)
	if err := s.boards.Save(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	slog.Info("board created", "board_id", b.ID, "semesters", semesters)
	s.publishBoardEvent(events.EventBoardSaved, b.ID)
	return s.GetBoard(ctx, b.ID)
}

// DeleteBoard deletes a board; steps bound to it lose their board
func (s *service) DeleteBoard(ctx context.Context, id types.BoardID) error {
	err := s.boards.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrBoardNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}
	s.publishBoardEvent(events.EventBoardDeleted, id)
	return nil
}

func (s *service) AddColumn(ctx context.Context, id types.BoardID, title string) (*Result, error) {
	title, err := s.validateName(title)
	if err != nil {
		return nil, err
	}
	var columnID types.ColumnID
	res, err := s.apply(ctx, id, func(sess *curriculum.Session) error {
		columnID = sess.AddColumn(title)
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.ColumnID = columnID
	return res, nil
}

func (s *service) RemoveColumn(ctx context.Context, id types.BoardID, columnID types.ColumnID) (*Result, error) {
	return s.apply(ctx, id, func(sess *curriculum.Session) error {
		return sess.RemoveColumn(columnID)
	})
}

func (s *service) RenameColumn(ctx context.Context, id types.BoardID, columnID types.ColumnID, title string) (*Result, error) {
	title, err := s.validateName(title)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, id, func(sess *curriculum.Session) error {
		return sess.RenameColumn(columnID, title)
	})
}

func (s *service) MoveColumn(ctx context.Context, id types.BoardID, fromIndex, toIndex int) (*Result, error) {
	return s.apply(ctx, id, func(sess *curriculum.Session) error {
		return sess.MoveColumn(fromIndex, toIndex)
	})
}

func (s *service) AddSubject(ctx context.Context, id types.BoardID, columnID types.ColumnID, subjectID types.SubjectID) (*Result, error) {
	return s.apply(ctx, id, func(sess *curriculum.Session) error {
		return sess.AddSubject(columnID, subjectID)
	})
}

func (s *service) InsertSubject(ctx context.Context, id types.BoardID, columnID types.ColumnID, index int, subjectID types.SubjectID) (*Result, error) {
	return s.apply(ctx, id, func(sess *curriculum.Session) error {
		return sess.InsertSubject(columnID, index, subjectID)
	})
}

func (s *service) RemoveSubject(ctx context.Context, id types.BoardID, columnID types.ColumnID, subjectID types.SubjectID) (*Result, error) {
	return s.apply(ctx, id, func(sess *curriculum.Session) error {
		return sess.RemoveSubject(columnID, subjectID)
	})
}

func (s *service) Reorder(ctx context.Context, id types.BoardID, req ReorderRequest) (*Result, error) {
	return s.apply(ctx, id, func(sess *curriculum.Session) error {
		return sess.Reorder(req.SourceColumn, req.SourceIndex, req.DestColumn, req.DestIndex)
	})
}

// apply runs op against the stored board and saves the outcome. On any error
// nothing is saved and the stored snapshot stays as it was.
func (s *service) apply(ctx context.Context, id types.BoardID, op func(*curriculum.Session) error) (*Result, error) {
	b, err := s.GetBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	reg, err := s.registry(ctx)
	if err != nil {
		return nil, err
	}

	sess := curriculum.NewSession(b, reg)
	before, err := sess.Validate()
	if err != nil {
		return nil, err
	}
	if err := op(sess); err != nil {
		return nil, err
	}
	after, err := sess.Validate()
	if err != nil {
		return nil, err
	}

	if s.opts.BlockOnWarnings {
		if added := newWarnings(before, after); len(added) > 0 {
			return nil, &WarningsError{Warnings: added}
		}
	}

	next := sess.Snapshot()
	if err := s.boards.SaveWithHistory(ctx, next, b, curriculum.MaxUndo); err != nil {
		return nil, fmt.Errorf("failed to save board: %w", err)
	}
	s.publishBoardEvent(events.EventBoardSaved, id)
	return s.result(ctx, id, after)
}

// Undo rolls the board back one write. The warnings of the restored board
// are reported but never block the rollback.
func (s *service) Undo(ctx context.Context, id types.BoardID) (*Result, error) {
	b, err := s.GetBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	reg, err := s.registry(ctx)
	if err != nil {
		return nil, err
	}
	history, err := s.boards.History(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load board history: %w", err)
	}

	sess := curriculum.NewSessionWithHistory(b, reg, history)
	if err := sess.Undo(); err != nil {
		return nil, fmt.Errorf("%w: board %s", err, id)
	}
	prev := sess.Snapshot()
	if err := curriculum.CheckConsistency(prev); err != nil {
		return nil, err
	}
	warnings, err := sess.Validate()
	if err != nil {
		return nil, err
	}

	if err := s.boards.Restore(ctx, prev); err != nil {
		return nil, fmt.Errorf("failed to restore board: %w", err)
	}
	slog.Info("board change undone", "board_id", id, "remaining", len(history)-1)
	s.publishBoardEvent(events.EventBoardSaved, id)
	return s.result(ctx, id, warnings)
}

func (s *service) result(ctx context.Context, id types.BoardID, after []models.Warning) (*Result, error) {
	saved, err := s.GetBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	if after == nil {
		after = []models.Warning{}
	}
	return &Result{Board: saved, Warnings: after}, nil
}

func (s *service) registry(ctx context.Context) (*curriculum.Registry, error) {
	subjects, err := s.subjects.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return curriculum.NewRegistry(subjects), nil
}

// newWarnings returns the warnings of after that before did not have
func newWarnings(before, after []models.Warning) []models.Warning {
	seen := make(map[models.Warning]bool, len(before))
	for _, w := range before {
		seen[w] = true
	}
	var added []models.Warning
	for _, w := range after {
		if !seen[w] {
			added = append(added, w)
		}
	}
	return added
}

func (s *service) validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > s.opts.MaxNameLength {
		return "", fmt.Errorf("%w: limit is %d characters", ErrNameTooLong, s.opts.MaxNameLength)
	}
	return name, nil
}

// publishBoardEvent publishes a board event
func (s *service) publishBoardEvent(eventType events.EventType, id types.BoardID) {
	_ = events.PublishWithRetry(s.eventClient, events.Event{Type: eventType, BoardID: id}, 3)
}

// ResolveColumn finds a column by ID, by 1-based position or by title
// (case-insensitive, must be unique)
func ResolveColumn(b *models.Board, ref string) (types.ColumnID, error) {
	ref = strings.TrimSpace(ref)
	if _, ok := b.Columns[types.ColumnID(ref)]; ok {
		return types.ColumnID(ref), nil
	}
	if n, err := strconv.Atoi(ref); err == nil {
		if n >= 1 && n <= len(b.ColumnOrder) {
			return b.ColumnOrder[n-1], nil
		}
		return "", &curriculum.MutationError{Op: "resolve column", Kind: curriculum.ErrIndexOutOfRange, Index: n}
	}

	var match types.ColumnID
	for _, col := range b.OrderedColumns() {
		if strings.EqualFold(col.Title, ref) {
			if match != "" {
				return "", fmt.Errorf("column title %q is ambiguous: %w", ref, curriculum.ErrUnknownColumn)
			}
			match = col.ID
		}
	}
	if match == "" {
		return "", &curriculum.MutationError{Op: "resolve column", Kind: curriculum.ErrUnknownColumn, ColumnID: types.ColumnID(ref)}
	}
	return match, nil
}
