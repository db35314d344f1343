package curriculum

import (
	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// MaxUndo bounds the number of snapshots kept for Undo
const MaxUndo = 50

// Session holds the board being edited. Each successful operation replaces
// the current snapshot; a failed one keeps it.
type Session struct {
	board    *models.Board
	registry *Registry
	history  []*models.Board
}

// NewSession starts editing b. A nil registry disables the unknown-subject check.
func NewSession(b *models.Board, reg *Registry) *Session {
	return &Session{board: Clone(b), registry: reg}
}

// NewSessionWithHistory starts editing b with earlier snapshots available to
// Undo. history is ordered oldest first and only the newest MaxUndo are kept.
func NewSessionWithHistory(b *models.Board, reg *Registry, history []*models.Board) *Session {
	s := NewSession(b, reg)
	if len(history) > MaxUndo {
		history = history[len(history)-MaxUndo:]
	}
	for _, h := range history {
		s.history = append(s.history, Clone(h))
	}
	return s
}

// Snapshot returns a copy of the current board, e.g. to hand to storage
func (s *Session) Snapshot() *models.Board {
	return Clone(s.board)
}

// Registry returns the subject registry the session checks against
func (s *Session) Registry() *Registry {
	return s.registry
}

// CanUndo reports whether Undo would restore a snapshot
func (s *Session) CanUndo() bool {
	return len(s.history) > 0
}

// Undo restores the snapshot before the last successful operation
func (s *Session) Undo() error {
	if len(s.history) == 0 {
		return ErrNothingToUndo
	}
	s.board = s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	return nil
}

func (s *Session) commit(next *models.Board, err error) error {
	if err != nil {
		return err
	}
	s.push(next)
	return nil
}

// push makes next current and records the previous board for Undo
func (s *Session) push(next *models.Board) {
	s.history = append(s.history, s.board)
	if len(s.history) > MaxUndo {
		s.history = s.history[len(s.history)-MaxUndo:]
	}
	s.board = next
}

func (s *Session) checkSubject(op string, id types.SubjectID) error {
	if s.registry != nil && !s.registry.Has(id) {
		return &MutationError{Op: op, Kind: ErrUnknownSubject, SubjectID: id}
	}
	return nil
}

// AddColumn appends a column and returns its ID
func (s *Session) AddColumn(title string) types.ColumnID {
	next := AddColumn(s.board, title)
	s.push(next)
	return next.ColumnOrder[len(next.ColumnOrder)-1]
}

func (s *Session) RemoveColumn(columnID types.ColumnID) error {
	return s.commit(RemoveColumn(s.board, columnID))
}

func (s *Session) RenameColumn(columnID types.ColumnID, title string) error {
	return s.commit(RenameColumn(s.board, columnID, title))
}

func (s *Session) MoveColumn(fromIndex, toIndex int) error {
	return s.commit(MoveColumn(s.board, fromIndex, toIndex))
}

// AddSubject places a registered subject at the end of a column
func (s *Session) AddSubject(columnID types.ColumnID, subjectID types.SubjectID) error {
	if err := s.checkSubject("add subject", subjectID); err != nil {
		return err
	}
	return s.commit(AddSubject(s.board, columnID, subjectID))
}

// InsertSubject places a registered subject at a position of a column
func (s *Session) InsertSubject(columnID types.ColumnID, index int, subjectID types.SubjectID) error {
	if err := s.checkSubject("insert subject", subjectID); err != nil {
		return err
	}
	return s.commit(InsertSubject(s.board, columnID, index, subjectID))
}

func (s *Session) RemoveSubject(columnID types.ColumnID, subjectID types.SubjectID) error {
	return s.commit(RemoveSubject(s.board, columnID, subjectID))
}

func (s *Session) Reorder(sourceColumn types.ColumnID, sourceIndex int, destColumn types.ColumnID, destIndex int) error {
	return s.commit(Reorder(s.board, sourceColumn, sourceIndex, destColumn, destIndex))
}

// Validate runs the prerequisite validator against the session registry
func (s *Session) Validate() ([]models.Warning, error) {
	if s.registry == nil {
		return nil, nil
	}
	g, err := s.registry.Graph()
	if err != nil {
		return nil, err
	}
	return Validate(s.board, g), nil
}
