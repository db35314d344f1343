package subject

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/syllabus/internal/curriculum"
	"github.com/thenoetrevino/syllabus/internal/database"
	"github.com/thenoetrevino/syllabus/internal/events"
	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// Service defines all subject-registry business operations
type Service interface {
	// Read operations
	GetSubject(ctx context.Context, id types.SubjectID) (*models.Subject, error)
	ListSubjects(ctx context.Context) ([]models.Subject, error)
	Registry(ctx context.Context) (*curriculum.Registry, error)

	// Write operations
	CreateSubject(ctx context.Context, subj models.Subject) (*models.Subject, error)
	UpdateSubject(ctx context.Context, subj models.Subject) (*models.Subject, error)
	DeleteSubject(ctx context.Context, id types.SubjectID) error
	SetPrerequisites(ctx context.Context, id types.SubjectID, prereqs []types.SubjectID) error
	ImportSubjects(ctx context.Context, r io.Reader) (int, error)
}

// ImportFile is the YAML layout accepted by ImportSubjects
type ImportFile struct {
	Subjects []models.Subject `yaml:"subjects"`
}

type service struct {
	repo        database.SubjectRepository
	eventClient events.EventPublisher
	validate    *validator.Validate
	translator  ut.Translator
}

// NewService creates a new subject service
func NewService(repo database.SubjectRepository, eventClient events.EventPublisher) Service {
	validate, translator := newValidator()
	return &service{
		repo:        repo,
		eventClient: eventClient,
		validate:    validate,
		translator:  translator,
	}
}

// GetSubject retrieves one subject with its prerequisites
func (s *service) GetSubject(ctx context.Context, id types.SubjectID) (*models.Subject, error) {
	subj, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSubjectNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return subj, nil
}

// ListSubjects returns every subject ordered by ID
func (s *service) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	return s.repo.GetAll(ctx)
}

// Registry loads the subject registry used by board sessions
func (s *service) Registry(ctx context.Context) (*curriculum.Registry, error) {
	subjects, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return curriculum.NewRegistry(subjects), nil
}

// CreateSubject registers a new subject. Its prerequisites must already exist.
func (s *service) CreateSubject(ctx context.Context, subj models.Subject) (*models.Subject, error) {
	normalize(&subj)
	if err := s.validateSubject(subj); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if slices.ContainsFunc(existing, func(e models.Subject) bool { return e.ID == subj.ID }) {
		return nil, fmt.Errorf("%w: %s", ErrSubjectExists, subj.ID)
	}
	if err := checkRegistry(append(existing, subj)); err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, subj); err != nil {
		return nil, fmt.Errorf("failed to create subject: %w", err)
	}
	s.publishSubjectsChanged()
	return &subj, nil
}

// UpdateSubject replaces an existing subject, prerequisites included
func (s *service) UpdateSubject(ctx context.Context, subj models.Subject) (*models.Subject, error) {
	normalize(&subj)
	if err := s.validateSubject(subj); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(existing, func(e models.Subject) bool { return e.ID == subj.ID })
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrSubjectNotFound, subj.ID)
	}
	existing[i] = subj
	if err := checkRegistry(existing); err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, subj); err != nil {
		return nil, fmt.Errorf("failed to update subject: %w", err)
	}
	s.publishSubjectsChanged()
	return &subj, nil
}

// DeleteSubject removes a subject (business rule: not placed, not required)
func (s *service) DeleteSubject(ctx context.Context, id types.SubjectID) error {
	existing, err := s.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	reg := curriculum.NewRegistry(existing)
	if !reg.Has(id) {
		return fmt.Errorf("%w: %s", ErrSubjectNotFound, id)
	}

	g, err := reg.Graph()
	if err != nil {
		return err
	}
	if dependents := g.Dependents(id); len(dependents) > 0 {
		return fmt.Errorf("%w: %s is required by %s", ErrSubjectInUse, id, joinIDs(dependents))
	}

	placements, err := s.repo.CountPlacements(ctx, id)
	if err != nil {
		return err
	}
	if placements > 0 {
		return fmt.Errorf("%w: %s is placed on %d board(s)", ErrSubjectInUse, id, placements)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
	}
	s.publishSubjectsChanged()
	return nil
}

// SetPrerequisites replaces the prerequisite list of a subject. The change is
// rejected if any prerequisite is unknown or if it would close a cycle.
func (s *service) SetPrerequisites(ctx context.Context, id types.SubjectID, prereqs []types.SubjectID) error {
	existing, err := s.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(existing, func(e models.Subject) bool { return e.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrSubjectNotFound, id)
	}

	updated := existing[i]
	updated.Prerequisites = dedupe(prereqs)
	if err := s.validateSubject(updated); err != nil {
		return err
	}
	existing[i] = updated
	if err := checkRegistry(existing); err != nil {
		return err
	}

	if err := s.repo.SetPrerequisites(ctx, id, updated.Prerequisites); err != nil {
		return fmt.Errorf("failed to set prerequisites: %w", err)
	}
	s.publishSubjectsChanged()
	return nil
}

// ImportSubjects upserts every subject of a YAML document in one transaction.
// Prerequisites may reference subjects of the same document.
func (s *service) ImportSubjects(ctx context.Context, r io.Reader) (int, error) {
	var file ImportFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	seen := make(map[types.SubjectID]bool, len(file.Subjects))
	for i := range file.Subjects {
		normalize(&file.Subjects[i])
		subj := file.Subjects[i]
		if err := s.validateSubject(subj); err != nil {
			return 0, err
		}
		if seen[subj.ID] {
			return 0, fmt.Errorf("%w: %s listed twice", ErrInvalidImport, subj.ID)
		}
		seen[subj.ID] = true
	}

	existing, err := s.repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	merged := slices.DeleteFunc(existing, func(e models.Subject) bool { return seen[e.ID] })
	merged = append(merged, file.Subjects...)
	if err := checkRegistry(merged); err != nil {
		return 0, err
	}

	if err := s.repo.UpsertAll(ctx, file.Subjects); err != nil {
		return 0, fmt.Errorf("failed to import subjects: %w", err)
	}
	slog.Info("subjects imported", "count", len(file.Subjects))
	s.publishSubjectsChanged()
	return len(file.Subjects), nil
}

// checkRegistry verifies every prerequisite is registered and the graph is acyclic
func checkRegistry(subjects []models.Subject) error {
	known := make(map[types.SubjectID]bool, len(subjects))
	for _, subj := range subjects {
		known[subj.ID] = true
	}
	for _, subj := range subjects {
		for _, p := range subj.Prerequisites {
			if !known[p] {
				return fmt.Errorf("%w: %s requires %s", ErrUnknownPrerequisite, subj.ID, p)
			}
		}
	}
	_, err := curriculum.GraphFromSubjects(subjects)
	return err
}

func normalize(subj *models.Subject) {
	subj.ID = types.SubjectID(strings.TrimSpace(string(subj.ID)))
	subj.Name = strings.TrimSpace(subj.Name)
	subj.Prerequisites = dedupe(subj.Prerequisites)
}

func dedupe(ids []types.SubjectID) []types.SubjectID {
	if len(ids) == 0 {
		return nil
	}
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}

// publishSubjectsChanged notifies listeners that the registry changed
func (s *service) publishSubjectsChanged() {
	_ = events.PublishWithRetry(s.eventClient, events.Event{Type: events.EventSubjectsChanged}, 3)
}

func joinIDs(ids []types.SubjectID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}
