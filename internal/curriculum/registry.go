package curriculum

import (
	"slices"
	"strings"

	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// Registry is the read-only universe of subjects a board may reference
type Registry struct {
	subjects map[types.SubjectID]models.Subject
}

// NewRegistry indexes subjects by ID. A later duplicate replaces an earlier one.
func NewRegistry(subjects []models.Subject) *Registry {
	r := &Registry{subjects: make(map[types.SubjectID]models.Subject, len(subjects))}
	for _, s := range subjects {
		s.Prerequisites = slices.Clone(s.Prerequisites)
		r.subjects[s.ID] = s
	}
	return r
}

// Get looks a subject up by ID
func (r *Registry) Get(id types.SubjectID) (models.Subject, bool) {
	s, ok := r.subjects[id]
	return s, ok
}

// Has reports whether the registry knows the subject
func (r *Registry) Has(id types.SubjectID) bool {
	_, ok := r.subjects[id]
	return ok
}

// All returns every subject sorted by ID
func (r *Registry) All() []models.Subject {
	out := make([]models.Subject, 0, len(r.subjects))
	for _, s := range r.subjects {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b models.Subject) int {
		return strings.Compare(string(a.ID), string(b.ID))
	})
	return out
}

// Graph builds the prerequisite graph of the registry
func (r *Registry) Graph() (*PrerequisiteGraph, error) {
	return GraphFromSubjects(r.All())
}

// Credits sums the credits of the given subjects, skipping unknown IDs
func (r *Registry) Credits(ids []types.SubjectID) int {
	total := 0
	for _, id := range ids {
		if s, ok := r.subjects[id]; ok {
			total += s.Credits
		}
	}
	return total
}
