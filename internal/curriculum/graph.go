package curriculum

import (
	"fmt"
	"slices"

	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// PrerequisiteGraph maps a subject to the subjects required before it.
// Require keeps the graph acyclic.
type PrerequisiteGraph struct {
	edges map[types.SubjectID]map[types.SubjectID]struct{}
}

// NewPrerequisiteGraph returns an empty graph
func NewPrerequisiteGraph() *PrerequisiteGraph {
	return &PrerequisiteGraph{edges: make(map[types.SubjectID]map[types.SubjectID]struct{})}
}

// GraphFromSubjects builds the graph from each subject's prerequisite list.
// Edges are added as stored and the whole graph is checked for cycles once.
func GraphFromSubjects(subjects []models.Subject) (*PrerequisiteGraph, error) {
	g := NewPrerequisiteGraph()
	for _, s := range subjects {
		for _, p := range s.Prerequisites {
			if s.ID == p {
				return nil, fmt.Errorf("%w: %s", ErrSelfPrerequisite, s.ID)
			}
			g.addEdge(s.ID, p)
		}
	}
	if err := g.DetectCycle(); err != nil {
		return nil, err
	}
	return g, nil
}

// Require records that subject needs prerequisite first. It fails when the
// edge would make a subject (transitively) require itself.
func (g *PrerequisiteGraph) Require(subject, prerequisite types.SubjectID) error {
	if subject == prerequisite {
		return fmt.Errorf("%w: %s", ErrSelfPrerequisite, subject)
	}
	if g.reaches(prerequisite, subject) {
		return fmt.Errorf("%w: %s already requires %s", ErrCircularPrerequisite, prerequisite, subject)
	}
	g.addEdge(subject, prerequisite)
	return nil
}

func (g *PrerequisiteGraph) addEdge(subject, prerequisite types.SubjectID) {
	deps, ok := g.edges[subject]
	if !ok {
		deps = make(map[types.SubjectID]struct{})
		g.edges[subject] = deps
	}
	deps[prerequisite] = struct{}{}
}

// Requires returns the direct prerequisites of subject, sorted
func (g *PrerequisiteGraph) Requires(subject types.SubjectID) []types.SubjectID {
	deps := g.edges[subject]
	out := make([]types.SubjectID, 0, len(deps))
	for p := range deps {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// Dependents returns the subjects that directly require prerequisite, sorted
func (g *PrerequisiteGraph) Dependents(prerequisite types.SubjectID) []types.SubjectID {
	var out []types.SubjectID
	for s, deps := range g.edges {
		if _, ok := deps[prerequisite]; ok {
			out = append(out, s)
		}
	}
	slices.Sort(out)
	return out
}

// reaches reports whether to is reachable from from along prerequisite edges
func (g *PrerequisiteGraph) reaches(from, to types.SubjectID) bool {
	visited := make(map[types.SubjectID]bool)
	stack := []types.SubjectID{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == to {
			return true
		}
		if visited[cur] {
			continue
		}
		visited[cur] = true
		for p := range g.edges[cur] {
			stack = append(stack, p)
		}
	}
	return false
}

// DetectCycle checks the whole graph for circular prerequisites using DFS
func (g *PrerequisiteGraph) DetectCycle() error {
	visiting := make(map[types.SubjectID]bool)
	visited := make(map[types.SubjectID]bool)

	var visit func(id types.SubjectID) error
	visit = func(id types.SubjectID) error {
		visiting[id] = true
		for dep := range g.edges[id] {
			if visiting[dep] {
				return fmt.Errorf("%w involving %s", ErrCircularPrerequisite, dep)
			}
			if !visited[dep] {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}
		delete(visiting, id)
		visited[id] = true
		return nil
	}

	for id := range g.edges {
		if !visited[id] {
			if err := visit(id); err != nil {
				return err
			}
		}
	}
	return nil
}
