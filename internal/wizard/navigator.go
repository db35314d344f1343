// Package wizard implements linear step navigation over the sections of a
// study track. Each step may be bound to one curriculum board.
package wizard

import (
	"slices"

	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// Navigator tracks the current step of a fixed, ordered list of steps.
// Transitions only change the index; creating a board for a step is left to
// the caller (see NeedsBoard).
type Navigator struct {
	steps   []models.Step
	current int
}

// New creates a navigator positioned at start. An out-of-range start is
// clamped to the step list.
func New(steps []models.Step, start int) *Navigator {
	n := &Navigator{steps: slices.Clone(steps)}
	if len(n.steps) > 0 {
		n.current = max(0, min(start, len(n.steps)-1))
	}
	return n
}

// Next advances one step. It is a no-op on the last step.
func (n *Navigator) Next() bool {
	return n.GoTo(n.current + 1)
}

// Prev goes back one step. It is a no-op on the first step.
func (n *Navigator) Prev() bool {
	return n.GoTo(n.current - 1)
}

// GoTo jumps to index. Out-of-range indices leave the position unchanged.
// Reports whether the position changed.
func (n *Navigator) GoTo(index int) bool {
	if index < 0 || index >= len(n.steps) || index == n.current {
		return false
	}
	n.current = index
	return true
}

// CurrentIndex returns the position of the current step
func (n *Navigator) CurrentIndex() int {
	return n.current
}

// Current returns the current step; ok is false when there are no steps
func (n *Navigator) Current() (step models.Step, ok bool) {
	if len(n.steps) == 0 {
		return models.Step{}, false
	}
	return n.steps[n.current], true
}

// Steps returns a copy of all steps
func (n *Navigator) Steps() []models.Step {
	return slices.Clone(n.steps)
}

// Len returns the number of steps
func (n *Navigator) Len() int {
	return len(n.steps)
}

func (n *Navigator) IsFirst() bool {
	return n.current == 0
}

func (n *Navigator) IsLast() bool {
	return len(n.steps) == 0 || n.current == len(n.steps)-1
}

// NeedsBoard reports whether the current step exists and has no board yet
func (n *Navigator) NeedsBoard() bool {
	step, ok := n.Current()
	return ok && step.BoardID == nil
}

// AttachBoard binds a board to the current step
func (n *Navigator) AttachBoard(id types.BoardID) bool {
	if len(n.steps) == 0 {
		return false
	}
	n.steps[n.current].BoardID = &id
	return true
}
