package models

import "github.com/thenoetrevino/syllabus/internal/types"

// Subject is a course in the registry that boards can place into semesters
type Subject struct {
	ID            types.SubjectID   `json:"id" yaml:"id" validate:"required,max=32,subject_id"`
	Name          string            `json:"name" yaml:"name" validate:"required,max=120"`
	Credits       int               `json:"credits" yaml:"credits" validate:"gte=0,lte=60"`
	Hours         int               `json:"hours" yaml:"hours" validate:"gte=0"`
	Prerequisites []types.SubjectID `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty" validate:"dive,required,subject_id"`
}
