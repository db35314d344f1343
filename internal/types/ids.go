package types

// ID types give the string identifiers of the curriculum model their meaning.
// Subject IDs are catalogue codes (e.g. "MATH101"); board and column IDs are
// generated UUIDs.

// BoardID identifies a curriculum board
type BoardID string

// ColumnID identifies a semester column within a board
type ColumnID string

// SubjectID identifies a subject in the registry
type SubjectID string

// TrackID identifies a study track (a wizard of curriculum sections)
type TrackID int

func (id BoardID) String() string {
	return string(id)
}

func (id ColumnID) String() string {
	return string(id)
}

func (id SubjectID) String() string {
	return string(id)
}

// ToInt converts the track ID back to int for database parameters
func (id TrackID) ToInt() int {
	return int(id)
}

// SubjectIDs converts plain strings to subject IDs, preserving order
func SubjectIDs(ids ...string) []SubjectID {
	out := make([]SubjectID, len(ids))
	for i, id := range ids {
		out[i] = SubjectID(id)
	}
	return out
}
