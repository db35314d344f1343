package database

import "database/sql"

// Repository groups the domain repositories over one database connection.
// Services depend on the narrow interfaces; Repository is what wires them.
type Repository struct {
	Subjects *SubjectRepo
	Boards   *BoardRepo
	Tracks   *TrackRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Subjects: &SubjectRepo{db: db},
		Boards:   &BoardRepo{db: db},
		Tracks:   &TrackRepo{db: db},
	}
}
