package model

import "time"

// ContactInfo is the applicant's contact details, read once from the
// environment (or config) at startup. Empty fields are omitted from the
// generated prompt.
type ContactInfo struct {
	Email    string
	Phone    string
	LinkedIn string
	Website  string
}

// IsEmpty reports whether no contact field is set.
func (c ContactInfo) IsEmpty() bool {
	return c.Email == "" && c.Phone == "" && c.LinkedIn == "" && c.Website == ""
}

// LetterRecord is one saved generation in the history store.
type LetterRecord struct {
	ID        int64
	CreatedAt time.Time
	Model     string
	JobBrief  string // first line / excerpt of the job description
	Letter    string
}

// LetterStore persists generated cover letters for later browsing.
type LetterStore interface {
	Save(rec LetterRecord) (int64, error)
	List() ([]LetterRecord, error)
	Get(id int64) (LetterRecord, error)
	Prune(olderThan time.Duration) (int64, error)
	Close() error
}
