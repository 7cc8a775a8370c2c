package model

import (
	"errors"
	"time"
)

// Clause represents a reusable block of contract legal text
type Clause struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Category     string          `json:"category"`
	Content      string          `json:"content"`
	LastModified time.Time       `json:"last_modified"`
	Versions     []ClauseVersion `json:"versions"`
}

// ClauseVersion is an immutable snapshot of clause content.
// Version numbers start at 1 and are contiguous.
type ClauseVersion struct {
	Version      int       `json:"version"`
	Content      string    `json:"content"`
	ModifiedBy   string    `json:"modified_by"`
	ModifiedDate time.Time `json:"modified_date"`
	Changes      string    `json:"changes"`
}

var (
	ErrClauseTitleRequired    = errors.New("clause title is required")
	ErrClauseCategoryRequired = errors.New("clause category is required")
	ErrClauseContentRequired  = errors.New("clause content is required")
)

// NewClause validates the required fields and builds a clause with an
// initial version. Invalid input never produces a partial entity.
func NewClause(id, title, category, content, author string, now time.Time) (*Clause, error) {
	if title == "" {
		return nil, ErrClauseTitleRequired
	}
	if category == "" {
		return nil, ErrClauseCategoryRequired
	}
	if content == "" {
		return nil, ErrClauseContentRequired
	}

	return &Clause{
		ID:           id,
		Title:        title,
		Category:     category,
		Content:      content,
		LastModified: now,
		Versions: []ClauseVersion{
			{
				Version:      1,
				Content:      content,
				ModifiedBy:   author,
				ModifiedDate: now,
				Changes:      "Versión inicial",
			},
		},
	}, nil
}

// LatestVersion returns the highest-numbered version, or zero value if none.
func (c *Clause) LatestVersion() (ClauseVersion, bool) {
	if len(c.Versions) == 0 {
		return ClauseVersion{}, false
	}
	return c.Versions[len(c.Versions)-1], true
}
