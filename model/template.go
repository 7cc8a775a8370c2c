package model

import (
	"errors"
	"time"
)

// Template is an ordered list of clause references plus metadata.
// Order of ClauseIDs defines document section order.
type Template struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	ClauseIDs    []string          `json:"clauses"`
	Category     string            `json:"category"`
	IsPublic     bool              `json:"is_public"`
	UsageCount   int               `json:"usage_count"`
	LastModified time.Time         `json:"last_modified"`
	Versions     []TemplateVersion `json:"versions,omitempty"`
}

// TemplateVersion snapshots the clause composition of a template.
type TemplateVersion struct {
	Version      int       `json:"version"`
	ClauseIDs    []string  `json:"clauses"`
	ModifiedBy   string    `json:"modified_by"`
	ModifiedDate time.Time `json:"modified_date"`
	Changes      string    `json:"changes"`
}

var (
	ErrTemplateNameRequired    = errors.New("template name is required")
	ErrTemplateClausesRequired = errors.New("template needs at least one clause")
)

// NewTemplate validates required fields and builds a template with an
// initial version snapshot.
func NewTemplate(id, name, description, category string, clauseIDs []string, isPublic bool, author string, now time.Time) (*Template, error) {
	if name == "" {
		return nil, ErrTemplateNameRequired
	}
	if len(clauseIDs) == 0 {
		return nil, ErrTemplateClausesRequired
	}

	ids := make([]string, len(clauseIDs))
	copy(ids, clauseIDs)

	return &Template{
		ID:           id,
		Name:         name,
		Description:  description,
		ClauseIDs:    ids,
		Category:     category,
		IsPublic:     isPublic,
		LastModified: now,
		Versions: []TemplateVersion{
			{
				Version:      1,
				ClauseIDs:    ids,
				ModifiedBy:   author,
				ModifiedDate: now,
				Changes:      "Versión inicial",
			},
		},
	}, nil
}

// References reports whether the template includes the given clause id.
func (t *Template) References(clauseID string) bool {
	for _, id := range t.ClauseIDs {
		if id == clauseID {
			return true
		}
	}
	return false
}
