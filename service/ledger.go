package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/allometrik/clm-platform-sub000/model"
)

// Version ledger operations. All of them are pure with respect to their
// input: they return a new entity snapshot and leave the argument
// untouched, so the caller decides whether and where to store the
// result.

var ErrChangeDescriptionRequired = errors.New("change description is required for a new version")

// RecordNewClauseVersion appends a version numbered max(existing)+1
// with the given content. The returned snapshot's LastModified is the
// operation timestamp.
func RecordNewClauseVersion(c *model.Clause, content, author, changes string, now time.Time) (*model.Clause, error) {
	if changes == "" {
		return nil, ErrChangeDescriptionRequired
	}

	next := 1
	for _, v := range c.Versions {
		if v.Version >= next {
			next = v.Version + 1
		}
	}

	out := cloneClause(c)
	out.Content = content
	out.LastModified = now
	out.Versions = append(out.Versions, model.ClauseVersion{
		Version:      next,
		Content:      content,
		ModifiedBy:   author,
		ModifiedDate: now,
		Changes:      changes,
	})
	return out, nil
}

// OverwriteLatestClauseVersion replaces the last version's content,
// date and change note in place. The version number does not change.
// A clause with zero versions passes through untouched.
func OverwriteLatestClauseVersion(c *model.Clause, content, author, changes string, now time.Time) *model.Clause {
	if len(c.Versions) == 0 {
		return cloneClause(c)
	}

	out := cloneClause(c)
	out.Content = content
	out.LastModified = now
	last := &out.Versions[len(out.Versions)-1]
	last.Content = content
	last.ModifiedBy = author
	last.ModifiedDate = now
	last.Changes = changes
	return out
}

// ClauseVersionPair is a structural pairing of two versions for
// side-by-side display. No token-level diff is computed.
type ClauseVersionPair struct {
	VersionA model.ClauseVersion `json:"version_a"`
	VersionB model.ClauseVersion `json:"version_b"`
}

// CompareClauseVersions pairs the versions numbered a and b.
func CompareClauseVersions(c *model.Clause, a, b int) (*ClauseVersionPair, error) {
	va, ok := findClauseVersion(c, a)
	if !ok {
		return nil, fmt.Errorf("clause %s has no version %d", c.ID, a)
	}
	vb, ok := findClauseVersion(c, b)
	if !ok {
		return nil, fmt.Errorf("clause %s has no version %d", c.ID, b)
	}
	return &ClauseVersionPair{VersionA: va, VersionB: vb}, nil
}

func findClauseVersion(c *model.Clause, number int) (model.ClauseVersion, bool) {
	for _, v := range c.Versions {
		if v.Version == number {
			return v, true
		}
	}
	return model.ClauseVersion{}, false
}

func cloneClause(c *model.Clause) *model.Clause {
	out := *c
	out.Versions = append([]model.ClauseVersion(nil), c.Versions...)
	return &out
}

// RecordNewTemplateVersion is the template analogue of
// RecordNewClauseVersion: it snapshots a new clause composition.
func RecordNewTemplateVersion(t *model.Template, clauseIDs []string, author, changes string, now time.Time) (*model.Template, error) {
	if changes == "" {
		return nil, ErrChangeDescriptionRequired
	}

	next := 1
	for _, v := range t.Versions {
		if v.Version >= next {
			next = v.Version + 1
		}
	}

	ids := append([]string(nil), clauseIDs...)
	out := cloneTemplate(t)
	out.ClauseIDs = ids
	out.LastModified = now
	out.Versions = append(out.Versions, model.TemplateVersion{
		Version:      next,
		ClauseIDs:    ids,
		ModifiedBy:   author,
		ModifiedDate: now,
		Changes:      changes,
	})
	return out, nil
}

// OverwriteLatestTemplateVersion replaces the last template version's
// composition in place, keeping its number. No-op on empty history.
func OverwriteLatestTemplateVersion(t *model.Template, clauseIDs []string, author, changes string, now time.Time) *model.Template {
	if len(t.Versions) == 0 {
		return cloneTemplate(t)
	}

	ids := append([]string(nil), clauseIDs...)
	out := cloneTemplate(t)
	out.ClauseIDs = ids
	out.LastModified = now
	last := &out.Versions[len(out.Versions)-1]
	last.ClauseIDs = ids
	last.ModifiedBy = author
	last.ModifiedDate = now
	last.Changes = changes
	return out
}

func cloneTemplate(t *model.Template) *model.Template {
	out := *t
	out.ClauseIDs = append([]string(nil), t.ClauseIDs...)
	out.Versions = append([]model.TemplateVersion(nil), t.Versions...)
	return &out
}
