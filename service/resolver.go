package service

import (
	"log/slog"

	"github.com/allometrik/clm-platform-sub000/model"
)

// Resolver computes clause cross-references over the store: template or
// contract clause lists resolved to clause records, and the inverse
// clause-to-templates direction used for usage counts and
// deletion-impact warnings.
type Resolver struct {
	store *Store
}

func NewResolver(store *Store) *Resolver {
	return &Resolver{store: store}
}

// ResolveClauseIDs maps an ordered id list to clause records, keeping
// declared order. Dangling and soft-deleted ids are dropped, not
// surfaced as errors; availability wins over strict integrity here,
// with a warning so dangling references stay visible in logs.
func (r *Resolver) ResolveClauseIDs(ids []string) []*model.Clause {
	var resolved []*model.Clause
	for _, id := range ids {
		c, ok := r.store.GetClause(id)
		if !ok {
			slog.Warn("dangling clause reference", "clause_id", id)
			continue
		}
		if r.store.ClauseDeleted(id) {
			continue
		}
		resolved = append(resolved, c)
	}
	return resolved
}

// ResolveTemplateClauses returns the clause records of a template in
// section order. The second result is false when the template itself
// does not exist.
func (r *Resolver) ResolveTemplateClauses(templateID string) ([]*model.Clause, bool) {
	t, ok := r.store.GetTemplate(templateID)
	if !ok {
		return nil, false
	}
	return r.ResolveClauseIDs(t.ClauseIDs), true
}

// ResolveContractClauses resolves a contract's clause set through its
// template. Contracts without a template resolve to an empty set.
func (r *Resolver) ResolveContractClauses(contractID string) ([]*model.Clause, bool) {
	c, ok := r.store.GetContract(contractID)
	if !ok {
		return nil, false
	}
	if c.TemplateID == "" {
		return nil, true
	}
	clauses, ok := r.ResolveTemplateClauses(c.TemplateID)
	if !ok {
		slog.Warn("contract references missing template",
			"contract_id", contractID,
			"template_id", c.TemplateID,
		)
		return nil, true
	}
	return clauses, true
}

// TemplatesUsingClause returns the templates whose clause list contains
// the given id, in template insertion order.
func (r *Resolver) TemplatesUsingClause(clauseID string) []*model.Template {
	var result []*model.Template
	for _, t := range r.store.ListTemplates("", false) {
		if t.References(clauseID) {
			result = append(result, t)
		}
	}
	return result
}

// ClauseUsageCount counts templates referencing the clause id.
func (r *Resolver) ClauseUsageCount(clauseID string) int {
	return len(r.TemplatesUsingClause(clauseID))
}
