package service

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/allometrik/clm-platform-sub000/config"
	"github.com/allometrik/clm-platform-sub000/model"
)

// Store is the in-memory catalog of every entity collection. It stands
// in for what would be a persistence layer in a production system: all
// data lives for the lifetime of the process and mutations are visible
// only to the running session.
//
// Each collection keeps a map keyed by id plus an ordered id slice so
// that filtered listings preserve insertion order.
type Store struct {
	mu sync.RWMutex

	clauses     map[string]*model.Clause
	clauseOrder []string
	// deletedClauses is the soft-delete exclusion set. A deleted clause
	// stays in the map and keeps its id inside template clause lists;
	// it only stops resolving.
	deletedClauses map[string]bool

	templates     map[string]*model.Template
	templateOrder []string

	contracts     map[string]*model.Contract
	contractOrder []string
	maxContracts  int

	contractVersions map[string][]*model.ContractVersion // keyed by contract id
	redlines         map[string]*model.Redline
	redlineOrder     []string
	flows            map[string]*model.ApprovalFlow
	flowOrder        []string
	risks            map[string]*model.RiskAssessment // keyed by contract id
	requests         map[string]*model.ContractRequest
	requestOrder     []string
	playbooks        []*model.Playbook
}

var (
	globalStore *Store
	storeOnce   sync.Once
)

// InitStore initializes the global store with configuration and the
// built-in seed dataset.
func InitStore(cfg *config.StoreConfig) {
	storeOnce.Do(func() {
		maxContracts := cfg.MaxContracts
		if maxContracts < 0 {
			maxContracts = 0
		}
		globalStore = NewStore(maxContracts)
		globalStore.seed()
		slog.Info("entity store initialized",
			"max_contracts", maxContracts,
			"clauses", len(globalStore.clauseOrder),
			"templates", len(globalStore.templateOrder),
			"contracts", len(globalStore.contractOrder),
		)
	})
}

// GetStore returns the global store
func GetStore() *Store {
	if globalStore == nil {
		// Fallback initialization with default settings
		globalStore = NewStore(100)
		globalStore.seed()
	}
	return globalStore
}

// NewStore creates an empty store. Callers wanting the sample dataset
// should go through InitStore.
func NewStore(maxContracts int) *Store {
	return &Store{
		clauses:          make(map[string]*model.Clause),
		deletedClauses:   make(map[string]bool),
		templates:        make(map[string]*model.Template),
		contracts:        make(map[string]*model.Contract),
		maxContracts:     maxContracts,
		contractVersions: make(map[string][]*model.ContractVersion),
		redlines:         make(map[string]*model.Redline),
		flows:            make(map[string]*model.ApprovalFlow),
		risks:            make(map[string]*model.RiskAssessment),
		requests:         make(map[string]*model.ContractRequest),
	}
}

// ---- Clauses ----

// GetClause returns the clause and whether it exists. Soft-deleted
// clauses are still returned here; resolution is where they disappear.
func (s *Store) GetClause(id string) (*model.Clause, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clauses[id]
	return c, ok
}

// ClauseDeleted reports whether the clause id is in the exclusion set.
func (s *Store) ClauseDeleted(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deletedClauses[id]
}

// ListClauses returns non-deleted clauses in insertion order,
// optionally filtered by category.
func (s *Store) ListClauses(category string) []*model.Clause {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.Clause
	for _, id := range s.clauseOrder {
		if s.deletedClauses[id] {
			continue
		}
		c := s.clauses[id]
		if category != "" && c.Category != category {
			continue
		}
		result = append(result, c)
	}
	return result
}

func (s *Store) AddClause(c *model.Clause) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.clauses[c.ID]; !exists {
		s.clauseOrder = append(s.clauseOrder, c.ID)
	}
	s.clauses[c.ID] = c
}

// UpdateClause replaces the stored snapshot. Missing ids are ignored.
func (s *Store) UpdateClause(c *model.Clause) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clauses[c.ID]; ok {
		s.clauses[c.ID] = c
	}
}

// DeleteClause soft-deletes: the record stays, templates keep the id,
// only resolution excludes it.
func (s *Store) DeleteClause(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clauses[id]; ok {
		s.deletedClauses[id] = true
	}
}

// ClauseCount returns the number of non-deleted clauses.
func (s *Store) ClauseCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, id := range s.clauseOrder {
		if !s.deletedClauses[id] {
			n++
		}
	}
	return n
}

// ---- Templates ----

func (s *Store) GetTemplate(id string) (*model.Template, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.templates[id]
	return t, ok
}

// ListTemplates returns templates in insertion order. publicOnly
// restricts to templates flagged public.
func (s *Store) ListTemplates(category string, publicOnly bool) []*model.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.Template
	for _, id := range s.templateOrder {
		t := s.templates[id]
		if category != "" && t.Category != category {
			continue
		}
		if publicOnly && !t.IsPublic {
			continue
		}
		result = append(result, t)
	}
	return result
}

func (s *Store) AddTemplate(t *model.Template) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.templates[t.ID]; !exists {
		s.templateOrder = append(s.templateOrder, t.ID)
	}
	s.templates[t.ID] = t
}

func (s *Store) UpdateTemplate(t *model.Template) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.templates[t.ID]; ok {
		s.templates[t.ID] = t
	}
}

func (s *Store) DeleteTemplate(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.templates[id]; !ok {
		return
	}
	delete(s.templates, id)
	for i, tid := range s.templateOrder {
		if tid == id {
			s.templateOrder = append(s.templateOrder[:i], s.templateOrder[i+1:]...)
			break
		}
	}
}

func (s *Store) TemplateCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.templateOrder)
}

// ---- Contracts ----

func (s *Store) GetContract(id string) (*model.Contract, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.contracts[id]
	return c, ok
}

// ListContracts returns contracts in insertion order, optionally
// filtered by status.
func (s *Store) ListContracts(status string) []*model.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.Contract
	for _, id := range s.contractOrder {
		c := s.contracts[id]
		if status != "" && c.Status != status {
			continue
		}
		result = append(result, c)
	}
	return result
}

func (s *Store) AddContract(c *model.Contract) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.contracts[c.ID]; !exists {
		s.contractOrder = append(s.contractOrder, c.ID)
	}
	s.contracts[c.ID] = c
	s.cleanupContractsIfNeeded()
}

// UpdateContractStatus moves a contract through its lifecycle.
// Unknown ids are ignored.
func (s *Store) UpdateContractStatus(id, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.contracts[id]; ok {
		c.Status = status
		c.LastModified = time.Now()
	}
}

func (s *Store) ContractCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contractOrder)
}

// cleanupContractsIfNeeded evicts oldest contracts past maxContracts.
// Must be called with lock held.
func (s *Store) cleanupContractsIfNeeded() {
	if s.maxContracts <= 0 {
		return // Unlimited
	}
	if len(s.contracts) <= s.maxContracts {
		return
	}

	contracts := make([]*model.Contract, 0, len(s.contracts))
	for _, c := range s.contracts {
		contracts = append(contracts, c)
	}
	sort.Slice(contracts, func(i, j int) bool {
		return contracts[i].CreatedDate.Before(contracts[j].CreatedDate)
	})

	removeCount := len(contracts) - s.maxContracts
	for i := 0; i < removeCount; i++ {
		slog.Info("auto-cleaning old contract",
			"contract_id", contracts[i].ID,
			"created_date", contracts[i].CreatedDate,
		)
		delete(s.contracts, contracts[i].ID)
		for j, id := range s.contractOrder {
			if id == contracts[i].ID {
				s.contractOrder = append(s.contractOrder[:j], s.contractOrder[j+1:]...)
				break
			}
		}
		delete(s.contractVersions, contracts[i].ID)
	}
}

// ---- Contract versions ----

// ContractVersions returns the version history for a contract in
// ascending version order.
func (s *Store) ContractVersions(contractID string) []*model.ContractVersion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*model.ContractVersion(nil), s.contractVersions[contractID]...)
}

// AddContractVersion appends a version and demotes the previous active
// one, keeping exactly one active version per contract.
func (s *Store) AddContractVersion(v *model.ContractVersion) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.contractVersions[v.ContractID] {
		if existing.Status == model.VersionStatusActive {
			existing.Status = model.VersionStatusHistorical
		}
	}
	v.Status = model.VersionStatusActive
	s.contractVersions[v.ContractID] = append(s.contractVersions[v.ContractID], v)

	if c, ok := s.contracts[v.ContractID]; ok {
		c.CurrentVersion = v.VersionNumber
		c.LastModified = time.Now()
	}
}

// ---- Redlines ----

func (s *Store) GetRedline(id string) (*model.Redline, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.redlines[id]
	return r, ok
}

// ListRedlines returns redlines for a contract version in insertion order.
func (s *Store) ListRedlines(versionID string) []*model.Redline {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.Redline
	for _, id := range s.redlineOrder {
		r := s.redlines[id]
		if versionID != "" && r.VersionID != versionID {
			continue
		}
		result = append(result, r)
	}
	return result
}

func (s *Store) AddRedline(r *model.Redline) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.redlines[r.ID]; !exists {
		s.redlineOrder = append(s.redlineOrder, r.ID)
	}
	s.redlines[r.ID] = r
}

// SetRedlineStatus records the accept/reject disposition. Only pending
// redlines can be decided; the call reports whether it took effect.
func (s *Store) SetRedlineStatus(id, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.redlines[id]
	if !ok || r.Status != model.RedlinePending {
		return false
	}
	r.Status = status
	return true
}

// ---- Approval flows ----

func (s *Store) GetFlow(id string) (*model.ApprovalFlow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.flows[id]
	return f, ok
}

// FlowForContract returns the approval flow gating a contract, if any.
func (s *Store) FlowForContract(contractID string) (*model.ApprovalFlow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.flowOrder {
		if s.flows[id].ContractID == contractID {
			return s.flows[id], true
		}
	}
	return nil, false
}

func (s *Store) ListFlows() []*model.ApprovalFlow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.ApprovalFlow, 0, len(s.flowOrder))
	for _, id := range s.flowOrder {
		result = append(result, s.flows[id])
	}
	return result
}

func (s *Store) AddFlow(f *model.ApprovalFlow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.flows[f.ID]; !exists {
		s.flowOrder = append(s.flowOrder, f.ID)
	}
	s.flows[f.ID] = f
}

// UpdateFlow replaces the stored flow snapshot. Missing ids are ignored.
func (s *Store) UpdateFlow(f *model.ApprovalFlow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.flows[f.ID]; ok {
		s.flows[f.ID] = f
	}
}

// ---- Risk assessments ----

func (s *Store) GetRiskAssessment(contractID string) (*model.RiskAssessment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.risks[contractID]
	return r, ok
}

func (s *Store) AddRiskAssessment(r *model.RiskAssessment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.risks[r.ContractID] = r
}

// ---- Contract requests ----

func (s *Store) GetRequest(id string) (*model.ContractRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.requests[id]
	return r, ok
}

// ListRequests returns intake requests in insertion order, optionally
// filtered by status.
func (s *Store) ListRequests(status string) []*model.ContractRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.ContractRequest
	for _, id := range s.requestOrder {
		r := s.requests[id]
		if status != "" && r.Status != status {
			continue
		}
		result = append(result, r)
	}
	return result
}

func (s *Store) AddRequest(r *model.ContractRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.requests[r.ID]; !exists {
		s.requestOrder = append(s.requestOrder, r.ID)
	}
	s.requests[r.ID] = r
}

// UpdateRequestStatus moves an intake request through its workflow.
func (s *Store) UpdateRequestStatus(id, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.requests[id]; ok {
		r.Status = status
	}
}

// ---- Playbooks ----

func (s *Store) ListPlaybooks() []*model.Playbook {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*model.Playbook(nil), s.playbooks...)
}

func (s *Store) AddPlaybook(p *model.Playbook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playbooks = append(s.playbooks, p)
}
