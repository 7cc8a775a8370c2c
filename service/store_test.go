package service

import (
	"testing"
	"time"

	"github.com/allometrik/clm-platform-sub000/model"
)

func newTestStore() *Store {
	return NewStore(100)
}

func newSeededStore() *Store {
	s := NewStore(100)
	s.seed()
	return s
}

func TestStoreAddAndGetClause(t *testing.T) {
	store := newTestStore()

	clause, err := model.NewClause("c-1", "Confidencialidad", "Protección", "Texto de la cláusula.", "tester", time.Now())
	if err != nil {
		t.Fatalf("NewClause failed: %v", err)
	}
	store.AddClause(clause)

	retrieved, ok := store.GetClause("c-1")
	if !ok {
		t.Fatal("Expected to retrieve clause")
	}
	if retrieved.Title != "Confidencialidad" {
		t.Errorf("Expected title Confidencialidad, got %s", retrieved.Title)
	}

	// Lookup miss returns an explicit not-found signal
	if _, ok := store.GetClause("non-existent"); ok {
		t.Error("Expected not-found for non-existent clause")
	}
}

func TestStoreListClausesPreservesInsertionOrder(t *testing.T) {
	store := newTestStore()

	for _, id := range []string{"z", "a", "m"} {
		c, _ := model.NewClause(id, "Título "+id, "Cat", "Contenido", "tester", time.Now())
		store.AddClause(c)
	}

	clauses := store.ListClauses("")
	if len(clauses) != 3 {
		t.Fatalf("Expected 3 clauses, got %d", len(clauses))
	}
	want := []string{"z", "a", "m"}
	for i, c := range clauses {
		if c.ID != want[i] {
			t.Errorf("Position %d: expected id %s, got %s", i, want[i], c.ID)
		}
	}
}

func TestStoreListClausesByCategory(t *testing.T) {
	store := newSeededStore()

	proteccion := store.ListClauses("Protección")
	if len(proteccion) != 3 {
		t.Errorf("Expected 3 clauses in Protección, got %d", len(proteccion))
	}
	for _, c := range proteccion {
		if c.Category != "Protección" {
			t.Errorf("Clause %s has category %s", c.ID, c.Category)
		}
	}
}

func TestStoreSoftDeleteClause(t *testing.T) {
	store := newSeededStore()
	before := store.ClauseCount()

	store.DeleteClause("2")

	if store.ClauseCount() != before-1 {
		t.Errorf("Expected count %d after delete, got %d", before-1, store.ClauseCount())
	}
	if !store.ClauseDeleted("2") {
		t.Error("Expected clause 2 to be in the exclusion set")
	}

	// The record itself survives; deletion is set-membership exclusion
	if _, ok := store.GetClause("2"); !ok {
		t.Error("Expected soft-deleted clause record to remain retrievable")
	}

	// Templates keep the id in their clause lists
	tpl, _ := store.GetTemplate("1")
	if !tpl.References("2") {
		t.Error("Expected template 1 to keep clause id 2 after soft delete")
	}

	// Deleting an unknown id is a no-op
	store.DeleteClause("unknown")
	if store.ClauseDeleted("unknown") {
		t.Error("Unknown id should not enter the exclusion set")
	}
}

func TestStoreSeedClauseOneLineage(t *testing.T) {
	store := newSeededStore()

	clause, ok := store.GetClause("1")
	if !ok {
		t.Fatal("Expected seed clause 1")
	}
	if clause.Title != "Confidencialidad" {
		t.Errorf("Expected title Confidencialidad, got %s", clause.Title)
	}
	if len(clause.Versions) != 3 {
		t.Fatalf("Expected 3 versions for clause 1, got %d", len(clause.Versions))
	}
	for i, v := range clause.Versions {
		if v.Version != i+1 {
			t.Errorf("Version at index %d numbered %d, expected %d", i, v.Version, i+1)
		}
	}
}

func TestStoreContractAutoCleanup(t *testing.T) {
	store := NewStore(3)

	for i := 0; i < 5; i++ {
		store.AddContract(&model.Contract{
			ID:          string(rune('a' + i)),
			Title:       "Contrato",
			Client:      "Cliente",
			Status:      model.StatusDraft,
			CreatedDate: time.Now().Add(time.Duration(i) * time.Second),
		})
	}

	if store.ContractCount() != 3 {
		t.Errorf("Expected 3 contracts after cleanup, got %d", store.ContractCount())
	}
	if _, ok := store.GetContract("a"); ok {
		t.Error("Expected oldest contract 'a' to be evicted")
	}
	if _, ok := store.GetContract("b"); ok {
		t.Error("Expected second oldest contract 'b' to be evicted")
	}
	if _, ok := store.GetContract("e"); !ok {
		t.Error("Expected newest contract 'e' to survive")
	}
}

func TestStoreContractVersionSingleActive(t *testing.T) {
	store := newTestStore()
	store.AddContract(&model.Contract{ID: "k-1", Title: "T", Client: "C", Status: model.StatusDraft, CreatedDate: time.Now()})

	for i := 1; i <= 3; i++ {
		store.AddContractVersion(&model.ContractVersion{
			ID:            string(rune('0' + i)),
			ContractID:    "k-1",
			VersionNumber: i,
			CreatedDate:   time.Now(),
		})
	}

	versions := store.ContractVersions("k-1")
	if len(versions) != 3 {
		t.Fatalf("Expected 3 versions, got %d", len(versions))
	}

	active := 0
	for _, v := range versions {
		if v.Status == model.VersionStatusActive {
			active++
			if v.VersionNumber != 3 {
				t.Errorf("Expected version 3 to be active, got %d", v.VersionNumber)
			}
		}
	}
	if active != 1 {
		t.Errorf("Expected exactly 1 active version, got %d", active)
	}

	contract, _ := store.GetContract("k-1")
	if contract.CurrentVersion != 3 {
		t.Errorf("Expected contract CurrentVersion 3, got %d", contract.CurrentVersion)
	}
}

func TestStoreRedlineDecision(t *testing.T) {
	store := newSeededStore()

	if !store.SetRedlineStatus("rl-1", model.RedlineAccepted) {
		t.Error("Expected pending redline to accept a decision")
	}

	// Already decided
	if store.SetRedlineStatus("rl-1", model.RedlineRejected) {
		t.Error("Expected decided redline to refuse a second decision")
	}
	if store.SetRedlineStatus("rl-2", model.RedlineRejected) {
		t.Error("Seed redline rl-2 is already accepted")
	}

	rl, _ := store.GetRedline("rl-1")
	if rl.Status != model.RedlineAccepted {
		t.Errorf("Expected accepted, got %s", rl.Status)
	}
}

func TestStoreUpdateContractStatus(t *testing.T) {
	store := newSeededStore()

	store.UpdateContractStatus("3", model.StatusInReview)

	contract, _ := store.GetContract("3")
	if contract.Status != model.StatusInReview {
		t.Errorf("Expected in_review, got %s", contract.Status)
	}

	// Unknown id should not panic
	store.UpdateContractStatus("non-existent", model.StatusActive)
}

func TestStoreRequestsSeedAndFilter(t *testing.T) {
	store := newSeededStore()

	all := store.ListRequests("")
	if len(all) != 3 {
		t.Fatalf("Expected 3 seed requests, got %d", len(all))
	}

	pending := store.ListRequests(model.RequestPending)
	if len(pending) != 1 || pending[0].ID != "r-3" {
		t.Errorf("Expected only r-3 pending, got %v", pending)
	}
}

func TestStoreFlowForContract(t *testing.T) {
	store := newSeededStore()

	flow, ok := store.FlowForContract("2")
	if !ok {
		t.Fatal("Expected a flow for contract 2")
	}
	if flow.ID != "af-1" {
		t.Errorf("Expected flow af-1, got %s", flow.ID)
	}

	if _, ok := store.FlowForContract("3"); ok {
		t.Error("Contract 3 has no flow")
	}
}

func TestGetStoreFallback(t *testing.T) {
	store := GetStore()
	if store == nil {
		t.Fatal("Expected non-nil store")
	}
}
