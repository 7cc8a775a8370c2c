package service

import (
	"strings"
	"testing"

	"github.com/allometrik/clm-platform-sub000/model"
)

func TestRenderDocument(t *testing.T) {
	store := newSeededStore()
	resolver := NewResolver(store)

	contract, _ := store.GetContract("1")
	clauses, _ := resolver.ResolveContractClauses("1")

	doc := RenderDocument(contract, clauses)

	if !strings.Contains(doc, contract.Title) {
		t.Error("Expected document to contain the contract title")
	}
	if !strings.Contains(doc, "Cliente: Acme Corp") {
		t.Error("Expected document to contain the client line")
	}
	// Sections are numbered in clause order
	if !strings.Contains(doc, "1. Confidencialidad") {
		t.Error("Expected first section to be Confidencialidad")
	}
	if !strings.Contains(doc, "4. Limitación de Responsabilidad") {
		t.Error("Expected fourth section to be Limitación de Responsabilidad")
	}
}

func TestRenderDocumentNoClauses(t *testing.T) {
	contract := &model.Contract{ID: "x", Title: "Contrato Vacío", Client: "Cliente", CurrentVersion: 1}

	doc := RenderDocument(contract, nil)
	if !strings.Contains(doc, "Contrato Vacío") {
		t.Error("Expected header even without clauses")
	}
}
