package model

import (
	"errors"
	"time"
)

// Contract represents a legal contract under management
type Contract struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Client         string    `json:"client"`
	Status         string    `json:"status"`
	TemplateID     string    `json:"template_id,omitempty"`
	RequestID      string    `json:"request_id,omitempty"`
	Value          float64   `json:"value,omitempty"`
	Currency       string    `json:"currency,omitempty"`
	CurrentVersion int       `json:"current_version"`
	CreatedDate    time.Time `json:"created_date"`
	LastModified   time.Time `json:"last_modified"`
	ExpirationDate time.Time `json:"expiration_date,omitempty"`
}

// Contract status constants, in lifecycle order
const (
	StatusDraft           = "draft"
	StatusInReview        = "in_review"
	StatusPendingApproval = "pending_approval"
	StatusApproved        = "approved"
	StatusSigned          = "signed"
	StatusActive          = "active"
	StatusExpired         = "expired"
)

// ContractStatuses lists every valid contract status.
var ContractStatuses = []string{
	StatusDraft,
	StatusInReview,
	StatusPendingApproval,
	StatusApproved,
	StatusSigned,
	StatusActive,
	StatusExpired,
}

// ValidContractStatus reports whether s is a known contract status.
func ValidContractStatus(s string) bool {
	for _, v := range ContractStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ContractVersion is a numbered snapshot of contract content.
// Exactly one version per contract carries VersionStatusActive.
type ContractVersion struct {
	ID            string    `json:"id"`
	ContractID    string    `json:"contract_id"`
	VersionNumber int       `json:"version_number"`
	Content       string    `json:"content"`
	CreatedBy     string    `json:"created_by"`
	CreatedDate   time.Time `json:"created_date"`
	Changes       string    `json:"changes"`
	Status        string    `json:"status"`
}

// ContractVersion status constants
const (
	VersionStatusActive     = "active"
	VersionStatusHistorical = "historical"
)

var (
	ErrContractTitleRequired  = errors.New("contract title is required")
	ErrContractClientRequired = errors.New("contract client is required")
	ErrInvalidContractStatus  = errors.New("invalid contract status")
)

// NewContract validates required fields and builds a draft contract.
// TemplateID may be empty; when set, the template's clauses become the
// contract's clause set at resolution time.
func NewContract(id, title, client, templateID, requestID string, now time.Time) (*Contract, error) {
	if title == "" {
		return nil, ErrContractTitleRequired
	}
	if client == "" {
		return nil, ErrContractClientRequired
	}

	return &Contract{
		ID:             id,
		Title:          title,
		Client:         client,
		Status:         StatusDraft,
		TemplateID:     templateID,
		RequestID:      requestID,
		CurrentVersion: 1,
		CreatedDate:    now,
		LastModified:   now,
	}, nil
}
