package model

import (
	"errors"
	"time"
)

// ContractRequest is an intake ticket for a new contract. It is linked
// to a Contract informally through the RequestID string, not a strict
// foreign key.
type ContractRequest struct {
	ID          string    `json:"id"`
	RequestID   string    `json:"request_id"`
	Title       string    `json:"title"`
	Requester   string    `json:"requester"`
	Department  string    `json:"department"`
	Type        string    `json:"type"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	CreatedDate time.Time `json:"created_date"`
}

// Request status constants
const (
	RequestPending    = "pending"
	RequestInProgress = "in_progress"
	RequestCompleted  = "completed"
	RequestRejected   = "rejected"
)

// Request priority constants
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

var (
	ErrRequestTitleRequired     = errors.New("request title is required")
	ErrRequestRequesterRequired = errors.New("request requester is required")
)

// NewContractRequest validates required fields and builds a pending request.
func NewContractRequest(id, requestID, title, requester, department, reqType, priority, description string, now time.Time) (*ContractRequest, error) {
	if title == "" {
		return nil, ErrRequestTitleRequired
	}
	if requester == "" {
		return nil, ErrRequestRequesterRequired
	}
	if priority == "" {
		priority = PriorityMedium
	}

	return &ContractRequest{
		ID:          id,
		RequestID:   requestID,
		Title:       title,
		Requester:   requester,
		Department:  department,
		Type:        reqType,
		Priority:    priority,
		Status:      RequestPending,
		Description: description,
		CreatedDate: now,
	}, nil
}
