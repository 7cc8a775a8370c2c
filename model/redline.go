package model

// Redline is a proposed textual change to a clause within a specific
// contract version, with accept/reject disposition
type Redline struct {
	ID           string `json:"id"`
	VersionID    string `json:"version_id"`
	ClauseID     string `json:"clause_id"`
	OriginalText string `json:"original_text"`
	ProposedText string `json:"proposed_text"`
	Comment      string `json:"comment,omitempty"`
	SuggestedBy  string `json:"suggested_by"`
	Status       string `json:"status"`
}

// Redline status constants
const (
	RedlinePending  = "pending"
	RedlineAccepted = "accepted"
	RedlineRejected = "rejected"
)
