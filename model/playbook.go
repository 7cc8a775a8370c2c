package model

// PlaybookRule is a negotiation guideline tied to a clause category
type PlaybookRule struct {
	ClauseCategory string `json:"clause_category"`
	Preferred      string `json:"preferred"`
	Fallback       string `json:"fallback,omitempty"`
	WalkAway       string `json:"walk_away,omitempty"`
}

// Playbook groups negotiation rules for a contract type
type Playbook struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Rules    []PlaybookRule `json:"rules"`
}
