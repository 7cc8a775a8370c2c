package model

// RiskFactor is a single scored contributor to a risk assessment
type RiskFactor struct {
	Name        string `json:"name"`
	Level       string `json:"level"`
	Description string `json:"description,omitempty"`
}

// RiskAssessment is a scored, factor-based evaluation of contractual
// risk. Assessments are authored as static seed data.
type RiskAssessment struct {
	ContractID      string       `json:"contract_id"`
	OverallRisk     string       `json:"overall_risk"`
	RiskScore       int          `json:"risk_score"` // 0-100
	Factors         []RiskFactor `json:"factors"`
	Recommendations []string     `json:"recommendations"`
}

// Risk level constants
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)
