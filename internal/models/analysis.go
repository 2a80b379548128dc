package models

// Analysis represents a row of the analyses table. The plan is stored as a
// JSONB document; PlanJSON carries the raw bytes between the repository and
// the mapping layer.
type Analysis struct {
	AnalysisID string `json:"analysisID" db:"analysis_id"`
	ClientID   string `json:"clientID" db:"client_id"`
	Name       string `json:"name" db:"name"`
	BaseYear   int    `json:"baseYear" db:"base_year"`
	PlanJSON   []byte `json:"-" db:"plan"`
	AuditFields
}
