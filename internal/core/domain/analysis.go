package domain

// Analysis is a named, timestamped planning scenario belonging to one client.
// It owns exactly one fiscal-year plan; the plan's lifecycle matches the
// analysis (whole-analysis deletion only).
type Analysis struct {
	AnalysisID string `json:"analysisID"` // Primary Key (UUID)
	ClientID   string `json:"clientID"`
	Name       string `json:"name"`
	BaseYear   int    `json:"baseYear"` // fiscal year the plan's months 1-12 cover
	Plan       Plan   `json:"plan"`
	AuditFields
}
