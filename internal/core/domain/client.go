package domain

// Client is an advisory-firm client (mandant) owning planning analyses.
type Client struct {
	ClientID      string `json:"clientID"` // Primary Key (UUID)
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Email         string `json:"email,omitempty"`
	Notes         string `json:"notes,omitempty"`
	IsActive      bool   `json:"isActive"`
	AuditFields
}
