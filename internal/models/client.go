package models

// Client represents a row of the clients table.
type Client struct {
	ClientID      string `json:"clientID" db:"client_id"`
	Name          string `json:"name" db:"name"`
	ContactPerson string `json:"contactPerson" db:"contact_person"`
	Email         string `json:"email" db:"email"`
	Notes         string `json:"notes" db:"notes"`
	IsActive      bool   `json:"isActive" db:"is_active"`
	AuditFields
}
