package models

// Specialty is one entry in the specialty picker catalogue.
type Specialty struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}
