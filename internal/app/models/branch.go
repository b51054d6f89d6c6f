package models

// Branch defines a company branch based on the 'branches' table.
// Reference data for the posting and application dropdowns.
type Branch struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name" example:"Manila (Main)"`
	IsActive bool   `json:"isActive" db:"is_active"`
}
