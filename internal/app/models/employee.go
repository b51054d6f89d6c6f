package models

import "strings"

// Employee defines the HR employee model based on the 'employees' table.
// Employees authenticate against the dashboard; passwords are bcrypt hashes.
type Employee struct {
	ID         int64  `json:"id" db:"id"`
	EmployeeID string `json:"employeeId" db:"employee_id" example:"EMP-001"`
	Password   string `json:"-" db:"password"`
	FirstName  string `json:"firstName" db:"first_name"`
	LastName   string `json:"lastName" db:"last_name"`
	Role       string `json:"role" db:"role" example:"HR Manager"`
	IsActive   bool   `json:"isActive" db:"is_active"`
}

// FullName joins the first and last name for display.
func (e *Employee) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(e.FirstName) + " " + strings.TrimSpace(e.LastName))
}
