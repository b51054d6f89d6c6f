package models

import "time"

// RefreshToken defines a stored refresh token from the 'employee_tokens'
// table. Tokens are opaque UUIDs and are rotated on every refresh.
type RefreshToken struct {
	ID         int64     `json:"id" db:"id"`
	EmployeeID int64     `json:"employeeId" db:"employee_id"`
	Token      string    `json:"token" db:"token"`
	ExpiresAt  time.Time `json:"expiresAt" db:"expires_at"`
	Revoked    bool      `json:"revoked" db:"revoked"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
