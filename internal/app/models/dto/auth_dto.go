package dto

// LoginRequest represents HR dashboard login credentials
type LoginRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int    `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int    `json:"refreshTokenExpiresIn,omitempty"`
}

// EmployeeSummary is the user payload the dashboard stores after login
type EmployeeSummary struct {
	ID   string `json:"id" example:"EMP-001"`
	Name string `json:"name" example:"Ana Reyes"`
	Role string `json:"role" example:"HR Manager"`
}

// LoginResponse represents a successful authentication response
type LoginResponse struct {
	Message string          `json:"message" example:"Login successful"`
	User    EmployeeSummary `json:"user"`
	Token   TokenResponse   `json:"token"`
}

// RefreshTokenRequest represents a refresh token rotation request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
