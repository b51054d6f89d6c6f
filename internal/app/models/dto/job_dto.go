package dto

// CreateJobPostingRequest represents a new posting from the HR dashboard
type CreateJobPostingRequest struct {
	Title        string `json:"title" binding:"required"`
	Branch       string `json:"branch" binding:"required"`
	Department   string `json:"department" binding:"required"`
	ContractType string `json:"contractType" binding:"required"`
}

// UpdateJobStatusRequest toggles a posting between open and closed
type UpdateJobStatusRequest struct {
	IsOpen *bool `json:"isOpen" binding:"required"`
}
