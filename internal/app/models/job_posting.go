package models

import "time"

// JobPosting defines the job posting model based on the 'job_postings' table.
// Postings are created and managed by HR; applicants only ever read them.
type JobPosting struct {
	ID             int64     `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Branch         string    `json:"branch" db:"branch"`
	Department     string    `json:"department" db:"department"`
	ContractType   string    `json:"contractType" db:"contract_type"`
	IsOpen         bool      `json:"isOpen" db:"is_open"`
	ApplicantCount int       `json:"applicantCount" db:"applicant_count"`
	PostedAt       time.Time `json:"postedAt" db:"posted_at"`
}
