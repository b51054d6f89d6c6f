package models

import (
	"strings"
	"time"
)

// Applicant defines the applicant model based on the 'applicants' table.
// Rows are immutable after intake except for the status column.
type Applicant struct {
	ID               int64      `json:"id" db:"id"`
	ApplicantNo      string     `json:"applicantNo" db:"applicant_no" example:"APP-1700000000000"`
	Password         string     `json:"-" db:"password"` // bcrypt hash of the generated temporary password
	FirstName        string     `json:"firstName" db:"first_name"`
	LastName         string     `json:"lastName" db:"last_name"`
	MiddleInitial    string     `json:"middleInitial,omitempty" db:"middle_initial"`
	Suffix           string     `json:"suffix,omitempty" db:"suffix"`
	Nationality      string     `json:"nationality,omitempty" db:"nationality"`
	Birthday         string     `json:"birthday,omitempty" db:"birthday"`
	Age              int        `json:"age" db:"age"`
	Email            string     `json:"email" db:"email"`
	ContactNumber    *string    `json:"contactNumber,omitempty" db:"contact_number"`
	Region           string     `json:"region,omitempty" db:"region"`
	Province         string     `json:"province,omitempty" db:"province"`
	City             string     `json:"city,omitempty" db:"city_municipality"`
	Barangay         string     `json:"barangay,omitempty" db:"barangay"`
	DetailedAddress  string     `json:"detailedAddress,omitempty" db:"detailed_address"`
	MedicalCondition string     `json:"medicalCondition" db:"has_medical_condition"`
	MedicalDetails   string     `json:"medicalDetails" db:"medical_details"`
	Branch           string     `json:"branch" db:"branch"`
	PositionApplied  string     `json:"positionApplied" db:"position_applied"`
	ResumeURL        *string    `json:"resumeUrl" db:"resume_url"`
	CoverLetterURL   *string    `json:"coverLetterUrl" db:"cover_letter_url"`
	PrcIDURL         *string    `json:"prcIdUrl" db:"prc_id_url"`
	Status           string     `json:"status" db:"status"`
	CreatedAt        *time.Time `json:"createdAt,omitempty" db:"created_at"`
}

// FullName joins the first and last name the way the dashboard displays it.
func (a *Applicant) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(a.FirstName) + " " + strings.TrimSpace(a.LastName))
}
