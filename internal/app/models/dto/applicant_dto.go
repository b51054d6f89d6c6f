package dto

// ApplicationForm carries the text fields of a multipart application
// submission. The three document files travel alongside as multipart file
// parts (resume, coverLetter, prcId) and are not part of this struct.
type ApplicationForm struct {
	FirstName       string `form:"firstName" binding:"required"`
	LastName        string `form:"lastName" binding:"required"`
	MiddleInitial   string `form:"middleInitial"`
	Suffix          string `form:"suffix"`
	Nationality     string `form:"nationality"`
	Birthday        string `form:"birthday"`
	Age             string `form:"age"`
	Email           string `form:"email" binding:"required,email"`
	ContactNumber   string `form:"contactNumber"`
	Region          string `form:"region"`
	Province        string `form:"province"`
	City            string `form:"city"`
	Barangay        string `form:"barangay"`
	DetailedAddress string `form:"detailedAddress"`
	MedicalCondition string `form:"medicalCondition"`
	MedicalDetails  string `form:"medicalDetails"`
	Branch          string `form:"branch"`
	PositionApplied string `form:"positionApplied"`
}

// ApplicationReceipt is returned after a successful submission
type ApplicationReceipt struct {
	Message     string `json:"message" example:"Application submitted!"`
	ApplicantID string `json:"applicantId" example:"APP-1700000000000"`
}

// ApplicantSummary is the row projection the HR applicants table renders.
// Field defaulting is centralized in the service mapping, not scattered
// per consumer.
type ApplicantSummary struct {
	ID       string `json:"id" example:"APP-1700000000000"`
	Name     string `json:"name" example:"Juan Dela Cruz"`
	Email    string `json:"email" example:"juan.delacruz@email.com"`
	Phone    string `json:"phone" example:"09123456789"`
	Date     string `json:"date" example:"01-15-2025"`
	Status   string `json:"status" example:"Applied"`
	Position string `json:"position" example:"Licensed Customs Broker"`
	Branch   string `json:"branch" example:"Manila (Main)"`
}

// UpdateStatusRequest carries a target application status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Interview"`
}
