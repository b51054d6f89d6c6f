package validation

import "regexp"

// Identifier patterns for the recruitment portal
var (
	// ApplicantNoPattern matches applicant numbers like APP-1700000000000
	ApplicantNoPattern = `^APP-\d{10,13}$`

	// EmployeeIDPattern matches HR employee IDs like EMP-001
	EmployeeIDPattern = `^EMP-\d{3,}$`

	// TimeSlotPattern matches 24h interview times like 09:30
	TimeSlotPattern = `^([01]\d|2[0-3]):[0-5]\d$`

	// DatePattern matches ISO dates like 2025-02-14
	DatePattern = `^\d{4}-\d{2}-\d{2}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	ApplicantNo *regexp.Regexp
	EmployeeID  *regexp.Regexp
	TimeSlot    *regexp.Regexp
	Date        *regexp.Regexp
}{
	ApplicantNo: regexp.MustCompile(ApplicantNoPattern),
	EmployeeID:  regexp.MustCompile(EmployeeIDPattern),
	TimeSlot:    regexp.MustCompile(TimeSlotPattern),
	Date:        regexp.MustCompile(DatePattern),
}

// IsValidApplicantNo reports whether a string is a well-formed applicant number
func IsValidApplicantNo(s string) bool {
	return CompiledPatterns.ApplicantNo.MatchString(s)
}

// IsValidEmployeeID reports whether a string is a well-formed employee ID
func IsValidEmployeeID(s string) bool {
	return CompiledPatterns.EmployeeID.MatchString(s)
}

// IsValidTimeSlot reports whether a string is a well-formed 24h time
func IsValidTimeSlot(s string) bool {
	return CompiledPatterns.TimeSlot.MatchString(s)
}

// IsValidDate reports whether a string is a well-formed ISO date
func IsValidDate(s string) bool {
	return CompiledPatterns.Date.MatchString(s)
}
