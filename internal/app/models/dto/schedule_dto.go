package dto

// CreateScheduleRequest books an interview slot for an applicant
type CreateScheduleRequest struct {
	ApplicantNo   string `json:"applicantNo" binding:"required"`
	ScheduledDate string `json:"scheduledDate" binding:"required" example:"2025-02-14"`
	ScheduledTime string `json:"scheduledTime" binding:"required" example:"09:30"`
	Location      string `json:"location" binding:"required"`
	Reminders     string `json:"reminders"`
}

// UpdateScheduleRequest reschedules or edits an existing interview slot
type UpdateScheduleRequest struct {
	ScheduledDate string `json:"scheduledDate" binding:"required"`
	ScheduledTime string `json:"scheduledTime" binding:"required"`
	Location      string `json:"location" binding:"required"`
	Reminders     string `json:"reminders"`
}

// OverviewResponse feeds the dashboard overview cards
type OverviewResponse struct {
	TotalApplicants     int `json:"totalApplicants"`
	OpenPositions       int `json:"openPositions"`
	InterviewsScheduled int `json:"interviewsScheduled"`
	HiredThisMonth      int `json:"hiredThisMonth"`
}
