package models

import "time"

// InterviewSchedule defines the interview schedule model based on the
// 'interview_schedules' table. A schedule is optionally linked 1:1 to an
// applicant once HR books an interview.
type InterviewSchedule struct {
	ID            int64     `json:"id" db:"id"`
	ApplicantNo   string    `json:"applicantNo" db:"applicant_no"`
	ScheduledDate string    `json:"scheduledDate" db:"scheduled_date" example:"2025-02-14"`
	ScheduledTime string    `json:"scheduledTime" db:"scheduled_time" example:"09:30"`
	Location      string    `json:"location" db:"location"`
	Reminders     string    `json:"reminders,omitempty" db:"reminders"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
