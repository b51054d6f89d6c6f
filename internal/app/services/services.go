package services

// Services defined in this package:
// - AuthService: HR dashboard login and refresh token rotation
// - ApplicantService: intake, listing, and status transitions
// - JobService: job posting management and the public job board
// - ScheduleService: interview scheduling
// - ReportService: periodic reports and dashboard overview stats
