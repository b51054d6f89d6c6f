package reporting

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/sixrdiamond/recruitment-portal/internal/app/models"
)

// RecordDateLayout is the applied-date format the dashboard tables render.
const RecordDateLayout = "01-02-2006"

// applicantNoPattern extracts the embedded millisecond timestamp from
// generated applicant numbers of the form APP-<epoch millis>.
var applicantNoPattern = regexp.MustCompile(`APP-(\d{10,13})`)

// Record is the per-applicant projection included in a report.
type Record struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
	Position string `json:"position"`
	Branch   string `json:"branch"`
	Date     string `json:"date"`
}

// Summary holds the headline metrics of a report.
type Summary struct {
	TotalApplications int     `json:"totalApplications"`
	NewApplications   int     `json:"newApplications"`
	InterviewCount    int     `json:"interviewCount"`
	HiredCount        int     `json:"hiredCount"`
	RejectedCount     int     `json:"rejectedCount"`
	InterviewRate     float64 `json:"interviewRate"`
	HiringRate        float64 `json:"hiringRate"`
	RejectionRate     float64 `json:"rejectionRate"`
}

// DateRange is the resolved period boundary, end exclusive.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Meta describes the period a report covers.
type Meta struct {
	ReportType ReportType   `json:"reportType"`
	Label      string       `json:"label"`
	DateRange  DateRange    `json:"dateRange"`
	Filter     PeriodFilter `json:"filter"`
}

// Report is the full payload served by the reports endpoint.
type Report struct {
	Meta            Meta           `json:"meta"`
	Summary         Summary        `json:"summary"`
	StatusBreakdown map[string]int `json:"statusBreakdown"`
	Records         []Record       `json:"records"`
}

// InferAppliedDate determines when an application was submitted. The stored
// creation timestamp wins; otherwise the millisecond timestamp embedded in
// the applicant number is used. Returns false when neither is available.
func InferAppliedDate(a *models.Applicant) (time.Time, bool) {
	if a.CreatedAt != nil && !a.CreatedAt.IsZero() {
		return a.CreatedAt.UTC(), true
	}

	match := applicantNoPattern.FindStringSubmatch(a.ApplicantNo)
	if match == nil {
		return time.Time{}, false
	}
	millis, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(millis).UTC(), true
}

// Percentage computes part/total as a percent rounded to one decimal place.
// Defined as 0 when total is 0.
func Percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}

// fallback returns s, or def when s is empty.
func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// BuildReport filters applicants to the period, buckets them by normalized
// status and computes the summary rates. Records are sorted descending by
// applicant number so repeated runs produce identical output.
func BuildReport(applicants []*models.Applicant, p Period) Report {
	breakdown := make(map[string]int, len(models.AllStatuses))
	for _, status := range models.AllStatuses {
		breakdown[string(status)] = 0
	}

	records := make([]Record, 0, len(applicants))
	for _, a := range applicants {
		appliedAt, ok := InferAppliedDate(a)
		if !ok || !p.Contains(appliedAt) {
			continue
		}

		status := models.NormalizeStatus(a.Status)
		breakdown[string(status)]++

		phone := "N/A"
		if a.ContactNumber != nil && *a.ContactNumber != "" {
			phone = *a.ContactNumber
		}

		records = append(records, Record{
			ID:       fallback(a.ApplicantNo, "N/A"),
			Name:     a.FullName(),
			Email:    fallback(a.Email, "N/A"),
			Phone:    phone,
			Status:   string(status),
			Position: fallback(a.PositionApplied, "Not specified"),
			Branch:   fallback(a.Branch, "Not specified"),
			Date:     appliedAt.Format(RecordDateLayout),
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ID > records[j].ID
	})

	total := len(records)
	summary := Summary{
		TotalApplications: total,
		NewApplications:   breakdown[string(models.StatusApplied)],
		InterviewCount:    breakdown[string(models.StatusInterview)],
		HiredCount:        breakdown[string(models.StatusHired)],
		RejectedCount:     breakdown[string(models.StatusRejected)],
	}
	summary.InterviewRate = Percentage(summary.InterviewCount, total)
	summary.HiringRate = Percentage(summary.HiredCount, total)
	summary.RejectionRate = Percentage(summary.RejectedCount, total)

	return Report{
		Meta: Meta{
			ReportType: p.ReportType,
			Label:      p.Label,
			DateRange: DateRange{
				From: p.StartDate.Format("2006-01-02"),
				To:   p.EndDate.Format("2006-01-02"),
			},
			Filter: p.Filter,
		},
		Summary:         summary,
		StatusBreakdown: breakdown,
		Records:         records,
	}
}
