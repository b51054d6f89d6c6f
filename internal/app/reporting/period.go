package reporting

import (
	"fmt"
	"strconv"
	"time"
)

// ReportType identifies the reporting window kind.
type ReportType string

const (
	ReportMonthly   ReportType = "monthly"
	ReportQuarterly ReportType = "quarterly"
	ReportAnnual    ReportType = "annual"
)

// PeriodRequest carries the raw query parameters of a report request.
// All fields are optional; unparseable or out-of-range values fall back to
// the current period component.
type PeriodRequest struct {
	ReportType string
	Month      string
	Quarter    string
	Year       string
}

// PeriodFilter echoes the numeric filter the period was resolved from.
type PeriodFilter struct {
	Month   *int `json:"month,omitempty"`
	Quarter *int `json:"quarter,omitempty"`
	Year    int  `json:"year"`
}

// Period is a resolved half-open reporting interval [StartDate, EndDate)
// at UTC-day granularity.
type Period struct {
	ReportType ReportType   `json:"reportType"`
	StartDate  time.Time    `json:"-"`
	EndDate    time.Time    `json:"-"`
	Label      string       `json:"label"`
	Filter     PeriodFilter `json:"filter"`
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	t = t.UTC()
	return !t.Before(p.StartDate) && t.Before(p.EndDate)
}

// intInRange parses raw and clamps to [min, max] by falling back to def on
// any parse failure or out-of-range value. Never fails.
func intInRange(raw string, min, max, def int) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v < min || v > max {
		return def
	}
	return v
}

// parseYear accepts any plausible calendar year, defaulting to the current one.
func parseYear(raw string, def int) int {
	return intInRange(raw, 1970, 9999, def)
}

// ResolvePeriod maps a report request onto a concrete date range, label and
// filter. Pure: the only time source is the now argument.
func ResolvePeriod(now time.Time, req PeriodRequest) Period {
	now = now.UTC()
	currentYear := now.Year()
	currentMonth := int(now.Month())
	currentQuarter := (currentMonth-1)/3 + 1

	year := parseYear(req.Year, currentYear)

	reportType := ReportType(req.ReportType)
	switch reportType {
	case ReportQuarterly:
		quarter := intInRange(req.Quarter, 1, 4, currentQuarter)
		startMonth := time.Month(3*(quarter-1) + 1)
		start := time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
		return Period{
			ReportType: ReportQuarterly,
			StartDate:  start,
			EndDate:    start.AddDate(0, 3, 0),
			Label:      fmt.Sprintf("Q%d %d Report", quarter, year),
			Filter:     PeriodFilter{Quarter: &quarter, Year: year},
		}

	case ReportAnnual:
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return Period{
			ReportType: ReportAnnual,
			StartDate:  start,
			EndDate:    start.AddDate(1, 0, 0),
			Label:      fmt.Sprintf("%d Annual Report", year),
			Filter:     PeriodFilter{Year: year},
		}

	default:
		// Monthly, also the fallback for unknown report types.
		month := intInRange(req.Month, 1, 12, currentMonth)
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		return Period{
			ReportType: ReportMonthly,
			StartDate:  start,
			EndDate:    start.AddDate(0, 1, 0),
			Label:      fmt.Sprintf("%s %d Report", time.Month(month).String(), year),
			Filter:     PeriodFilter{Month: &month, Year: year},
		}
	}
}
