package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed reference time: 2025-05-15, i.e. Q2
var testNow = time.Date(2025, time.May, 15, 10, 30, 0, 0, time.UTC)

func TestResolvePeriodMonthly(t *testing.T) {
	p := ResolvePeriod(testNow, PeriodRequest{ReportType: "monthly", Month: "3", Year: "2025"})

	assert.Equal(t, ReportMonthly, p.ReportType)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), p.StartDate)
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), p.EndDate)
	assert.Equal(t, "March 2025 Report", p.Label)
	require.NotNil(t, p.Filter.Month)
	assert.Equal(t, 3, *p.Filter.Month)
	assert.Equal(t, 2025, p.Filter.Year)
}

func TestResolvePeriodQuarterly(t *testing.T) {
	p := ResolvePeriod(testNow, PeriodRequest{ReportType: "quarterly", Quarter: "4", Year: "2024"})

	assert.Equal(t, ReportQuarterly, p.ReportType)
	assert.Equal(t, time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC), p.StartDate)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), p.EndDate)
	assert.Equal(t, "Q4 2024 Report", p.Label)
	require.NotNil(t, p.Filter.Quarter)
	assert.Equal(t, 4, *p.Filter.Quarter)
}

func TestResolvePeriodQuarterStartMonths(t *testing.T) {
	wantStarts := map[string]time.Month{
		"1": time.January,
		"2": time.April,
		"3": time.July,
		"4": time.October,
	}
	for quarter, month := range wantStarts {
		p := ResolvePeriod(testNow, PeriodRequest{ReportType: "quarterly", Quarter: quarter, Year: "2025"})
		assert.Equal(t, month, p.StartDate.Month(), "quarter %s", quarter)
	}
}

func TestResolvePeriodAnnual(t *testing.T) {
	p := ResolvePeriod(testNow, PeriodRequest{ReportType: "annual", Year: "2024"})

	assert.Equal(t, ReportAnnual, p.ReportType)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), p.StartDate)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), p.EndDate)
	assert.Equal(t, "2024 Annual Report", p.Label)
	assert.Nil(t, p.Filter.Month)
	assert.Nil(t, p.Filter.Quarter)
}

func TestResolvePeriodDefaultsToCurrentMonth(t *testing.T) {
	p := ResolvePeriod(testNow, PeriodRequest{})

	assert.Equal(t, ReportMonthly, p.ReportType)
	assert.Equal(t, "May 2025 Report", p.Label)
	require.NotNil(t, p.Filter.Month)
	assert.Equal(t, 5, *p.Filter.Month)
	assert.Equal(t, 2025, p.Filter.Year)
}

func TestResolvePeriodUnknownTypeFallsBackToMonthly(t *testing.T) {
	p := ResolvePeriod(testNow, PeriodRequest{ReportType: "weekly"})
	assert.Equal(t, ReportMonthly, p.ReportType)
}

func TestResolvePeriodOutOfRangeFallsBackToCurrent(t *testing.T) {
	cases := []struct {
		name string
		req  PeriodRequest
	}{
		{"month too large", PeriodRequest{ReportType: "monthly", Month: "13"}},
		{"month zero", PeriodRequest{ReportType: "monthly", Month: "0"}},
		{"month garbage", PeriodRequest{ReportType: "monthly", Month: "abc"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := ResolvePeriod(testNow, tc.req)
			require.NotNil(t, p.Filter.Month)
			assert.Equal(t, int(testNow.Month()), *p.Filter.Month)
		})
	}

	q := ResolvePeriod(testNow, PeriodRequest{ReportType: "quarterly", Quarter: "7"})
	require.NotNil(t, q.Filter.Quarter)
	assert.Equal(t, 2, *q.Filter.Quarter) // May is Q2

	y := ResolvePeriod(testNow, PeriodRequest{ReportType: "annual", Year: "not-a-year"})
	assert.Equal(t, 2025, y.Filter.Year)
}

func TestPeriodContainsIsHalfOpen(t *testing.T) {
	p := ResolvePeriod(testNow, PeriodRequest{ReportType: "monthly", Month: "3", Year: "2025"})

	assert.True(t, p.Contains(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2025, time.February, 28, 23, 59, 59, 0, time.UTC)))
}
