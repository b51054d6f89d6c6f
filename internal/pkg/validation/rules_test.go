package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidApplicantNo(t *testing.T) {
	assert.True(t, IsValidApplicantNo("APP-1700000000000"))
	assert.True(t, IsValidApplicantNo("APP-1700000000")) // second-resolution legacy numbers
	assert.False(t, IsValidApplicantNo("APP-123"))
	assert.False(t, IsValidApplicantNo("app-1700000000000"))
	assert.False(t, IsValidApplicantNo("APP-1700000000000x"))
	assert.False(t, IsValidApplicantNo(""))
}

func TestIsValidEmployeeID(t *testing.T) {
	assert.True(t, IsValidEmployeeID("EMP-001"))
	assert.True(t, IsValidEmployeeID("EMP-12345"))
	assert.False(t, IsValidEmployeeID("EMP-01"))
	assert.False(t, IsValidEmployeeID("emp-001"))
	assert.False(t, IsValidEmployeeID("EMP001"))
}

func TestIsValidTimeSlot(t *testing.T) {
	assert.True(t, IsValidTimeSlot("00:00"))
	assert.True(t, IsValidTimeSlot("09:30"))
	assert.True(t, IsValidTimeSlot("23:59"))
	assert.False(t, IsValidTimeSlot("24:00"))
	assert.False(t, IsValidTimeSlot("9:30"))
	assert.False(t, IsValidTimeSlot("09:5"))
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2025-02-14"))
	assert.False(t, IsValidDate("2025/02/14"))
	assert.False(t, IsValidDate("14-02-2025"))
	assert.False(t, IsValidDate("2025-2-14"))
}
