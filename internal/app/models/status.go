package models

import "strings"

// ApplicationStatus is the closed set of states an application moves through.
type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "Applied"
	StatusInterview ApplicationStatus = "Interview"
	StatusHired     ApplicationStatus = "Hired"
	StatusRejected  ApplicationStatus = "Rejected"
)

// AllStatuses lists every application status in display order.
var AllStatuses = []ApplicationStatus{StatusApplied, StatusInterview, StatusHired, StatusRejected}

// statusTransitions is the allowed transition table. Hired and Rejected are
// terminal; Interview is reachable only from Applied.
var statusTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusApplied:   {StatusInterview, StatusHired, StatusRejected},
	StatusInterview: {StatusHired, StatusRejected},
	StatusHired:     {},
	StatusRejected:  {},
}

// ParseStatus matches a raw string against the known statuses,
// case-insensitively. The boolean reports whether the input named a real
// status.
func ParseStatus(raw string) (ApplicationStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "applied":
		return StatusApplied, true
	case "interview":
		return StatusInterview, true
	case "hired":
		return StatusHired, true
	case "rejected":
		return StatusRejected, true
	}
	return "", false
}

// NormalizeStatus maps any stored status string onto the closed enum.
// Unknown, empty, or unset values normalize to Applied.
func NormalizeStatus(raw string) ApplicationStatus {
	if status, ok := ParseStatus(raw); ok {
		return status
	}
	return StatusApplied
}

// CanTransition reports whether an application may move from one status to
// another. Self-transitions are rejected along with everything not in the
// transition table.
func CanTransition(from, to ApplicationStatus) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status permits no further transitions.
func (s ApplicationStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}
