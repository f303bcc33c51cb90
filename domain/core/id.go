package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	// MetricKey names one observed behavioral metric series,
	// e.g. "speech_rate_wpm" or "pause_length_ms".
	MetricKey ID
	// ReportID identifies one batch analysis report.
	ReportID ID
)

func (k MetricKey) String() string { return ID(k).String() }
func (r ReportID) String() string  { return ID(r).String() }

// ParseMetricKey parses a string into MetricKey
func ParseMetricKey(s string) (MetricKey, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("metric key cannot be empty")
	}
	return MetricKey(s), nil
}

// NewReportID creates a fresh report identifier
func NewReportID() ReportID {
	return ReportID(NewID())
}
