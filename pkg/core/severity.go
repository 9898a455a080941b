package core

import "github.com/cockroachdb/errors"

// Severity is an observed impact level, S0 (catastrophic) through S3 (low).
type Severity string

const (
	SeverityS0 Severity = "S0"
	SeverityS1 Severity = "S1"
	SeverityS2 Severity = "S2"
	SeverityS3 Severity = "S3"
)

// Severities lists all levels in descending impact order.
var Severities = []Severity{SeverityS0, SeverityS1, SeverityS2, SeverityS3}

func (s Severity) Valid() bool {
	switch s {
	case SeverityS0, SeverityS1, SeverityS2, SeverityS3:
		return true
	}
	return false
}

// Rank returns 0 for S0 down to 3 for S3. Lower is worse.
func (s Severity) Rank() int {
	switch s {
	case SeverityS0:
		return 0
	case SeverityS1:
		return 1
	case SeverityS2:
		return 2
	case SeverityS3:
		return 3
	}
	return -1
}

func ParseSeverity(input string) (Severity, error) {
	s := Severity(input)
	if !s.Valid() {
		return "", errors.Wrapf(BadParameterError, "unknown severity %q", input)
	}
	return s, nil
}

// SeverityForScore maps a 0-3 dimension score onto its severity: a score of
// N indicates an S<N> finding.
func SeverityForScore(score int) Severity {
	switch score {
	case 0:
		return SeverityS0
	case 1:
		return SeverityS1
	case 2:
		return SeverityS2
	default:
		return SeverityS3
	}
}
