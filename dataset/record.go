package dataset

import "fmt"

// Outcome is the binary result of a launch attempt.
type Outcome int

const (
	Failure Outcome = 0
	Success Outcome = 1
)

// String returns "success" or "failure".
func (o Outcome) String() string {
	if o == Success {
		return "success"
	}
	return "failure"
}

// Class returns the numeric class value (1 success, 0 failure) used as a plot coordinate.
func (o Outcome) Class() float64 {
	if o == Success {
		return 1
	}
	return 0
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// ParseOutcome converts a class value to an Outcome.
// Accepts 0 and 1 in any float notation ("1", "1.0").
func ParseOutcome(v float64) (Outcome, error) {
	switch v {
	case 1:
		return Success, nil
	case 0:
		return Failure, nil
	default:
		return Failure, fmt.Errorf("class must be 0 or 1, got %v", v)
	}
}

// Record is one launch attempt. Records are immutable once loaded.
type Record struct {
	Site           string  `json:"site"`
	PayloadMass    float64 `json:"payloadMass"`
	Outcome        Outcome `json:"outcome"`
	BoosterVersion string  `json:"boosterVersion"`
}
