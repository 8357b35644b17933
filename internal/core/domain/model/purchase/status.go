package purchase

import (
	"fmt"

	"purchasing/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase.
// It implements a state machine with defined transitions:
//
//	Draft ──> Placed ──> Settled
//
// Draft purchases accept line changes; Placed purchases are frozen awaiting
// settlement; Settled is a final state with no further transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status when a purchase is first created.
	// Lines can be added and replaced while in this status.
	Draft

	// Placed indicates the purchase has been placed by the customer.
	// Its line collection is frozen and it awaits settlement.
	Placed

	// Settled indicates the purchase has been settled.
	// This is a final state with no further transitions allowed.
	Settled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Draft:   "Draft",
		Placed:  "Placed",
		Settled: "Settled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:   "Draft",
		Placed:  "Placed",
		Settled: "Settled",
	}
}

// Validate checks if the Status value is one of Draft, Placed, Settled.
// Unknown (0) and any other values are invalid. Used to reject status values
// arriving from external sources such as the database.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateAmend checks whether the purchase's line collection may still
// change without performing any transition. Only Draft purchases are
// amendable.
func (s Status) ValidateAmend() error {
	if s != Draft {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to amend lines", s.String()),
		)
	}
	return nil
}

// Place transitions the status to Placed.
//
// The only valid transition is Draft -> Placed; placing an already placed or
// settled purchase fails.
func (s Status) Place() (Status, error) {
	if s != Draft {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to place", s.String()),
		)
	}

	return Placed, nil
}

// Settle transitions the status to Settled.
//
// The only valid transition is Placed -> Settled. Settled is final.
func (s Status) Settle() (Status, error) {
	if s != Placed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to settle", s.String()),
		)
	}

	return Settled, nil
}
