package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Scheduled ──> Shipped ──> Delivered
//	   ^            │
//	   └────────────┘ (planned trip cancelled)
//	Pending ──> Cancelled
type Status int

const (
	Unknown Status = iota
	Pending
	Scheduled
	Shipped
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Scheduled: "Scheduled",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getStatusCodes maps valid statuses to the codes stored in the database.
func getStatusCodes() map[Status]string {
	//nolint:exhaustive // Unknown has no stored code
	return map[Status]string{
		Pending:   "Pend",
		Scheduled: "Sche",
		Shipped:   "Ship",
		Delivered: "Deli",
		Cancelled: "Canc",
	}
}

// ParseStatus converts a stored status code back to a Status.
func ParseStatus(code string) (Status, error) {
	for s, c := range getStatusCodes() {
		if c == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid order status code", code))
}

func (s Status) Validate() error {
	if _, ok := getStatusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Code returns the stored representation, or an empty string for invalid values.
func (s Status) Code() string {
	return getStatusCodes()[s]
}

func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateCanHaveTrip checks the consistency between the status and the trip link.
func (s Status) ValidateCanHaveTrip(hasTrip bool) error {
	if hasTrip && (s == Pending || s == Cancelled) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a trip", s),
		)
	}
	if !hasTrip && (s == Scheduled || s == Shipped) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no trip", s),
		)
	}
	return nil
}

// Schedule transitions Pending -> Scheduled.
func (s Status) Schedule() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewStatusError("order", fmt.Sprintf("%s order cannot be scheduled, it must be pending", s))
	}
	return Scheduled, nil
}

// Ship transitions Scheduled -> Shipped.
func (s Status) Ship() (Status, error) {
	if s != Scheduled {
		return Unknown, errs.NewStatusError("order", fmt.Sprintf("%s order cannot be shipped, it must be scheduled", s))
	}
	return Shipped, nil
}

// Deliver transitions Shipped -> Delivered. Delivered -> Delivered is accepted
// so a closing sweep can run after individual confirmations.
func (s Status) Deliver() (Status, error) {
	if s != Shipped && s != Delivered {
		return Unknown, errs.NewStatusError("order", fmt.Sprintf("%s order cannot be delivered, it must be shipped", s))
	}
	return Delivered, nil
}

// Unschedule transitions Scheduled -> Pending.
func (s Status) Unschedule() (Status, error) {
	if s != Scheduled {
		return Unknown, errs.NewStatusError("order", fmt.Sprintf("%s order cannot return to pending, it must be scheduled", s))
	}
	return Pending, nil
}

// Cancel transitions Pending -> Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewStatusError("order", fmt.Sprintf("%s order cannot be cancelled, it must be pending", s))
	}
	return Cancelled, nil
}
