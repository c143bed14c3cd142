package trip

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Planned
	InTransit
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Planned:   "Planned",
		InTransit: "InTransit",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// getStatusCodes maps valid statuses to their stored and public codes.
func getStatusCodes() map[Status]string {
	//nolint:exhaustive // Unknown has no code
	return map[Status]string{
		Planned:   "Plan",
		InTransit: "InTr",
		Completed: "Comp",
		Cancelled: "Canc",
	}
}

// ParseStatus converts a status code (Plan, InTr, Comp, Canc) to a Status.
func ParseStatus(code string) (Status, error) {
	for s, c := range getStatusCodes() {
		if c == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not one of Plan, InTr, Comp, Canc", code),
	)
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

func (s Status) Code() string {
	return getStatusCodes()[s]
}

func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Start transitions Planned -> InTransit.
func (s Status) Start() (Status, error) {
	if s != Planned {
		return Unknown, errs.NewStatusError("trip", fmt.Sprintf("%s trip cannot be started, it must be planned", s))
	}
	return InTransit, nil
}

// Complete transitions InTransit -> Completed.
func (s Status) Complete() (Status, error) {
	if s != InTransit {
		return Unknown, errs.NewStatusError("trip", fmt.Sprintf("%s trip cannot be ended, it must be in transit", s))
	}
	return Completed, nil
}

// Cancel transitions Planned -> Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Planned {
		return Unknown, errs.NewStatusError("trip", fmt.Sprintf("%s trip cannot be cancelled, it must be planned", s))
	}
	return Cancelled, nil
}
