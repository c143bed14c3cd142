package queries

import (
	"errors"

	"logistics/internal/core/domain/model/trip"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetTripsByStatusQueryIsNotConstructed = errors.New(
		"GetTripsByStatusQuery must be created via NewGetTripsByStatusQuery constructor",
	)
)

// GetTripsByStatusQuery lists the trips in one lifecycle status.
type GetTripsByStatusQuery struct {
	status trip.Status

	guard guard.ConstructorGuard
}

// NewGetTripsByStatusQuery accepts a trip code: Plan, InTr, Comp or Canc.
// Any other code fails with a ValueIsInvalidError.
func NewGetTripsByStatusQuery(code string) (GetTripsByStatusQuery, error) {
	status, err := trip.ParseStatus(code)
	if err != nil {
		return GetTripsByStatusQuery{}, err
	}
	return GetTripsByStatusQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTripsByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetTripsByStatusQueryIsNotConstructed)
}

func (q GetTripsByStatusQuery) Status() trip.Status {
	return q.status
}
