package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrDefineTripCommandIsNotConstructed = errors.New(
	"DefineTripCommand must be created via NewDefineTripCommand constructor",
)

// DefineTripCommand asks a depot to consolidate pending orders into a new
// planned trip.
//
// Example:
//
//	cmd, err := NewDefineTripCommand(depotID, []kernel.UUID{orderA, orderB})
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type DefineTripCommand struct { //nolint:recvcheck //using for validation
	depotID  kernel.UUID
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewDefineTripCommand validates the identifiers. Repeated order ids are kept once.
func NewDefineTripCommand(depotID kernel.UUID, orderIDs []kernel.UUID) (DefineTripCommand, error) {
	cmd := DefineTripCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDepotID(depotID),
		cmd.setOrderIDs(orderIDs),
	); err != nil {
		return DefineTripCommand{}, err
	}

	return cmd, nil
}

func (c DefineTripCommand) Validate() error {
	return c.guard.Validate(ErrDefineTripCommandIsNotConstructed)
}

func (c DefineTripCommand) DepotID() kernel.UUID {
	return c.depotID
}

func (c DefineTripCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

func (c *DefineTripCommand) setDepotID(depotID kernel.UUID) error {
	if err := depotID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("depotID", err)
	}
	c.depotID = depotID
	return nil
}

func (c *DefineTripCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	unique := make([]kernel.UUID, 0, len(orderIDs))
	seen := make(map[kernel.UUID]struct{}, len(orderIDs))
	for i, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("orderIDs[%d]", i), err)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("orderIDs", errors.New("no valid pending orders selected"))
	}
	c.orderIDs = unique
	return nil
}
