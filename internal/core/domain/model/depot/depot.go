// Package depot provides the Depot entity, the origin of trips.
package depot

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrDepotIsNotConstructed = errors.New("Depot must be created via NewDepot constructor")

// Depot consolidates orders into trips. Its address bounds the routing area.
type Depot struct {
	id      kernel.UUID
	name    string
	address kernel.Address

	isConstructed bool
}

func NewDepot(id kernel.UUID, name string, address kernel.Address) (*Depot, error) {
	name = strings.TrimSpace(name)

	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if err := errors.Join(id.Validate(), nameErr, address.Validate()); err != nil {
		return nil, err
	}

	return &Depot{
		id:            id,
		name:          name,
		address:       address,
		isConstructed: true,
	}, nil
}

func (d *Depot) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDepotIsNotConstructed
	}
	return nil
}

func (d *Depot) ID() kernel.UUID {
	return d.id
}

func (d *Depot) Name() string {
	return d.name
}

func (d *Depot) Address() kernel.Address {
	return d.address
}
