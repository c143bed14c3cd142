// Package depotrepo persists depots, the origins of every trip.
package depotrepo

import (
	"logistics/internal/core/domain/model/depot"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DepotDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string     `gorm:"type:varchar(255);not null"`
	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
}

func (DepotDTO) TableName() string {
	return "depots"
}

// AddressDTO is the depot address embedded in the depots table.
type AddressDTO struct {
	Street       string `gorm:"type:varchar(255);not null"`
	Number       string `gorm:"type:varchar(32)"`
	Complement   string `gorm:"type:varchar(255)"`
	Neighborhood string `gorm:"type:varchar(255)"`
	City         string `gorm:"type:varchar(255);not null"`
	State        string `gorm:"type:varchar(64);not null"`
	PostalCode   string `gorm:"type:varchar(16)"`
	Country      string `gorm:"type:varchar(64);not null"`
}

func fromDomain(aggregate *depot.Depot) DepotDTO {
	a := aggregate.Address()
	return DepotDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
		Address: AddressDTO{
			Street:       a.Street(),
			Number:       a.Number(),
			Complement:   a.Complement(),
			Neighborhood: a.Neighborhood(),
			City:         a.City(),
			State:        a.State(),
			PostalCode:   a.PostalCode(),
			Country:      a.Country(),
		},
	}
}

func toDomain(dto DepotDTO) (*depot.Depot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(
		dto.Address.Street, dto.Address.Number, dto.Address.Complement, dto.Address.Neighborhood,
		dto.Address.City, dto.Address.State, dto.Address.PostalCode, dto.Address.Country,
	)
	if err != nil {
		return nil, err
	}

	return depot.NewDepot(id, dto.Name, address)
}
