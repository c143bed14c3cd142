// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Orders are stored with their boxes; the store address the order ships to is
// embedded in the orders table.
package orderrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	StoreID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Destination   AddressDTO `gorm:"embedded;embeddedPrefix:destination_"`
	TotalWeightKg float64    `gorm:"not null"`
	TotalVolumeM3 float64    `gorm:"not null"`
	TotalBoxes    int        `gorm:"not null"`
	Status        string     `gorm:"type:varchar(4);not null;index"`
	TripID        *uuid.UUID `gorm:"type:uuid;index"`
	Boxes         []BoxDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is the destination address embedded in the orders table.
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

// BoxDTO is one row of the boxes table. Position keeps the order the boxes
// were packed in.
type BoxDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Position     int       `gorm:"not null"`
	Size         string    `gorm:"type:varchar(16);not null"`
	PayloadKg    float64   `gorm:"not null"`
	VolumeM3     float64   `gorm:"not null"`
	WasDelivered bool      `gorm:"not null;default:false"`
}

func (BoxDTO) TableName() string {
	return "boxes"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var tripID *uuid.UUID
	if id := aggregate.Trip(); id != nil {
		raw := id.Bytes()
		tripID = &raw
	}

	boxes := make([]BoxDTO, 0, aggregate.TotalBoxes())
	for i, b := range aggregate.Boxes() {
		boxes = append(boxes, BoxDTO{
			ID:           b.ID().Bytes(),
			OrderID:      orderID,
			Position:     i,
			Size:         string(b.Size()),
			PayloadKg:    b.PayloadKg(),
			VolumeM3:     b.VolumeM3(),
			WasDelivered: b.WasDelivered(),
		})
	}

	return OrderDTO{
		ID:            orderID,
		StoreID:       aggregate.StoreID().Bytes(),
		Destination:   addressFromDomain(aggregate.Destination()),
		TotalWeightKg: aggregate.TotalWeightKg(),
		TotalVolumeM3: aggregate.TotalVolumeM3(),
		TotalBoxes:    aggregate.TotalBoxes(),
		Status:        aggregate.Status().Code(),
		TripID:        tripID,
		Boxes:         boxes,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	var tripID *kernel.UUID
	if dto.TripID != nil {
		tID, tripErr := kernel.UUIDFromBytes((*dto.TripID)[:])
		if tripErr != nil {
			return nil, tripErr
		}
		tripID = &tID
	}

	destination, err := addressToDomain(dto.Destination)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	boxes := make([]*order.Box, 0, len(dto.Boxes))
	for _, boxDto := range dto.Boxes {
		boxID, boxErr := kernel.UUIDFromBytes(boxDto.ID[:])
		if boxErr != nil {
			return nil, boxErr
		}
		boxes = append(boxes, order.RestoreBox(
			boxID, order.Size(boxDto.Size), boxDto.PayloadKg, boxDto.VolumeM3, boxDto.WasDelivered,
		))
	}

	return order.RestoreOrder(
		id, storeID, destination, dto.TotalWeightKg, dto.TotalVolumeM3, status, tripID, boxes,
	)
}

func addressFromDomain(a kernel.Address) AddressDTO {
	return AddressDTO{
		Street:       a.Street(),
		Number:       a.Number(),
		Complement:   a.Complement(),
		Neighborhood: a.Neighborhood(),
		City:         a.City(),
		State:        a.State(),
		PostalCode:   a.PostalCode(),
		Country:      a.Country(),
	}
}

func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	return kernel.NewAddress(
		dto.Street, dto.Number, dto.Complement, dto.Neighborhood,
		dto.City, dto.State, dto.PostalCode, dto.Country,
	)
}
