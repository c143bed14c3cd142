package order

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrBoxIsNotConstructed = errors.New("Box must be created via NewBox or NewCustomBox constructor")

// Size is a standard box preset. Custom boxes carry their own dimensions.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeBig    Size = "big"
	SizeLarge  Size = "large"
	SizeCustom Size = "custom"
)

type sizePreset struct {
	lengthM, widthM, heightM float64
	payloadKg                float64
}

func getSizePresets() map[Size]sizePreset {
	return map[Size]sizePreset{
		SizeSmall:  {lengthM: 0.4, widthM: 0.3, heightM: 0.2, payloadKg: 5},
		SizeMedium: {lengthM: 0.6, widthM: 0.4, heightM: 0.4, payloadKg: 15},
		SizeBig:    {lengthM: 0.8, widthM: 0.6, heightM: 0.6, payloadKg: 25},
		SizeLarge:  {lengthM: 1.2, widthM: 0.8, heightM: 0.8, payloadKg: 35},
	}
}

// Box is one unit of cargo inside an order.
type Box struct {
	id           kernel.UUID
	size         Size
	payloadKg    float64
	volumeM3     float64
	wasDelivered bool

	isConstructed bool
}

// NewBox creates a box from a standard size preset.
func NewBox(id kernel.UUID, size Size) (*Box, error) {
	preset, ok := getSizePresets()[size]
	if !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%q is not a standard box size", size))
	}
	return newBox(id, size, preset.lengthM*preset.widthM*preset.heightM, preset.payloadKg)
}

// NewCustomBox creates a box with explicit dimensions in meters.
func NewCustomBox(id kernel.UUID, lengthM, widthM, heightM, payloadKg float64) (*Box, error) {
	if lengthM <= 0 || widthM <= 0 || heightM <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"dimensions",
			fmt.Errorf("%.2fx%.2fx%.2f must all be greater than 0", lengthM, widthM, heightM),
		)
	}
	return newBox(id, SizeCustom, lengthM*widthM*heightM, payloadKg)
}

// RestoreBox rebuilds a box read from storage.
func RestoreBox(id kernel.UUID, size Size, payloadKg, volumeM3 float64, wasDelivered bool) *Box {
	return &Box{
		id:            id,
		size:          size,
		payloadKg:     payloadKg,
		volumeM3:      volumeM3,
		wasDelivered:  wasDelivered,
		isConstructed: true,
	}
}

func newBox(id kernel.UUID, size Size, volumeM3, payloadKg float64) (*Box, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if payloadKg <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("payload is invalid", fmt.Errorf("%.2f is not greater than 0", payloadKg))
	}
	return &Box{
		id:            id,
		size:          size,
		payloadKg:     payloadKg,
		volumeM3:      volumeM3,
		isConstructed: true,
	}, nil
}

func (b *Box) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBoxIsNotConstructed
	}
	return nil
}

func (b *Box) ID() kernel.UUID { return b.id }
func (b *Box) Size() Size { return b.size }
func (b *Box) PayloadKg() float64 { return b.payloadKg }
func (b *Box) VolumeM3() float64 { return b.volumeM3 }
func (b *Box) WasDelivered() bool { return b.wasDelivered }
func (b *Box) markDelivered() { b.wasDelivered = true }
