package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrStatus              = errors.New("status does not allow operation")
	ErrCapacity            = errors.New("capacity exceeded")
	ErrBelong              = errors.New("does not belong")
	ErrRange               = errors.New("addresses out of range")
	ErrRemainingDeliveries = errors.New("deliveries remaining")
	ErrAddressResolution   = errors.New("address not found")
)

// StatusError reports an entity that is in the wrong state for the requested operation.
type StatusError struct {
	Subject string
	Reason  string
	Cause   error
}

func NewStatusError(subject, reason string) *StatusError {
	return &StatusError{
		Subject: subject,
		Reason:  reason,
	}
}

func NewStatusErrorWithCause(subject, reason string, cause error) *StatusError {
	return &StatusError{
		Subject: subject,
		Reason:  reason,
		Cause:   cause,
	}
}

func (e *StatusError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s (cause: %v)", ErrStatus, e.Subject, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", ErrStatus, e.Subject, e.Reason)
}

func (e *StatusError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrStatus, e.Cause}
	}
	return []error{ErrStatus}
}

// CapacityError reports cargo that exceeds a truck's rated capacity.
// A zero excess means that dimension fits.
type CapacityError struct {
	WeightExcessKg float64
	VolumeExcessM3 float64
}

func NewCapacityError(weightExcessKg, volumeExcessM3 float64) *CapacityError {
	return &CapacityError{
		WeightExcessKg: weightExcessKg,
		VolumeExcessM3: volumeExcessM3,
	}
}

func (e *CapacityError) Error() string {
	parts := make([]string, 0, 2)
	if e.WeightExcessKg > 0 {
		parts = append(parts, fmt.Sprintf("weight exceeds by %.2f kg", e.WeightExcessKg))
	}
	if e.VolumeExcessM3 > 0 {
		parts = append(parts, fmt.Sprintf("volume exceeds by %.2f m3", e.VolumeExcessM3))
	}
	return fmt.Sprintf("%s: %s", ErrCapacity, strings.Join(parts, ", "))
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacity
}

// BelongError reports a cross-entity ownership mismatch.
type BelongError struct {
	Subject string
	Owner   string
}

func NewBelongError(subject, owner string) *BelongError {
	return &BelongError{
		Subject: subject,
		Owner:   owner,
	}
}

func (e *BelongError) Error() string {
	return fmt.Sprintf("%s: %s does not belong to this %s", ErrBelong, e.Subject, e.Owner)
}

func (e *BelongError) Unwrap() error {
	return ErrBelong
}

// RangeError reports an address outside the area served by a route.
type RangeError struct {
	Address string
	Area    string
}

func NewRangeError(address, area string) *RangeError {
	return &RangeError{
		Address: address,
		Area:    area,
	}
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s is outside %s, all addresses must be in the same city",
		ErrRange, e.Address, e.Area)
}

func (e *RangeError) Unwrap() error {
	return ErrRange
}

// RemainingDeliveriesError lists the deliveries of a trip that are not confirmed yet.
type RemainingDeliveriesError struct {
	DeliveryIDs []string
}

func NewRemainingDeliveriesError(deliveryIDs []string) *RemainingDeliveriesError {
	return &RemainingDeliveriesError{
		DeliveryIDs: deliveryIDs,
	}
}

func (e *RemainingDeliveriesError) Error() string {
	return fmt.Sprintf("%s: %d pending (%s)",
		ErrRemainingDeliveries, len(e.DeliveryIDs), strings.Join(e.DeliveryIDs, ", "))
}

func (e *RemainingDeliveriesError) Unwrap() error {
	return ErrRemainingDeliveries
}

// AddressResolutionError reports an address the geocoder could not resolve
// after every fallback query.
type AddressResolutionError struct {
	Address string
	Cause   error
}

func NewAddressResolutionError(address string) *AddressResolutionError {
	return &AddressResolutionError{
		Address: address,
	}
}

func NewAddressResolutionErrorWithCause(address string, cause error) *AddressResolutionError {
	return &AddressResolutionError{
		Address: address,
		Cause:   cause,
	}
}

func (e *AddressResolutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrAddressResolution, e.Address, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrAddressResolution, e.Address)
}

func (e *AddressResolutionError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrAddressResolution, e.Cause}
	}
	return []error{ErrAddressResolution}
}
