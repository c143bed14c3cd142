package order_test

import (
	"fmt"
	"testing"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Codes(t *testing.T) {
	testCases := []struct {
		status order.Status
		code   string
	}{
		{order.Pending, "Pend"},
		{order.Scheduled, "Sche"},
		{order.Shipped, "Ship"},
		{order.Delivered, "Deli"},
		{order.Cancelled, "Canc"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should round trip %s", tc.status), func(t *testing.T) {
			assert.Equal(t, tc.code, tc.status.Code())
			parsed, err := order.ParseStatus(tc.code)
			require.NoError(t, err)
			assert.Equal(t, tc.status, parsed)
		})
	}

	t.Run("should reject unknown code", func(t *testing.T) {
		_, err := order.ParseStatus("Lost")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
	assert.Equal(t, "Unknown", order.Status(42).String())
	require.NoError(t, order.Shipped.Validate())
}

func TestStatus_ValidateCanHaveTrip(t *testing.T) {
	testCases := []struct {
		status  order.Status
		hasTrip bool
		valid   bool
	}{
		{order.Pending, false, true},
		{order.Pending, true, false},
		{order.Scheduled, true, true},
		{order.Scheduled, false, false},
		{order.Shipped, true, true},
		{order.Shipped, false, false},
		{order.Delivered, true, true},
		{order.Cancelled, true, false},
		{order.Cancelled, false, true},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s with trip %v", tc.status, tc.hasTrip), func(t *testing.T) {
			err := tc.status.ValidateCanHaveTrip(tc.hasTrip)
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestStatus_StateMachine(t *testing.T) {
	type transition func(order.Status) (order.Status, error)
	testCases := []struct {
		name     string
		from     order.Status
		apply    transition
		expected order.Status
		ok       bool
	}{
		{"schedule pending", order.Pending, order.Status.Schedule, order.Scheduled, true},
		{"schedule shipped", order.Shipped, order.Status.Schedule, order.Unknown, false},
		{"ship scheduled", order.Scheduled, order.Status.Ship, order.Shipped, true},
		{"ship pending", order.Pending, order.Status.Ship, order.Unknown, false},
		{"deliver shipped", order.Shipped, order.Status.Deliver, order.Delivered, true},
		{"deliver delivered", order.Delivered, order.Status.Deliver, order.Delivered, true},
		{"deliver cancelled", order.Cancelled, order.Status.Deliver, order.Unknown, false},
		{"unschedule scheduled", order.Scheduled, order.Status.Unschedule, order.Pending, true},
		{"unschedule shipped", order.Shipped, order.Status.Unschedule, order.Unknown, false},
		{"cancel pending", order.Pending, order.Status.Cancel, order.Cancelled, true},
		{"cancel delivered", order.Delivered, order.Status.Cancel, order.Unknown, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.apply(tc.from)
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, errs.ErrStatus)
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}
