package order_test

import (
	"testing"

	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_TransitionTo(t *testing.T) {
	allowed := []struct {
		from order.Status
		to   order.Status
	}{
		{order.Pending, order.Confirmed},
		{order.Pending, order.Cancelled},
		{order.Confirmed, order.Preparing},
		{order.Confirmed, order.Cancelled},
		{order.Preparing, order.Shipping},
		{order.Preparing, order.Cancelled},
		{order.Shipping, order.Delivered},
	}

	for _, tc := range allowed {
		t.Run(tc.from.String()+" to "+tc.to.String(), func(t *testing.T) {
			got, err := tc.from.TransitionTo(tc.to)

			require.NoError(t, err)
			assert.Equal(t, tc.to, got)
		})
	}

	forbidden := []struct {
		from order.Status
		to   order.Status
	}{
		{order.Pending, order.Preparing},
		{order.Pending, order.Shipping},
		{order.Pending, order.Delivered},
		{order.Confirmed, order.Shipping},
		{order.Confirmed, order.Delivered},
		{order.Preparing, order.Delivered},
		{order.Shipping, order.Cancelled},
		{order.Shipping, order.Confirmed},
		{order.Delivered, order.Cancelled},
		{order.Cancelled, order.Pending},
		{order.Cancelled, order.Confirmed},
	}

	for _, tc := range forbidden {
		t.Run(tc.from.String()+" to "+tc.to.String()+" is rejected", func(t *testing.T) {
			_, err := tc.from.TransitionTo(tc.to)

			require.ErrorIs(t, err, errs.ErrInvalidTransition)
		})
	}

	t.Run("unknown source status is rejected", func(t *testing.T) {
		_, err := order.Unknown.TransitionTo(order.Confirmed)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Shipping.IsTerminal())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round-trips every valid status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Preparing,
			order.Shipping, order.Delivered, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown string", func(t *testing.T) {
		_, err := order.StatusFromString("PAUSED")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
