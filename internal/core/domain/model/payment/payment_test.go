package payment_test

import (
	"strings"
	"testing"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/payment"
	"fastfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingPayment(t *testing.T, now time.Time) *payment.Payment {
	t.Helper()

	orderID := kernel.NewUUID()
	p, err := payment.NewPayment(
		kernel.NewUUID(), orderID, 160000, "VNPAY",
		payment.NewTxnRef(orderID, now), now)
	require.NoError(t, err)
	return p
}

func TestNewPayment(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates pending attempt", func(t *testing.T) {
		p := newPendingPayment(t, now)

		assert.Equal(t, payment.Pending, p.Status())
		assert.True(t, p.IsPending())
		assert.Equal(t, int64(160000), p.Amount())
		assert.Empty(t, p.AuthorizationURL())
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := payment.NewPayment(
			kernel.NewUUID(), kernel.NewUUID(), 0, "VNPAY", "ref", now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects blank txnRef", func(t *testing.T) {
		_, err := payment.NewPayment(
			kernel.NewUUID(), kernel.NewUUID(), 160000, "VNPAY", "  ", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewTxnRef(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	orderID := kernel.NewUUID()

	t.Run("embeds the order id", func(t *testing.T) {
		ref := payment.NewTxnRef(orderID, now)

		assert.True(t, strings.HasPrefix(ref, orderID.String()+"-"))
	})

	t.Run("two refs for the same instant differ", func(t *testing.T) {
		seen := map[string]bool{}
		for range 20 {
			seen[payment.NewTxnRef(orderID, now)] = true
		}
		assert.Greater(t, len(seen), 1)
	})
}

func TestPayment_AttachAuthorizationURL(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("attaches to pending payment", func(t *testing.T) {
		p := newPendingPayment(t, now)

		err := p.AttachAuthorizationURL("https://pay.example.com/redirect?x=1", now)

		require.NoError(t, err)
		assert.Equal(t, "https://pay.example.com/redirect?x=1", p.AuthorizationURL())
	})

	t.Run("rejects blank URL", func(t *testing.T) {
		p := newPendingPayment(t, now)

		err := p.AttachAuthorizationURL("", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejected on resolved payment", func(t *testing.T) {
		p := newPendingPayment(t, now)
		require.NoError(t, p.Resolve(false, 0, payment.GatewayResult{}, now))

		err := p.AttachAuthorizationURL("https://pay.example.com", now)

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestPayment_Resolve(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	result := payment.GatewayResult{
		TransactionNo: "14422574",
		BankCode:      "NCB",
		ResponseCode:  "00",
		PayDate:       "20250601190000",
	}

	t.Run("success with matching amount", func(t *testing.T) {
		p := newPendingPayment(t, now)

		err := p.Resolve(true, 160000, result, now)

		require.NoError(t, err)
		assert.Equal(t, payment.Success, p.Status())
		assert.Equal(t, result, p.Gateway())
	})

	t.Run("amount mismatch forces failure", func(t *testing.T) {
		p := newPendingPayment(t, now)

		err := p.Resolve(true, 150000, result, now)

		require.NoError(t, err)
		assert.Equal(t, payment.Failed, p.Status())
	})

	t.Run("gateway failure", func(t *testing.T) {
		p := newPendingPayment(t, now)

		err := p.Resolve(false, 160000, payment.GatewayResult{ResponseCode: "24"}, now)

		require.NoError(t, err)
		assert.Equal(t, payment.Failed, p.Status())
	})

	t.Run("terminal payment cannot be resolved again", func(t *testing.T) {
		p := newPendingPayment(t, now)
		require.NoError(t, p.Resolve(true, 160000, result, now))

		err := p.Resolve(false, 160000, result, now)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, payment.Success, p.Status())
	})
}

func TestPayment_Supersede(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("fails a pending attempt", func(t *testing.T) {
		p := newPendingPayment(t, now)

		require.NoError(t, p.Supersede(now))

		assert.Equal(t, payment.Failed, p.Status())
	})

	t.Run("rejected on terminal attempt", func(t *testing.T) {
		p := newPendingPayment(t, now)
		require.NoError(t, p.Resolve(true, 160000, payment.GatewayResult{}, now))

		require.ErrorIs(t, p.Supersede(now), errs.ErrInvalidState)
	})
}

func TestStatusFromString(t *testing.T) {
	for _, s := range []payment.Status{payment.Pending, payment.Success, payment.Failed} {
		parsed, err := payment.StatusFromString(s.String())

		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := payment.StatusFromString("REFUNDED")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
