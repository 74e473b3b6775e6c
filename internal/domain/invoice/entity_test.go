//go:build unit

package invoice_test

import (
	"testing"
	"time"

	"fleet-console/internal/domain/invoice"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoice(t *testing.T) {
	bookingID := uuid.New()
	issued := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	inv, err := invoice.NewInvoice(bookingID, 2024, 42, issued, []invoice.Line{
		{Description: "Rental 5 days", AmountCents: 600_000},
		{Description: "Fine recharge V-2024-0812", AmountCents: 18_500},
	})
	require.NoError(t, err)

	assert.Equal(t, "2024/00042", inv.Number())
	assert.Equal(t, int64(618_500), inv.TotalCents())
	assert.Equal(t, invoice.StatusIssued, inv.Status())
}

func TestNewInvoice_Validation(t *testing.T) {
	bookingID := uuid.New()
	issued := time.Now()

	_, err := invoice.NewInvoice(bookingID, 2024, 1, issued, nil)
	assert.ErrorIs(t, err, invoice.ErrNoLines)

	_, err = invoice.NewInvoice(bookingID, 2024, 1, issued, []invoice.Line{
		{Description: "  ", AmountCents: 100},
	})
	assert.ErrorIs(t, err, invoice.ErrInvalidLine)

	_, err = invoice.NewInvoice(bookingID, 2024, 1, issued, []invoice.Line{
		{Description: "Rental", AmountCents: -1},
	})
	assert.ErrorIs(t, err, invoice.ErrInvalidLine)
}

func TestInvoice_Void(t *testing.T) {
	inv, err := invoice.NewInvoice(uuid.New(), 2024, 7, time.Now(), []invoice.Line{
		{Description: "Rental", AmountCents: 100_000},
	})
	require.NoError(t, err)

	at := time.Date(2024, time.July, 3, 10, 0, 0, 0, time.UTC)
	require.NoError(t, inv.Void(at))
	assert.Equal(t, invoice.StatusVoided, inv.Status())
	require.NotNil(t, inv.VoidedAt())

	assert.ErrorIs(t, inv.Void(at), invoice.ErrAlreadyVoided)
}
