package finance

import (
	"testing"

	"github.com/retail/retailctl/internal/domain/shared"
	"github.com/retail/retailctl/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPayment(t *testing.T) *Payment {
	payment, err := NewPayment(1, valueobject.NewMoneyUSDFromFloat(15.0))
	require.NoError(t, err)
	return payment
}

func TestNewPayment(t *testing.T) {
	payment := createTestPayment(t)
	assert.Equal(t, PaymentStatusPending, payment.Status)
	assert.Nil(t, payment.Method)

	_, err := NewPayment(0, valueobject.NewMoneyUSDFromFloat(1))
	assert.Error(t, err)
}

func TestIsValidMethod(t *testing.T) {
	tests := []struct {
		method string
		valid  bool
	}{
		{"Cash", true},
		{"Card", true},
		{"UPI", true},
		{"cash", false},
		{"Cheque", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidMethod(tt.method))
		})
	}
}

func TestPayment_MarkPaid(t *testing.T) {
	t.Run("pending to paid", func(t *testing.T) {
		payment := createTestPayment(t)
		require.NoError(t, payment.MarkPaid("Card"))
		assert.Equal(t, PaymentStatusPaid, payment.Status)
		require.NotNil(t, payment.Method)
		assert.Equal(t, "Card", *payment.Method)
	})

	t.Run("rejects unknown method", func(t *testing.T) {
		payment := createTestPayment(t)
		err := payment.MarkPaid("Cheque")
		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "INVALID_METHOD"))
		assert.Equal(t, PaymentStatusPending, payment.Status)
	})

	t.Run("rejects double payment", func(t *testing.T) {
		payment := createTestPayment(t)
		require.NoError(t, payment.MarkPaid("Cash"))
		err := payment.MarkPaid("Cash")
		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "INVALID_STATE"))
	})
}

func TestPayment_MarkRefunded(t *testing.T) {
	t.Run("paid to refunded", func(t *testing.T) {
		payment := createTestPayment(t)
		require.NoError(t, payment.MarkPaid("UPI"))
		require.NoError(t, payment.MarkRefunded())
		assert.Equal(t, PaymentStatusRefunded, payment.Status)
	})

	t.Run("cannot refund pending payment", func(t *testing.T) {
		payment := createTestPayment(t)
		err := payment.MarkRefunded()
		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "INVALID_STATE"))
	})
}
