package domain_test

import (
	"testing"
	"time"

	"github.com/ledger-ar/company_transfers_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransfer_SetAmount(t *testing.T) {
	tests := []struct {
		name    string
		in      decimal.Decimal
		want    string
		wantErr bool
	}{
		{
			name: "plain positive amount",
			in:   decimal.NewFromFloat(25000.50),
			want: "25000.5",
		},
		{
			name: "rounds half-up to two decimals",
			in:   decimal.NewFromFloat(10.005),
			want: "10.01",
		},
		{
			name: "truncates extra precision",
			in:   decimal.NewFromFloat(99.994),
			want: "99.99",
		},
		{
			name:    "zero is rejected",
			in:      decimal.Zero,
			wantErr: true,
		},
		{
			name:    "negative is rejected",
			in:      decimal.NewFromFloat(-5),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr domain.Transfer
			err := tr.SetAmount(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrNonPositiveAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tr.Amount.String())
		})
	}
}

func TestTransfer_AccountNormalization(t *testing.T) {
	var tr domain.Transfer
	tr.SetDebitAccount("1234-5678-90")
	tr.SetCreditAccount("09.87654321")

	assert.Equal(t, "1234567890", tr.DebitAccount)
	assert.Equal(t, "0987654321", tr.CreditAccount)
}

func TestTransfer_Validate_SameAccountsRejected(t *testing.T) {
	var tr domain.Transfer
	require.NoError(t, tr.SetAmount(decimal.NewFromInt(100)))

	// Different raw forms that normalize to the same digit string.
	tr.SetDebitAccount("1234-5678-90")
	tr.SetCreditAccount("12.34.56.78.90")

	assert.ErrorIs(t, tr.Validate(), domain.ErrSameAccounts)

	tr.SetCreditAccount("0987654321")
	assert.NoError(t, tr.Validate())
}

func TestTransfer_SetStatus_StampsProcessedDateOnce(t *testing.T) {
	var tr domain.Transfer
	first := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	tr.SetStatus(domain.StatusCompleted, first)
	require.NotNil(t, tr.ProcessedDate)
	assert.Equal(t, first, *tr.ProcessedDate)

	// A second transition into a processed state must not re-stamp.
	tr.SetStatus(domain.StatusCompleted, second)
	assert.Equal(t, first, *tr.ProcessedDate)

	tr.SetStatus(domain.StatusFailed, second)
	assert.Equal(t, first, *tr.ProcessedDate)
}

func TestTransfer_SetStatus_ReversedHasNoSideEffects(t *testing.T) {
	var tr domain.Transfer
	tr.SetStatus(domain.StatusReversed, time.Now())
	assert.Nil(t, tr.ProcessedDate)
	assert.Equal(t, domain.StatusReversed, tr.Status)
}

func TestTransfer_SetStatus_AllTransitionsPermitted(t *testing.T) {
	// Moving away from a terminal state back to PENDING is an administrative
	// correction and stays legal; the processed date survives it.
	var tr domain.Transfer
	now := time.Now()
	tr.SetStatus(domain.StatusCompleted, now)
	tr.SetStatus(domain.StatusPending, now)

	assert.Equal(t, domain.StatusPending, tr.Status)
	assert.NotNil(t, tr.ProcessedDate)
}

func TestTransfer_SetCurrency_Default(t *testing.T) {
	var tr domain.Transfer
	tr.SetCurrency("")
	assert.Equal(t, "ARS", tr.Currency)

	tr.SetCurrency("USD")
	assert.Equal(t, "USD", tr.Currency)
}
