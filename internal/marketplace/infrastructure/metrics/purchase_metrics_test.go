package metrics

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tbetti/solana-carbon-wallet/internal/marketplace/domain"
)

func TestPurchaseMetrics_PurchaseSucceeded(t *testing.T) {
	t.Parallel()

	pm := NewPurchaseMetrics(prometheus.NewRegistry())

	pm.PurchaseSucceeded(domain.Receipt{
		Quantity:    decimal.NewFromInt(10),
		TotalCost:   decimal.RequireFromString("131.25"),
		PlatformFee: decimal.RequireFromString("6.25"),
	})
	pm.PurchaseSucceeded(domain.Receipt{
		Quantity:    decimal.NewFromInt(2),
		TotalCost:   decimal.RequireFromString("26.25"),
		PlatformFee: decimal.RequireFromString("1.25"),
	})

	assert.Equal(t, float64(2), testutil.ToFloat64(pm.purchasesTotal.WithLabelValues(OutcomeCompleted)))
	assert.Equal(t, float64(12), testutil.ToFloat64(pm.creditsTraded))
	assert.Equal(t, 7.5, testutil.ToFloat64(pm.feesCollected))
	assert.Equal(t, 157.5, testutil.ToFloat64(pm.volumeTraded))
}

func TestPurchaseMetrics_PurchaseFailed(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name            string
		err             error
		expectedOutcome string
	}

	tests := []testCase{
		{name: "listing not found", err: &domain.ListingNotFoundError{Msg: "Listing not found"}, expectedOutcome: OutcomeListingNotFound},
		{name: "wrapped insufficient quantity", err: fmt.Errorf("tx: %w", &domain.InsufficientQuantityError{}), expectedOutcome: OutcomeInsufficientQuantity},
		{name: "invalid arguments", err: &domain.InvalidArgumentsError{}, expectedOutcome: OutcomeInvalidArguments},
		{name: "unexpected", err: assert.AnError, expectedOutcome: OutcomeError},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pm := NewPurchaseMetrics(prometheus.NewRegistry())
			pm.PurchaseFailed(tt.err)

			assert.Equal(t, float64(1), testutil.ToFloat64(pm.purchasesTotal.WithLabelValues(tt.expectedOutcome)))
		})
	}
}
