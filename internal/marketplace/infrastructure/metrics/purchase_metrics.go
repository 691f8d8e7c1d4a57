package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/tbetti/solana-carbon-wallet/internal/marketplace/domain"
)

const (
	OutcomeCompleted            = "completed"
	OutcomeListingNotFound      = "listing_not_found"
	OutcomeInsufficientQuantity = "insufficient_quantity"
	OutcomeInvalidArguments     = "invalid_arguments"
	OutcomeError                = "error"
)

// PurchaseMetrics records purchase outcomes and settled volume in Prometheus.
type PurchaseMetrics struct {
	purchasesTotal *prometheus.CounterVec
	creditsTraded  prometheus.Counter
	feesCollected  prometheus.Counter
	volumeTraded   prometheus.Counter
}

func NewPurchaseMetrics(registerer prometheus.Registerer) *PurchaseMetrics {
	factory := promauto.With(registerer)

	return &PurchaseMetrics{
		purchasesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketplace_purchases_total",
				Help: "Total number of purchase attempts by outcome",
			},
			[]string{"outcome"},
		),
		creditsTraded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "marketplace_credits_traded_total",
				Help: "Carbon credits sold through completed purchases",
			},
		),
		feesCollected: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "marketplace_platform_fees_usdc_total",
				Help: "Platform fees collected in USDC",
			},
		),
		volumeTraded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "marketplace_volume_usdc_total",
				Help: "Total USDC paid by buyers including fees",
			},
		),
	}
}

func (pm *PurchaseMetrics) PurchaseSucceeded(receipt domain.Receipt) {
	pm.purchasesTotal.WithLabelValues(OutcomeCompleted).Inc()
	pm.creditsTraded.Add(receipt.Quantity.InexactFloat64())
	pm.feesCollected.Add(receipt.PlatformFee.InexactFloat64())
	pm.volumeTraded.Add(receipt.TotalCost.InexactFloat64())
}

func (pm *PurchaseMetrics) PurchaseFailed(err error) {
	pm.purchasesTotal.WithLabelValues(failureOutcome(err)).Inc()
}

func failureOutcome(err error) string {
	switch {
	case errors.Is(err, &domain.ListingNotFoundError{}):
		return OutcomeListingNotFound
	case errors.Is(err, &domain.InsufficientQuantityError{}):
		return OutcomeInsufficientQuantity
	case errors.Is(err, &domain.InvalidArgumentsError{}):
		return OutcomeInvalidArguments
	default:
		return OutcomeError
	}
}
