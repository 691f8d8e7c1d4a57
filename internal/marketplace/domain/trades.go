package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/database"
)

//go:generate mockgen -source=trades.go -destination=../../../gen/mocks/marketplace/trades.go -package=mocks

// UsdcPlaces is the precision of every amount settled in USDC.
const UsdcPlaces = 6

var PlatformFeeRate = decimal.RequireFromString("0.05")

// FitsUsdcScale reports whether d is representable in a NUMERIC(20,6) column
// without rounding.
func FitsUsdcScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(UsdcPlaces))
}

type ListingLocker interface {
	LockActiveListing(ctx context.Context, querier database.Querier, listingID uuid.UUID) (LockedListing, error)
}

type Purchaser interface {
	ProcessPurchase(ctx context.Context, executor database.QueryExecuter, trade Trade) (RecordedTrade, error)
}

type PurchaseObserver interface {
	PurchaseSucceeded(receipt Receipt)
	PurchaseFailed(err error)
}

type LockedListing struct {
	ListingID         uuid.UUID
	CreditID          uuid.UUID
	SellerWallet      string
	PricePerCredit    decimal.Decimal
	QuantityAvailable decimal.Decimal
}

type PurchaseOrder struct {
	BuyerWallet string
	ListingID   uuid.UUID
	Quantity    decimal.Decimal
	// Signature of the on-chain transfer, empty when the client did not settle on chain.
	Signature string
}

type Quote struct {
	Subtotal    decimal.Decimal
	PlatformFee decimal.Decimal
	TotalCost   decimal.Decimal
}

func QuotePurchase(pricePerCredit, quantity decimal.Decimal) Quote {
	subtotal := pricePerCredit.Mul(quantity).Round(UsdcPlaces)
	fee := subtotal.Mul(PlatformFeeRate).Round(UsdcPlaces)

	return Quote{
		Subtotal:    subtotal,
		PlatformFee: fee,
		TotalCost:   subtotal.Add(fee),
	}
}

// Trade is everything the purchaser persists for one purchase.
type Trade struct {
	BuyerWallet    string
	SellerWallet   string
	ListingID      uuid.UUID
	CreditID       uuid.UUID
	Quantity       decimal.Decimal
	PricePerCredit decimal.Decimal
	TotalAmount    decimal.Decimal
	PlatformFee    decimal.Decimal
	Signature      string
}

type RecordedTrade struct {
	TransactionID uuid.UUID
	CreatedAt     time.Time
}

type Receipt struct {
	TransactionID        uuid.UUID       `json:"transactionId"`
	Quantity             decimal.Decimal `json:"quantity"`
	PricePerCredit       decimal.Decimal `json:"pricePerCredit"`
	TotalCost            decimal.Decimal `json:"totalCost"`
	PlatformFee          decimal.Decimal `json:"platformFee"`
	NetAmount            decimal.Decimal `json:"netAmount"`
	Timestamp            time.Time       `json:"timestamp"`
	TransactionSignature string          `json:"transactionSignature"`
}

func NewReceipt(trade Trade, recorded RecordedTrade) Receipt {
	return Receipt{
		TransactionID:        recorded.TransactionID,
		Quantity:             trade.Quantity,
		PricePerCredit:       trade.PricePerCredit,
		TotalCost:            trade.TotalAmount,
		PlatformFee:          trade.PlatformFee,
		NetAmount:            trade.TotalAmount.Sub(trade.PlatformFee),
		Timestamp:            recorded.CreatedAt,
		TransactionSignature: trade.Signature,
	}
}

// OffChainSignature builds the placeholder stored for purchases that were not
// settled on chain: tx_<unix millis>_<9 random chars>.
func OffChainSignature(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")

	return fmt.Sprintf("tx_%d_%s", now.UnixMilli(), random[:9])
}
