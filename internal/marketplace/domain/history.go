package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=history.go -destination=../../../gen/mocks/marketplace/history.go -package=mocks

const TradeTypePurchase = "purchase"

type HistoryRepository interface {
	FetchPurchases(ctx context.Context, buyerWallet string) ([]PurchaseEntry, error)
	FetchPurchaseTotals(ctx context.Context, buyerWallet string) (PurchaseTotals, error)
	FetchUserStats(ctx context.Context, buyerWallet string) (UserStats, error)
}

type PurchaseEntry struct {
	TransactionID        uuid.UUID       `json:"transactionId"`
	Quantity             decimal.Decimal `json:"quantity"`
	PricePerCredit       decimal.Decimal `json:"pricePerCredit"`
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	PlatformFee          decimal.Decimal `json:"platformFee"`
	Timestamp            time.Time       `json:"timestamp"`
	Status               string          `json:"status"`
	TransactionSignature string          `json:"transactionSignature"`
	ProjectName          string          `json:"projectName"`
	ProjectType          string          `json:"projectType"`
	Country              string          `json:"country"`
	Vintage              int             `json:"vintage"`
	SerialNumber         string          `json:"serialNumber"`
	Type                 string          `json:"type"`
}

type PurchaseTotals struct {
	TotalCredits   decimal.Decimal `json:"totalCredits"`
	TotalSpent     decimal.Decimal `json:"totalSpent"`
	TotalCo2Offset decimal.Decimal `json:"totalCo2Offset"`
}

type TransactionHistory struct {
	Transactions []PurchaseEntry `json:"transactions"`
	Totals       PurchaseTotals  `json:"totals"`
}

type UserStats struct {
	TotalCreditsPurchased decimal.Decimal `json:"totalCreditsPurchased"`
	TotalSpent            decimal.Decimal `json:"totalSpent"`
	TotalCo2Offset        decimal.Decimal `json:"totalCo2Offset"`
	AveragePricePerCredit decimal.Decimal `json:"averagePricePerCredit"`
	TransactionCount      int             `json:"transactionCount"`
}
