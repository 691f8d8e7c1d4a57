package domain

import (
	"context"

	"github.com/google/uuid"
	carbondomain "github.com/tbetti/solana-carbon-wallet/internal/carbon/domain"
	marketdomain "github.com/tbetti/solana-carbon-wallet/internal/marketplace/domain"
)

//go:generate mockgen -source=services.go -destination=../../../gen/mocks/api/services.go -package=mocks

type EmissionsCalculator interface {
	CalculateEmissions(gpuType string, hours float64, region string) (carbondomain.Emissions, error)
	CalculateBatch(usages []carbondomain.GPUUsage, region string) (carbondomain.BatchEmissions, error)
	EstimateOffsetCost(creditsNeeded, pricePerCredit float64) (carbondomain.OffsetEstimate, error)
	AvailableGPUs() []carbondomain.GPUSpec
	AvailableRegions() []carbondomain.Region
}

type ListingsService interface {
	BrowseListings(ctx context.Context, filter marketdomain.ListingFilter) (marketdomain.ListingPage, error)
	GetListing(ctx context.Context, listingID uuid.UUID) (marketdomain.ListingDetails, error)
	CreateListing(ctx context.Context, newListing marketdomain.NewListing) (marketdomain.Listing, error)
	CancelListing(ctx context.Context, listingID uuid.UUID, sellerWallet string) (marketdomain.CancelledListing, error)
	GetSellerListings(ctx context.Context, sellerWallet string) (marketdomain.SellerListings, error)
}

type PurchaseService interface {
	PurchaseCredits(ctx context.Context, order marketdomain.PurchaseOrder) (marketdomain.Receipt, error)
}

type HistoryService interface {
	GetTransactionHistory(ctx context.Context, wallet string) (marketdomain.TransactionHistory, error)
	GetUserStats(ctx context.Context, wallet string) (marketdomain.UserStats, error)
}

type RecommendService interface {
	RecommendPurchase(ctx context.Context, query marketdomain.RecommendationQuery) (marketdomain.PurchaseRecommendation, error)
}

type AuthService interface {
	Authenticate(ctx context.Context, wallet, passphrase string) (string, error)
}
