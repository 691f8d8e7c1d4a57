package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/database"
)

//go:generate mockgen -source=listings.go -destination=../../../gen/mocks/marketplace/listings.go -package=mocks

type ListingStatus string

const (
	StatusActive    ListingStatus = "Active"
	StatusSoldOut   ListingStatus = "Sold Out"
	StatusCancelled ListingStatus = "Cancelled"
	StatusCompleted ListingStatus = "Completed"
)

type ListingSort string

const (
	SortPriceAsc     ListingSort = "price_asc"
	SortPriceDesc    ListingSort = "price_desc"
	SortQuantityAsc  ListingSort = "quantity_asc"
	SortQuantityDesc ListingSort = "quantity_desc"
)

const (
	DefaultListingsLimit = 50
	MaxListingsLimit     = 200
)

type ListingsRepository interface {
	BrowseListings(ctx context.Context, filter ListingFilter) ([]ListingSummary, error)
	GetListing(ctx context.Context, listingID uuid.UUID) (ListingDetails, error)
	GetSellerListings(ctx context.Context, sellerWallet string) ([]SellerListing, error)
	CancelListing(ctx context.Context, listingID uuid.UUID, sellerWallet string) (CancelledListing, error)
	CreateListing(ctx context.Context, executor database.QueryExecuter, listing NewListing) (Listing, error)
}

type CreditsRepository interface {
	LockCredit(ctx context.Context, querier database.Querier, creditID uuid.UUID) (Credit, error)
	MarkCreditListed(ctx context.Context, executor database.Executor, creditID uuid.UUID, ownerWallet string) error
}

// ListingFilter zero values mean "no filter".
type ListingFilter struct {
	ProjectType string
	MinPrice    decimal.Decimal
	MaxPrice    decimal.Decimal
	MinQuantity decimal.Decimal
	SortBy      ListingSort
	Limit       int
}

func (f ListingFilter) Normalized() ListingFilter {
	switch f.SortBy {
	case SortPriceAsc, SortPriceDesc, SortQuantityAsc, SortQuantityDesc:
	default:
		f.SortBy = SortPriceAsc
	}

	if f.Limit <= 0 {
		f.Limit = DefaultListingsLimit
	}
	if f.Limit > MaxListingsLimit {
		f.Limit = MaxListingsLimit
	}

	return f
}

type ListingSummary struct {
	ListingID         uuid.UUID       `json:"listingId"`
	PricePerCredit    decimal.Decimal `json:"pricePerCredit"`
	QuantityAvailable decimal.Decimal `json:"quantityAvailable"`
	SellerWallet      string          `json:"sellerWallet"`
	Status            ListingStatus   `json:"status"`
	ProjectName       string          `json:"projectName"`
	ProjectType       string          `json:"projectType"`
	Vintage           int             `json:"vintage"`
	Country           string          `json:"country"`
	Region            string          `json:"region"`
	SerialNumber      string          `json:"serialNumber"`
}

type ListingPage struct {
	Listings []ListingSummary `json:"listings"`
	Total    int              `json:"total"`
}

type ListingDetails struct {
	ListingSummary
	ListedAt            time.Time       `json:"listedAt"`
	ProjectID           string          `json:"projectId"`
	CoBenefits          []string        `json:"coBenefits"`
	ProjectDescription  string          `json:"projectDescription"`
	RegistryType        string          `json:"registryType"`
	Methodology         string          `json:"methodology"`
	TotalCreditsIssued  decimal.Decimal `json:"totalCreditsIssued"`
	VerificationDate    *time.Time      `json:"verificationDate"`
	CreditID            uuid.UUID       `json:"creditId"`
	TotalCreditQuantity decimal.Decimal `json:"totalCreditQuantity"`
}

type NewListing struct {
	SellerWallet   string
	CreditID       uuid.UUID
	Quantity       decimal.Decimal
	PricePerCredit decimal.Decimal
}

type Listing struct {
	ListingID         uuid.UUID       `json:"listingId"`
	CreditID          uuid.UUID       `json:"creditId"`
	SellerWallet      string          `json:"sellerWallet"`
	PricePerCredit    decimal.Decimal `json:"pricePerCredit"`
	QuantityAvailable decimal.Decimal `json:"quantityAvailable"`
	Status            ListingStatus   `json:"status"`
	ListedAt          time.Time       `json:"listedAt"`
}

type CancelledListing struct {
	ListingID   uuid.UUID     `json:"listingId"`
	Status      ListingStatus `json:"status"`
	CancelledAt time.Time     `json:"cancelledAt"`
}

type Credit struct {
	ID       uuid.UUID
	Quantity decimal.Decimal
}

type SellerListing struct {
	ListingID         uuid.UUID       `json:"listingId"`
	PricePerCredit    decimal.Decimal `json:"pricePerCredit"`
	QuantityAvailable decimal.Decimal `json:"quantityAvailable"`
	Status            ListingStatus   `json:"status"`
	ListedAt          time.Time       `json:"listedAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
	ProjectName       string          `json:"projectName"`
	ProjectType       string          `json:"projectType"`
	Vintage           int             `json:"vintage"`
}

type SellerListings struct {
	ActiveListings    []SellerListing `json:"activeListings"`
	CompletedListings []SellerListing `json:"completedListings"`
	CancelledListings []SellerListing `json:"cancelledListings"`
}

// GroupSellerListings keeps the input order inside each group. Sold out
// listings count as completed.
func GroupSellerListings(listings []SellerListing) SellerListings {
	grouped := SellerListings{
		ActiveListings:    make([]SellerListing, 0),
		CompletedListings: make([]SellerListing, 0),
		CancelledListings: make([]SellerListing, 0),
	}

	for _, listing := range listings {
		switch listing.Status {
		case StatusActive:
			grouped.ActiveListings = append(grouped.ActiveListings, listing)
		case StatusCompleted, StatusSoldOut:
			grouped.CompletedListings = append(grouped.CompletedListings, listing)
		case StatusCancelled:
			grouped.CancelledListings = append(grouped.CancelledListings, listing)
		}
	}

	return grouped
}
