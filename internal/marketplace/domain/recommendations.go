package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=recommendations.go -destination=../../../gen/mocks/marketplace/recommendations.go -package=mocks

const MaxRecommendations = 5

type RecommendationsFinder interface {
	FindCheapestListings(ctx context.Context, query RecommendationQuery, limit int) ([]Recommendation, error)
}

// RecommendationQuery zero MaxPricePerCredit means no price cap.
type RecommendationQuery struct {
	CreditsNeeded     decimal.Decimal
	PreferredTypes    []string
	MaxPricePerCredit decimal.Decimal
}

type Recommendation struct {
	ListingID      uuid.UUID       `json:"listingId"`
	PricePerCredit decimal.Decimal `json:"pricePerCredit"`
	Available      decimal.Decimal `json:"available"`
	ProjectName    string          `json:"projectName"`
	ProjectType    string          `json:"projectType"`
	Country        string          `json:"country"`
	Vintage        int             `json:"vintage"`
	Quantity       decimal.Decimal `json:"quantity"`
	TotalCost      decimal.Decimal `json:"totalCost"`
}

type PurchaseRecommendation struct {
	CreditsNeeded   decimal.Decimal  `json:"creditsNeeded"`
	Recommendations []Recommendation `json:"recommendations"`
	CheapestOption  *Recommendation  `json:"cheapestOption"`
}
