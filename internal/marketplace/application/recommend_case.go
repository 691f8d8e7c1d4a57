package application

import (
	"context"

	"github.com/tbetti/solana-carbon-wallet/internal/marketplace/domain"
)

type RecommendCase struct {
	recommendationsFinder domain.RecommendationsFinder
}

func NewRecommendCase(recommendationsFinder domain.RecommendationsFinder) *RecommendCase {
	return &RecommendCase{
		recommendationsFinder: recommendationsFinder,
	}
}

func (rc *RecommendCase) RecommendPurchase(ctx context.Context, query domain.RecommendationQuery) (domain.PurchaseRecommendation, error) {
	if !query.CreditsNeeded.IsPositive() {
		return domain.PurchaseRecommendation{}, &domain.InvalidArgumentsError{Msg: "creditsNeeded must be greater than 0"}
	}
	if query.MaxPricePerCredit.IsNegative() {
		return domain.PurchaseRecommendation{}, &domain.InvalidArgumentsError{Msg: "maxPricePerCredit must not be negative"}
	}

	found, err := rc.recommendationsFinder.FindCheapestListings(ctx, query, domain.MaxRecommendations)
	if err != nil {
		return domain.PurchaseRecommendation{}, err
	}

	recommendations := make([]domain.Recommendation, 0, len(found))
	for _, r := range found {
		r.Quantity = query.CreditsNeeded
		r.TotalCost = r.PricePerCredit.Mul(query.CreditsNeeded).Round(domain.UsdcPlaces)
		recommendations = append(recommendations, r)
	}

	result := domain.PurchaseRecommendation{
		CreditsNeeded:   query.CreditsNeeded,
		Recommendations: recommendations,
	}
	if len(recommendations) > 0 {
		cheapest := recommendations[0]
		result.CheapestOption = &cheapest
	}

	return result, nil
}
