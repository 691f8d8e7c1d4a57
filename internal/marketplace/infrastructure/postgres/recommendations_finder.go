package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/tbetti/solana-carbon-wallet/internal/marketplace/domain"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/database"
)

type RecommendationsFinder struct {
	querier database.Querier
}

func NewRecommendationsFinder(querier database.Querier) *RecommendationsFinder {
	return &RecommendationsFinder{
		querier: querier,
	}
}

func (rf *RecommendationsFinder) FindCheapestListings(ctx context.Context, query domain.RecommendationQuery, limit int) ([]domain.Recommendation, error) {
	var sql strings.Builder
	sql.WriteString(`SELECT ml.id, ml.price_usdc, ml.quantity_available,
		cp.project_name, cp.project_type, cp.location_country, cp.vintage_year
		FROM marketplace_listings ml
		JOIN carbon_credits cc ON ml.credit_id = cc.id
		JOIN carbon_projects cp ON cc.project_id = cp.project_id
		WHERE ml.status = 'Active' AND ml.quantity_available >= $1`)

	args := []any{query.CreditsNeeded}

	if len(query.PreferredTypes) > 0 {
		args = append(args, query.PreferredTypes)
		fmt.Fprintf(&sql, " AND cp.project_type = ANY($%d)", len(args))
	}
	if query.MaxPricePerCredit.IsPositive() {
		args = append(args, query.MaxPricePerCredit)
		fmt.Fprintf(&sql, " AND ml.price_usdc <= $%d", len(args))
	}

	args = append(args, limit)
	fmt.Fprintf(&sql, " ORDER BY ml.price_usdc ASC LIMIT $%d", len(args))

	rows, err := rf.querier.Query(ctx, sql.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recommendations: %w", err)
	}
	defer rows.Close()

	recommendations := make([]domain.Recommendation, 0, limit)
	for rows.Next() {
		var r domain.Recommendation
		err := rows.Scan(&r.ListingID, &r.PricePerCredit, &r.Available, &r.ProjectName, &r.ProjectType, &r.Country, &r.Vintage)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}

		recommendations = append(recommendations, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recommendations: %w", err)
	}

	return recommendations, nil
}
