package postgres

import (
	"context"
	"fmt"

	"github.com/tbetti/solana-carbon-wallet/internal/marketplace/domain"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/database"
)

type HistoryRepository struct {
	querier database.Querier
}

func NewHistoryRepository(querier database.Querier) *HistoryRepository {
	return &HistoryRepository{
		querier: querier,
	}
}

func (hr *HistoryRepository) FetchPurchases(ctx context.Context, buyerWallet string) ([]domain.PurchaseEntry, error) {
	sql := `SELECT t.id, t.quantity, t.price_per_credit, t.total_amount, t.platform_fee, t.created_at,
		t.status, t.transaction_signature,
		cp.project_name, cp.project_type, cp.location_country, cp.vintage_year, cc.serial_number
		FROM transactions t
		JOIN carbon_credits cc ON t.credit_id = cc.id
		JOIN carbon_projects cp ON cc.project_id = cp.project_id
		WHERE t.buyer_wallet = $1
		ORDER BY t.created_at DESC`

	rows, err := hr.querier.Query(ctx, sql, buyerWallet)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	purchases := make([]domain.PurchaseEntry, 0)
	for rows.Next() {
		entry := domain.PurchaseEntry{Type: domain.TradeTypePurchase}
		err := rows.Scan(
			&entry.TransactionID, &entry.Quantity, &entry.PricePerCredit, &entry.TotalAmount, &entry.PlatformFee, &entry.Timestamp,
			&entry.Status, &entry.TransactionSignature,
			&entry.ProjectName, &entry.ProjectType, &entry.Country, &entry.Vintage, &entry.SerialNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}

		purchases = append(purchases, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read purchases: %w", err)
	}

	return purchases, nil
}

func (hr *HistoryRepository) FetchPurchaseTotals(ctx context.Context, buyerWallet string) (domain.PurchaseTotals, error) {
	sql := `SELECT COALESCE(SUM(quantity), 0), COALESCE(SUM(total_amount), 0)
		FROM transactions
		WHERE buyer_wallet = $1 AND status = 'Completed'`

	var totals domain.PurchaseTotals
	err := hr.querier.QueryRow(ctx, sql, buyerWallet).Scan(&totals.TotalCredits, &totals.TotalSpent)
	if err != nil {
		return domain.PurchaseTotals{}, fmt.Errorf("failed to sum purchases: %w", err)
	}

	// One retired credit offsets one tonne of CO2.
	totals.TotalCo2Offset = totals.TotalCredits

	return totals, nil
}

func (hr *HistoryRepository) FetchUserStats(ctx context.Context, buyerWallet string) (domain.UserStats, error) {
	sql := `SELECT COUNT(*), COALESCE(SUM(quantity), 0), COALESCE(SUM(total_amount), 0),
		COALESCE(ROUND(AVG(price_per_credit), 6), 0)
		FROM transactions
		WHERE buyer_wallet = $1 AND status = 'Completed'`

	var stats domain.UserStats
	err := hr.querier.QueryRow(ctx, sql, buyerWallet).Scan(
		&stats.TransactionCount, &stats.TotalCreditsPurchased, &stats.TotalSpent, &stats.AveragePricePerCredit,
	)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("failed to compute user stats: %w", err)
	}

	stats.TotalCo2Offset = stats.TotalCreditsPurchased

	return stats, nil
}
