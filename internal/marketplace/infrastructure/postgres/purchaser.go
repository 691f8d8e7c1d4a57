package postgres

import (
	"context"

	"github.com/tbetti/solana-carbon-wallet/internal/marketplace/domain"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/database"
)

type Purchaser struct {
}

func NewPurchaser() *Purchaser {
	return &Purchaser{}
}

// ProcessPurchase writes the trade, takes the quantity off the listing and
// updates both parties' totals. It must run inside the transaction that
// locked the listing.
func (p *Purchaser) ProcessPurchase(ctx context.Context, executor database.QueryExecuter, trade domain.Trade) (domain.RecordedTrade, error) {
	recorded, err := insertTrade(ctx, executor, trade)
	if err != nil {
		return domain.RecordedTrade{}, err
	}

	updateListingSQL := `UPDATE marketplace_listings
		SET quantity_available = quantity_available - $1,
			updated_at = CURRENT_TIMESTAMP,
			status = CASE WHEN quantity_available - $1 = 0 THEN 'Sold Out' ELSE 'Active' END
		WHERE id = $2`
	_, err = executor.Exec(ctx, updateListingSQL, trade.Quantity, trade.ListingID)
	if err != nil {
		return domain.RecordedTrade{}, mapWriteError(err, "update listing quantity")
	}

	upsertBuyerSQL := `INSERT INTO users (wallet_address, total_credits_purchased, total_co2_offset)
		VALUES ($1, $2, $2)
		ON CONFLICT (wallet_address) DO UPDATE SET
			total_credits_purchased = users.total_credits_purchased + EXCLUDED.total_credits_purchased,
			total_co2_offset = users.total_co2_offset + EXCLUDED.total_co2_offset,
			updated_at = CURRENT_TIMESTAMP`
	_, err = executor.Exec(ctx, upsertBuyerSQL, trade.BuyerWallet, trade.Quantity)
	if err != nil {
		return domain.RecordedTrade{}, mapWriteError(err, "update buyer totals")
	}

	upsertSellerSQL := `INSERT INTO users (wallet_address, total_credits_sold)
		VALUES ($1, $2)
		ON CONFLICT (wallet_address) DO UPDATE SET
			total_credits_sold = users.total_credits_sold + EXCLUDED.total_credits_sold,
			updated_at = CURRENT_TIMESTAMP`
	_, err = executor.Exec(ctx, upsertSellerSQL, trade.SellerWallet, trade.Quantity)
	if err != nil {
		return domain.RecordedTrade{}, mapWriteError(err, "update seller totals")
	}

	return recorded, nil
}

func insertTrade(ctx context.Context, querier database.Querier, trade domain.Trade) (domain.RecordedTrade, error) {
	insertTradeSQL := `INSERT INTO transactions (
			buyer_wallet, seller_wallet, listing_id, credit_id,
			quantity, price_per_credit, total_amount, platform_fee,
			transaction_signature, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'Completed')
		RETURNING id, created_at`

	var recorded domain.RecordedTrade
	err := querier.QueryRow(ctx, insertTradeSQL,
		trade.BuyerWallet,
		trade.SellerWallet,
		trade.ListingID,
		trade.CreditID,
		trade.Quantity,
		trade.PricePerCredit,
		trade.TotalAmount,
		trade.PlatformFee,
		trade.Signature,
	).Scan(&recorded.TransactionID, &recorded.CreatedAt)
	if err != nil {
		return domain.RecordedTrade{}, mapWriteError(err, "insert transaction record")
	}

	return recorded, nil
}
