package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tbetti/solana-carbon-wallet/internal/marketplace/domain"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/database"
)

type ListingLocker struct {
}

func NewListingLocker() *ListingLocker {
	return &ListingLocker{}
}

func (ll *ListingLocker) LockActiveListing(ctx context.Context, querier database.Querier, listingID uuid.UUID) (domain.LockedListing, error) {
	lockListingSQL := `SELECT ml.id, cc.id, ml.seller_wallet, ml.price_usdc, ml.quantity_available
		FROM marketplace_listings ml
		JOIN carbon_credits cc ON ml.credit_id = cc.id
		WHERE ml.id = $1 AND ml.status = 'Active'
		FOR UPDATE OF ml`

	var listing domain.LockedListing
	err := querier.QueryRow(ctx, lockListingSQL, listingID).Scan(
		&listing.ListingID,
		&listing.CreditID,
		&listing.SellerWallet,
		&listing.PricePerCredit,
		&listing.QuantityAvailable,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.LockedListing{}, &domain.ListingNotFoundError{Msg: "Listing not found"}
		}

		return domain.LockedListing{}, fmt.Errorf("failed to lock listing row: %w", err)
	}

	return listing, nil
}
