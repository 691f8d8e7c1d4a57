package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tbetti/solana-carbon-wallet/internal/marketplace/domain"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/database"
)

type ListingsCase struct {
	listingsRepository domain.ListingsRepository
	creditsRepository  domain.CreditsRepository
	txManager          database.TxManager
}

func NewListingsCase(
	listingsRepository domain.ListingsRepository,
	creditsRepository domain.CreditsRepository,
	txManager database.TxManager,
) *ListingsCase {
	return &ListingsCase{
		listingsRepository: listingsRepository,
		creditsRepository:  creditsRepository,
		txManager:          txManager,
	}
}

func (lc *ListingsCase) BrowseListings(ctx context.Context, filter domain.ListingFilter) (domain.ListingPage, error) {
	if filter.MinPrice.IsNegative() || filter.MaxPrice.IsNegative() || filter.MinQuantity.IsNegative() {
		return domain.ListingPage{}, &domain.InvalidArgumentsError{Msg: "filters must not be negative"}
	}

	listings, err := lc.listingsRepository.BrowseListings(ctx, filter.Normalized())
	if err != nil {
		return domain.ListingPage{}, err
	}

	return domain.ListingPage{
		Listings: listings,
		Total:    len(listings),
	}, nil
}

func (lc *ListingsCase) GetListing(ctx context.Context, listingID uuid.UUID) (domain.ListingDetails, error) {
	return lc.listingsRepository.GetListing(ctx, listingID)
}

func (lc *ListingsCase) CreateListing(ctx context.Context, newListing domain.NewListing) (domain.Listing, error) {
	if !newListing.Quantity.IsPositive() || !newListing.PricePerCredit.IsPositive() {
		return domain.Listing{}, &domain.InvalidArgumentsError{Msg: "quantity and pricePerCredit must be greater than 0"}
	}
	if !domain.FitsUsdcScale(newListing.Quantity) || !domain.FitsUsdcScale(newListing.PricePerCredit) {
		return domain.Listing{}, &domain.InvalidArgumentsError{Msg: fmt.Sprintf(
			"quantity and pricePerCredit must have at most %d decimal places", domain.UsdcPlaces,
		)}
	}

	var listing domain.Listing

	err := lc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		credit, err := lc.creditsRepository.LockCredit(ctx, executor, newListing.CreditID)
		if err != nil {
			return err
		}

		if newListing.Quantity.GreaterThan(credit.Quantity) {
			return &domain.InsufficientQuantityError{Msg: fmt.Sprintf(
				"Cannot list %s credits. Only %s available.",
				newListing.Quantity.String(), credit.Quantity.String(),
			)}
		}

		listing, err = lc.listingsRepository.CreateListing(ctx, executor, newListing)
		if err != nil {
			return err
		}

		return lc.creditsRepository.MarkCreditListed(ctx, executor, newListing.CreditID, newListing.SellerWallet)
	})
	if err != nil {
		return domain.Listing{}, err
	}

	return listing, nil
}

func (lc *ListingsCase) CancelListing(ctx context.Context, listingID uuid.UUID, sellerWallet string) (domain.CancelledListing, error) {
	return lc.listingsRepository.CancelListing(ctx, listingID, sellerWallet)
}

func (lc *ListingsCase) GetSellerListings(ctx context.Context, sellerWallet string) (domain.SellerListings, error) {
	listings, err := lc.listingsRepository.GetSellerListings(ctx, sellerWallet)
	if err != nil {
		return domain.SellerListings{}, err
	}

	return domain.GroupSellerListings(listings), nil
}
