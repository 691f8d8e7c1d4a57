package application

import (
	"context"
	"fmt"
	"time"

	"github.com/tbetti/solana-carbon-wallet/internal/marketplace/domain"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/database"
)

type PurchaseCase struct {
	listingLocker domain.ListingLocker
	purchaser     domain.Purchaser
	txManager     database.TxManager
	observer      domain.PurchaseObserver
	now           func() time.Time
}

func NewPurchaseCase(
	listingLocker domain.ListingLocker,
	purchaser domain.Purchaser,
	txManager database.TxManager,
	observer domain.PurchaseObserver,
) *PurchaseCase {
	return &PurchaseCase{
		listingLocker: listingLocker,
		purchaser:     purchaser,
		txManager:     txManager,
		observer:      observer,
		now:           time.Now,
	}
}

// PurchaseCredits locks the listing, checks it still holds the requested
// quantity and records the trade, all inside one transaction.
func (pc *PurchaseCase) PurchaseCredits(ctx context.Context, order domain.PurchaseOrder) (domain.Receipt, error) {
	receipt, err := pc.purchase(ctx, order)
	if err != nil {
		pc.observer.PurchaseFailed(err)
		return domain.Receipt{}, err
	}

	pc.observer.PurchaseSucceeded(receipt)
	return receipt, nil
}

func (pc *PurchaseCase) purchase(ctx context.Context, order domain.PurchaseOrder) (domain.Receipt, error) {
	if !order.Quantity.IsPositive() {
		return domain.Receipt{}, &domain.InvalidArgumentsError{Msg: "quantity must be greater than 0"}
	}
	if !domain.FitsUsdcScale(order.Quantity) {
		return domain.Receipt{}, &domain.InvalidArgumentsError{Msg: fmt.Sprintf(
			"quantity must have at most %d decimal places", domain.UsdcPlaces,
		)}
	}

	var receipt domain.Receipt

	err := pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		listing, err := pc.listingLocker.LockActiveListing(ctx, executor, order.ListingID)
		if err != nil {
			return err
		}

		if listing.QuantityAvailable.LessThan(order.Quantity) {
			return &domain.InsufficientQuantityError{Msg: fmt.Sprintf(
				"Insufficient quantity available: requested %s, available %s",
				order.Quantity.String(), listing.QuantityAvailable.String(),
			)}
		}

		if listing.SellerWallet == order.BuyerWallet {
			return &domain.InvalidArgumentsError{Msg: "buyer cannot purchase their own listing"}
		}

		quote := domain.QuotePurchase(listing.PricePerCredit, order.Quantity)

		signature := order.Signature
		if signature == "" {
			signature = domain.OffChainSignature(pc.now())
		}

		trade := domain.Trade{
			BuyerWallet:    order.BuyerWallet,
			SellerWallet:   listing.SellerWallet,
			ListingID:      listing.ListingID,
			CreditID:       listing.CreditID,
			Quantity:       order.Quantity,
			PricePerCredit: listing.PricePerCredit,
			TotalAmount:    quote.TotalCost,
			PlatformFee:    quote.PlatformFee,
			Signature:      signature,
		}

		recorded, err := pc.purchaser.ProcessPurchase(ctx, executor, trade)
		if err != nil {
			return err
		}

		receipt = domain.NewReceipt(trade, recorded)
		return nil
	})
	if err != nil {
		return domain.Receipt{}, err
	}

	return receipt, nil
}
