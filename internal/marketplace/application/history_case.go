package application

import (
	"context"

	"github.com/tbetti/solana-carbon-wallet/internal/marketplace/domain"
	"golang.org/x/sync/errgroup"
)

type HistoryCase struct {
	historyRepository domain.HistoryRepository
}

func NewHistoryCase(historyRepository domain.HistoryRepository) *HistoryCase {
	return &HistoryCase{
		historyRepository: historyRepository,
	}
}

func (hc *HistoryCase) GetTransactionHistory(ctx context.Context, wallet string) (domain.TransactionHistory, error) {
	var (
		purchases []domain.PurchaseEntry
		totals    domain.PurchaseTotals
	)

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		purchases, err = hc.historyRepository.FetchPurchases(egCtx, wallet)
		return err
	})

	eg.Go(func() error {
		var err error
		totals, err = hc.historyRepository.FetchPurchaseTotals(egCtx, wallet)
		return err
	})

	if err := eg.Wait(); err != nil {
		return domain.TransactionHistory{}, err
	}

	if purchases == nil {
		purchases = make([]domain.PurchaseEntry, 0)
	}

	return domain.TransactionHistory{
		Transactions: purchases,
		Totals:       totals,
	}, nil
}

func (hc *HistoryCase) GetUserStats(ctx context.Context, wallet string) (domain.UserStats, error) {
	return hc.historyRepository.FetchUserStats(ctx, wallet)
}
