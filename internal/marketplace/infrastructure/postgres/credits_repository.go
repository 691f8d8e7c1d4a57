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

type CreditsRepository struct {
}

func NewCreditsRepository() *CreditsRepository {
	return &CreditsRepository{}
}

func (cr *CreditsRepository) LockCredit(ctx context.Context, querier database.Querier, creditID uuid.UUID) (domain.Credit, error) {
	lockCreditSQL := `SELECT id, quantity FROM carbon_credits WHERE id = $1 FOR UPDATE`

	var credit domain.Credit
	err := querier.QueryRow(ctx, lockCreditSQL, creditID).Scan(&credit.ID, &credit.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Credit{}, &domain.CreditNotFoundError{Msg: "Credit not found"}
		}

		return domain.Credit{}, fmt.Errorf("failed to lock credit row: %w", err)
	}

	return credit, nil
}

func (cr *CreditsRepository) MarkCreditListed(ctx context.Context, executor database.Executor, creditID uuid.UUID, ownerWallet string) error {
	markListedSQL := `UPDATE carbon_credits SET status = 'Listed', current_owner_wallet = $1 WHERE id = $2`

	tag, err := executor.Exec(ctx, markListedSQL, ownerWallet, creditID)
	if err != nil {
		return fmt.Errorf("failed to mark credit as listed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.CreditNotFoundError{Msg: "Credit not found"}
	}

	return nil
}
