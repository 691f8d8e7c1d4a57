package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tbetti/solana-carbon-wallet/internal/marketplace/domain"
)

// mapWriteError turns constraint violations raised by the schema into domain
// errors and wraps everything else with the failed action.
func mapWriteError(err error, action string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.CheckViolation:
			return &domain.InsufficientQuantityError{Msg: "Insufficient quantity available"}
		case pgerrcode.ForeignKeyViolation:
			return &domain.CreditNotFoundError{Msg: "Credit not found"}
		case pgerrcode.UniqueViolation:
			return &domain.InvalidArgumentsError{Msg: "transaction signature already recorded"}
		}
	}

	return fmt.Errorf("failed to %s: %w", action, err)
}
