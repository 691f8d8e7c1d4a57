package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tbetti/solana-carbon-wallet/internal/auth/domain"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/database"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/logging"
)

type CredentialsRepository struct {
	txBeginner database.QueryTxBeginner
	logger     logging.Logger
}

func NewCredentialsRepository(txBeginner database.QueryTxBeginner, logger logging.Logger) *CredentialsRepository {
	return &CredentialsRepository{
		txBeginner: txBeginner,
		logger:     logger,
	}
}

// CreateCredentials stores the passphrase hash and makes sure the wallet has a
// users row, so stats are readable right after registration.
func (r *CredentialsRepository) CreateCredentials(ctx context.Context, wallet, passphraseHash string) (domain.WalletCredentials, error) {
	tx, err := r.txBeginner.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: pgx.ReadCommitted,
	})
	if err != nil {
		return domain.WalletCredentials{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			r.logger.Error("failed to rollback credentials transaction", "error", err.Error())
		}
	}()

	credentials, err := insertCredentials(ctx, tx, wallet, passphraseHash)
	if err != nil {
		return domain.WalletCredentials{}, err
	}

	err = ensureUserRow(ctx, tx, wallet)
	if err != nil {
		return domain.WalletCredentials{}, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return domain.WalletCredentials{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return credentials, nil
}

func (r *CredentialsRepository) TryGetCredentials(ctx context.Context, wallet string) (domain.WalletCredentials, bool, error) {
	var credentials domain.WalletCredentials
	querySQL := `SELECT wallet_address, passphrase_hash, created_at FROM wallet_credentials WHERE wallet_address = $1`

	row := r.txBeginner.QueryRow(ctx, querySQL, wallet)
	err := row.Scan(&credentials.Wallet, &credentials.PassphraseHash, &credentials.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.WalletCredentials{}, false, nil
		}

		return domain.WalletCredentials{}, false, fmt.Errorf("failed to get wallet credentials: %w", err)
	}

	return credentials, true, nil
}

func insertCredentials(ctx context.Context, querier database.Querier, wallet, passphraseHash string) (domain.WalletCredentials, error) {
	creationSQL := `INSERT INTO wallet_credentials (wallet_address, passphrase_hash) VALUES ($1, $2)
		RETURNING wallet_address, passphrase_hash, created_at`

	var credentials domain.WalletCredentials
	row := querier.QueryRow(ctx, creationSQL, wallet, passphraseHash)
	err := row.Scan(&credentials.Wallet, &credentials.PassphraseHash, &credentials.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			// a concurrent call registered the wallet first
			return domain.WalletCredentials{}, &domain.CredentialsMismatchError{Msg: "wallet or passphrase is incorrect"}
		}

		return domain.WalletCredentials{}, fmt.Errorf("failed to insert wallet credentials: %w", err)
	}

	return credentials, nil
}

func ensureUserRow(ctx context.Context, executor database.Executor, wallet string) error {
	upsertSQL := `INSERT INTO users (wallet_address) VALUES ($1) ON CONFLICT (wallet_address) DO NOTHING`

	_, err := executor.Exec(ctx, upsertSQL, wallet)
	if err != nil {
		return fmt.Errorf("failed to create user row: %w", err)
	}

	return nil
}
