package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=credentials.go -destination=../../../gen/mocks/auth/credentials.go -package=mocks

type CredentialsRepository interface {
	CreateCredentials(ctx context.Context, wallet, passphraseHash string) (WalletCredentials, error)
	TryGetCredentials(ctx context.Context, wallet string) (WalletCredentials, bool, error)
}

type WalletCredentials struct {
	Wallet         string
	PassphraseHash string
	CreatedAt      time.Time
}
