package application

import (
	"context"
	"time"

	"github.com/tbetti/solana-carbon-wallet/internal/auth/domain"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/jwt"
)

const tokenTimeLimit = time.Hour

type Authenticator struct {
	credentialsRepository domain.CredentialsRepository
	passphraseHasher      domain.PassphraseHasher
	tokenIssuer           jwt.TokenIssuer
	secretKey             []byte
}

func NewAuthenticator(
	credentialsRepository domain.CredentialsRepository,
	passphraseHasher domain.PassphraseHasher,
	tokenIssuer jwt.TokenIssuer,
	secretKey string,
) *Authenticator {
	return &Authenticator{
		credentialsRepository: credentialsRepository,
		passphraseHasher:      passphraseHasher,
		tokenIssuer:           tokenIssuer,
		secretKey:             []byte(secretKey),
	}
}

// Authenticate registers an unknown wallet with the given passphrase and
// verifies it on every later call. It returns a session token for the wallet.
func (a *Authenticator) Authenticate(ctx context.Context, wallet, passphrase string) (string, error) {
	credentials, found, err := a.credentialsRepository.TryGetCredentials(ctx, wallet)
	if err != nil {
		return "", err
	}

	if !found {
		hashed, err := a.passphraseHasher.HashPassphrase(passphrase)
		if err != nil {
			return "", err
		}

		credentials, err = a.credentialsRepository.CreateCredentials(ctx, wallet, hashed)
		if err != nil {
			return "", err
		}
	} else {
		valid, err := a.passphraseHasher.VerifyPassphrase(passphrase, credentials.PassphraseHash)
		if err != nil {
			return "", err
		}

		if !valid {
			return "", &domain.CredentialsMismatchError{Msg: "wallet or passphrase is incorrect"}
		}
	}

	return a.tokenIssuer.IssueToken(a.secretKey, credentials.Wallet, tokenTimeLimit)
}
