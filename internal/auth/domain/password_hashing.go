package domain

//go:generate mockgen -source=password_hashing.go -destination=../../../gen/mocks/auth/password_hashing.go -package=mocks

type PassphraseHasher interface {
	HashPassphrase(passphrase string) (string, error)
	VerifyPassphrase(passphrase, hashedPassphrase string) (bool, error)
}
