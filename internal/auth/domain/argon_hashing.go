package domain

import "github.com/alexedwards/argon2id"

var walletParams = &argon2id.Params{
	Memory:      19 * 1024, // 19 MB
	Iterations:  2,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

type ArgonPassphraseHasher struct {
	params *argon2id.Params
}

func NewArgonPassphraseHasher() *ArgonPassphraseHasher {
	return &ArgonPassphraseHasher{
		params: walletParams,
	}
}

func (ph *ArgonPassphraseHasher) HashPassphrase(passphrase string) (string, error) {
	return argon2id.CreateHash(passphrase, ph.params)
}

func (ph *ArgonPassphraseHasher) VerifyPassphrase(passphrase, hashedPassphrase string) (bool, error) {
	return argon2id.ComparePasswordAndHash(passphrase, hashedPassphrase)
}
