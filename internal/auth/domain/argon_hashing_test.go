package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgonPassphraseHasher(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name       string
		passphrase string
		wrong      string
	}

	testCases := []testCase{
		{name: "simple passphrase", passphrase: "carbon-neutral", wrong: "carbon-positive"},
		{name: "unicode passphrase", passphrase: "clé-forêt-2024", wrong: "cle-foret-2024"},
		{name: "long passphrase", passphrase: "offset every gpu hour we burn on training runs this quarter", wrong: "offset"},
	}

	for _, tc := range testCases {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			hasher := NewArgonPassphraseHasher()

			hashed, err := hasher.HashPassphrase(tt.passphrase)
			require.NoError(t, err)
			assert.NotEqual(t, tt.passphrase, hashed)

			isValid, err := hasher.VerifyPassphrase(tt.passphrase, hashed)
			require.NoError(t, err)
			assert.True(t, isValid)

			isValid, err = hasher.VerifyPassphrase(tt.wrong, hashed)
			require.NoError(t, err)
			assert.False(t, isValid)
		})
	}
}
