package http

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mr-tron/base58"
)

const (
	walletTag         = "wallet"
	publicKeyLength   = 32
	walletParamKey    = "walletAddress"
	listingIDParamKey = "id"
)

var registerOnce sync.Once

// RegisterWalletValidator adds the "wallet" tag to gin's binding validator.
// It is safe to call more than once and panics when the tag cannot be
// registered, since every wallet binding would fail afterwards.
func RegisterWalletValidator() {
	registerOnce.Do(func() {
		if err := registerWalletValidation(binding.Validator.Engine()); err != nil {
			panic(err)
		}
	})
}

func registerWalletValidation(engine any) error {
	v, ok := engine.(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", engine)
	}

	err := v.RegisterValidation(walletTag, func(fl validator.FieldLevel) bool {
		return isWalletAddress(fl.Field().String())
	})
	if err != nil {
		return fmt.Errorf("failed to register %q validation: %w", walletTag, err)
	}

	return nil
}

// isWalletAddress reports whether s is a base58 encoded ed25519 public key.
func isWalletAddress(s string) bool {
	if s == "" {
		return false
	}

	decoded, err := base58.Decode(s)
	if err != nil {
		return false
	}

	return len(decoded) == publicKeyLength
}
