package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	authdomain "github.com/tbetti/solana-carbon-wallet/internal/auth/domain"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/jwt"
)

const (
	authHeaderName = "Authorization"
	bearerPrefix   = "Bearer"
)

// NewAuthMiddleware stores the wallet of a valid session token in the
// context. With auth disabled every request passes through untouched.
func NewAuthMiddleware(tokenParser jwt.TokenParser, secretKey string, enabled bool) gin.HandlerFunc {
	secret := []byte(secretKey)

	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}

		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{
				Error:   "Unauthorized",
				Message: "missing authorization header",
			})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != bearerPrefix {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{
				Error:   "Unauthorized",
				Message: "invalid auth header",
			})
			return
		}

		claims, err := tokenParser.ParseToken(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{
				Error:   "Unauthorized",
				Message: "invalid or expired token",
			})
			return
		}

		c.Set(jwt.WalletContextKey, claims.Wallet)
		c.Next()
	}
}

// requireSessionWallet fails when a session is present and belongs to
// another wallet.
func requireSessionWallet(c *gin.Context, wallet string) error {
	sessionWallet, exists := c.Get(jwt.WalletContextKey)
	if !exists {
		return nil
	}

	if sessionWallet != wallet {
		return &authdomain.WalletMismatchError{Msg: "wallet does not match the authenticated session"}
	}

	return nil
}
