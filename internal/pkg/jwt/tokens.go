package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -source=tokens.go -destination=../../../gen/mocks/jwt/tokens.go -package=mocks

const (
	// WalletContextKey holds the authenticated wallet address in a gin context.
	WalletContextKey = "session_wallet"
	issuer           = "carbon-wallet-api"
)

type TokenIssuer interface {
	IssueToken(secret []byte, wallet string, timeLimit time.Duration) (string, error)
}

type TokenParser interface {
	ParseToken(secret []byte, tokenString string) (*Claims, error)
}

type Claims struct {
	Wallet string `json:"wal"`
	jwt.RegisteredClaims
}

type JWTTokenIssuer struct {
}

func NewJWTTokenIssuer() *JWTTokenIssuer {
	return &JWTTokenIssuer{}
}

func (ti *JWTTokenIssuer) IssueToken(secret []byte, wallet string, timeLimit time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		Wallet: wallet,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   wallet,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(timeLimit)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

type JWTTokenParser struct {
}

func NewJWTTokenParser() *JWTTokenParser {
	return &JWTTokenParser{}
}

func (tp *JWTTokenParser) ParseToken(secret []byte, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}

		return secret, nil
	}, jwt.WithIssuer(issuer))

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Wallet == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}
