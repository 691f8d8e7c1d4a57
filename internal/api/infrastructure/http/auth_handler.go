package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tbetti/solana-carbon-wallet/internal/api/domain"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/logging"
)

type authRequestBody struct {
	Wallet     string `json:"walletAddress" binding:"required,wallet"`
	Passphrase string `json:"passphrase" binding:"required,min=8"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type AuthHandler struct {
	service domain.AuthService
	logger  logging.Logger
}

func NewAuthHandler(service domain.AuthService, logger logging.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

func (h *AuthHandler) Authenticate(c *gin.Context) {
	var body authRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "invalid request body", err)
		return
	}

	token, err := h.service.Authenticate(c.Request.Context(), body.Wallet, body.Passphrase)
	if err != nil {
		handleError(c, h.logger, "Authentication failed", err)
		return
	}

	respondOK(c, http.StatusOK, tokenResponse{Token: token}, "")
}
