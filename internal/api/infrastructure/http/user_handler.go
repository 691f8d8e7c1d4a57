package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tbetti/solana-carbon-wallet/internal/api/domain"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/logging"
)

var errInvalidWallet = errors.New("walletAddress must be a base58 encoded public key")

type UserHandler struct {
	historyService  domain.HistoryService
	listingsService domain.ListingsService
	logger          logging.Logger
}

func NewUserHandler(historyService domain.HistoryService, listingsService domain.ListingsService, logger logging.Logger) *UserHandler {
	return &UserHandler{
		historyService:  historyService,
		listingsService: listingsService,
		logger:          logger,
	}
}

func (h *UserHandler) Transactions(c *gin.Context) {
	wallet, ok := walletParam(c)
	if !ok {
		return
	}

	history, err := h.historyService.GetTransactionHistory(c.Request.Context(), wallet)
	if err != nil {
		handleError(c, h.logger, "Failed to retrieve transaction history", err)
		return
	}

	respondOK(c, http.StatusOK, history, "")
}

func (h *UserHandler) Stats(c *gin.Context) {
	wallet, ok := walletParam(c)
	if !ok {
		return
	}

	stats, err := h.historyService.GetUserStats(c.Request.Context(), wallet)
	if err != nil {
		handleError(c, h.logger, "Failed to retrieve user statistics", err)
		return
	}

	respondOK(c, http.StatusOK, stats, "")
}

func (h *UserHandler) Listings(c *gin.Context) {
	wallet, ok := walletParam(c)
	if !ok {
		return
	}

	listings, err := h.listingsService.GetSellerListings(c.Request.Context(), wallet)
	if err != nil {
		handleError(c, h.logger, "Failed to retrieve seller listings", err)
		return
	}

	respondOK(c, http.StatusOK, listings, "")
}

func walletParam(c *gin.Context) (string, bool) {
	wallet := c.Param(walletParamKey)
	if !isWalletAddress(wallet) {
		respondBadRequest(c, "Invalid wallet address", errInvalidWallet)
		return "", false
	}

	return wallet, true
}
