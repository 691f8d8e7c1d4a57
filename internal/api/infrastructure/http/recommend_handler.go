package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tbetti/solana-carbon-wallet/internal/api/domain"
	marketdomain "github.com/tbetti/solana-carbon-wallet/internal/marketplace/domain"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/logging"
)

type recommendRequestBody struct {
	CreditsNeeded     *decimal.Decimal `json:"creditsNeeded" binding:"required"`
	PreferredTypes    []string         `json:"preferredTypes"`
	MaxPricePerCredit *decimal.Decimal `json:"maxPricePerCredit"`
}

type RecommendHandler struct {
	recommendService domain.RecommendService
	logger           logging.Logger
}

func NewRecommendHandler(recommendService domain.RecommendService, logger logging.Logger) *RecommendHandler {
	return &RecommendHandler{
		recommendService: recommendService,
		logger:           logger,
	}
}

func (h *RecommendHandler) RecommendPurchase(c *gin.Context) {
	var body recommendRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "creditsNeeded must be greater than 0", err)
		return
	}

	query := marketdomain.RecommendationQuery{
		CreditsNeeded:  *body.CreditsNeeded,
		PreferredTypes: body.PreferredTypes,
	}
	if body.MaxPricePerCredit != nil {
		query.MaxPricePerCredit = *body.MaxPricePerCredit
	}

	recommendation, err := h.recommendService.RecommendPurchase(c.Request.Context(), query)
	if err != nil {
		handleError(c, h.logger, "Failed to generate recommendations", err)
		return
	}

	respondOK(c, http.StatusOK, recommendation, "")
}
