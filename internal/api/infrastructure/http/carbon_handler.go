package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tbetti/solana-carbon-wallet/internal/api/domain"
	carbondomain "github.com/tbetti/solana-carbon-wallet/internal/carbon/domain"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/logging"
)

type calculateRequestBody struct {
	GPUType string  `json:"gpuType" binding:"required"`
	Hours   float64 `json:"hours" binding:"required,gt=0"`
	Region  string  `json:"region"`
}

type sessionRequestBody struct {
	GPUType string  `json:"gpuType" binding:"required"`
	Hours   float64 `json:"hours" binding:"required,gt=0"`
}

type batchRequestBody struct {
	Sessions []sessionRequestBody `json:"sessions" binding:"required,min=1,dive"`
	Region   string               `json:"region"`
}

type estimateRequestBody struct {
	CreditsNeeded  float64 `json:"creditsNeeded" binding:"required,gt=0"`
	PricePerCredit float64 `json:"pricePerCredit" binding:"omitempty,gt=0"`
}

type CarbonHandler struct {
	calculator domain.EmissionsCalculator
	logger     logging.Logger
}

func NewCarbonHandler(calculator domain.EmissionsCalculator, logger logging.Logger) *CarbonHandler {
	return &CarbonHandler{
		calculator: calculator,
		logger:     logger,
	}
}

func (h *CarbonHandler) Calculate(c *gin.Context) {
	var body calculateRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "Missing required fields: gpuType and hours > 0", err)
		return
	}

	emissions, err := h.calculator.CalculateEmissions(body.GPUType, body.Hours, body.Region)
	if err != nil {
		handleError(c, h.logger, "Failed to calculate emissions", err)
		return
	}

	respondOK(c, http.StatusOK, emissions, "")
}

func (h *CarbonHandler) CalculateBatch(c *gin.Context) {
	var body batchRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "Sessions array is required and must not be empty", err)
		return
	}

	usages := make([]carbondomain.GPUUsage, 0, len(body.Sessions))
	for _, session := range body.Sessions {
		usages = append(usages, carbondomain.GPUUsage{
			GPUType: session.GPUType,
			Hours:   session.Hours,
		})
	}

	batch, err := h.calculator.CalculateBatch(usages, body.Region)
	if err != nil {
		handleError(c, h.logger, "Failed to calculate batch emissions", err)
		return
	}

	respondOK(c, http.StatusOK, batch, "")
}

func (h *CarbonHandler) Estimate(c *gin.Context) {
	var body estimateRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "creditsNeeded must be greater than 0", err)
		return
	}

	estimate, err := h.calculator.EstimateOffsetCost(body.CreditsNeeded, body.PricePerCredit)
	if err != nil {
		handleError(c, h.logger, "Failed to estimate offset cost", err)
		return
	}

	respondOK(c, http.StatusOK, estimate, "")
}

func (h *CarbonHandler) GPUTypes(c *gin.Context) {
	respondOK(c, http.StatusOK, h.calculator.AvailableGPUs(), "")
}

func (h *CarbonHandler) Regions(c *gin.Context) {
	respondOK(c, http.StatusOK, h.calculator.AvailableRegions(), "")
}
