package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/database"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/logging"
)

const (
	APIName        = "Carbon Wallet API"
	APIVersion     = "1.0.0"
	apiDescription = "API for carbon credit marketplace on Solana"

	pingTimeout = 2 * time.Second
)

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Database  string    `json:"database"`
}

type infoResponse struct {
	Name        string              `json:"name"`
	Version     string              `json:"version"`
	Description string              `json:"description"`
	Endpoints   map[string][]string `json:"endpoints"`
}

var endpoints = map[string][]string{
	"carbon": {
		"POST /carbon/calculate",
		"POST /carbon/calculate/batch",
		"POST /carbon/estimate",
		"GET /carbon/gpu-types",
		"GET /carbon/regions",
	},
	"marketplace": {
		"GET /marketplace/listings",
		"GET /marketplace/listing/:id",
		"POST /marketplace/list",
		"POST /marketplace/buy",
		"DELETE /marketplace/listing/:id",
	},
	"user": {
		"GET /user/:walletAddress/transactions",
		"GET /user/:walletAddress/stats",
		"GET /user/:walletAddress/listings",
	},
	"recommendations": {
		"POST /recommend/purchase",
	},
	"auth": {
		"POST /auth",
	},
}

type InfoHandler struct {
	pinger database.Pinger
	logger logging.Logger
	now    func() time.Time
}

func NewInfoHandler(pinger database.Pinger, logger logging.Logger) *InfoHandler {
	return &InfoHandler{
		pinger: pinger,
		logger: logger,
		now:    time.Now,
	}
}

// Health answers 503 when the database cannot be reached.
func (h *InfoHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	response := healthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC(),
		Version:   APIVersion,
		Database:  "connected",
	}
	status := http.StatusOK

	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn("database ping failed", "error", err.Error())
		response.Status = "degraded"
		response.Database = "unreachable"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, response)
}

func (h *InfoHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, infoResponse{
		Name:        APIName,
		Version:     APIVersion,
		Description: apiDescription,
		Endpoints:   endpoints,
	})
}
