package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/logging"
)

func NewAccessLogMiddleware(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		)
	}
}

func NewRecoveryMiddleware(logger logging.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("unhandled panic", "path", c.Request.URL.Path, "panic", fmt.Sprint(recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody{
			Error: "Internal server error",
		})
	})
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, errorBody{
		Error:   "Endpoint not found",
		Message: fmt.Sprintf("%s %s does not exist", c.Request.Method, c.Request.URL.Path),
	})
}
