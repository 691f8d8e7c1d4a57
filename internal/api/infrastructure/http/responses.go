package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/tbetti/solana-carbon-wallet/internal/auth/domain"
	carbondomain "github.com/tbetti/solana-carbon-wallet/internal/carbon/domain"
	marketdomain "github.com/tbetti/solana-carbon-wallet/internal/marketplace/domain"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/logging"
)

const internalErrorMessage = "internal server error"

type successBody struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func respondOK(c *gin.Context, status int, data any, message string) {
	c.JSON(status, successBody{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func respondBadRequest(c *gin.Context, summary string, err error) {
	c.JSON(http.StatusBadRequest, errorBody{
		Error:   summary,
		Message: err.Error(),
	})
}

// handleError writes the status matching a domain error. Unknown errors are
// logged and hidden from the client.
func handleError(c *gin.Context, logger logging.Logger, summary string, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error(summary, "path", c.Request.URL.Path, "error", err.Error())
		c.JSON(status, errorBody{
			Error:   summary,
			Message: internalErrorMessage,
		})
		return
	}

	c.JSON(status, errorBody{
		Error:   summary,
		Message: clientMessage(err),
	})
}

// clientMessage returns the message of the domain error inside err, without
// the context added by the layers that wrapped it.
func clientMessage(err error) string {
	var (
		invalidArgs     *marketdomain.InvalidArgumentsError
		insufficient    *marketdomain.InsufficientQuantityError
		listingNotFound *marketdomain.ListingNotFoundError
		creditNotFound  *marketdomain.CreditNotFoundError
		unknownGPU      *carbondomain.UnknownGPUError
		unknownRegion   *carbondomain.UnknownRegionError
		invalidUsage    *carbondomain.InvalidUsageError
		credentials     *authdomain.CredentialsMismatchError
		unauthenticated *authdomain.UnauthenticatedError
		walletMismatch  *authdomain.WalletMismatchError
	)

	switch {
	case errors.As(err, &invalidArgs):
		return invalidArgs.Msg
	case errors.As(err, &insufficient):
		return insufficient.Msg
	case errors.As(err, &listingNotFound):
		return listingNotFound.Msg
	case errors.As(err, &creditNotFound):
		return creditNotFound.Msg
	case errors.As(err, &unknownGPU):
		return unknownGPU.Msg
	case errors.As(err, &unknownRegion):
		return unknownRegion.Msg
	case errors.As(err, &invalidUsage):
		return invalidUsage.Msg
	case errors.As(err, &credentials):
		return credentials.Msg
	case errors.As(err, &unauthenticated):
		return unauthenticated.Msg
	case errors.As(err, &walletMismatch):
		return walletMismatch.Msg
	default:
		return err.Error()
	}
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, &marketdomain.InvalidArgumentsError{}),
		errors.Is(err, &marketdomain.InsufficientQuantityError{}),
		errors.Is(err, &carbondomain.UnknownGPUError{}),
		errors.Is(err, &carbondomain.UnknownRegionError{}),
		errors.Is(err, &carbondomain.InvalidUsageError{}):
		return http.StatusBadRequest
	case errors.Is(err, &marketdomain.ListingNotFoundError{}),
		errors.Is(err, &marketdomain.CreditNotFoundError{}):
		return http.StatusNotFound
	case errors.Is(err, &authdomain.CredentialsMismatchError{}),
		errors.Is(err, &authdomain.UnauthenticatedError{}):
		return http.StatusUnauthorized
	case errors.Is(err, &authdomain.WalletMismatchError{}):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
