package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tbetti/solana-carbon-wallet/internal/api/domain"
	marketdomain "github.com/tbetti/solana-carbon-wallet/internal/marketplace/domain"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/logging"
)

type listingsQuery struct {
	ProjectType string `form:"projectType"`
	MinPrice    string `form:"minPrice"`
	MaxPrice    string `form:"maxPrice"`
	MinQuantity string `form:"minQuantity"`
	SortBy      string `form:"sortBy"`
	Limit       int    `form:"limit"`
}

type createListingRequestBody struct {
	SellerWallet   string           `json:"sellerWallet" binding:"required,wallet"`
	CreditID       string           `json:"creditId" binding:"required,uuid"`
	Quantity       *decimal.Decimal `json:"quantity" binding:"required"`
	PricePerCredit *decimal.Decimal `json:"pricePerCredit" binding:"required"`
}

type buyRequestBody struct {
	BuyerWallet string           `json:"buyerWallet" binding:"required,wallet"`
	ListingID   string           `json:"listingId" binding:"required,uuid"`
	Quantity    *decimal.Decimal `json:"quantity" binding:"required"`

	// Signature of a transfer already settled on chain, optional.
	TransactionSignature string `json:"transactionSignature" binding:"omitempty,max=128"`
}

type cancelListingRequestBody struct {
	SellerWallet string `json:"sellerWallet" binding:"required,wallet"`
}

type MarketplaceHandler struct {
	listingsService domain.ListingsService
	purchaseService domain.PurchaseService
	logger          logging.Logger
}

func NewMarketplaceHandler(
	listingsService domain.ListingsService,
	purchaseService domain.PurchaseService,
	logger logging.Logger,
) *MarketplaceHandler {
	return &MarketplaceHandler{
		listingsService: listingsService,
		purchaseService: purchaseService,
		logger:          logger,
	}
}

func (h *MarketplaceHandler) BrowseListings(c *gin.Context) {
	var query listingsQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c, "Invalid query parameters", err)
		return
	}

	filter, err := query.toFilter()
	if err != nil {
		respondBadRequest(c, "Invalid query parameters", err)
		return
	}

	page, err := h.listingsService.BrowseListings(c.Request.Context(), filter)
	if err != nil {
		handleError(c, h.logger, "Failed to retrieve marketplace listings", err)
		return
	}

	respondOK(c, http.StatusOK, page, "")
}

func (h *MarketplaceHandler) GetListing(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param(listingIDParamKey))
	if err != nil {
		c.JSON(http.StatusNotFound, errorBody{Error: "Listing not found"})
		return
	}

	listing, err := h.listingsService.GetListing(c.Request.Context(), listingID)
	if err != nil {
		handleError(c, h.logger, "Failed to retrieve listing", err)
		return
	}

	respondOK(c, http.StatusOK, listing, "")
}

func (h *MarketplaceHandler) CreateListing(c *gin.Context) {
	var body createListingRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "Missing required fields", err)
		return
	}

	if err := requireSessionWallet(c, body.SellerWallet); err != nil {
		handleError(c, h.logger, "Failed to create listing", err)
		return
	}

	listing, err := h.listingsService.CreateListing(c.Request.Context(), marketdomain.NewListing{
		SellerWallet:   body.SellerWallet,
		CreditID:       uuid.MustParse(body.CreditID),
		Quantity:       *body.Quantity,
		PricePerCredit: *body.PricePerCredit,
	})
	if err != nil {
		handleError(c, h.logger, "Failed to create listing", err)
		return
	}

	respondOK(c, http.StatusCreated, listing, "Listing created successfully")
}

func (h *MarketplaceHandler) Buy(c *gin.Context) {
	var body buyRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "Missing required fields", err)
		return
	}

	if err := requireSessionWallet(c, body.BuyerWallet); err != nil {
		handleError(c, h.logger, "Failed to complete purchase", err)
		return
	}

	receipt, err := h.purchaseService.PurchaseCredits(c.Request.Context(), marketdomain.PurchaseOrder{
		BuyerWallet: body.BuyerWallet,
		ListingID:   uuid.MustParse(body.ListingID),
		Quantity:    *body.Quantity,
		Signature:   body.TransactionSignature,
	})
	if err != nil {
		handleError(c, h.logger, "Failed to complete purchase", err)
		return
	}

	respondOK(c, http.StatusCreated, receipt, "Purchase successful")
}

func (h *MarketplaceHandler) CancelListing(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param(listingIDParamKey))
	if err != nil {
		c.JSON(http.StatusNotFound, errorBody{Error: "Listing not found or unauthorized"})
		return
	}

	var body cancelListingRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "sellerWallet is required", err)
		return
	}

	if err := requireSessionWallet(c, body.SellerWallet); err != nil {
		handleError(c, h.logger, "Failed to cancel listing", err)
		return
	}

	cancelled, err := h.listingsService.CancelListing(c.Request.Context(), listingID, body.SellerWallet)
	if err != nil {
		handleError(c, h.logger, "Failed to cancel listing", err)
		return
	}

	respondOK(c, http.StatusOK, cancelled, "Listing cancelled successfully")
}

func (q listingsQuery) toFilter() (marketdomain.ListingFilter, error) {
	filter := marketdomain.ListingFilter{
		ProjectType: q.ProjectType,
		SortBy:      marketdomain.ListingSort(q.SortBy),
		Limit:       q.Limit,
	}

	var err error
	if filter.MinPrice, err = parseOptionalDecimal("minPrice", q.MinPrice); err != nil {
		return marketdomain.ListingFilter{}, err
	}
	if filter.MaxPrice, err = parseOptionalDecimal("maxPrice", q.MaxPrice); err != nil {
		return marketdomain.ListingFilter{}, err
	}
	if filter.MinQuantity, err = parseOptionalDecimal("minQuantity", q.MinQuantity); err != nil {
		return marketdomain.ListingFilter{}, err
	}

	return filter, nil
}

// parseOptionalDecimal maps an absent parameter to zero, which means "no filter".
func parseOptionalDecimal(name, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s must be a number", name)
	}

	return value, nil
}
