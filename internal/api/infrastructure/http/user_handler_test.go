package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	mocks "github.com/tbetti/solana-carbon-wallet/gen/mocks/api"
	marketdomain "github.com/tbetti/solana-carbon-wallet/internal/marketplace/domain"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/logging"
)

func TestUserHandler(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		wallet string
		call   func(h *UserHandler, c *gin.Context)

		prepareFn func(t *testing.T, history *mocks.MockHistoryService, listings *mocks.MockListingsService)

		expectedStatus int
		checkFn        func(t *testing.T, data map[string]any)
	}

	testCases := []testCase{
		{
			name:   "transaction history",
			wallet: buyerWallet,
			call:   (*UserHandler).Transactions,
			prepareFn: func(t *testing.T, history *mocks.MockHistoryService, listings *mocks.MockListingsService) {
				t.Helper()
				history.EXPECT().GetTransactionHistory(gomock.Any(), buyerWallet).Return(marketdomain.TransactionHistory{
					Transactions: []marketdomain.PurchaseEntry{},
					Totals: marketdomain.PurchaseTotals{
						TotalCredits:   decimal.NewFromInt(150),
						TotalSpent:     decimal.RequireFromString("1875"),
						TotalCo2Offset: decimal.NewFromInt(150),
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkFn: func(t *testing.T, data map[string]any) {
				t.Helper()
				assert.Equal(t, []any{}, data["transactions"])
				totals := data["totals"].(map[string]any)
				assert.Equal(t, "1875", totals["totalSpent"])
			},
		},
		{
			name:   "user stats",
			wallet: buyerWallet,
			call:   (*UserHandler).Stats,
			prepareFn: func(t *testing.T, history *mocks.MockHistoryService, listings *mocks.MockListingsService) {
				t.Helper()
				history.EXPECT().GetUserStats(gomock.Any(), buyerWallet).Return(marketdomain.UserStats{
					TotalCreditsPurchased: decimal.NewFromInt(150),
					TotalSpent:            decimal.RequireFromString("1875"),
					TotalCo2Offset:        decimal.NewFromInt(150),
					AveragePricePerCredit: decimal.RequireFromString("12.5"),
					TransactionCount:      15,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkFn: func(t *testing.T, data map[string]any) {
				t.Helper()
				assert.Equal(t, "12.5", data["averagePricePerCredit"])
				assert.Equal(t, 15.0, data["transactionCount"])
			},
		},
		{
			name:   "seller listings",
			wallet: sellerWallet,
			call:   (*UserHandler).Listings,
			prepareFn: func(t *testing.T, history *mocks.MockHistoryService, listings *mocks.MockListingsService) {
				t.Helper()
				listings.EXPECT().GetSellerListings(gomock.Any(), sellerWallet).
					Return(marketdomain.GroupSellerListings(nil), nil)
			},
			expectedStatus: http.StatusOK,
			checkFn: func(t *testing.T, data map[string]any) {
				t.Helper()
				assert.Equal(t, []any{}, data["activeListings"])
				assert.Equal(t, []any{}, data["completedListings"])
				assert.Equal(t, []any{}, data["cancelledListings"])
			},
		},
		{
			name:           "invalid wallet",
			wallet:         "0x1234",
			call:           (*UserHandler).Stats,
			prepareFn:      func(t *testing.T, history *mocks.MockHistoryService, listings *mocks.MockListingsService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "database failure",
			wallet: buyerWallet,
			call:   (*UserHandler).Transactions,
			prepareFn: func(t *testing.T, history *mocks.MockHistoryService, listings *mocks.MockListingsService) {
				t.Helper()
				history.EXPECT().GetTransactionHistory(gomock.Any(), buyerWallet).Return(marketdomain.TransactionHistory{}, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			history := mocks.NewMockHistoryService(ctrl)
			listings := mocks.NewMockListingsService(ctrl)
			tt.prepareFn(t, history, listings)
			handler := NewUserHandler(history, listings, logging.DiscardLogger)

			c, writer := newTestContext(t, http.MethodGet, "/api/user/"+tt.wallet, nil)
			c.Params = gin.Params{{Key: walletParamKey, Value: tt.wallet}}
			tt.call(handler, c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkFn != nil {
				tt.checkFn(t, decodeData(t, writer))
			}
		})
	}
}
