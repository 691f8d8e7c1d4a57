package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbetti/solana-carbon-wallet/internal/marketplace/domain"
)

var summaryColumns = []string{
	"id", "price_usdc", "quantity_available", "seller_wallet", "status",
	"project_name", "project_type", "vintage_year", "location_country", "location_region", "serial_number",
}

func TestListingsRepository_BrowseListings(t *testing.T) {
	t.Parallel()

	listingID := uuid.MustParse("6f1c1a52-8f64-4c1e-9a67-3c1f0b8e2a10")

	type testCase struct {
		name   string
		filter domain.ListingFilter

		expectedLen int
		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:   "no filters",
			filter: domain.ListingFilter{SortBy: domain.SortPriceAsc, Limit: 50},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows(summaryColumns).
					AddRow(listingID, decimal.RequireFromString("12.5"), decimal.RequireFromString("1000"), sellerWallet, domain.StatusActive,
						"Solar Farm Project", "Renewable Energy", 2024, "India", "Rajasthan", "VCS-001-2024")
				mock.ExpectQuery(`WHERE ml\.status = 'Active' ORDER BY ml\.price_usdc ASC LIMIT \$1`).
					WithArgs(50).
					WillReturnRows(rows)
			},
			expectedLen: 1,
		},
		{
			name: "all filters and sort",
			filter: domain.ListingFilter{
				ProjectType: "Forestry",
				MinPrice:    decimal.NewFromInt(10),
				MaxPrice:    decimal.NewFromInt(20),
				MinQuantity: decimal.NewFromInt(5),
				SortBy:      domain.SortQuantityDesc,
				Limit:       20,
			},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery(`cp\.project_type = \$1 AND ml\.price_usdc >= \$2 AND ml\.price_usdc <= \$3 AND ml\.quantity_available >= \$4 ORDER BY ml\.quantity_available DESC LIMIT \$5`).
					WithArgs("Forestry", decimalEq("10"), decimalEq("20"), decimalEq("5"), 20).
					WillReturnRows(pgxmock.NewRows(summaryColumns))
			},
			expectedLen: 0,
		},
		{
			name:   "query error",
			filter: domain.ListingFilter{SortBy: domain.SortPriceAsc, Limit: 50},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(50).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			res, err := NewListingsRepository(mock).BrowseListings(t.Context(), tt.filter)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, res)
				assert.Len(t, res, tt.expectedLen)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListingsRepository_GetListing(t *testing.T) {
	t.Parallel()

	listingID := uuid.MustParse("6f1c1a52-8f64-4c1e-9a67-3c1f0b8e2a10")
	creditID := uuid.MustParse("0b6a5bd4-77d2-4f35-a3b8-0c6a4a62a0f1")
	listedAt := time.Date(2024, 10, 1, 9, 30, 0, 0, time.UTC)

	type testCase struct {
		name string

		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name: "listing found",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{
					"id", "price_usdc", "quantity_available", "seller_wallet", "status", "listed_at",
					"project_id", "project_name", "project_type", "vintage_year", "location_country",
					"location_region", "co_benefits", "project_description",
					"registry_type", "methodology", "total_credits_issued", "verification_date",
					"serial_number", "credit_id", "quantity",
				}).AddRow(
					listingID, decimal.RequireFromString("12.5"), decimal.RequireFromString("1000"), sellerWallet, domain.StatusActive, listedAt,
					"VCS-1234", "Solar Farm Project", "Renewable Energy", 2024, "India",
					"Rajasthan", []string{"Jobs", "Clean air"}, "Utility scale solar",
					"Verra", "ACM0002", decimal.RequireFromString("50000"), nil,
					"VCS-001-2024", creditID, decimal.RequireFromString("5000"),
				)
				mock.ExpectQuery("SELECT").
					WithArgs(listingID).
					WillReturnRows(rows)
			},
		},
		{
			name: "listing missing",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(listingID).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: &domain.ListingNotFoundError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			res, err := NewListingsRepository(mock).GetListing(t.Context(), listingID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, listingID, res.ListingID)
				assert.Equal(t, creditID, res.CreditID)
				assert.Equal(t, listedAt, res.ListedAt)
				assert.Equal(t, []string{"Jobs", "Clean air"}, res.CoBenefits)
				assert.Nil(t, res.VerificationDate)
				assert.Equal(t, "5000", res.TotalCreditQuantity.String())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListingsRepository_CancelListing(t *testing.T) {
	t.Parallel()

	listingID := uuid.MustParse("6f1c1a52-8f64-4c1e-9a67-3c1f0b8e2a10")
	cancelledAt := time.Date(2024, 10, 2, 9, 30, 0, 0, time.UTC)

	type testCase struct {
		name string

		expectedRes domain.CancelledListing
		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name: "cancelled",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("UPDATE marketplace_listings").
					WithArgs(listingID, sellerWallet).
					WillReturnRows(pgxmock.NewRows([]string{"id", "status", "updated_at"}).
						AddRow(listingID, domain.StatusCancelled, cancelledAt))
			},
			expectedRes: domain.CancelledListing{ListingID: listingID, Status: domain.StatusCancelled, CancelledAt: cancelledAt},
		},
		{
			name: "foreign or inactive listing",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("UPDATE marketplace_listings").
					WithArgs(listingID, sellerWallet).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: &domain.ListingNotFoundError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			res, err := NewListingsRepository(mock).CancelListing(t.Context(), listingID, sellerWallet)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListingsRepository_CreateListing(t *testing.T) {
	t.Parallel()

	listingID := uuid.MustParse("6f1c1a52-8f64-4c1e-9a67-3c1f0b8e2a10")
	creditID := uuid.MustParse("0b6a5bd4-77d2-4f35-a3b8-0c6a4a62a0f1")
	listedAt := time.Date(2024, 10, 1, 9, 30, 0, 0, time.UTC)

	newListing := domain.NewListing{
		SellerWallet:   sellerWallet,
		CreditID:       creditID,
		Quantity:       decimal.RequireFromString("100"),
		PricePerCredit: decimal.RequireFromString("15"),
	}

	type testCase struct {
		name string

		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name: "inserted",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("INSERT INTO marketplace_listings").
					WithArgs(creditID, sellerWallet, decimalEq("15"), decimalEq("100")).
					WillReturnRows(pgxmock.NewRows([]string{"id", "credit_id", "seller_wallet", "price_usdc", "quantity_available", "status", "listed_at"}).
						AddRow(listingID, creditID, sellerWallet, decimal.RequireFromString("15"), decimal.RequireFromString("100"), domain.StatusActive, listedAt))
			},
		},
		{
			name: "credit vanished",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("INSERT INTO marketplace_listings").
					WithArgs(creditID, sellerWallet, decimalEq("15"), decimalEq("100")).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
			},
			expectedErr: &domain.CreditNotFoundError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			res, err := NewListingsRepository(mock).CreateListing(t.Context(), mock, newListing)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, listingID, res.ListingID)
				assert.Equal(t, domain.StatusActive, res.Status)
				assert.Equal(t, listedAt, res.ListedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListingsRepository_GetSellerListings(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(t.Context())

	listedAt := time.Date(2024, 10, 1, 9, 30, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{"id", "price_usdc", "quantity_available", "status", "listed_at", "updated_at", "project_name", "project_type", "vintage_year"}).
		AddRow(uuid.New(), decimal.RequireFromString("15"), decimal.RequireFromString("0"), domain.StatusSoldOut, listedAt, listedAt, "Amazon Reforestation", "Forestry", 2023).
		AddRow(uuid.New(), decimal.RequireFromString("12"), decimal.RequireFromString("40"), domain.StatusActive, listedAt, listedAt, "Wind Farm India", "Renewable Energy", 2024)
	mock.ExpectQuery("WHERE ml.seller_wallet = ").
		WithArgs(sellerWallet).
		WillReturnRows(rows)

	res, err := NewListingsRepository(mock).GetSellerListings(t.Context(), sellerWallet)

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, domain.StatusSoldOut, res[0].Status)
	assert.Equal(t, "Wind Farm India", res[1].ProjectName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
