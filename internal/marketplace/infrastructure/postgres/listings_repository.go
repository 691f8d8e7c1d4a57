package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tbetti/solana-carbon-wallet/internal/marketplace/domain"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/database"
)

var listingOrderClauses = map[domain.ListingSort]string{
	domain.SortPriceAsc:     "ml.price_usdc ASC",
	domain.SortPriceDesc:    "ml.price_usdc DESC",
	domain.SortQuantityAsc:  "ml.quantity_available ASC",
	domain.SortQuantityDesc: "ml.quantity_available DESC",
}

type ListingsRepository struct {
	querier database.Querier
}

func NewListingsRepository(querier database.Querier) *ListingsRepository {
	return &ListingsRepository{
		querier: querier,
	}
}

func (lr *ListingsRepository) BrowseListings(ctx context.Context, filter domain.ListingFilter) ([]domain.ListingSummary, error) {
	var sql strings.Builder
	sql.WriteString(`SELECT ml.id, ml.price_usdc, ml.quantity_available, ml.seller_wallet, ml.status,
		cp.project_name, cp.project_type, cp.vintage_year, cp.location_country,
		COALESCE(cp.location_region, ''), cc.serial_number
		FROM marketplace_listings ml
		JOIN carbon_credits cc ON ml.credit_id = cc.id
		JOIN carbon_projects cp ON cc.project_id = cp.project_id
		WHERE ml.status = 'Active'`)

	args := make([]any, 0, 5)
	addCondition := func(condition string, arg any) {
		args = append(args, arg)
		fmt.Fprintf(&sql, " AND %s $%d", condition, len(args))
	}

	if filter.ProjectType != "" {
		addCondition("cp.project_type =", filter.ProjectType)
	}
	if filter.MinPrice.IsPositive() {
		addCondition("ml.price_usdc >=", filter.MinPrice)
	}
	if filter.MaxPrice.IsPositive() {
		addCondition("ml.price_usdc <=", filter.MaxPrice)
	}
	if filter.MinQuantity.IsPositive() {
		addCondition("ml.quantity_available >=", filter.MinQuantity)
	}

	orderBy, ok := listingOrderClauses[filter.SortBy]
	if !ok {
		orderBy = listingOrderClauses[domain.SortPriceAsc]
	}

	args = append(args, filter.Limit)
	fmt.Fprintf(&sql, " ORDER BY %s LIMIT $%d", orderBy, len(args))

	rows, err := lr.querier.Query(ctx, sql.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	listings := make([]domain.ListingSummary, 0)
	for rows.Next() {
		var l domain.ListingSummary
		err := rows.Scan(
			&l.ListingID, &l.PricePerCredit, &l.QuantityAvailable, &l.SellerWallet, &l.Status,
			&l.ProjectName, &l.ProjectType, &l.Vintage, &l.Country, &l.Region, &l.SerialNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}

		listings = append(listings, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read listings: %w", err)
	}

	return listings, nil
}

func (lr *ListingsRepository) GetListing(ctx context.Context, listingID uuid.UUID) (domain.ListingDetails, error) {
	sql := `SELECT ml.id, ml.price_usdc, ml.quantity_available, ml.seller_wallet, ml.status, ml.listed_at,
		cp.project_id, cp.project_name, cp.project_type, cp.vintage_year, cp.location_country,
		COALESCE(cp.location_region, ''), COALESCE(cp.co_benefits, '{}'), COALESCE(cp.project_description, ''),
		COALESCE(cp.registry_type, ''), COALESCE(cp.methodology, ''), cp.total_credits_issued, cp.verification_date,
		cc.serial_number, cc.id, cc.quantity
		FROM marketplace_listings ml
		JOIN carbon_credits cc ON ml.credit_id = cc.id
		JOIN carbon_projects cp ON cc.project_id = cp.project_id
		WHERE ml.id = $1`

	var l domain.ListingDetails
	err := lr.querier.QueryRow(ctx, sql, listingID).Scan(
		&l.ListingID, &l.PricePerCredit, &l.QuantityAvailable, &l.SellerWallet, &l.Status, &l.ListedAt,
		&l.ProjectID, &l.ProjectName, &l.ProjectType, &l.Vintage, &l.Country,
		&l.Region, &l.CoBenefits, &l.ProjectDescription,
		&l.RegistryType, &l.Methodology, &l.TotalCreditsIssued, &l.VerificationDate,
		&l.SerialNumber, &l.CreditID, &l.TotalCreditQuantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ListingDetails{}, &domain.ListingNotFoundError{Msg: "Listing not found"}
		}

		return domain.ListingDetails{}, fmt.Errorf("failed to get listing: %w", err)
	}

	return l, nil
}

func (lr *ListingsRepository) GetSellerListings(ctx context.Context, sellerWallet string) ([]domain.SellerListing, error) {
	sql := `SELECT ml.id, ml.price_usdc, ml.quantity_available, ml.status, ml.listed_at, ml.updated_at,
		cp.project_name, cp.project_type, cp.vintage_year
		FROM marketplace_listings ml
		JOIN carbon_credits cc ON ml.credit_id = cc.id
		JOIN carbon_projects cp ON cc.project_id = cp.project_id
		WHERE ml.seller_wallet = $1
		ORDER BY ml.listed_at DESC`

	rows, err := lr.querier.Query(ctx, sql, sellerWallet)
	if err != nil {
		return nil, fmt.Errorf("failed to query seller listings: %w", err)
	}
	defer rows.Close()

	listings := make([]domain.SellerListing, 0)
	for rows.Next() {
		var l domain.SellerListing
		err := rows.Scan(
			&l.ListingID, &l.PricePerCredit, &l.QuantityAvailable, &l.Status, &l.ListedAt, &l.UpdatedAt,
			&l.ProjectName, &l.ProjectType, &l.Vintage,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan seller listing: %w", err)
		}

		listings = append(listings, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read seller listings: %w", err)
	}

	return listings, nil
}

// CancelListing only touches active listings owned by sellerWallet, so a
// foreign or already closed listing reads as not found.
func (lr *ListingsRepository) CancelListing(ctx context.Context, listingID uuid.UUID, sellerWallet string) (domain.CancelledListing, error) {
	sql := `UPDATE marketplace_listings
		SET status = 'Cancelled', updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND seller_wallet = $2 AND status = 'Active'
		RETURNING id, status, updated_at`

	var cancelled domain.CancelledListing
	err := lr.querier.QueryRow(ctx, sql, listingID, sellerWallet).Scan(
		&cancelled.ListingID, &cancelled.Status, &cancelled.CancelledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CancelledListing{}, &domain.ListingNotFoundError{Msg: "Listing not found or unauthorized"}
		}

		return domain.CancelledListing{}, fmt.Errorf("failed to cancel listing: %w", err)
	}

	return cancelled, nil
}

func (lr *ListingsRepository) CreateListing(ctx context.Context, executor database.QueryExecuter, listing domain.NewListing) (domain.Listing, error) {
	sql := `INSERT INTO marketplace_listings (credit_id, seller_wallet, price_usdc, quantity_available, status)
		VALUES ($1, $2, $3, $4, 'Active')
		RETURNING id, credit_id, seller_wallet, price_usdc, quantity_available, status, listed_at`

	var created domain.Listing
	err := executor.QueryRow(ctx, sql, listing.CreditID, listing.SellerWallet, listing.PricePerCredit, listing.Quantity).Scan(
		&created.ListingID, &created.CreditID, &created.SellerWallet,
		&created.PricePerCredit, &created.QuantityAvailable, &created.Status, &created.ListedAt,
	)
	if err != nil {
		return domain.Listing{}, mapWriteError(err, "insert listing")
	}

	return created, nil
}
