package bootstrap

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/database"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/logging"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/sync/errgroup"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	scenarioBuyer  = "So11111111111111111111111111111111111111112"
	scenarioSeller = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"

	// seeded listing at 11.50 USDC with 500 credits
	windParkListing = "a3e5c7f9-1b2d-4e6f-8a0c-2e4f6a8c0e02"

	// seeded listing at 12.50 USDC with 1000 credits
	solarFarmListing = "a3e5c7f9-1b2d-4e6f-8a0c-2e4f6a8c0e01"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func TestPurchaseScenario(t *testing.T) {
	if testing.Short() {
		t.Skip("starts a postgres container")
	}
	gin.SetMode(gin.TestMode)

	pg, err := postgres.Run(
		t.Context(),
		"postgres:16-alpine",
		postgres.WithDatabase("carbon_wallet"),
		postgres.WithUsername("admin"),
		postgres.WithPassword("password"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(context.Background()) })

	connStr, err := pg.ConnectionString(t.Context(), "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open(database.PgxDriverName, connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.Eventually(t, func() bool {
		timeCtx, cancel := context.WithTimeout(t.Context(), 500*time.Millisecond)
		defer cancel()
		return db.PingContext(timeCtx) == nil
	}, 30*time.Second, 500*time.Millisecond)

	cfg := DefaultConfig()
	cfg.DbSettings = database.PostgresSettings{URL: connStr}
	cfg.JwtSecret = "scenario-secret"

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	baseURL := "http://" + lis.Addr().String()

	app := NewAPIApp(cfg, logging.DiscardLogger)
	runErr := make(chan error, 1)
	go func() {
		runErr <- app.Run(t.Context(), lis)
	}()
	t.Cleanup(app.Shutdown)

	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/api/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 30*time.Second, 200*time.Millisecond)

	// AUTH
	status, env := doJSON(t, http.MethodPost, baseURL+"/api/auth", "", map[string]string{
		"walletAddress": scenarioBuyer,
		"passphrase":    "correct horse battery",
	})
	require.Equal(t, http.StatusOK, status)

	var token struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &token))
	require.NotEmpty(t, token.Token)

	// BROWSE
	status, env = doJSON(t, http.MethodGet, baseURL+"/api/marketplace/listings?projectType=Renewable%20Energy", "", nil)
	require.Equal(t, http.StatusOK, status)

	var page struct {
		Listings []struct {
			ListingID      string `json:"listingId"`
			PricePerCredit string `json:"pricePerCredit"`
		} `json:"listings"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Equal(t, 2, page.Total)
	assert.Equal(t, windParkListing, page.Listings[0].ListingID)
	assert.Equal(t, "11.5", page.Listings[0].PricePerCredit)

	// PURCHASE without a session
	status, _ = doJSON(t, http.MethodPost, baseURL+"/api/marketplace/buy", "", map[string]any{
		"buyerWallet": scenarioBuyer,
		"listingId":   windParkListing,
		"quantity":    10,
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	// PURCHASE
	status, env = doJSON(t, http.MethodPost, baseURL+"/api/marketplace/buy", token.Token, map[string]any{
		"buyerWallet": scenarioBuyer,
		"listingId":   windParkListing,
		"quantity":    10,
	})
	require.Equal(t, http.StatusCreated, status, env.Message)

	var receipt struct {
		TotalCost            string `json:"totalCost"`
		PlatformFee          string `json:"platformFee"`
		NetAmount            string `json:"netAmount"`
		TransactionSignature string `json:"transactionSignature"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &receipt))
	assert.Equal(t, "120.75", receipt.TotalCost)
	assert.Equal(t, "5.75", receipt.PlatformFee)
	assert.Equal(t, "115", receipt.NetAmount)
	assert.True(t, strings.HasPrefix(receipt.TransactionSignature, "tx_"))

	// PURCHASE more than available rolls back
	status, env = doJSON(t, http.MethodPost, baseURL+"/api/marketplace/buy", token.Token, map[string]any{
		"buyerWallet": scenarioBuyer,
		"listingId":   windParkListing,
		"quantity":    491,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Insufficient quantity available: requested 491, available 490", env.Message)

	// LISTING reflects the purchase
	status, env = doJSON(t, http.MethodGet, baseURL+"/api/marketplace/listing/"+windParkListing, "", nil)
	require.Equal(t, http.StatusOK, status)

	var details struct {
		QuantityAvailable string `json:"quantityAvailable"`
		SellerWallet      string `json:"sellerWallet"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &details))
	assert.Equal(t, "490", details.QuantityAvailable)
	assert.Equal(t, scenarioSeller, details.SellerWallet)

	// STATS
	status, env = doJSON(t, http.MethodGet, baseURL+"/api/user/"+scenarioBuyer+"/stats", "", nil)
	require.Equal(t, http.StatusOK, status)

	var stats struct {
		TotalCreditsPurchased string `json:"totalCreditsPurchased"`
		TotalSpent            string `json:"totalSpent"`
		TransactionCount      int    `json:"transactionCount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, "10", stats.TotalCreditsPurchased)
	assert.Equal(t, "120.75", stats.TotalSpent)
	assert.Equal(t, 1, stats.TransactionCount)

	// METRICS
	resp, err := http.Get(baseURL + metricsPath)
	require.NoError(t, err)
	metricsBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Contains(t, string(metricsBody), `marketplace_purchases_total{outcome="completed"} 1`)

	// SELL OUT the rest of the listing
	status, env = doJSON(t, http.MethodPost, baseURL+"/api/marketplace/buy", token.Token, map[string]any{
		"buyerWallet": scenarioBuyer,
		"listingId":   windParkListing,
		"quantity":    490,
	})
	require.Equal(t, http.StatusCreated, status, env.Message)

	status, env = doJSON(t, http.MethodGet, baseURL+"/api/marketplace/listing/"+windParkListing, "", nil)
	require.Equal(t, http.StatusOK, status)

	var soldOut struct {
		QuantityAvailable string `json:"quantityAvailable"`
		Status            string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &soldOut))
	assert.Equal(t, "0", soldOut.QuantityAvailable)
	assert.Equal(t, "Sold Out", soldOut.Status)

	status, env = doJSON(t, http.MethodGet, baseURL+"/api/marketplace/listings?projectType=Renewable%20Energy", "", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Equal(t, 1, page.Total)
	assert.Equal(t, solarFarmListing, page.Listings[0].ListingID)

	status, _ = doJSON(t, http.MethodPost, baseURL+"/api/marketplace/buy", token.Token, map[string]any{
		"buyerWallet": scenarioBuyer,
		"listingId":   windParkListing,
		"quantity":    1,
	})
	assert.Equal(t, http.StatusNotFound, status)

	// CONCURRENT purchases of more than half the listing each
	const concurrentBuyers = 2
	statuses := make([]int, concurrentBuyers)

	eg, egCtx := errgroup.WithContext(t.Context())
	for i := range concurrentBuyers {
		eg.Go(func() error {
			code, err := postPurchase(egCtx, baseURL, token.Token, map[string]any{
				"buyerWallet": scenarioBuyer,
				"listingId":   solarFarmListing,
				"quantity":    600,
			})
			statuses[i] = code
			return err
		})
	}
	require.NoError(t, eg.Wait())
	assert.ElementsMatch(t, []int{http.StatusCreated, http.StatusBadRequest}, statuses)

	status, env = doJSON(t, http.MethodGet, baseURL+"/api/marketplace/listing/"+solarFarmListing, "", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &details))
	assert.Equal(t, "400", details.QuantityAvailable)

	select {
	case err := <-runErr:
		require.NoError(t, err)
	default:
	}
}

// postPurchase is safe to call outside the test goroutine.
func postPurchase(ctx context.Context, baseURL, token string, body any) (int, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/marketplace/buy", bytes.NewReader(encoded))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	_, err = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, err
}

func doJSON(t *testing.T, method, url, token string, body any) (int, envelope) {
	t.Helper()

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(t.Context(), method, url, payload)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))

	return resp.StatusCode, env
}
