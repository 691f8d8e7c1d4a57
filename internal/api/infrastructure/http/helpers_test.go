package http

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	buyerWallet  = "So11111111111111111111111111111111111111112"
	sellerWallet = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	RegisterWalletValidator()
	os.Exit(m.Run())
}

func newTestContext(t *testing.T, method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err)
	}

	writer := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(writer)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	return c, writer
}

func decodeBody(t *testing.T, writer *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var response map[string]any
	require.NoError(t, json.Unmarshal(writer.Body.Bytes(), &response))
	return response
}

func decodeData(t *testing.T, writer *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	response := decodeBody(t, writer)
	require.Equal(t, true, response["success"])
	data, ok := response["data"].(map[string]any)
	require.True(t, ok, "data is not an object: %v", response["data"])
	return data
}
