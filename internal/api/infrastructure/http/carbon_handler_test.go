package http

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	mocks "github.com/tbetti/solana-carbon-wallet/gen/mocks/api"
	carbondomain "github.com/tbetti/solana-carbon-wallet/internal/carbon/domain"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/logging"
)

func TestCarbonHandler_Calculate(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name        string
		requestBody any

		prepareFn func(t *testing.T, calculator *mocks.MockEmissionsCalculator)

		expectedStatus int
		checkFn        func(t *testing.T, data map[string]any)
	}

	emissions := carbondomain.Emissions{
		GPUType:         "A100",
		GPUName:         "NVIDIA A100",
		Hours:           100,
		Region:          "US",
		PowerWatts:      400,
		EnergyKwh:       40,
		CarbonIntensity: 0.4,
		Co2Kg:           16,
		Co2Tons:         0.016,
		CreditsNeeded:   0.016,
	}

	testCases := []testCase{
		{
			name:        "successful calculation",
			requestBody: map[string]any{"gpuType": "A100", "hours": 100},
			prepareFn: func(t *testing.T, calculator *mocks.MockEmissionsCalculator) {
				t.Helper()
				calculator.EXPECT().CalculateEmissions("A100", float64(100), "").Return(emissions, nil)
			},
			expectedStatus: http.StatusOK,
			checkFn: func(t *testing.T, data map[string]any) {
				t.Helper()
				assert.Equal(t, "NVIDIA A100", data["gpuName"])
				assert.Equal(t, 0.016, data["co2Tons"])
				assert.Equal(t, 40.0, data["energyKwh"])
			},
		},
		{
			name:           "missing hours",
			requestBody:    map[string]any{"gpuType": "A100"},
			prepareFn:      func(t *testing.T, calculator *mocks.MockEmissionsCalculator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative hours",
			requestBody:    map[string]any{"gpuType": "A100", "hours": -3},
			prepareFn:      func(t *testing.T, calculator *mocks.MockEmissionsCalculator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed json",
			requestBody:    "{",
			prepareFn:      func(t *testing.T, calculator *mocks.MockEmissionsCalculator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "unknown gpu",
			requestBody: map[string]any{"gpuType": "K80", "hours": 1, "region": "EU"},
			prepareFn: func(t *testing.T, calculator *mocks.MockEmissionsCalculator) {
				t.Helper()
				calculator.EXPECT().CalculateEmissions("K80", float64(1), "EU").
					Return(carbondomain.Emissions{}, &carbondomain.UnknownGPUError{Msg: "Unknown GPU type: K80"})
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			calculator := mocks.NewMockEmissionsCalculator(ctrl)
			tt.prepareFn(t, calculator)
			handler := NewCarbonHandler(calculator, logging.DiscardLogger)

			c, writer := newTestContext(t, http.MethodPost, "/api/carbon/calculate", tt.requestBody)
			handler.Calculate(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkFn != nil {
				tt.checkFn(t, decodeData(t, writer))
			}
		})
	}
}

func TestCarbonHandler_CalculateBatch(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name        string
		requestBody any

		prepareFn func(t *testing.T, calculator *mocks.MockEmissionsCalculator)

		expectedStatus int
	}

	testCases := []testCase{
		{
			name: "successful batch",
			requestBody: map[string]any{
				"sessions": []map[string]any{
					{"gpuType": "A100", "hours": 50},
					{"gpuType": "H100", "hours": 30},
				},
				"region": "US",
			},
			prepareFn: func(t *testing.T, calculator *mocks.MockEmissionsCalculator) {
				t.Helper()
				calculator.EXPECT().
					CalculateBatch([]carbondomain.GPUUsage{
						{GPUType: "A100", Hours: 50},
						{GPUType: "H100", Hours: 30},
					}, "US").
					Return(carbondomain.BatchEmissions{Totals: carbondomain.EmissionTotals{Co2Tons: 0.0164}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "empty sessions",
			requestBody:    map[string]any{"sessions": []map[string]any{}},
			prepareFn:      func(t *testing.T, calculator *mocks.MockEmissionsCalculator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "session without gpu",
			requestBody: map[string]any{
				"sessions": []map[string]any{{"hours": 50}},
			},
			prepareFn:      func(t *testing.T, calculator *mocks.MockEmissionsCalculator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "calculator failure",
			requestBody: map[string]any{
				"sessions": []map[string]any{{"gpuType": "A100", "hours": 1}},
			},
			prepareFn: func(t *testing.T, calculator *mocks.MockEmissionsCalculator) {
				t.Helper()
				calculator.EXPECT().CalculateBatch(gomock.Any(), "").Return(carbondomain.BatchEmissions{}, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			calculator := mocks.NewMockEmissionsCalculator(ctrl)
			tt.prepareFn(t, calculator)
			handler := NewCarbonHandler(calculator, logging.DiscardLogger)

			c, writer := newTestContext(t, http.MethodPost, "/api/carbon/calculate/batch", tt.requestBody)
			handler.CalculateBatch(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}

func TestCarbonHandler_Estimate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	calculator := mocks.NewMockEmissionsCalculator(ctrl)
	calculator.EXPECT().EstimateOffsetCost(0.0164, float64(0)).Return(carbondomain.OffsetEstimate{
		CreditsNeeded:  0.0164,
		PricePerCredit: 15,
		TotalCost:      0.25,
		Currency:       carbondomain.OffsetCurrency,
	}, nil)
	handler := NewCarbonHandler(calculator, logging.DiscardLogger)

	c, writer := newTestContext(t, http.MethodPost, "/api/carbon/estimate", map[string]any{"creditsNeeded": 0.0164})
	handler.Estimate(c)

	assert.Equal(t, http.StatusOK, writer.Code)
	data := decodeData(t, writer)
	assert.Equal(t, 0.25, data["totalCost"])
	assert.Equal(t, "USDC", data["currency"])

	c, writer = newTestContext(t, http.MethodPost, "/api/carbon/estimate", map[string]any{"creditsNeeded": 1, "pricePerCredit": -2})
	handler.Estimate(c)
	assert.Equal(t, http.StatusBadRequest, writer.Code)
}

func TestCarbonHandler_Catalog(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	calculator := mocks.NewMockEmissionsCalculator(ctrl)
	calculator.EXPECT().AvailableGPUs().Return([]carbondomain.GPUSpec{{Type: "A100", Name: "NVIDIA A100", PowerWatts: 400}})
	calculator.EXPECT().AvailableRegions().Return([]carbondomain.Region{{Code: "EU", CarbonIntensity: 0.1}})
	handler := NewCarbonHandler(calculator, logging.DiscardLogger)

	c, writer := newTestContext(t, http.MethodGet, "/api/carbon/gpu-types", nil)
	handler.GPUTypes(c)
	assert.Equal(t, http.StatusOK, writer.Code)
	assert.JSONEq(t, `{"success":true,"data":[{"type":"A100","name":"NVIDIA A100","powerWatts":400}]}`, writer.Body.String())

	c, writer = newTestContext(t, http.MethodGet, "/api/carbon/regions", nil)
	handler.Regions(c)
	assert.Equal(t, http.StatusOK, writer.Code)
	assert.JSONEq(t, `{"success":true,"data":[{"code":"EU","carbonIntensity":0.1}]}`, writer.Body.String())
}
