package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_GPU(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name    string
		gpuType string

		expectedRes GPUSpec
		expectedErr error
	}

	tests := []testCase{
		{
			name:        "known gpu",
			gpuType:     "H100",
			expectedRes: GPUSpec{Type: "H100", Name: "NVIDIA H100", PowerWatts: 700},
		},
		{
			name:        "rtx naming",
			gpuType:     "RTX4090",
			expectedRes: GPUSpec{Type: "RTX4090", Name: "NVIDIA RTX 4090", PowerWatts: 450},
		},
		{
			name:        "lookup is case sensitive",
			gpuType:     "a100",
			expectedErr: &UnknownGPUError{},
		},
		{
			name:        "unknown gpu",
			gpuType:     "TPUv5",
			expectedErr: &UnknownGPUError{},
		},
	}

	catalog := DefaultCatalog()

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := catalog.GPU(tt.gpuType)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}
		})
	}
}

func TestCatalog_Region(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()

	region, err := catalog.Region("Iceland")
	require.NoError(t, err)
	assert.Equal(t, 0.01, region.CarbonIntensity)

	_, err = catalog.Region("Mars")
	assert.ErrorIs(t, err, &UnknownRegionError{})
	assert.EqualError(t, err, "Unknown region: Mars")
}

func TestCatalog_ListingsAreSorted(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()

	gpus := catalog.GPUs()
	require.Len(t, gpus, 7)
	assert.Equal(t, "A10", gpus[0].Type)
	assert.Equal(t, "V100", gpus[len(gpus)-1].Type)

	regions := catalog.Regions()
	require.Len(t, regions, 13)
	assert.Equal(t, "Australia", regions[0].Code)
	assert.Equal(t, "US-TX", regions[len(regions)-1].Code)
}
