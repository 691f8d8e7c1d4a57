package domain

import (
	"fmt"
	"sort"
)

const DefaultRegion = "US"

type GPUSpec struct {
	Type       string `json:"type"`
	Name       string `json:"name"`
	PowerWatts int    `json:"powerWatts"`
}

type Region struct {
	Code string `json:"code"`
	// CarbonIntensity is in kg CO2 per kWh.
	CarbonIntensity float64 `json:"carbonIntensity"`
}

type Catalog struct {
	gpus    map[string]GPUSpec
	regions map[string]Region
}

func NewCatalog(gpus []GPUSpec, regions []Region) *Catalog {
	c := &Catalog{
		gpus:    make(map[string]GPUSpec, len(gpus)),
		regions: make(map[string]Region, len(regions)),
	}

	for _, gpu := range gpus {
		c.gpus[gpu.Type] = gpu
	}

	for _, region := range regions {
		c.regions[region.Code] = region
	}

	return c
}

func DefaultCatalog() *Catalog {
	return NewCatalog(
		[]GPUSpec{
			{Type: "A100", Name: "NVIDIA A100", PowerWatts: 400},
			{Type: "H100", Name: "NVIDIA H100", PowerWatts: 700},
			{Type: "V100", Name: "NVIDIA V100", PowerWatts: 300},
			{Type: "A10", Name: "NVIDIA A10", PowerWatts: 150},
			{Type: "T4", Name: "NVIDIA T4", PowerWatts: 70},
			{Type: "RTX4090", Name: "NVIDIA RTX 4090", PowerWatts: 450},
			{Type: "RTX3090", Name: "NVIDIA RTX 3090", PowerWatts: 350},
		},
		[]Region{
			{Code: "US", CarbonIntensity: 0.4},
			{Code: "US-CA", CarbonIntensity: 0.2},
			{Code: "US-TX", CarbonIntensity: 0.5},
			{Code: "EU", CarbonIntensity: 0.1},
			{Code: "China", CarbonIntensity: 0.8},
			{Code: "India", CarbonIntensity: 0.7},
			{Code: "Brazil", CarbonIntensity: 0.15},
			{Code: "Canada", CarbonIntensity: 0.12},
			{Code: "Australia", CarbonIntensity: 0.6},
			{Code: "Japan", CarbonIntensity: 0.45},
			{Code: "Iceland", CarbonIntensity: 0.01},
			{Code: "Norway", CarbonIntensity: 0.02},
			{Code: "Singapore", CarbonIntensity: 0.4},
		},
	)
}

func (c *Catalog) GPU(gpuType string) (GPUSpec, error) {
	gpu, ok := c.gpus[gpuType]
	if !ok {
		return GPUSpec{}, &UnknownGPUError{Msg: fmt.Sprintf("Unknown GPU type: %s", gpuType)}
	}

	return gpu, nil
}

func (c *Catalog) Region(code string) (Region, error) {
	region, ok := c.regions[code]
	if !ok {
		return Region{}, &UnknownRegionError{Msg: fmt.Sprintf("Unknown region: %s", code)}
	}

	return region, nil
}

func (c *Catalog) GPUs() []GPUSpec {
	result := make([]GPUSpec, 0, len(c.gpus))
	for _, gpu := range c.gpus {
		result = append(result, gpu)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Type < result[j].Type })
	return result
}

func (c *Catalog) Regions() []Region {
	result := make([]Region, 0, len(c.regions))
	for _, region := range c.regions {
		result = append(result, region)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result
}
