package domain

const OffsetCurrency = "USDC"

type GPUUsage struct {
	GPUType string
	Hours   float64
}

type Emissions struct {
	GPUType         string  `json:"gpuType"`
	GPUName         string  `json:"gpuName"`
	Hours           float64 `json:"hours"`
	Region          string  `json:"region"`
	PowerWatts      int     `json:"powerWatts"`
	EnergyKwh       float64 `json:"energyKwh"`
	CarbonIntensity float64 `json:"carbonIntensity"`
	Co2Kg           float64 `json:"co2Kg"`
	Co2Tons         float64 `json:"co2Tons"`
	CreditsNeeded   float64 `json:"creditsNeeded"`
}

type EmissionTotals struct {
	EnergyKwh     float64 `json:"energyKwh"`
	Co2Kg         float64 `json:"co2Kg"`
	Co2Tons       float64 `json:"co2Tons"`
	CreditsNeeded float64 `json:"creditsNeeded"`
}

type BatchEmissions struct {
	Calculations []Emissions    `json:"calculations"`
	Totals       EmissionTotals `json:"totals"`
}

type OffsetEstimate struct {
	CreditsNeeded  float64 `json:"creditsNeeded"`
	PricePerCredit float64 `json:"pricePerCredit"`
	TotalCost      float64 `json:"totalCost"`
	Currency       string  `json:"currency"`
}
