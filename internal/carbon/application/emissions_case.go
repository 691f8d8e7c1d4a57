package application

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/tbetti/solana-carbon-wallet/internal/carbon/domain"
)

const (
	DefaultPricePerCredit = 15.0

	energyPrecision = 4
	massPrecision   = 4
	tonsPrecision   = 6
	costPrecision   = 2
)

type EmissionsCase struct {
	catalog *domain.Catalog
}

func NewEmissionsCase(catalog *domain.Catalog) *EmissionsCase {
	return &EmissionsCase{
		catalog: catalog,
	}
}

func (ec *EmissionsCase) CalculateEmissions(gpuType string, hours float64, region string) (domain.Emissions, error) {
	if region == "" {
		region = domain.DefaultRegion
	}

	gpu, err := ec.catalog.GPU(gpuType)
	if err != nil {
		return domain.Emissions{}, err
	}

	intensity, err := ec.catalog.Region(region)
	if err != nil {
		return domain.Emissions{}, err
	}

	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return domain.Emissions{}, &domain.InvalidUsageError{Msg: "Hours must be greater than 0"}
	}

	energyKwh := float64(gpu.PowerWatts) / 1000 * hours
	co2Kg := energyKwh * intensity.CarbonIntensity
	co2Tons := co2Kg / 1000

	return domain.Emissions{
		GPUType:         gpu.Type,
		GPUName:         gpu.Name,
		Hours:           hours,
		Region:          intensity.Code,
		PowerWatts:      gpu.PowerWatts,
		EnergyKwh:       round(energyKwh, energyPrecision),
		CarbonIntensity: intensity.CarbonIntensity,
		Co2Kg:           round(co2Kg, massPrecision),
		Co2Tons:         round(co2Tons, tonsPrecision),
		CreditsNeeded:   round(co2Tons, tonsPrecision),
	}, nil
}

// CalculateBatch fails on the first invalid session; totals are sums of the
// rounded per-session values.
func (ec *EmissionsCase) CalculateBatch(usages []domain.GPUUsage, region string) (domain.BatchEmissions, error) {
	if len(usages) == 0 {
		return domain.BatchEmissions{}, &domain.InvalidUsageError{Msg: "Sessions array is required and must not be empty"}
	}

	calculations := make([]domain.Emissions, 0, len(usages))
	totalCo2Kg := decimal.Zero
	totalEnergyKwh := decimal.Zero

	for _, usage := range usages {
		calc, err := ec.CalculateEmissions(usage.GPUType, usage.Hours, region)
		if err != nil {
			return domain.BatchEmissions{}, err
		}

		calculations = append(calculations, calc)
		totalCo2Kg = totalCo2Kg.Add(decimal.NewFromFloat(calc.Co2Kg))
		totalEnergyKwh = totalEnergyKwh.Add(decimal.NewFromFloat(calc.EnergyKwh))
	}

	totalTons := totalCo2Kg.Div(decimal.NewFromInt(1000)).Round(tonsPrecision).InexactFloat64()

	return domain.BatchEmissions{
		Calculations: calculations,
		Totals: domain.EmissionTotals{
			EnergyKwh:     totalEnergyKwh.Round(energyPrecision).InexactFloat64(),
			Co2Kg:         totalCo2Kg.Round(massPrecision).InexactFloat64(),
			Co2Tons:       totalTons,
			CreditsNeeded: totalTons,
		},
	}, nil
}

func (ec *EmissionsCase) EstimateOffsetCost(creditsNeeded, pricePerCredit float64) (domain.OffsetEstimate, error) {
	if math.IsNaN(creditsNeeded) || math.IsInf(creditsNeeded, 0) || creditsNeeded <= 0 {
		return domain.OffsetEstimate{}, &domain.InvalidUsageError{Msg: "creditsNeeded must be greater than 0"}
	}

	if pricePerCredit == 0 {
		pricePerCredit = DefaultPricePerCredit
	}

	if math.IsNaN(pricePerCredit) || math.IsInf(pricePerCredit, 0) || pricePerCredit < 0 {
		return domain.OffsetEstimate{}, &domain.InvalidUsageError{Msg: "pricePerCredit must be greater than 0"}
	}

	totalCost := decimal.NewFromFloat(creditsNeeded).
		Mul(decimal.NewFromFloat(pricePerCredit)).
		Round(costPrecision)

	return domain.OffsetEstimate{
		CreditsNeeded:  creditsNeeded,
		PricePerCredit: pricePerCredit,
		TotalCost:      totalCost.InexactFloat64(),
		Currency:       domain.OffsetCurrency,
	}, nil
}

func (ec *EmissionsCase) AvailableGPUs() []domain.GPUSpec {
	return ec.catalog.GPUs()
}

func (ec *EmissionsCase) AvailableRegions() []domain.Region {
	return ec.catalog.Regions()
}

func round(value float64, places int32) float64 {
	return decimal.NewFromFloat(value).Round(places).InexactFloat64()
}
