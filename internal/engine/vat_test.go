package engine

import (
	"testing"

	"github.com/selfbiz/costplan/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDecomposeAmountInclusive(t *testing.T) {
	supply, vat := DecomposeAmount(11000, models.VATModeInclusive, 0.1)
	assert.InDelta(t, 10000, supply, 1e-9)
	assert.InDelta(t, 1000, vat, 1e-9)
}

func TestDecomposeAmountExclusive(t *testing.T) {
	supply, vat := DecomposeAmount(10000, models.VATModeExclusive, 0.1)
	assert.Equal(t, 10000.0, supply)
	assert.InDelta(t, 1000, vat, 1e-9)
}

func TestDecomposeAmountRoundTrip(t *testing.T) {
	for _, amount := range []float64{0, 1, 333, 9999.99, 11000000, 123456789.12} {
		supply, vat := DecomposeAmount(amount, models.VATModeInclusive, 0.1)
		assert.InDelta(t, amount, supply+vat, 1e-6)
	}
}

func TestDecomposeAmountDegenerateRate(t *testing.T) {
	supply, vat := DecomposeAmount(10000, models.VATModeInclusive, -1)
	assert.Equal(t, 0.0, supply)
	assert.Equal(t, 0.0, vat)
}

func TestPeriodMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, PeriodMultiplier(models.PeriodMonthly))
	assert.Equal(t, 3.0, PeriodMultiplier(models.PeriodQuarterly))
	assert.Equal(t, 12.0, PeriodMultiplier(models.PeriodYearly))
	assert.Equal(t, 1.0, PeriodMultiplier("fortnightly"))
}

func TestEstimateTax(t *testing.T) {
	input := TaxInput{
		SalesAmount:    11000000,
		SalesMode:      models.VATModeInclusive,
		PurchaseAmount: 3300000,
		PurchaseMode:   models.VATModeInclusive,
		VATRate:        0.1,
		LaborCost:      2500000,
		OtherCost:      1200000,
		AssumedTaxRate: 6,
		Period:         models.PeriodMonthly,
	}

	estimate := EstimateTax(input)
	assert.InDelta(t, 10000000, estimate.SalesSupply, 1e-6)
	assert.InDelta(t, 1000000, estimate.SalesVAT, 1e-6)
	assert.InDelta(t, 3000000, estimate.PurchaseSupply, 1e-6)
	assert.InDelta(t, 300000, estimate.PurchaseVAT, 1e-6)
	assert.InDelta(t, 700000, estimate.VATPayable, 1e-6)

	profit := 10000000.0 - 3000000 - 2500000 - 1200000
	assert.InDelta(t, profit, estimate.ProfitEstimate, 1e-6)
	assert.InDelta(t, profit*0.06, estimate.AssumedTax, 1e-6)
}

func TestEstimateTaxPeriodScaling(t *testing.T) {
	input := TaxInput{
		SalesAmount:    11000000,
		SalesMode:      models.VATModeInclusive,
		PurchaseAmount: 3300000,
		PurchaseMode:   models.VATModeInclusive,
		VATRate:        0.1,
		Period:         models.PeriodMonthly,
	}

	monthly := EstimateTax(input)

	input.Period = models.PeriodQuarterly
	quarterly := EstimateTax(input)
	assert.InDelta(t, monthly.VATPayable*3, quarterly.VATPayable, 1e-6)
	assert.InDelta(t, monthly.SalesSupply*3, quarterly.SalesSupply, 1e-6)
	assert.InDelta(t, monthly.ProfitEstimate*3, quarterly.ProfitEstimate, 1e-6)

	input.Period = models.PeriodYearly
	yearly := EstimateTax(input)
	assert.InDelta(t, monthly.VATPayable*12, yearly.VATPayable, 1e-6)
	assert.Equal(t, 12.0, yearly.PeriodMultiplier)
}

func TestEstimateTaxRefund(t *testing.T) {
	// purchases exceeding sales yield a negative payable, a refund
	estimate := EstimateTax(TaxInput{
		SalesAmount:    1100000,
		SalesMode:      models.VATModeInclusive,
		PurchaseAmount: 5500000,
		PurchaseMode:   models.VATModeInclusive,
		VATRate:        0.1,
	})
	assert.InDelta(t, -400000, estimate.VATPayable, 1e-6)
}
