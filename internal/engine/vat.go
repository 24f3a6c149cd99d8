package engine

import "github.com/selfbiz/costplan/internal/models"

// TaxInput collects the raw amounts for the standalone VAT and income-tax
// estimate. Rates: VATRate is a fraction (0.1 for Korean VAT), AssumedTaxRate
// a percent.
type TaxInput struct {
	SalesAmount    float64 `json:"sales_amount"`
	SalesMode      string  `json:"sales_mode"`
	PurchaseAmount float64 `json:"purchase_amount"`
	PurchaseMode   string  `json:"purchase_mode"`
	VATRate        float64 `json:"vat_rate"`
	LaborCost      float64 `json:"labor_cost"`
	OtherCost      float64 `json:"other_cost"`
	AssumedTaxRate float64 `json:"assumed_tax_rate"`
	Period         string  `json:"period"`
}

type TaxEstimate struct {
	Period           string  `json:"period"`
	PeriodMultiplier float64 `json:"period_multiplier"`
	SalesSupply      float64 `json:"sales_supply"`
	SalesVAT         float64 `json:"sales_vat"`
	PurchaseSupply   float64 `json:"purchase_supply"`
	PurchaseVAT      float64 `json:"purchase_vat"`
	VATPayable       float64 `json:"vat_payable"` // negative means a refund
	ProfitEstimate   float64 `json:"profit_estimate"`
	AssumedTax       float64 `json:"assumed_tax"`
}

// DecomposeAmount splits an amount into supply price and VAT. In inclusive
// mode the amount already contains VAT; in exclusive mode VAT is added on top.
func DecomposeAmount(amount float64, mode string, rate float64) (supply, vat float64) {
	amount = finite(amount)
	if 1+rate <= 0 {
		return 0, 0
	}
	if mode == models.VATModeInclusive {
		supply = amount / (1 + rate)
		return supply, amount - supply
	}
	return amount, amount * rate
}

// PeriodMultiplier maps a reporting period to its month count. Unknown
// periods fall back to monthly.
func PeriodMultiplier(period string) float64 {
	switch period {
	case models.PeriodQuarterly:
		return 3
	case models.PeriodYearly:
		return 12
	}
	return 1
}

// EstimateTax computes payable VAT and a naive profit-tax estimate, then
// scales every output by the period multiplier.
func EstimateTax(input TaxInput) TaxEstimate {
	salesSupply, salesVAT := DecomposeAmount(input.SalesAmount, input.SalesMode, input.VATRate)
	purchaseSupply, purchaseVAT := DecomposeAmount(input.PurchaseAmount, input.PurchaseMode, input.VATRate)

	laborCost := finite(input.LaborCost)
	otherCost := finite(input.OtherCost)

	profit := salesSupply - purchaseSupply - laborCost - otherCost
	assumedTax := profit * finite(input.AssumedTaxRate) / 100

	multiplier := PeriodMultiplier(input.Period)
	return TaxEstimate{
		Period:           input.Period,
		PeriodMultiplier: multiplier,
		SalesSupply:      salesSupply * multiplier,
		SalesVAT:         salesVAT * multiplier,
		PurchaseSupply:   purchaseSupply * multiplier,
		PurchaseVAT:      purchaseVAT * multiplier,
		VATPayable:       (salesVAT - purchaseVAT) * multiplier,
		ProfitEstimate:   profit * multiplier,
		AssumedTax:       assumedTax * multiplier,
	}
}
