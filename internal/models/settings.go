package models

// Settings is the fully-resolved analysis configuration. Default filling is
// the loader's job; the engine consumes these values as-is.
type Settings struct {
	TargetMarginPercent   float64            `json:"target_margin_percent"` // 0-90
	RoundingUnit          float64            `json:"rounding_unit"`         // 10 or 100 won
	MonthlySalesVolume    float64            `json:"monthly_sales_volume"`
	IncludeOverheadInCost bool               `json:"include_overhead_in_cost"`
	SalesMixPercent       map[string]float64 `json:"sales_mix_percent"`    // by menu category
	OverheadMixPercent    map[string]float64 `json:"overhead_mix_percent"` // by menu category
}

// DefaultSettings returns the values assumed when a snapshot carries no
// settings record.
func DefaultSettings() Settings {
	return Settings{
		TargetMarginPercent:   30,
		RoundingUnit:          10,
		MonthlySalesVolume:    0,
		IncludeOverheadInCost: true,
		SalesMixPercent:       map[string]float64{},
		OverheadMixPercent:    map[string]float64{},
	}
}
