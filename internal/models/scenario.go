package models

// SimulationScenario is a what-if snapshot: it is replayed against the
// current ingredient and overhead state, not against stored results.
type SimulationScenario struct {
	Name           string  `json:"name"`
	MonthlyVolume  float64 `json:"monthly_volume"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	WastePercent   float64 `json:"waste_percent"`
}
