package engine

// TotalMonthlyOverhead sums the resolved monthly figure of every overhead
// record in the snapshot.
func (e *Engine) TotalMonthlyOverhead() float64 {
	var total float64
	for _, ov := range e.Overheads {
		total += e.ResolveMonthlyAmount(ov)
	}
	return total
}

// OverheadPerUnit spreads the total monthly overhead uniformly across the
// configured monthly sales volume.
func (e *Engine) OverheadPerUnit() float64 {
	return safeDiv(e.TotalMonthlyOverhead(), e.Settings.MonthlySalesVolume)
}

// OverheadPerUnitByCategory apportions overhead by the category's overhead
// mix weight and divides by the category's share of sales volume. If either
// mix weight for the category is zero or less the uniform allocator is used
// instead; that fallback is deliberate and relied upon by callers.
func (e *Engine) OverheadPerUnitByCategory(category string) float64 {
	salesMix := e.Settings.SalesMixPercent[category]
	overheadMix := e.Settings.OverheadMixPercent[category]
	if salesMix <= 0 || overheadMix <= 0 {
		return e.OverheadPerUnit()
	}

	categoryShare := e.TotalMonthlyOverhead() * overheadMix / 100
	categoryVolume := e.Settings.MonthlySalesVolume * salesMix / 100
	return safeDiv(categoryShare, categoryVolume)
}
