package models

const (
	MenuCategoryDrink   = "drink"
	MenuCategoryDessert = "dessert"
	MenuCategoryFood    = "food"
	MenuCategoryBakery  = "bakery"
	MenuCategoryEtc     = "etc"

	TemperatureHot  = "hot"
	TemperatureIce  = "ice"
	TemperatureNone = "none"

	UnitTypeMass   = "g"
	UnitTypeVolume = "ml"
	UnitTypeCount  = "ea"

	OverheadFacility     = "facility"
	OverheadLabor        = "labor"
	OverheadUtilities    = "utilities"
	OverheadFees         = "fees"
	OverheadDepreciation = "depreciation"
	OverheadMarketing    = "marketing"
	OverheadEtc          = "etc"

	FacilityLease = "lease"
	FacilityOwn   = "own"

	LoanMethodAnnuity        = "annuity"
	LoanMethodEqualPrincipal = "equal_principal"
	LoanMethodBalloon        = "balloon"
	LoanMethodIncreasing     = "increasing"
	LoanMethodOther          = "other"

	VATModeInclusive = "inclusive"
	VATModeExclusive = "exclusive"

	PeriodMonthly   = "monthly"
	PeriodQuarterly = "quarterly"
	PeriodYearly    = "yearly"
)

// MenuCategories lists every category the allocator can weight.
var MenuCategories = []string{
	MenuCategoryDrink,
	MenuCategoryDessert,
	MenuCategoryFood,
	MenuCategoryBakery,
	MenuCategoryEtc,
}

// OverheadCategories lists every overhead category the ledger resolves.
var OverheadCategories = []string{
	OverheadFacility,
	OverheadLabor,
	OverheadUtilities,
	OverheadFees,
	OverheadDepreciation,
	OverheadMarketing,
	OverheadEtc,
}
