package models

import "time"

// CostItem is one entry of an itemized overhead list (labor, fees,
// marketing, etc, utility subscriptions).
type CostItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// DepreciationItem is a capital purchase expensed straight-line over its
// useful life in months.
type DepreciationItem struct {
	Name           string    `json:"name"`
	PurchaseDate   time.Time `json:"purchase_date"`
	PaymentMethod  string    `json:"payment_method"`
	TotalRepayment float64   `json:"total_repayment"`
	UsefulMonths   float64   `json:"useful_months"`
}

// DepositLoan is a loan taken out to fund a lease deposit. Interest only
// accrues while the analysis date falls inside the loan window.
type DepositLoan struct {
	Amount     float64   `json:"amount"`
	AnnualRate float64   `json:"annual_rate"` // percent per year
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

// LoanTerms describes a facility purchase loan. Amount is a pointer so an
// explicit value, including zero, overrides the purchase-minus-cash default.
type LoanTerms struct {
	Amount                 *float64  `json:"amount,omitempty"`
	AnnualRate             float64   `json:"annual_rate"` // percent per year
	Method                 string    `json:"method"`
	Start                  time.Time `json:"start"`
	End                    time.Time `json:"end"`
	GraceMonths            int       `json:"grace_months"`
	IncreasingStartPayment float64   `json:"increasing_start_payment"`
	IncreasingRate         float64   `json:"increasing_rate"` // monthly growth fraction
	CustomMonthlyPayment   float64   `json:"custom_monthly_payment"`
}

type LeaseDetail struct {
	Rent          float64      `json:"rent"`
	ManagementFee float64      `json:"management_fee"`
	Deposit       float64      `json:"deposit"`
	ContractStart time.Time    `json:"contract_start"`
	ContractEnd   time.Time    `json:"contract_end"`
	DepositLoan   *DepositLoan `json:"deposit_loan,omitempty"`
}

type OwnedDetail struct {
	Maintenance            float64    `json:"maintenance"`
	PurchasePrice          float64    `json:"purchase_price"`
	CashPaid               float64    `json:"cash_paid"`
	Loan                   *LoanTerms `json:"loan,omitempty"`
	PropertyTaxAnnual      float64    `json:"property_tax_annual"`
	ComprehensiveTaxAnnual float64    `json:"comprehensive_tax_annual"`
}

type FacilityDetail struct {
	FacilityType string       `json:"facility_type"` // lease or own
	Lease        *LeaseDetail `json:"lease,omitempty"`
	Owned        *OwnedDetail `json:"owned,omitempty"`
}

type UtilitiesDetail struct {
	Electric      float64    `json:"electric"`
	Gas           float64    `json:"gas"`
	Water         float64    `json:"water"`
	Internet      float64    `json:"internet"`
	Subscriptions []CostItem `json:"subscriptions"`
	Others        []CostItem `json:"others"`
}

type ItemizedDetail struct {
	Items []CostItem `json:"items"`
}

type DepreciationDetail struct {
	Items []DepreciationItem `json:"items"`
}

// Overhead is a tagged union: Category selects which detail pointer is set.
// Amount holds the last resolved monthly figure for display, but readers must
// recompute it from the detail fields rather than trust the stored value.
type Overhead struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`

	Facility     *FacilityDetail     `json:"facility,omitempty"`
	Utilities    *UtilitiesDetail    `json:"utilities,omitempty"`
	Labor        *ItemizedDetail     `json:"labor,omitempty"`
	Fees         *ItemizedDetail     `json:"fees,omitempty"`
	Marketing    *ItemizedDetail     `json:"marketing,omitempty"`
	Etc          *ItemizedDetail     `json:"etc,omitempty"`
	Depreciation *DepreciationDetail `json:"depreciation,omitempty"`
}

// Itemized returns the itemized detail matching the overhead's category, or
// nil for categories with structured payloads.
func (o *Overhead) Itemized() *ItemizedDetail {
	switch o.Category {
	case OverheadLabor:
		return o.Labor
	case OverheadFees:
		return o.Fees
	case OverheadMarketing:
		return o.Marketing
	case OverheadEtc:
		return o.Etc
	}
	return nil
}
