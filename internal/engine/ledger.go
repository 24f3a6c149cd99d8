package engine

import (
	"math"

	"github.com/selfbiz/costplan/internal/models"
)

// ResolveMonthlyAmount recomputes an overhead record's monthly figure from
// its detail fields. The stored Amount is never trusted; edits to detail
// fields must always show through on the next read.
func (e *Engine) ResolveMonthlyAmount(ov *models.Overhead) float64 {
	switch ov.Category {
	case models.OverheadFacility:
		return e.facilityMonthly(ov.Facility)
	case models.OverheadUtilities:
		return utilitiesMonthly(ov.Utilities)
	case models.OverheadLabor, models.OverheadFees, models.OverheadMarketing, models.OverheadEtc:
		return itemizedMonthly(ov.Itemized())
	case models.OverheadDepreciation:
		return depreciationMonthly(ov.Depreciation)
	}
	return 0
}

func (e *Engine) facilityMonthly(f *models.FacilityDetail) float64 {
	if f == nil {
		return 0
	}
	switch f.FacilityType {
	case models.FacilityLease:
		return e.leaseMonthly(f.Lease)
	case models.FacilityOwn:
		return e.ownedMonthly(f.Owned)
	}
	return 0
}

func (e *Engine) leaseMonthly(l *models.LeaseDetail) float64 {
	if l == nil {
		return 0
	}
	total := l.Rent + l.ManagementFee
	if contractMonths := MonthsBetween(l.ContractStart, l.ContractEnd); contractMonths > 0 {
		total += l.Deposit / float64(contractMonths)
	}
	return total + e.depositLoanInterest(l.DepositLoan)
}

// depositLoanInterest accrues only while the analysis date sits inside the
// loan window, inclusive on both ends.
func (e *Engine) depositLoanInterest(dl *models.DepositLoan) float64 {
	if dl == nil || dl.Amount <= 0 {
		return 0
	}
	if dl.Start.IsZero() || dl.End.IsZero() {
		return 0
	}
	if e.Now.Before(dl.Start) || e.Now.After(dl.End) {
		return 0
	}
	return dl.Amount * dl.AnnualRate / 12 / 100
}

func (e *Engine) ownedMonthly(o *models.OwnedDetail) float64 {
	if o == nil {
		return 0
	}
	total := o.Maintenance + o.PropertyTaxAnnual/12 + o.ComprehensiveTaxAnnual/12
	return total + e.ownedLoanPayment(o)
}

func (e *Engine) ownedLoanPayment(o *models.OwnedDetail) float64 {
	loan := o.Loan
	if loan == nil {
		return 0
	}
	// an explicitly entered loan amount wins, including an explicit zero
	amount := math.Max(0, o.PurchasePrice-o.CashPaid)
	if loan.Amount != nil {
		amount = *loan.Amount
	}
	termMonths := MonthsBetween(loan.Start, loan.End)
	elapsedMonth := MonthsBetween(loan.Start, e.Now)
	return LoanPayment(*loan, amount, termMonths, elapsedMonth)
}

func utilitiesMonthly(u *models.UtilitiesDetail) float64 {
	if u == nil {
		return 0
	}
	total := u.Electric + u.Gas + u.Water + u.Internet
	for _, item := range u.Subscriptions {
		total += item.Amount
	}
	for _, item := range u.Others {
		total += item.Amount
	}
	return total
}

func itemizedMonthly(d *models.ItemizedDetail) float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, item := range d.Items {
		total += item.Amount
	}
	return total
}

func depreciationMonthly(d *models.DepreciationDetail) float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, item := range d.Items {
		if item.TotalRepayment > 0 && item.UsefulMonths > 0 {
			total += item.TotalRepayment / item.UsefulMonths
		}
	}
	return total
}
