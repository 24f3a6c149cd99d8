package factories

import (
	"time"

	"github.com/lucsky/cuid"
	"github.com/selfbiz/costplan/internal/models"
)

type OverheadFactory struct{}

// CreateOverheads produces one record per category so a seeded snapshot
// exercises every ledger branch.
func (f *OverheadFactory) CreateOverheads(now time.Time) []*models.Overhead {
	return []*models.Overhead{
		f.createFacility(now),
		f.createUtilities(),
		f.createItemized(models.OverheadLabor, []string{"Barista A", "Barista B", "Part-timer"}),
		f.createItemized(models.OverheadFees, []string{"Card processing", "Delivery platform", "Accounting"}),
		f.createItemized(models.OverheadMarketing, []string{"Social ads", "Local flyers"}),
		f.createItemized(models.OverheadEtc, []string{"Insurance", "Pest control"}),
		f.createDepreciation(now),
	}
}

func (f *OverheadFactory) createFacility(now time.Time) *models.Overhead {
	contractStart := now.AddDate(0, -fake.IntBetween(1, 12), 0)
	facility := &models.FacilityDetail{
		FacilityType: models.FacilityLease,
		Lease: &models.LeaseDetail{
			Rent:          float64(fake.IntBetween(8, 30)) * 100000,
			ManagementFee: float64(fake.IntBetween(1, 5)) * 100000,
			Deposit:       float64(fake.IntBetween(10, 50)) * 1000000,
			ContractStart: contractStart,
			ContractEnd:   contractStart.AddDate(2, 0, 0),
		},
	}

	if fake.Bool() {
		facility.FacilityType = models.FacilityOwn
		purchasePrice := float64(fake.IntBetween(200, 800)) * 1000000
		facility.Lease = nil
		facility.Owned = &models.OwnedDetail{
			Maintenance:            float64(fake.IntBetween(1, 5)) * 100000,
			PurchasePrice:          purchasePrice,
			CashPaid:               purchasePrice * float64(fake.IntBetween(20, 60)) / 100,
			PropertyTaxAnnual:      float64(fake.IntBetween(10, 40)) * 100000,
			ComprehensiveTaxAnnual: float64(fake.IntBetween(5, 20)) * 100000,
			Loan: &models.LoanTerms{
				AnnualRate: float64(fake.IntBetween(30, 70)) / 10,
				Method:     models.LoanMethodAnnuity,
				Start:      now.AddDate(0, -fake.IntBetween(2, 24), 0),
				End:        now.AddDate(10, 0, 0),
			},
		}
	}

	return &models.Overhead{
		ID:       cuid.New(),
		Category: models.OverheadFacility,
		Facility: facility,
	}
}

func (f *OverheadFactory) createUtilities() *models.Overhead {
	return &models.Overhead{
		ID:       cuid.New(),
		Category: models.OverheadUtilities,
		Utilities: &models.UtilitiesDetail{
			Electric: float64(fake.IntBetween(10, 40)) * 10000,
			Gas:      float64(fake.IntBetween(3, 15)) * 10000,
			Water:    float64(fake.IntBetween(2, 8)) * 10000,
			Internet: float64(fake.IntBetween(3, 6)) * 10000,
			Subscriptions: []models.CostItem{
				{Name: "POS software", Amount: float64(fake.IntBetween(2, 8)) * 10000},
				{Name: "Music streaming", Amount: float64(fake.IntBetween(1, 3)) * 10000},
			},
		},
	}
}

func (f *OverheadFactory) createItemized(category string, names []string) *models.Overhead {
	items := make([]models.CostItem, len(names))
	for i, name := range names {
		items[i] = models.CostItem{
			Name:   name,
			Amount: float64(fake.IntBetween(5, 250)) * 10000,
		}
	}

	ov := &models.Overhead{ID: cuid.New(), Category: category}
	detail := &models.ItemizedDetail{Items: items}
	switch category {
	case models.OverheadLabor:
		ov.Labor = detail
	case models.OverheadFees:
		ov.Fees = detail
	case models.OverheadMarketing:
		ov.Marketing = detail
	case models.OverheadEtc:
		ov.Etc = detail
	}
	return ov
}

func (f *OverheadFactory) createDepreciation(now time.Time) *models.Overhead {
	equipment := []string{"Espresso machine", "Grinder", "Refrigerator", "Oven"}
	items := make([]models.DepreciationItem, len(equipment))
	for i, name := range equipment {
		items[i] = models.DepreciationItem{
			Name:           name,
			PurchaseDate:   now.AddDate(0, -fake.IntBetween(1, 36), 0),
			PaymentMethod:  []string{"card", "cash", "installment"}[fake.IntBetween(0, 2)],
			TotalRepayment: float64(fake.IntBetween(50, 1500)) * 10000,
			UsefulMonths:   float64(fake.IntBetween(24, 84)),
		}
	}

	return &models.Overhead{
		ID:           cuid.New(),
		Category:     models.OverheadDepreciation,
		Depreciation: &models.DepreciationDetail{Items: items},
	}
}
