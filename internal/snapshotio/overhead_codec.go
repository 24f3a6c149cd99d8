package snapshotio

import (
	"strconv"
	"strings"

	"github.com/selfbiz/costplan/internal/engine"
	"github.com/selfbiz/costplan/internal/models"
)

// EncodeOverheadDetail flattens an overhead's category payload into the CSV
// detail field.
func EncodeOverheadDetail(ov *models.Overhead) string {
	switch ov.Category {
	case models.OverheadFacility:
		return encodeFacility(ov.Facility)
	case models.OverheadUtilities:
		return encodeUtilities(ov.Utilities)
	case models.OverheadDepreciation:
		return encodeDepreciation(ov.Depreciation)
	default:
		if itemized := ov.Itemized(); itemized != nil {
			return encodeItems(itemized.Items)
		}
	}
	return ""
}

// DecodeOverheadDetail rebuilds the category payload from a CSV detail
// field. Unparseable numerics degrade to 0, matching the engine's coercion.
func DecodeOverheadDetail(id, category, detail string) *models.Overhead {
	ov := &models.Overhead{ID: id, Category: category}
	switch category {
	case models.OverheadFacility:
		ov.Facility = parseFacility(detail)
	case models.OverheadUtilities:
		ov.Utilities = parseUtilities(detail)
	case models.OverheadDepreciation:
		ov.Depreciation = parseDepreciation(detail)
	case models.OverheadLabor:
		ov.Labor = &models.ItemizedDetail{Items: parseItems(detail, "|")}
	case models.OverheadFees:
		ov.Fees = &models.ItemizedDetail{Items: parseItems(detail, "|")}
	case models.OverheadMarketing:
		ov.Marketing = &models.ItemizedDetail{Items: parseItems(detail, "|")}
	case models.OverheadEtc:
		ov.Etc = &models.ItemizedDetail{Items: parseItems(detail, "|")}
	}
	return ov
}

func encodeUtilities(u *models.UtilitiesDetail) string {
	if u == nil {
		return ""
	}
	return encodePairs(map[string]string{
		"electric":      formatFloat(u.Electric),
		"gas":           formatFloat(u.Gas),
		"water":         formatFloat(u.Water),
		"internet":      formatFloat(u.Internet),
		"subscriptions": strings.ReplaceAll(encodeItems(u.Subscriptions), "|", ";"),
		"others":        strings.ReplaceAll(encodeItems(u.Others), "|", ";"),
	})
}

func parseUtilities(detail string) *models.UtilitiesDetail {
	pairs := parsePairs(detail)
	return &models.UtilitiesDetail{
		Electric:      engine.SafeFloat(pairs["electric"]),
		Gas:           engine.SafeFloat(pairs["gas"]),
		Water:         engine.SafeFloat(pairs["water"]),
		Internet:      engine.SafeFloat(pairs["internet"]),
		Subscriptions: parseItems(pairs["subscriptions"], ";"),
		Others:        parseItems(pairs["others"], ";"),
	}
}

func encodeDepreciation(d *models.DepreciationDetail) string {
	if d == nil {
		return ""
	}
	parts := make([]string, 0, len(d.Items))
	for _, item := range d.Items {
		parts = append(parts, strings.Join([]string{
			item.Name,
			encodeDate(item.PurchaseDate),
			item.PaymentMethod,
			formatFloat(item.TotalRepayment),
			formatFloat(item.UsefulMonths),
		}, ":"))
	}
	return strings.Join(parts, "|")
}

func parseDepreciation(detail string) *models.DepreciationDetail {
	d := &models.DepreciationDetail{}
	for _, part := range splitNonEmpty(detail, "|") {
		fields := strings.Split(part, ":")
		if len(fields) < 5 {
			continue
		}
		d.Items = append(d.Items, models.DepreciationItem{
			Name:           fields[0],
			PurchaseDate:   parseDate(fields[1]),
			PaymentMethod:  fields[2],
			TotalRepayment: engine.SafeFloat(fields[3]),
			UsefulMonths:   engine.SafeFloat(fields[4]),
		})
	}
	return d
}

func encodeFacility(f *models.FacilityDetail) string {
	if f == nil {
		return ""
	}
	pairs := map[string]string{"type": f.FacilityType}

	if lease := f.Lease; lease != nil {
		pairs["rent"] = formatFloat(lease.Rent)
		pairs["management_fee"] = formatFloat(lease.ManagementFee)
		pairs["deposit"] = formatFloat(lease.Deposit)
		pairs["contract_start"] = encodeDate(lease.ContractStart)
		pairs["contract_end"] = encodeDate(lease.ContractEnd)
		if dl := lease.DepositLoan; dl != nil {
			pairs["deposit_loan"] = strings.Join([]string{
				formatFloat(dl.Amount),
				formatFloat(dl.AnnualRate),
				encodeDate(dl.Start),
				encodeDate(dl.End),
			}, ":")
		}
	}

	if owned := f.Owned; owned != nil {
		pairs["maintenance"] = formatFloat(owned.Maintenance)
		pairs["purchase_price"] = formatFloat(owned.PurchasePrice)
		pairs["cash_paid"] = formatFloat(owned.CashPaid)
		pairs["property_tax"] = formatFloat(owned.PropertyTaxAnnual)
		pairs["comprehensive_tax"] = formatFloat(owned.ComprehensiveTaxAnnual)
		if loan := owned.Loan; loan != nil {
			amount := ""
			if loan.Amount != nil {
				amount = formatFloat(*loan.Amount)
			}
			pairs["loan"] = strings.Join([]string{
				amount,
				formatFloat(loan.AnnualRate),
				loan.Method,
				encodeDate(loan.Start),
				encodeDate(loan.End),
				strconv.Itoa(loan.GraceMonths),
				formatFloat(loan.IncreasingStartPayment),
				formatFloat(loan.IncreasingRate),
				formatFloat(loan.CustomMonthlyPayment),
			}, ":")
		}
	}

	return encodePairs(pairs)
}

func parseFacility(detail string) *models.FacilityDetail {
	pairs := parsePairs(detail)
	f := &models.FacilityDetail{FacilityType: pairs["type"]}

	switch f.FacilityType {
	case models.FacilityLease:
		lease := &models.LeaseDetail{
			Rent:          engine.SafeFloat(pairs["rent"]),
			ManagementFee: engine.SafeFloat(pairs["management_fee"]),
			Deposit:       engine.SafeFloat(pairs["deposit"]),
			ContractStart: parseDate(pairs["contract_start"]),
			ContractEnd:   parseDate(pairs["contract_end"]),
		}
		if fields := strings.Split(pairs["deposit_loan"], ":"); len(fields) == 4 {
			lease.DepositLoan = &models.DepositLoan{
				Amount:     engine.SafeFloat(fields[0]),
				AnnualRate: engine.SafeFloat(fields[1]),
				Start:      parseDate(fields[2]),
				End:        parseDate(fields[3]),
			}
		}
		f.Lease = lease

	case models.FacilityOwn:
		owned := &models.OwnedDetail{
			Maintenance:            engine.SafeFloat(pairs["maintenance"]),
			PurchasePrice:          engine.SafeFloat(pairs["purchase_price"]),
			CashPaid:               engine.SafeFloat(pairs["cash_paid"]),
			PropertyTaxAnnual:      engine.SafeFloat(pairs["property_tax"]),
			ComprehensiveTaxAnnual: engine.SafeFloat(pairs["comprehensive_tax"]),
		}
		if fields := strings.Split(pairs["loan"], ":"); len(fields) == 9 {
			loan := &models.LoanTerms{
				AnnualRate:             engine.SafeFloat(fields[1]),
				Method:                 fields[2],
				Start:                  parseDate(fields[3]),
				End:                    parseDate(fields[4]),
				GraceMonths:            int(engine.SafeFloat(fields[5])),
				IncreasingStartPayment: engine.SafeFloat(fields[6]),
				IncreasingRate:         engine.SafeFloat(fields[7]),
				CustomMonthlyPayment:   engine.SafeFloat(fields[8]),
			}
			if fields[0] != "" {
				amount := engine.SafeFloat(fields[0])
				loan.Amount = &amount
			}
			owned.Loan = loan
		}
		f.Owned = owned
	}

	return f
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
