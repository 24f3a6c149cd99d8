package engine

import (
	"math"

	"github.com/selfbiz/costplan/internal/models"
)

// LoanPayment returns the payment due in the given month of a loan's life.
// amount is the resolved principal, termMonths the full term and elapsedMonth
// the 1-based month since the loan started. Outside [1, termMonths], or with
// nothing borrowed, nothing is due. During the grace period only interest is
// paid regardless of method.
func LoanPayment(terms models.LoanTerms, amount float64, termMonths, elapsedMonth int) float64 {
	if amount <= 0 || termMonths <= 0 {
		return 0
	}
	if elapsedMonth < 1 || elapsedMonth > termMonths {
		return 0
	}

	monthlyRate := terms.AnnualRate / 12 / 100
	if elapsedMonth <= terms.GraceMonths {
		return amount * monthlyRate
	}

	amortizationTerm := termMonths - terms.GraceMonths
	amortizationMonth := elapsedMonth - terms.GraceMonths

	switch terms.Method {
	case models.LoanMethodAnnuity:
		if monthlyRate == 0 {
			return amount / float64(termMonths)
		}
		compound := math.Pow(1+monthlyRate, float64(amortizationTerm))
		return amount * monthlyRate * compound / (compound - 1)

	case models.LoanMethodEqualPrincipal:
		principal := amount / float64(termMonths)
		remaining := amount - principal*float64(amortizationMonth-1)
		return principal + remaining*monthlyRate

	case models.LoanMethodBalloon:
		// principal is settled at maturity, interest only until then
		return amount * monthlyRate

	case models.LoanMethodIncreasing:
		if terms.IncreasingStartPayment <= 0 {
			return 0
		}
		return terms.IncreasingStartPayment * math.Pow(1+terms.IncreasingRate, float64(amortizationMonth-1))

	case models.LoanMethodOther:
		return finite(terms.CustomMonthlyPayment)
	}

	return 0
}
