package engine

import (
	"testing"

	"github.com/selfbiz/costplan/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestLoanPaymentAnnuity(t *testing.T) {
	terms := models.LoanTerms{AnnualRate: 6, Method: models.LoanMethodAnnuity}

	// 100M at 6% over 120 months, standard annuity
	payment := LoanPayment(terms, 100000000, 120, 1)
	assert.InDelta(t, 1110205, payment, 1)

	// every month of an annuity costs the same
	assert.Equal(t, payment, LoanPayment(terms, 100000000, 120, 60))
	assert.Equal(t, payment, LoanPayment(terms, 100000000, 120, 120))
}

func TestLoanPaymentAnnuityZeroRate(t *testing.T) {
	terms := models.LoanTerms{AnnualRate: 0, Method: models.LoanMethodAnnuity}
	assert.Equal(t, 12000000.0/120, LoanPayment(terms, 12000000, 120, 5))
}

func TestLoanPaymentEqualPrincipal(t *testing.T) {
	terms := models.LoanTerms{AnnualRate: 12, Method: models.LoanMethodEqualPrincipal}

	// r = 1% monthly, principal slice 10000 per month on 120000 over 12 months
	first := LoanPayment(terms, 120000, 12, 1)
	assert.InDelta(t, 10000+120000*0.01, first, 1e-9)

	second := LoanPayment(terms, 120000, 12, 2)
	assert.InDelta(t, 10000+110000*0.01, second, 1e-9)

	last := LoanPayment(terms, 120000, 12, 12)
	assert.InDelta(t, 10000+10000*0.01, last, 1e-9)
	assert.Greater(t, first, last)
}

func TestLoanPaymentBalloon(t *testing.T) {
	terms := models.LoanTerms{AnnualRate: 6, Method: models.LoanMethodBalloon}
	want := 50000000 * 6.0 / 12 / 100
	assert.Equal(t, want, LoanPayment(terms, 50000000, 36, 1))
	assert.Equal(t, want, LoanPayment(terms, 50000000, 36, 36))
}

func TestLoanPaymentIncreasing(t *testing.T) {
	terms := models.LoanTerms{
		Method:                 models.LoanMethodIncreasing,
		IncreasingStartPayment: 100000,
		IncreasingRate:         0.02,
	}
	assert.InDelta(t, 100000, LoanPayment(terms, 10000000, 60, 1), 1e-9)
	assert.InDelta(t, 102000, LoanPayment(terms, 10000000, 60, 2), 1e-9)
	assert.InDelta(t, 100000*1.02*1.02, LoanPayment(terms, 10000000, 60, 3), 1e-9)

	terms.IncreasingStartPayment = 0
	assert.Equal(t, 0.0, LoanPayment(terms, 10000000, 60, 1))
}

func TestLoanPaymentOther(t *testing.T) {
	terms := models.LoanTerms{Method: models.LoanMethodOther, CustomMonthlyPayment: 777000}
	assert.Equal(t, 777000.0, LoanPayment(terms, 10000000, 60, 10))
}

func TestLoanPaymentGracePeriod(t *testing.T) {
	terms := models.LoanTerms{
		AnnualRate:  6,
		Method:      models.LoanMethodAnnuity,
		GraceMonths: 12,
	}

	// interest only during grace, whatever the method
	assert.Equal(t, 100000000*0.005, LoanPayment(terms, 100000000, 120, 1))
	assert.Equal(t, 100000000*0.005, LoanPayment(terms, 100000000, 120, 12))

	// after grace the annuity amortizes over the remaining 108 months
	after := LoanPayment(terms, 100000000, 120, 13)
	assert.Greater(t, after, 100000000*0.005)
	assert.Equal(t, after, LoanPayment(terms, 100000000, 120, 120))
}

func TestLoanPaymentWindowAndGuards(t *testing.T) {
	terms := models.LoanTerms{AnnualRate: 6, Method: models.LoanMethodAnnuity}

	assert.Equal(t, 0.0, LoanPayment(terms, 100000000, 120, 0))
	assert.Equal(t, 0.0, LoanPayment(terms, 100000000, 120, -1))
	assert.Equal(t, 0.0, LoanPayment(terms, 100000000, 120, 121))
	assert.Equal(t, 0.0, LoanPayment(terms, 0, 120, 1))
	assert.Equal(t, 0.0, LoanPayment(terms, -5000, 120, 1))
	assert.Equal(t, 0.0, LoanPayment(terms, 100000000, 0, 1))

	terms.Method = "no_such_method"
	assert.Equal(t, 0.0, LoanPayment(terms, 100000000, 120, 1))
}
