package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/elia-nu/geo-sub002/internal/domain/leave"
)

// Monthly progressive income tax brackets. Each bracket applies its rate
// to the whole taxable amount and subtracts a fixed correction, which
// keeps the schedule continuous at the boundaries.
type taxBracket struct {
	upTo       decimal.Decimal // zero means no upper bound
	rate       decimal.Decimal
	correction decimal.Decimal
}

var taxBrackets = []taxBracket{
	{upTo: decimal.NewFromInt(2000), rate: decimal.Zero, correction: decimal.Zero},
	{upTo: decimal.NewFromInt(4000), rate: decimal.NewFromFloat(0.15), correction: decimal.NewFromInt(300)},
	{upTo: decimal.NewFromInt(7000), rate: decimal.NewFromFloat(0.20), correction: decimal.NewFromInt(500)},
	{upTo: decimal.NewFromInt(10000), rate: decimal.NewFromFloat(0.25), correction: decimal.NewFromInt(850)},
	{upTo: decimal.NewFromInt(14000), rate: decimal.NewFromFloat(0.30), correction: decimal.NewFromInt(1350)},
	{upTo: decimal.Zero, rate: decimal.NewFromFloat(0.35), correction: decimal.NewFromInt(2050)},
}

var (
	employeePensionRate = decimal.NewFromFloat(0.07)
	employerPensionRate = decimal.NewFromFloat(0.11)
)

// IncomeTax computes the monthly progressive income tax on a taxable
// amount. The result is never negative.
func IncomeTax(taxable decimal.Decimal) decimal.Decimal {
	for _, b := range taxBrackets {
		if b.upTo.IsZero() || taxable.LessThanOrEqual(b.upTo) {
			tax := taxable.Mul(b.rate).Sub(b.correction)
			if tax.IsNegative() {
				return decimal.Zero
			}
			return tax
		}
	}
	return decimal.Zero
}

// DeductionDays counts penalized days in a month: days where the employee
// has no recorded check-in and an unapproved (pending or rejected) leave
// request covers the date. Every calendar day of the month is scanned,
// weekends and holidays included. The reconciler excuses those days, but
// the deduction scan deliberately does not, so an unresolved or rejected
// leave claim is penalized wherever it falls.
func DeductionDays(year int, month time.Month, checkedIn map[string]bool, unapproved []leave.Request) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := 0
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		if checkedIn[d.Format(time.DateOnly)] {
			continue
		}
		for i := range unapproved {
			if unapproved[i].Covers(d) {
				days++
				break
			}
		}
	}
	return days
}

// computation holds the unrounded figures for one employee-period.
// Rounding to 2 decimal places happens only when the exposed line or
// estimate is assembled.
type computation struct {
	gross              decimal.Decimal
	adjustedGross      decimal.Decimal
	deductionDays      int
	deductionAmount    decimal.Decimal
	employeePension    decimal.Decimal
	employerPension    decimal.Decimal
	incomeTax          decimal.Decimal
	transportAllowance decimal.Decimal
	net                decimal.Decimal
}

// compute runs the full adjusted pipeline. A zero totalWorkingDays yields
// a zero daily rate rather than a division by zero.
func compute(gross, transport decimal.Decimal, totalWorkingDays, deductionDays int) computation {
	var dailyRate decimal.Decimal
	if totalWorkingDays > 0 {
		dailyRate = gross.Div(decimal.NewFromInt(int64(totalWorkingDays)))
	}

	deductionAmount := dailyRate.Mul(decimal.NewFromInt(int64(deductionDays)))
	adjusted := gross.Sub(deductionAmount)
	if adjusted.IsNegative() {
		adjusted = decimal.Zero
	}

	c := computation{
		gross:              gross,
		adjustedGross:      adjusted,
		deductionDays:      deductionDays,
		deductionAmount:    deductionAmount,
		transportAllowance: transport,
	}
	c.employeePension = adjusted.Mul(employeePensionRate)
	c.employerPension = adjusted.Mul(employerPensionRate)
	c.incomeTax = IncomeTax(adjusted)
	c.net = adjusted.Sub(c.incomeTax.Add(c.employeePension)).Add(transport)
	return c
}

// computeUnadjusted applies tax and pension directly to the raw gross
// with no deduction scan.
func computeUnadjusted(gross, transport decimal.Decimal) computation {
	return compute(gross, transport, 0, 0)
}
