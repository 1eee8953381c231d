package calculator

import (
	"errors"
	"fmt"
	"math"
)

// DefaultTolerance is the balance magnitude below which a contributor is
// considered settled. It matches two-decimal currency granularity.
const DefaultTolerance = 0.01

// ErrInsufficientContributors is returned when there is no finalized
// contributor to divide the bill by.
var ErrInsufficientContributors = errors.New("at least one finalized contributor is required")

// ErrNonFiniteAmount is returned for a ledger holding NaN or infinite amounts.
// Ledgers built by Aggregate never do.
var ErrNonFiniteAmount = errors.New("ledger amounts must be finite")

// Classification buckets a contributor's balance.
type Classification int

const (
	Settled Classification = iota
	Creditor
	Debtor
)

func (c Classification) String() string {
	switch c {
	case Settled:
		return "settled"
	case Creditor:
		return "creditor"
	case Debtor:
		return "debtor"
	default:
		return fmt.Sprintf("Classification(%d)", int(c))
	}
}

// Balance is one contributor's position after the split.
type Balance struct {
	Name           string
	AmountPaid     float64
	Balance        float64 // AmountPaid - EqualShare; positive means owed money
	Classification Classification
}

// Reported returns the amount shown for the balance: what a creditor gets
// back, what a debtor owes, or what a settled contributor paid.
func (b Balance) Reported() float64 {
	switch b.Classification {
	case Creditor:
		return b.Balance
	case Debtor:
		return math.Abs(b.Balance)
	default:
		return b.AmountPaid
	}
}

// Report is the outcome of settling a Ledger. Values are unrounded.
type Report struct {
	TotalGiven    float64
	TotalBill     float64
	UnspentAmount float64 // TotalGiven - TotalBill; negative is a shortfall
	PeopleCount   int
	EqualShare    float64
	Balances      []Balance
}

// Calculator settles ledgers with a fixed classification tolerance.
type Calculator struct {
	tolerance float64
}

// New returns a Calculator. A non-positive tolerance falls back to
// DefaultTolerance.
func New(tolerance float64) *Calculator {
	if tolerance <= 0 || math.IsNaN(tolerance) {
		tolerance = DefaultTolerance
	}
	return &Calculator{tolerance: tolerance}
}

// Tolerance returns the classification tolerance in use.
func (c *Calculator) Tolerance() float64 {
	return c.tolerance
}

// ComputeSettlement settles a ledger using DefaultTolerance.
func ComputeSettlement(l Ledger) (*Report, error) {
	return New(DefaultTolerance).Settle(l)
}

// Settle computes the equal share and every contributor's balance.
//
// Algorithm:
//   - equal_share = total_bill / people_count
//   - balance = amount_paid - equal_share, per contributor in order
//   - balance > tolerance is a creditor, < -tolerance a debtor, else settled
//
// Unspent money is reported but not folded into the balances.
func (c *Calculator) Settle(l Ledger) (*Report, error) {
	if l.PeopleCount == 0 {
		return nil, ErrInsufficientContributors
	}
	if !l.finite() {
		return nil, ErrNonFiniteAmount
	}

	share := l.TotalBill / float64(l.PeopleCount)
	report := &Report{
		TotalGiven:    l.TotalGiven,
		TotalBill:     l.TotalBill,
		UnspentAmount: l.TotalGiven - l.TotalBill,
		PeopleCount:   l.PeopleCount,
		EqualShare:    share,
		Balances:      make([]Balance, 0, len(l.Contributions)),
	}

	for _, contrib := range l.Contributions {
		balance := contrib.Amount - share
		report.Balances = append(report.Balances, Balance{
			Name:           contrib.Name,
			AmountPaid:     contrib.Amount,
			Balance:        balance,
			Classification: c.classify(balance),
		})
	}
	return report, nil
}

func (c *Calculator) classify(balance float64) Classification {
	switch {
	case balance > c.tolerance:
		return Creditor
	case balance < -c.tolerance:
		return Debtor
	default:
		return Settled
	}
}

func (l Ledger) finite() bool {
	if !isFinite(l.TotalGiven) || !isFinite(l.TotalBill) {
		return false
	}
	for _, c := range l.Contributions {
		if !isFinite(c.Amount) {
			return false
		}
	}
	return true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
