// Package calculator implements the equal-share bill split: aggregating
// finalized records into a Ledger and settling the Ledger into a Report.
package calculator

import (
	"math"
	"strconv"
	"strings"

	"github.com/mmynk/billsplit/internal/models"
)

// Contribution is the parsed amount one finalized contributor paid.
type Contribution struct {
	Name   string
	Amount float64
}

// Ledger holds the totals of the finalized records of a form.
type Ledger struct {
	TotalGiven    float64
	TotalBill     float64
	PeopleCount   int
	Contributions []Contribution // in contributor order
}

// Aggregate sums the finalized contributors and cost events.
// Draft records are ignored.
func Aggregate(contributors []models.Contributor, events []models.CostEvent) Ledger {
	var l Ledger
	for _, c := range contributors {
		if !c.IsFinalized() {
			continue
		}
		amount := ParseAmount(c.Amount)
		l.TotalGiven += amount
		l.Contributions = append(l.Contributions, Contribution{Name: c.Name, Amount: amount})
	}
	l.PeopleCount = len(l.Contributions)

	for _, e := range events {
		if !e.IsFinalized() {
			continue
		}
		l.TotalBill += ParseAmount(e.Amount)
	}
	return l
}

// MaxAmount is the largest amount a single record may hold. Larger values
// parse as 0 so that sums stay finite and keep cent precision.
const MaxAmount = 1e12

// ParseAmount parses an amount field, returning 0 for anything that is not
// a finite number between 0 and MaxAmount.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > MaxAmount {
		return 0
	}
	return v
}
