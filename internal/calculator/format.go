package calculator

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// invalidAmount is shown in place of a NaN or infinite value.
const invalidAmount = "n/a"

// FormatAmount renders v with exactly two decimal digits.
func FormatAmount(v float64) string {
	if !isFinite(v) {
		return invalidAmount
	}
	d := decimal.NewFromFloat(v).Round(2)
	if d.IsZero() {
		// avoids "-0.00"
		d = decimal.Zero
	}
	return d.StringFixed(2)
}

func money(currency string, v float64) string {
	if currency == "" {
		return FormatAmount(v)
	}
	return currency + " " + FormatAmount(v)
}

// Line renders the balance as a single sentence.
func (b Balance) Line(currency string) string {
	amount := money(currency, b.Reported())
	switch b.Classification {
	case Creditor:
		return fmt.Sprintf("%s GETS BACK %s (%s is owed)", b.Name, amount, b.Name)
	case Debtor:
		return fmt.Sprintf("%s OWES %s (%s's required payment)", b.Name, amount, b.Name)
	default:
		return fmt.Sprintf("%s is settled (Paid %s)", b.Name, amount)
	}
}

// Summary holds the report totals rendered for display.
type Summary struct {
	TotalGiven    string
	TotalBill     string
	UnspentAmount string
	PeopleCount   string
	EqualShare    string
}

// Summary renders the report totals with two decimals.
func (r *Report) Summary(currency string) Summary {
	return Summary{
		TotalGiven:    money(currency, r.TotalGiven),
		TotalBill:     money(currency, r.TotalBill),
		UnspentAmount: money(currency, r.UnspentAmount),
		PeopleCount:   fmt.Sprint(r.PeopleCount),
		EqualShare:    money(currency, r.EqualShare),
	}
}

// Lines renders the whole report, totals first, then one line per contributor.
func (r *Report) Lines(currency string) []string {
	s := r.Summary(currency)
	lines := []string{
		"Total given: " + s.TotalGiven,
		"Total bill: " + s.TotalBill,
		"Unspent amount: " + s.UnspentAmount,
		"People: " + s.PeopleCount,
		"Equal share: " + s.EqualShare,
	}
	for _, b := range r.Balances {
		lines = append(lines, b.Line(currency))
	}
	return lines
}

// Render writes the report lines to w.
func (r *Report) Render(w io.Writer, currency string) error {
	_, err := io.WriteString(w, strings.Join(r.Lines(currency), "\n")+"\n")
	return err
}
