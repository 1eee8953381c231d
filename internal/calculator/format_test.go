package calculator

import (
	"math"
	"strings"
	"testing"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{75, "75.00"},
		{33.333333, "33.33"},
		{2.675, "2.68"},
		{-25, "-25.00"},
		{-0.001, "0.00"},
		{1234567.891, "1234567.89"},
		{math.Inf(1), "n/a"},
		{math.Inf(-1), "n/a"},
		{math.NaN(), "n/a"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReportLines(t *testing.T) {
	report := &Report{
		TotalGiven:    150,
		TotalBill:     160,
		UnspentAmount: -10,
		PeopleCount:   2,
		EqualShare:    80,
		Balances: []Balance{
			{Name: "Alice", AmountPaid: 100, Balance: 20, Classification: Creditor},
			{Name: "Bob", AmountPaid: 50, Balance: -30, Classification: Debtor},
		},
	}

	want := []string{
		"Total given: BDT 150.00",
		"Total bill: BDT 160.00",
		"Unspent amount: BDT -10.00",
		"People: 2",
		"Equal share: BDT 80.00",
		"Alice GETS BACK BDT 20.00 (Alice is owed)",
		"Bob OWES BDT 30.00 (Bob's required payment)",
	}
	got := report.Lines("BDT")
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(got), len(want), strings.Join(got, "\n"))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}

	var b strings.Builder
	if err := report.Render(&b, ""); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.HasPrefix(b.String(), "Total given: 150.00\n") {
		t.Errorf("unexpected render without currency:\n%s", b.String())
	}
}
