package calculator

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/mmynk/billsplit/internal/models"
)

func TestComputeSettlement_NoContributors(t *testing.T) {
	ledgers := []Ledger{
		{},
		{TotalBill: 90},
		Aggregate(
			[]models.Contributor{contributor("Alice", "10", false)},
			[]models.CostEvent{costEvent("Dinner", "10", true)},
		),
	}
	for i, l := range ledgers {
		report, err := ComputeSettlement(l)
		if !errors.Is(err, ErrInsufficientContributors) {
			t.Errorf("ledger %d: err = %v, want ErrInsufficientContributors", i, err)
		}
		if report != nil {
			t.Errorf("ledger %d: expected no report, got %+v", i, report)
		}
	}
}

func TestComputeSettlement_Scenarios(t *testing.T) {
	tests := []struct {
		name         string
		contributors []models.Contributor
		events       []models.CostEvent
		wantGiven    float64
		wantBill     float64
		wantShare    float64
		wantBalances []float64
		wantClasses  []Classification
		wantLines    []string
	}{
		{
			name: "two payers cover one event",
			contributors: []models.Contributor{
				contributor("Alice", "100", true),
				contributor("Bob", "50", true),
			},
			events:       []models.CostEvent{costEvent("Dinner", "150", true)},
			wantGiven:    150,
			wantBill:     150,
			wantShare:    75,
			wantBalances: []float64{25, -25},
			wantClasses:  []Classification{Creditor, Debtor},
			wantLines: []string{
				"Alice GETS BACK BDT 25.00 (Alice is owed)",
				"Bob OWES BDT 25.00 (Bob's required payment)",
			},
		},
		{
			name: "nobody paid anything",
			contributors: []models.Contributor{
				contributor("A", "0", true),
				contributor("B", "0", true),
				contributor("C", "0", true),
			},
			events:       []models.CostEvent{costEvent("Boat", "90", true)},
			wantGiven:    0,
			wantBill:     90,
			wantShare:    30,
			wantBalances: []float64{-30, -30, -30},
			wantClasses:  []Classification{Debtor, Debtor, Debtor},
			wantLines: []string{
				"A OWES BDT 30.00 (A's required payment)",
				"B OWES BDT 30.00 (B's required payment)",
				"C OWES BDT 30.00 (C's required payment)",
			},
		},
		{
			name:         "non-numeric payment with free event",
			contributors: []models.Contributor{contributor("Solo", "abc", true)},
			events:       []models.CostEvent{costEvent("Walk", "0", true)},
			wantShare:    0,
			wantBalances: []float64{0},
			wantClasses:  []Classification{Settled},
			wantLines:    []string{"Solo is settled (Paid BDT 0.00)"},
		},
		{
			name: "no cost events makes everyone a creditor",
			contributors: []models.Contributor{
				contributor("Alice", "20", true),
				contributor("Bob", "5", true),
			},
			wantGiven:    25,
			wantShare:    0,
			wantBalances: []float64{20, 5},
			wantClasses:  []Classification{Creditor, Creditor},
			wantLines: []string{
				"Alice GETS BACK BDT 20.00 (Alice is owed)",
				"Bob GETS BACK BDT 5.00 (Bob is owed)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := ComputeSettlement(Aggregate(tt.contributors, tt.events))
			if err != nil {
				t.Fatalf("ComputeSettlement failed: %v", err)
			}
			if math.Abs(report.TotalGiven-tt.wantGiven) > 0.001 {
				t.Errorf("TotalGiven = %v, want %v", report.TotalGiven, tt.wantGiven)
			}
			if math.Abs(report.TotalBill-tt.wantBill) > 0.001 {
				t.Errorf("TotalBill = %v, want %v", report.TotalBill, tt.wantBill)
			}
			if math.Abs(report.EqualShare-tt.wantShare) > 0.001 {
				t.Errorf("EqualShare = %v, want %v", report.EqualShare, tt.wantShare)
			}
			if len(report.Balances) != len(tt.wantBalances) {
				t.Fatalf("got %d balances, want %d", len(report.Balances), len(tt.wantBalances))
			}
			for i, b := range report.Balances {
				if math.Abs(b.Balance-tt.wantBalances[i]) > 0.001 {
					t.Errorf("%s balance = %v, want %v", b.Name, b.Balance, tt.wantBalances[i])
				}
				if b.Classification != tt.wantClasses[i] {
					t.Errorf("%s classification = %v, want %v", b.Name, b.Classification, tt.wantClasses[i])
				}
				if got := b.Line("BDT"); got != tt.wantLines[i] {
					t.Errorf("line = %q, want %q", got, tt.wantLines[i])
				}
			}
		})
	}
}

func TestComputeSettlement_ZeroSum(t *testing.T) {
	contributors := []models.Contributor{
		contributor("A", "33.33", true),
		contributor("B", "0.1", true),
		contributor("C", "71.7", true),
		contributor("D", "12", false),
	}
	events := []models.CostEvent{
		costEvent("X", "19.99", true),
		costEvent("Y", "53.2", true),
		costEvent("Z", "1000", false),
	}
	report, err := ComputeSettlement(Aggregate(contributors, events))
	if err != nil {
		t.Fatalf("ComputeSettlement failed: %v", err)
	}

	var sum float64
	for _, b := range report.Balances {
		sum += b.Balance
	}
	if math.Abs(sum-report.UnspentAmount) > 1e-9 {
		t.Errorf("sum of balances = %v, want unspent amount %v", sum, report.UnspentAmount)
	}
	if math.Abs(report.UnspentAmount-(report.TotalGiven-report.TotalBill)) > 1e-12 {
		t.Errorf("UnspentAmount = %v, want %v", report.UnspentAmount, report.TotalGiven-report.TotalBill)
	}
}

func TestComputeSettlement_Idempotent(t *testing.T) {
	l := Aggregate(
		[]models.Contributor{contributor("A", "10", true), contributor("B", "0.3", true), contributor("C", "7", true)},
		[]models.CostEvent{costEvent("X", "10.1", true)},
	)
	first, err := ComputeSettlement(l)
	if err != nil {
		t.Fatalf("first ComputeSettlement failed: %v", err)
	}
	second, err := ComputeSettlement(l)
	if err != nil {
		t.Fatalf("second ComputeSettlement failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("reports differ:\n%+v\n%+v", first, second)
	}
}

func TestClassificationBoundary(t *testing.T) {
	// Two people, bill 100: equal share 50. Alice's payment varies,
	// Bob pays the same as Alice so the share is unaffected.
	share := 50.0
	tests := []struct {
		name string
		paid float64
		want Classification
	}{
		{"exact share", share, Settled},
		{"just above", share + 0.011, Creditor},
		{"just below", share - 0.011, Debtor},
		{"inside tolerance", share + 0.009, Settled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Ledger{
				TotalGiven:    tt.paid,
				TotalBill:     100,
				PeopleCount:   2,
				Contributions: []Contribution{{Name: "Alice", Amount: tt.paid}, {Name: "Bob", Amount: 0}},
			}
			report, err := ComputeSettlement(l)
			if err != nil {
				t.Fatalf("ComputeSettlement failed: %v", err)
			}
			if got := report.Balances[0].Classification; got != tt.want {
				t.Errorf("classification = %v, want %v (balance %v)", got, tt.want, report.Balances[0].Balance)
			}
		})
	}
}

func TestCalculatorTolerance(t *testing.T) {
	if got := New(0).Tolerance(); got != DefaultTolerance {
		t.Errorf("New(0).Tolerance() = %v, want %v", got, DefaultTolerance)
	}

	// Whole-unit currency: a 0.4 difference is noise.
	calc := New(0.5)
	l := Ledger{
		TotalGiven:    100.4,
		TotalBill:     100,
		PeopleCount:   1,
		Contributions: []Contribution{{Name: "Alice", Amount: 100.4}},
	}
	report, err := calc.Settle(l)
	if err != nil {
		t.Fatalf("Settle failed: %v", err)
	}
	if got := report.Balances[0].Classification; got != Settled {
		t.Errorf("classification = %v, want settled", got)
	}
}

func TestSettle_RejectsNonFiniteLedger(t *testing.T) {
	tests := []struct {
		name   string
		ledger Ledger
	}{
		{"infinite bill", Ledger{TotalBill: math.Inf(1), PeopleCount: 1, Contributions: []Contribution{{Name: "A"}}}},
		{"NaN given", Ledger{TotalGiven: math.NaN(), PeopleCount: 1, Contributions: []Contribution{{Name: "A"}}}},
		{"infinite contribution", Ledger{PeopleCount: 1, Contributions: []Contribution{{Name: "A", Amount: math.Inf(-1)}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := ComputeSettlement(tt.ledger)
			if !errors.Is(err, ErrNonFiniteAmount) {
				t.Errorf("err = %v, want ErrNonFiniteAmount", err)
			}
			if report != nil {
				t.Errorf("expected no report, got %+v", report)
			}
		})
	}
}
