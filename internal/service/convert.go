package service

import (
	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/models"
	pb "github.com/mmynk/billsplit/pkg/api"
)

func recordToAPI(r models.Record) *pb.Record {
	return &pb.Record{
		Id:     r.ID,
		Seq:    r.Seq,
		Name:   r.Name,
		Amount: r.Amount,
		State:  r.State.String(),
	}
}

func formToAPI(f *models.Form) *pb.Form {
	out := &pb.Form{
		Contributors: make([]*pb.Record, len(f.Contributors)),
		CostEvents:   make([]*pb.Record, len(f.CostEvents)),
	}
	for i, c := range f.Contributors {
		out.Contributors[i] = recordToAPI(c.Record)
	}
	for i, e := range f.CostEvents {
		out.CostEvents[i] = recordToAPI(e.Record)
	}
	return out
}

func reportToAPI(r *calculator.Report, currency string) *pb.Report {
	summary := r.Summary(currency)
	out := &pb.Report{
		Currency:      currency,
		TotalGiven:    r.TotalGiven,
		TotalBill:     r.TotalBill,
		UnspentAmount: r.UnspentAmount,
		PeopleCount:   r.PeopleCount,
		EqualShare:    r.EqualShare,
		Balances:      make([]*pb.Balance, len(r.Balances)),
		Display: pb.ReportDisplay{
			TotalGiven:    summary.TotalGiven,
			TotalBill:     summary.TotalBill,
			UnspentAmount: summary.UnspentAmount,
			PeopleCount:   summary.PeopleCount,
			EqualShare:    summary.EqualShare,
		},
	}
	for i, b := range r.Balances {
		out.Balances[i] = &pb.Balance{
			Name:           b.Name,
			AmountPaid:     b.AmountPaid,
			Balance:        b.Balance,
			Classification: b.Classification.String(),
			Reported:       calculator.FormatAmount(b.Reported()),
			Line:           b.Line(currency),
		}
	}
	return out
}

func userToAPI(u *models.User) *pb.User {
	return &pb.User{
		Id:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}
