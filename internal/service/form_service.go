package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"connectrpc.com/connect"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/metrics"
	"github.com/mmynk/billsplit/internal/middleware"
	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/storage"
	pb "github.com/mmynk/billsplit/pkg/api"
)

// ErrNoLockedPerson is the user-facing form of
// calculator.ErrInsufficientContributors.
var ErrNoLockedPerson = errors.New("please enter and lock at least one person's details")

var _ pb.FormServiceHandler = (*FormService)(nil)

// FormService implements the Connect FormService. Each caller owns one
// form: signed-in users a private one, anonymous callers the shared one.
type FormService struct {
	forms    *storage.Forms
	calc     *calculator.Calculator
	currency string
	metrics  *metrics.Metrics

	// mu serializes load-modify-save cycles.
	mu sync.Mutex
}

// NewFormService creates a FormService. m may be nil.
func NewFormService(forms *storage.Forms, calc *calculator.Calculator, currency string, m *metrics.Metrics) *FormService {
	return &FormService{
		forms:    forms,
		calc:     calc,
		currency: currency,
		metrics:  m,
	}
}

// load returns the caller's form, storing a fresh one on first use so the
// record IDs it hands out stay valid.
func (s *FormService) load(ctx context.Context, owner string) (*models.Form, error) {
	form, found, err := s.forms.Load(ctx, owner)
	if err != nil {
		return nil, err
	}
	if !found {
		if err := s.forms.Save(ctx, owner, form); err != nil {
			return nil, err
		}
		slog.Info("Created form", "owner", owner)
	}
	return form, nil
}

// mutate applies fn to the caller's form and saves the result.
func (s *FormService) mutate(ctx context.Context, op string, fn func(*models.Form) error) (*models.Form, error) {
	owner := middleware.GetUserID(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	form, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}
	if err := fn(form); err != nil {
		return nil, err
	}
	if err := s.forms.Save(ctx, owner, form); err != nil {
		return nil, err
	}
	s.metrics.ObserveMutation(op)
	return form, nil
}

// settle runs the calculation over the finalized records of form.
func (s *FormService) settle(form *models.Form) (*calculator.Report, error) {
	ledger := calculator.Aggregate(form.Contributors, form.CostEvents)
	report, err := s.calc.Settle(ledger)
	if err != nil {
		s.metrics.ObserveCalculation(metrics.OutcomeInsufficientContributors, 0)
		return nil, err
	}
	s.metrics.ObserveCalculation(metrics.OutcomeOK, report.PeopleCount)

	slog.Debug("Settlement calculated",
		"people", report.PeopleCount,
		"total_given", report.TotalGiven,
		"total_bill", report.TotalBill,
		"equal_share", report.EqualShare,
	)
	return report, nil
}

func (s *FormService) formResponse(form *models.Form, recordID string) *connect.Response[pb.FormResponse] {
	return connect.NewResponse(&pb.FormResponse{
		Form:     formToAPI(form),
		RecordId: recordID,
	})
}

// GetForm restores the caller's form. If any contributor is finalized the
// form is recalculated and the report included.
func (s *FormService) GetForm(ctx context.Context, req *connect.Request[pb.GetFormRequest]) (*connect.Response[pb.FormResponse], error) {
	owner := middleware.GetUserID(ctx)

	s.mu.Lock()
	form, err := s.load(ctx, owner)
	s.mu.Unlock()
	if err != nil {
		slog.Error("GetForm failed", "owner", owner, "error", err)
		return nil, toConnectError(err)
	}

	resp := s.formResponse(form, "")
	if form.HasFinalizedContributor() {
		report, err := s.settle(form)
		if err != nil {
			return nil, toConnectError(err)
		}
		resp.Msg.Report = reportToAPI(report, s.currency)
	}
	return resp, nil
}

// AddRecord appends an empty draft contributor or cost event.
func (s *FormService) AddRecord(ctx context.Context, req *connect.Request[pb.AddRecordRequest]) (*connect.Response[pb.FormResponse], error) {
	kind, err := models.ParseKind(req.Msg.Kind)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	var id string
	form, err := s.mutate(ctx, "add", func(f *models.Form) error {
		var addErr error
		id, addErr = f.Add(kind)
		return addErr
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	slog.Info("Record added", "record_id", id, "kind", kind)
	return s.formResponse(form, id), nil
}

// UpdateRecord edits the name and/or amount of a draft record.
func (s *FormService) UpdateRecord(ctx context.Context, req *connect.Request[pb.UpdateRecordRequest]) (*connect.Response[pb.FormResponse], error) {
	if req.Msg.Id == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("id is required"))
	}

	form, err := s.mutate(ctx, "update", func(f *models.Form) error {
		return f.Edit(req.Msg.Id, req.Msg.Name, req.Msg.Amount)
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return s.formResponse(form, req.Msg.Id), nil
}

// ToggleRecord finalizes a draft record or returns a finalized one to draft.
func (s *FormService) ToggleRecord(ctx context.Context, req *connect.Request[pb.ToggleRecordRequest]) (*connect.Response[pb.FormResponse], error) {
	if req.Msg.Id == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("id is required"))
	}

	var state models.RecordState
	form, err := s.mutate(ctx, "toggle", func(f *models.Form) error {
		var err error
		state, err = f.Toggle(req.Msg.Id)
		return err
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	slog.Info("Record toggled", "record_id", req.Msg.Id, "state", state)
	return s.formResponse(form, req.Msg.Id), nil
}

// RemoveRecord deletes a record.
func (s *FormService) RemoveRecord(ctx context.Context, req *connect.Request[pb.RemoveRecordRequest]) (*connect.Response[pb.FormResponse], error) {
	if req.Msg.Id == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("id is required"))
	}

	form, err := s.mutate(ctx, "remove", func(f *models.Form) error {
		return f.Remove(req.Msg.Id)
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return s.formResponse(form, req.Msg.Id), nil
}

// Calculate settles the caller's form. It fails with failed_precondition
// when no contributor is finalized.
func (s *FormService) Calculate(ctx context.Context, req *connect.Request[pb.CalculateRequest]) (*connect.Response[pb.CalculateResponse], error) {
	owner := middleware.GetUserID(ctx)

	s.mu.Lock()
	form, err := s.load(ctx, owner)
	s.mu.Unlock()
	if err != nil {
		slog.Error("Calculate failed", "owner", owner, "error", err)
		return nil, toConnectError(err)
	}

	report, err := s.settle(form)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.CalculateResponse{
		Report: reportToAPI(report, s.currency),
	}), nil
}

// ResetForm discards the caller's form and starts a fresh one.
func (s *FormService) ResetForm(ctx context.Context, req *connect.Request[pb.ResetFormRequest]) (*connect.Response[pb.FormResponse], error) {
	owner := middleware.GetUserID(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.forms.Reset(ctx, owner); err != nil {
		return nil, toConnectError(err)
	}
	form, err := s.load(ctx, owner)
	if err != nil {
		return nil, toConnectError(err)
	}
	s.metrics.ObserveMutation("reset")
	slog.Info("Form reset", "owner", owner)
	return s.formResponse(form, ""), nil
}

// toConnectError maps domain errors to Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, calculator.ErrInsufficientContributors):
		return connect.NewError(connect.CodeFailedPrecondition, ErrNoLockedPerson)
	case errors.Is(err, models.ErrRecordNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, models.ErrRecordFinalized):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
