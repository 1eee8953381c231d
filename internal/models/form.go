package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// defaultAmount is the amount text a freshly added row starts with.
const defaultAmount = "0"

// Form is the owned, ordered collection of records behind one calculator.
// It is not safe for concurrent use.
type Form struct {
	// Contributors are the people who paid, in creation order.
	Contributors []Contributor

	// CostEvents are the expenses, in creation order.
	CostEvents []CostEvent

	// ContributorSeq is the highest sequence number handed out to a contributor.
	ContributorSeq int

	// CostEventSeq is the highest sequence number handed out to a cost event.
	CostEventSeq int
}

// NewForm returns a form with one empty draft row in each list.
func NewForm() *Form {
	f := &Form{}
	f.AddContributor()
	f.AddCostEvent()
	return f
}

// EnsureRows adds an empty draft row to each list that is empty and reports
// whether it changed the form.
func (f *Form) EnsureRows() bool {
	changed := false
	if len(f.Contributors) == 0 {
		f.AddContributor()
		changed = true
	}
	if len(f.CostEvents) == 0 {
		f.AddCostEvent()
		changed = true
	}
	return changed
}

// AddContributor appends an empty draft contributor and returns its ID.
func (f *Form) AddContributor() string {
	f.ContributorSeq++
	c := Contributor{Record: newRecord(f.ContributorSeq)}
	f.Contributors = append(f.Contributors, c)
	return c.ID
}

// AddCostEvent appends an empty draft cost event and returns its ID.
func (f *Form) AddCostEvent() string {
	f.CostEventSeq++
	e := CostEvent{Record: newRecord(f.CostEventSeq)}
	f.CostEvents = append(f.CostEvents, e)
	return e.ID
}

// Add appends an empty draft record of the given kind and returns its ID.
func (f *Form) Add(kind Kind) (string, error) {
	switch kind {
	case KindContributor:
		return f.AddContributor(), nil
	case KindCostEvent:
		return f.AddCostEvent(), nil
	default:
		return "", fmt.Errorf("cannot add record of kind %v", kind)
	}
}

func newRecord(seq int) Record {
	return Record{
		ID:     uuid.New().String(),
		Seq:    seq,
		Amount: defaultAmount,
		State:  Draft,
	}
}

// Find returns the record with the given ID and its kind.
func (f *Form) Find(id string) (*Record, Kind, error) {
	for i := range f.Contributors {
		if f.Contributors[i].ID == id {
			return &f.Contributors[i].Record, KindContributor, nil
		}
	}
	for i := range f.CostEvents {
		if f.CostEvents[i].ID == id {
			return &f.CostEvents[i].Record, KindCostEvent, nil
		}
	}
	return nil, 0, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
}

// Edit updates the name and/or amount of a draft record. Nil arguments
// leave the field unchanged.
func (f *Form) Edit(id string, name, amount *string) error {
	rec, _, err := f.Find(id)
	if err != nil {
		return err
	}
	if rec.IsFinalized() {
		return fmt.Errorf("%w: %s", ErrRecordFinalized, id)
	}
	if name != nil {
		rec.Name = *name
	}
	if amount != nil {
		rec.Amount = *amount
	}
	return nil
}

// Toggle flips a record between Draft and Finalized and returns the new
// state. Finalizing a record with a blank name assigns its placeholder.
func (f *Form) Toggle(id string) (RecordState, error) {
	rec, kind, err := f.Find(id)
	if err != nil {
		return 0, err
	}
	if rec.IsFinalized() {
		rec.State = Draft
		return rec.State, nil
	}
	if strings.TrimSpace(rec.Name) == "" {
		rec.Name = kind.placeholder(rec.Seq)
	}
	rec.State = Finalized
	return rec.State, nil
}

// Remove deletes a record. The remaining records keep their order.
func (f *Form) Remove(id string) error {
	for i := range f.Contributors {
		if f.Contributors[i].ID == id {
			f.Contributors = append(f.Contributors[:i], f.Contributors[i+1:]...)
			return nil
		}
	}
	for i := range f.CostEvents {
		if f.CostEvents[i].ID == id {
			f.CostEvents = append(f.CostEvents[:i], f.CostEvents[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrRecordNotFound, id)
}

// HasFinalizedContributor reports whether at least one contributor is finalized.
func (f *Form) HasFinalizedContributor() bool {
	for i := range f.Contributors {
		if f.Contributors[i].IsFinalized() {
			return true
		}
	}
	return false
}

