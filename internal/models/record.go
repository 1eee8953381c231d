package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrRecordFinalized = errors.New("record is finalized")
)

// RecordState is the lifecycle state of a record.
type RecordState int

const (
	// Draft records are editable and excluded from calculation.
	Draft RecordState = iota
	// Finalized records are read-only and included in calculation.
	Finalized
)

func (s RecordState) String() string {
	switch s {
	case Draft:
		return "draft"
	case Finalized:
		return "finalized"
	default:
		return fmt.Sprintf("RecordState(%d)", int(s))
	}
}

// Kind tells contributor records apart from cost event records.
type Kind int

const (
	KindContributor Kind = iota + 1
	KindCostEvent
)

func (k Kind) String() string {
	switch k {
	case KindContributor:
		return "contributor"
	case KindCostEvent:
		return "cost_event"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts the wire and CLI spellings of a record kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "contributor", "person", "people":
		return KindContributor, nil
	case "cost_event", "event", "events":
		return KindCostEvent, nil
	default:
		return 0, fmt.Errorf("unknown record kind %q", s)
	}
}

// placeholder returns the name a blank record gets when finalized.
func (k Kind) placeholder(seq int) string {
	if k == KindCostEvent {
		return fmt.Sprintf("Event Name %d", seq)
	}
	return fmt.Sprintf("Person Name %d", seq)
}

// Record holds the fields shared by contributors and cost events.
type Record struct {
	// ID is the stable identifier of the record (UUID format).
	ID string

	// Seq is the 1-based position the record was created at within its list.
	// It never changes, even when earlier records are removed.
	Seq int

	// Name is the display name as entered.
	Name string

	// Amount is the raw amount text as entered. It is parsed leniently
	// at calculation time, so invalid text is kept rather than rejected.
	Amount string

	// State is Draft or Finalized.
	State RecordState
}

// IsFinalized reports whether the record takes part in calculation.
func (r *Record) IsFinalized() bool {
	return r.State == Finalized
}

// Contributor is a person and the amount they paid.
type Contributor struct {
	Record
}

// CostEvent is an expense paid out of the pooled amount.
type CostEvent struct {
	Record
}
