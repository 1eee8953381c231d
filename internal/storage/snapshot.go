package storage

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/billsplit/internal/models"
)

// snapshotVersion is bumped when the stored document layout changes.
const snapshotVersion = 1

type snapshot struct {
	Version     int              `json:"version"`
	People      []snapshotRecord `json:"people"`
	Events      []snapshotRecord `json:"events"`
	PersonCount int              `json:"personCount"`
	EventCount  int              `json:"eventCount"`
}

type snapshotRecord struct {
	ID       string `json:"id,omitempty"`
	Seq      int    `json:"seq,omitempty"`
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	IsLocked bool   `json:"isLocked"`
}

// EncodeForm serializes a form into the stored JSON document.
func EncodeForm(f *models.Form) ([]byte, error) {
	s := snapshot{
		Version:     snapshotVersion,
		People:      make([]snapshotRecord, 0, len(f.Contributors)),
		Events:      make([]snapshotRecord, 0, len(f.CostEvents)),
		PersonCount: f.ContributorSeq,
		EventCount:  f.CostEventSeq,
	}
	for _, c := range f.Contributors {
		s.People = append(s.People, toSnapshot(c.Record))
	}
	for _, e := range f.CostEvents {
		s.Events = append(s.Events, toSnapshot(e.Record))
	}

	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode form: %w", err)
	}
	return data, nil
}

// DecodeForm rebuilds a form from a stored JSON document, preserving record
// order, IDs and state. Records stored without an ID or sequence number get
// one assigned.
func DecodeForm(data []byte) (*models.Form, error) {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode form: %w", err)
	}
	if s.Version > snapshotVersion {
		return nil, fmt.Errorf("unsupported form version %d", s.Version)
	}

	f := &models.Form{
		ContributorSeq: s.PersonCount,
		CostEventSeq:   s.EventCount,
	}
	for i, sr := range s.People {
		rec := fromSnapshot(sr, i+1)
		f.ContributorSeq = max(f.ContributorSeq, rec.Seq)
		f.Contributors = append(f.Contributors, models.Contributor{Record: rec})
	}
	for i, sr := range s.Events {
		rec := fromSnapshot(sr, i+1)
		f.CostEventSeq = max(f.CostEventSeq, rec.Seq)
		f.CostEvents = append(f.CostEvents, models.CostEvent{Record: rec})
	}
	return f, nil
}

func toSnapshot(r models.Record) snapshotRecord {
	return snapshotRecord{
		ID:       r.ID,
		Seq:      r.Seq,
		Name:     r.Name,
		Amount:   r.Amount,
		IsLocked: r.IsFinalized(),
	}
}

func fromSnapshot(sr snapshotRecord, position int) models.Record {
	rec := models.Record{
		ID:     sr.ID,
		Seq:    sr.Seq,
		Name:   sr.Name,
		Amount: sr.Amount,
		State:  models.Draft,
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Seq <= 0 {
		rec.Seq = position
	}
	if sr.IsLocked {
		rec.State = models.Finalized
	}
	return rec
}
