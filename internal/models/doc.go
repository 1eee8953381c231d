// Package models defines the domain models for the bill split calculator.
//
// # Records
//
// A form holds two ordered lists of records:
//   - Contributor: a person and the amount they paid into the pot
//   - CostEvent: something the pot paid for and what it cost
//
// Both embed Record, which carries a stable ID, a positional sequence
// number, the name and raw amount text exactly as entered, and a
// RecordState.
//
// # Draft and Finalized
//
// Records start as Draft and move to Finalized with Form.Toggle. Only
// finalized records take part in a calculation. Toggling is reversible
// indefinitely; each finalize re-reads the current field values and fills
// a blank name with the positional placeholder ("Person Name 3").
//
// Finalized records are read-only: Form.Edit refuses them with
// ErrRecordFinalized until they are toggled back to Draft.
//
// # Users
//
// User is an optional account. Signed-in users own a private form;
// anonymous callers share the default one.
package models
