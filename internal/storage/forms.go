package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/billsplit/internal/models"
)

// FormKeyPrefix namespaces stored forms in the key-value store.
const FormKeyPrefix = "billSplitData"

// FormKey returns the key a form is stored under. An empty owner is the
// shared anonymous form.
func FormKey(owner string) string {
	if owner == "" {
		return FormKeyPrefix
	}
	return FormKeyPrefix + "/" + owner
}

// Forms loads and saves forms in a KeyValueStore.
type Forms struct {
	kv KeyValueStore
}

// NewForms creates a form repository backed by kv.
func NewForms(kv KeyValueStore) *Forms {
	return &Forms{kv: kv}
}

// Load returns the owner's stored form. When nothing is stored yet it
// returns a fresh form and false. An empty list in the stored form gets
// one empty row.
func (r *Forms) Load(ctx context.Context, owner string) (*models.Form, bool, error) {
	data, err := r.kv.Get(ctx, FormKey(owner))
	if errors.Is(err, ErrNotFound) {
		return models.NewForm(), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load form: %w", err)
	}

	form, err := DecodeForm(data)
	if err != nil {
		return nil, false, err
	}
	// A list emptied by removals comes back with one empty row, stored
	// right away so its ID stays valid.
	if form.EnsureRows() {
		if err := r.Save(ctx, owner, form); err != nil {
			return nil, false, err
		}
	}
	return form, true, nil
}

// Save stores the owner's form, replacing the previous one.
func (r *Forms) Save(ctx context.Context, owner string, form *models.Form) error {
	data, err := EncodeForm(form)
	if err != nil {
		return err
	}
	if err := r.kv.Put(ctx, FormKey(owner), data); err != nil {
		return fmt.Errorf("failed to save form: %w", err)
	}
	return nil
}

// Reset deletes the owner's stored form.
func (r *Forms) Reset(ctx context.Context, owner string) error {
	if err := r.kv.Delete(ctx, FormKey(owner)); err != nil {
		return fmt.Errorf("failed to reset form: %w", err)
	}
	return nil
}
