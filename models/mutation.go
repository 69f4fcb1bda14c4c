package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// MutationKind names the change a Mutation applies to the dataset.
type MutationKind string

const (
	SetProfile   MutationKind = "profile.set"
	SetGoals     MutationKind = "goals.set"
	AddEntry     MutationKind = "entry.add"
	DeleteEntry  MutationKind = "entry.delete"
	ResetDataset MutationKind = "dataset.reset"
)

// ErrUnknownMutationKind is returned by Dataset.Apply for kinds it does not know.
var ErrUnknownMutationKind = errors.New("unknown mutation kind")

// Mutation is a single local change. It is applied to the local snapshot
// immediately and stays in the pending queue until a sync that carried it
// succeeds.
type Mutation struct {
	ID        string          `json:"id"`
	Kind      MutationKind    `json:"kind"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// DeleteEntryPayload is the payload of a DeleteEntry mutation.
type DeleteEntryPayload struct {
	EntryID string `json:"entry_id"`
}

// NewMutation marshals payload and builds a mutation of the given kind.
func NewMutation(id string, kind MutationKind, payload any, at time.Time) (Mutation, error) {
	m := Mutation{ID: id, Kind: kind, CreatedAt: at}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return Mutation{}, fmt.Errorf("marshal %s payload: %w", kind, err)
		}
		m.Payload = raw
	}
	return m, nil
}

// Apply returns a copy of d with m applied. d itself is never modified, so a
// failed Apply leaves the caller's snapshot intact.
func (d Dataset) Apply(m Mutation) (Dataset, error) {
	next := d.Clone()

	switch m.Kind {
	case SetProfile:
		var p Profile
		if err := json.Unmarshal(m.Payload, &p); err != nil {
			return d, fmt.Errorf("decode profile payload: %w", err)
		}
		next.Profile = &p

	case SetGoals:
		var g Goals
		if err := json.Unmarshal(m.Payload, &g); err != nil {
			return d, fmt.Errorf("decode goals payload: %w", err)
		}
		next.Goals = &g

	case AddEntry:
		var e Entry
		if err := json.Unmarshal(m.Payload, &e); err != nil {
			return d, fmt.Errorf("decode entry payload: %w", err)
		}
		if idx := next.FindEntry(e.ID); idx >= 0 {
			next.Entries[idx] = e
		} else {
			next.Entries = append(next.Entries, e)
		}

	case DeleteEntry:
		var p DeleteEntryPayload
		if err := json.Unmarshal(m.Payload, &p); err != nil {
			return d, fmt.Errorf("decode delete payload: %w", err)
		}
		if idx := next.FindEntry(p.EntryID); idx >= 0 {
			next.Entries = append(next.Entries[:idx], next.Entries[idx+1:]...)
		}

	case ResetDataset:
		next = NewDataset()

	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownMutationKind, m.Kind)
	}

	next.UpdatedAt = m.CreatedAt
	return next, nil
}
