package validators

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/fit-sync/models"
)

// Field name constants used to scope mutation validation.
const (
	FieldMutationID = "id"
	FieldKind       = "kind"
	FieldPayload    = "payload"
	FieldCreatedAt  = "created_at"
)

var allowedEntryTypes = []models.EntryType{
	models.Workout,
	models.Meal,
	models.WeighIn,
	models.WaterIntake,
}

// MutationValidator validates local mutations and whole datasets before they
// reach the local store.
type MutationValidator struct{}

// NewMutationValidator constructs a MutationValidator.
func NewMutationValidator() Validator {
	return &MutationValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.Mutation / *models.Mutation (fields: id, kind, payload, created_at)
//   - models.Dataset / *models.Dataset
func (v *MutationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Mutation:
		return v.validateMutation(ctx, value, fields...)
	case *models.Mutation:
		return v.validateMutation(ctx, *value, fields...)

	case models.Dataset:
		return v.validateDataset(ctx, value)
	case *models.Dataset:
		return v.validateDataset(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *MutationValidator) validateMutation(_ context.Context, m models.Mutation, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMutationID, FieldKind, FieldPayload, FieldCreatedAt}
	}

	for _, f := range fields {
		switch f {
		case FieldMutationID:
			if m.ID == "" {
				return ErrEmptyMutationID
			}
		case FieldKind:
			if !isKnownKind(m.Kind) {
				return fmt.Errorf("%w: %q", ErrUnknownMutationKind, m.Kind)
			}
		case FieldPayload:
			if err := validatePayload(m); err != nil {
				return err
			}
		case FieldCreatedAt:
			if m.CreatedAt.IsZero() {
				return ErrEmptyCreatedAt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MutationValidator) validateDataset(_ context.Context, d models.Dataset) error {
	if d.Entries == nil {
		return ErrNilEntries
	}
	if d.Profile != nil {
		if err := validateProfile(*d.Profile); err != nil {
			return err
		}
	}
	if d.Goals != nil {
		if err := validateGoals(*d.Goals); err != nil {
			return err
		}
	}

	seen := make(map[string]struct{}, len(d.Entries))
	for i, e := range d.Entries {
		if err := validateEntry(e); err != nil {
			return fmt.Errorf("validation error at entry %d: %w", i, err)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateEntryIDs, e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}

func isKnownKind(k models.MutationKind) bool {
	switch k {
	case models.SetProfile, models.SetGoals, models.AddEntry, models.DeleteEntry, models.ResetDataset:
		return true
	}
	return false
}

func validatePayload(m models.Mutation) error {
	if m.Kind == models.ResetDataset {
		if len(m.Payload) != 0 && string(m.Payload) != "null" {
			return ErrUnexpectedPayload
		}
		return nil
	}
	if len(m.Payload) == 0 {
		return ErrEmptyPayload
	}

	switch m.Kind {
	case models.SetProfile:
		var p models.Profile
		if err := decodeStrict(m.Payload, &p); err != nil {
			return err
		}
		return validateProfile(p)

	case models.SetGoals:
		var g models.Goals
		if err := decodeStrict(m.Payload, &g); err != nil {
			return err
		}
		return validateGoals(g)

	case models.AddEntry:
		var e models.Entry
		if err := decodeStrict(m.Payload, &e); err != nil {
			return err
		}
		return validateEntry(e)

	case models.DeleteEntry:
		var p models.DeleteEntryPayload
		if err := decodeStrict(m.Payload, &p); err != nil {
			return err
		}
		if p.EntryID == "" {
			return ErrEmptyEntryID
		}
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownMutationKind, m.Kind)
}

func decodeStrict(raw json.RawMessage, dst any) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return nil
}

func validateProfile(p models.Profile) error {
	if p.Name == "" {
		return ErrEmptyProfileName
	}
	if p.HeightCm < 0 || p.BirthYear < 0 {
		return ErrNegativeValue
	}
	return nil
}

func validateGoals(g models.Goals) error {
	if g.DailyCalories < 0 || g.DailyProteinG < 0 || g.DailyWaterMl < 0 ||
		g.TargetWeightKg < 0 || g.WeeklyWorkouts < 0 {
		return ErrNegativeGoal
	}
	return nil
}

func validateEntry(e models.Entry) error {
	if e.ID == "" {
		return ErrEmptyEntryID
	}
	if !isValidEntryType(e.Type) {
		return fmt.Errorf("%w: %q", ErrInvalidEntryType, e.Type)
	}
	if e.LoggedAt.IsZero() {
		return ErrEmptyLoggedAt
	}
	for name, value := range e.Values {
		if value < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeValue, name)
		}
	}
	return nil
}

func isValidEntryType(t models.EntryType) bool {
	for _, allowed := range allowedEntryTypes {
		if t == allowed {
			return true
		}
	}
	return false
}
