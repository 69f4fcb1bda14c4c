package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/MKhiriev/fit-sync/internal/validators"
	"github.com/MKhiriev/fit-sync/models"
)

// binIDPattern accepts JSONBin object ids and the compact uuids this server
// issues.
var binIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24,32}$`)

type BinValidationService struct {
	inner     BinService
	validator validators.Validator
}

func NewBinValidationService(maxBinSize int64) BinServiceWrapper {
	return &BinValidationService{
		validator: validators.NewBinValidator(maxBinSize),
	}
}

func (v *BinValidationService) Create(ctx context.Context, owner, name string, private bool, record json.RawMessage) (models.Bin, error) {
	if owner == "" {
		return models.Bin{}, ErrNoOwner
	}
	if err := v.validator.Validate(ctx, validators.BinDocument(record)); err != nil {
		return models.Bin{}, fmt.Errorf("%w: %w", ErrInvalidBin, err)
	}
	return v.inner.Create(ctx, owner, name, private, record)
}

func (v *BinValidationService) Get(ctx context.Context, id, owner string) (models.Bin, error) {
	if err := validateBinRef(id, owner); err != nil {
		return models.Bin{}, err
	}
	return v.inner.Get(ctx, id, owner)
}

func (v *BinValidationService) Update(ctx context.Context, id, owner string, record json.RawMessage) (models.Bin, error) {
	if err := validateBinRef(id, owner); err != nil {
		return models.Bin{}, err
	}
	if err := v.validator.Validate(ctx, validators.BinDocument(record)); err != nil {
		return models.Bin{}, fmt.Errorf("%w: %w", ErrInvalidBin, err)
	}
	return v.inner.Update(ctx, id, owner, record)
}

func (v *BinValidationService) Delete(ctx context.Context, id, owner string) error {
	if err := validateBinRef(id, owner); err != nil {
		return err
	}
	return v.inner.Delete(ctx, id, owner)
}

func (v *BinValidationService) Wrap(wrapper BinService) BinService {
	v.inner = wrapper
	return v
}

func validateBinRef(id, owner string) error {
	if owner == "" {
		return ErrNoOwner
	}
	if !binIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidBinID, id)
	}
	return nil
}
