package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// BinDocument is a raw document submitted to the bin server.
type BinDocument []byte

// BinValidator checks documents submitted to the bin server.
type BinValidator struct {
	maxSize int64
}

// NewBinValidator constructs a BinValidator. maxSize <= 0 disables the size check.
func NewBinValidator(maxSize int64) Validator {
	return &BinValidator{maxSize: maxSize}
}

// Validate accepts BinDocument, json.RawMessage and []byte. The document must
// be non-blank, at most maxSize bytes, and a JSON object or array.
func (v *BinValidator) Validate(_ context.Context, obj any, _ ...string) error {
	var doc []byte
	switch value := obj.(type) {
	case BinDocument:
		doc = value
	case json.RawMessage:
		doc = value
	case []byte:
		doc = value
	default:
		return ErrUnsupportedType
	}

	trimmed := bytes.TrimSpace(doc)
	if len(trimmed) == 0 {
		return ErrBlankBin
	}
	if v.maxSize > 0 && int64(len(doc)) > v.maxSize {
		return fmt.Errorf("%w: %d > %d bytes", ErrBinTooLarge, len(doc), v.maxSize)
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return ErrInvalidBinDoc
	}
	if !json.Valid(trimmed) {
		return ErrInvalidBinDoc
	}
	if string(trimmed) == "{}" || string(trimmed) == "[]" {
		return ErrBlankBin
	}
	return nil
}
