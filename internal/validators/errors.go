package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyMutationID     = errors.New("mutation id is required")
	ErrUnknownMutationKind = errors.New("unknown mutation kind")
	ErrEmptyPayload        = errors.New("mutation payload is required")
	ErrUnexpectedPayload   = errors.New("mutation payload must be empty")
	ErrMalformedPayload    = errors.New("mutation payload is malformed")
	ErrEmptyCreatedAt      = errors.New("mutation created_at is required")

	ErrEmptyProfileName  = errors.New("profile name is required")
	ErrNegativeGoal      = errors.New("goal values cannot be negative")
	ErrEmptyEntryID      = errors.New("entry id is required")
	ErrInvalidEntryType  = errors.New("invalid entry type")
	ErrEmptyLoggedAt     = errors.New("entry logged_at is required")
	ErrNegativeValue     = errors.New("entry values cannot be negative")
	ErrNilEntries        = errors.New("dataset entries cannot be null")
	ErrDuplicateEntryIDs = errors.New("dataset contains duplicate entry ids")

	ErrInvalidAPIKey = errors.New("invalid api key format")

	ErrBlankBin      = errors.New("bin cannot be blank")
	ErrInvalidBinDoc = errors.New("bin must be a JSON object or array")
	ErrBinTooLarge   = errors.New("bin exceeds the size limit")
)
