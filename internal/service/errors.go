package service

import "errors"

// Sync failure taxonomy. A failed attempt is wrapped in exactly one of them.
var (
	// ErrNetworkUnavailable means the remote store could not be reached.
	// Retried with backoff; the engine reports Offline.
	ErrNetworkUnavailable = errors.New("network unavailable")

	// ErrRemoteServer means the remote store answered 5xx or 429.
	// Retried with backoff; the engine reports Error.
	ErrRemoteServer = errors.New("remote server error")

	// ErrAuthentication means the API key was rejected. Never retried.
	ErrAuthentication = errors.New("authentication failed")

	// ErrMalformedData means the remote store refused the document or
	// returned one that cannot be used. Never retried.
	ErrMalformedData = errors.New("malformed data")
)

var (
	ErrInvalidMutation    = errors.New("invalid mutation")
	ErrLocalStore         = errors.New("local store failure")
	ErrEngineClosed       = errors.New("sync engine is closed")
	ErrCloudNotConfigured = errors.New("cloud sync is not configured")
	ErrPendingChanges     = errors.New("local changes are not synced yet")
	ErrInvalidAPIKey      = errors.New("invalid api key")
	ErrEntryNotFound      = errors.New("entry not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidBin   = errors.New("invalid bin")
	ErrInvalidBinID = errors.New("invalid bin id")
	ErrNoOwner      = errors.New("no bin owner in request")
)
