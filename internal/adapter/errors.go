package adapter

import "errors"

var (
	// ErrNetworkUnavailable covers DNS, dial, TLS and timeout failures where
	// no HTTP response was received.
	ErrNetworkUnavailable = errors.New("network unavailable")
	// ErrRemoteServer covers 5xx and 429 responses.
	ErrRemoteServer = errors.New("remote server error")
	// ErrUnauthorized covers 401 and 403 responses.
	ErrUnauthorized = errors.New("remote store rejected credentials")
	// ErrMalformedData covers 400, 413 and 422 responses and undecodable bodies.
	ErrMalformedData = errors.New("malformed remote data")
	// ErrBinNotFound is returned for 404 responses.
	ErrBinNotFound = errors.New("bin not found")

	ErrNoCredentials = errors.New("remote store credentials are not configured")
	ErrNoBin         = errors.New("remote bin is not configured")
)
