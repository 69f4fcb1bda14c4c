// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the fitsync client
// and the remote single-document store.
//
// The primary abstraction is [RemoteStore], which decouples the sync engine
// from the JSONBin v3 REST API. [NewJSONBinAdapter] talks to api.jsonbin.io
// or to the self-hosted bin server shipped in cmd/server.
//
// Error values defined in errors.go are mapped from transport failures and
// HTTP status codes by mapTransportError and mapHTTPError so that callers can
// classify failures with [errors.Is] (e.g. [ErrNetworkUnavailable] for an
// unreachable host, [ErrUnauthorized] for 401/403).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/fit-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore is a single JSON document addressed by a bin id and guarded
// by an API key. Implementations must be safe for concurrent use.
type RemoteStore interface {
	// SetCredentials stores the API key and bin id used by all subsequent
	// requests. An empty binID is allowed before Create.
	SetCredentials(apiKey, binID string)

	// BinID returns the bin id currently configured, or "".
	BinID() string

	// Configured reports whether both an API key and a bin id are set.
	Configured() bool

	// Create stores doc as a new private bin named name and returns its
	// metadata. The new bin id is also kept for subsequent requests.
	Create(ctx context.Context, name string, doc any) (models.BinMetadata, error)

	// Read returns the latest version of the bin as raw JSON.
	Read(ctx context.Context) (json.RawMessage, error)

	// Update replaces the whole bin with doc.
	Update(ctx context.Context, doc any) error

	// Delete removes the bin. The bin id is forgotten on success.
	Delete(ctx context.Context) error

	// Ping reports whether the remote host is reachable. Any HTTP response
	// counts as reachable.
	Ping(ctx context.Context) error
}
