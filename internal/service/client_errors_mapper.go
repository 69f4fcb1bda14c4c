// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/fit-sync/internal/adapter"
	"github.com/MKhiriev/fit-sync/internal/store"
)

// failureKind tells the engine how to react to a failed attempt.
type failureKind int

const (
	// failureFatal is reported as Error and never retried.
	failureFatal failureKind = iota
	// failureNetwork is reported as Offline and retried.
	failureNetwork
	// failureServer is reported as Error and retried.
	failureServer
	// failureCanceled leaves the state alone: the attempt was interrupted.
	failureCanceled
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.Canceled):
		return err

	case errors.Is(err, adapter.ErrNetworkUnavailable):
		return fmt.Errorf("%w: %w", ErrNetworkUnavailable, err)

	case errors.Is(err, adapter.ErrRemoteServer):
		return fmt.Errorf("%w: %w", ErrRemoteServer, err)

	case errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrNoCredentials):
		return fmt.Errorf("%w: %w", ErrAuthentication, err)

	case errors.Is(err, adapter.ErrMalformedData),
		errors.Is(err, adapter.ErrBinNotFound):
		return fmt.Errorf("%w: %w", ErrMalformedData, err)

	case errors.Is(err, adapter.ErrNoBin):
		return fmt.Errorf("%w: %w", ErrCloudNotConfigured, err)
	}

	return err
}

// classifyFailure maps an already translated error to the engine reaction.
func classifyFailure(err error) failureKind {
	switch {
	case errors.Is(err, context.Canceled):
		return failureCanceled
	case errors.Is(err, ErrNetworkUnavailable):
		return failureNetwork
	case errors.Is(err, ErrRemoteServer),
		errors.Is(err, store.ErrStorageUnavailable):
		return failureServer
	default:
		return failureFatal
	}
}
