// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message constants shared by the bin server handlers
// and the client-side JSONBin adapter.
//
// The wording follows the messages JSONBin v3 puts into the {"message": ...}
// error body, so the adapter classifies responses from the hosted service and
// from the self-hosted bin server the same way.
package app

const (
	// MsgMasterKeyRequired is returned when the X-Master-Key header is absent.
	MsgMasterKeyRequired = "You need to pass X-Master-Key in the header"

	// MsgInvalidMasterKey is returned when the X-Master-Key header does not
	// match any known key.
	MsgInvalidMasterKey = "Invalid X-Master-Key provided"

	// MsgBinNotFound is returned when the bin does not exist or belongs to a
	// different key.
	MsgBinNotFound = "Bin not found or it doesn't belong to your account"

	// MsgInvalidBinID is returned when the bin id in the path is malformed.
	MsgInvalidBinID = "Invalid Bin Id provided"

	// MsgBinCannotBeBlank is returned when a create or update body is empty.
	MsgBinCannotBeBlank = "Bin cannot be blank"

	// MsgInvalidJSON is returned when a body is not a JSON object or array.
	MsgInvalidJSON = "Invalid JSON. Please try again"

	// MsgBinTooLarge is returned when a body exceeds the configured size limit.
	MsgBinTooLarge = "Bin size exceeds the allowed limit"

	// MsgBinDeleted is written into the body of a successful DELETE.
	MsgBinDeleted = "Bin deleted successfully"

	// MsgInternalServerError is returned for unexpected server-side failures.
	MsgInternalServerError = "Something went wrong. Please try again later"
)
