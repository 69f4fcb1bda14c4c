package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/fit-sync/internal/app"
	"github.com/MKhiriev/fit-sync/internal/service"
	"github.com/MKhiriev/fit-sync/internal/store"
	"github.com/MKhiriev/fit-sync/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order: the validation errors are wrapped in
// service.ErrInvalidBin, so the specific causes have to come first.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrNoOwner, errorResponse{http.StatusUnauthorized, app.MsgMasterKeyRequired}},
	{service.ErrInvalidBinID, errorResponse{http.StatusUnprocessableEntity, app.MsgInvalidBinID}},

	{validators.ErrBlankBin, errorResponse{http.StatusBadRequest, app.MsgBinCannotBeBlank}},
	{validators.ErrInvalidBinDoc, errorResponse{http.StatusBadRequest, app.MsgInvalidJSON}},
	{validators.ErrBinTooLarge, errorResponse{http.StatusRequestEntityTooLarge, app.MsgBinTooLarge}},
	{service.ErrInvalidBin, errorResponse{http.StatusBadRequest, app.MsgInvalidJSON}},

	{store.ErrBinNotFound, errorResponse{http.StatusNotFound, app.MsgBinNotFound}},
	{store.ErrStorageUnavailable, errorResponse{http.StatusServiceUnavailable, app.MsgInternalServerError}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}
