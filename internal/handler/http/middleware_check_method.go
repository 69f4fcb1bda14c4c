// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/fit-sync/internal/utils"
)

const msgRouteNotFound = "Route not found!"

// routeNotFound is registered both as the router's NotFound and
// MethodNotAllowed handler.
//
// Chi answers 405 when a path matches a route but the method does not.
// JSONBin answers 404 with a {"message": ...} body for unknown routes and
// unsupported methods alike.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, msgRouteNotFound, http.StatusNotFound)
}
