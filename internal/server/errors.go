// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned when there is no HTTP handler or
// listen address to serve.
var errNoServersAreCreated = errors.New("no http handler or listen address configured")
