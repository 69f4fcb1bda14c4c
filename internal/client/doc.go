// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the fitsync client runtime.
//
// It opens the local SQLite store, connects the JSONBin adapter and wires
// the sync engine, its task queue and the connectivity monitor. One-shot
// commands use [App.Flush]; the daemon uses [App.Run].
package client
