// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	loadSnapshot = `
		SELECT document
		FROM dataset_snapshot
		WHERE id = 1;`

	upsertSnapshot = `
		INSERT INTO dataset_snapshot (id, document, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			document   = excluded.document,
			updated_at = excluded.updated_at;`

	insertPendingChange = `
		INSERT INTO pending_changes (mutation_id, kind, payload, created_at)
		VALUES (?, ?, ?, ?);`

	countPendingChanges = `
		SELECT COUNT(*)
		FROM pending_changes;`

	listPendingChangeIDs = `
		SELECT mutation_id
		FROM pending_changes
		ORDER BY seq;`

	deleteAllPendingChanges = `
		DELETE FROM pending_changes;`

	getSetting = `
		SELECT value
		FROM settings
		WHERE key = ?;`

	upsertSetting = `
		INSERT INTO settings (key, value)
		VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	deleteSetting = `
		DELETE FROM settings
		WHERE key = ?;`
)
