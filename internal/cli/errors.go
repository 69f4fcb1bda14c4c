package cli

import (
	"errors"

	"github.com/MKhiriev/fit-sync/internal/service"
)

// hints are appended to errors the user can act on.
var hints = []struct {
	target error
	hint   string
}{
	{service.ErrCloudNotConfigured, "run 'fitsync setup <api-key>' first"},
	{service.ErrPendingChanges, "run 'fitsync sync' first or pass --force to drop them"},
	{service.ErrAuthentication, "check the API key with 'fitsync setup <api-key>'"},
	{service.ErrInvalidAPIKey, "JSONBin keys look like $2a$10$..."},
	{service.ErrNetworkUnavailable, "changes stay saved locally and will sync later"},
}

func describeError(err error) string {
	for _, h := range hints {
		if errors.Is(err, h.target) {
			return err.Error() + " (" + h.hint + ")"
		}
	}
	return err.Error()
}
