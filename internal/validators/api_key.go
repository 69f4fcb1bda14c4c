package validators

import (
	"fmt"
	"strings"
)

// apiKeyPrefixes are the bcrypt-style prefixes JSONBin master and access keys
// start with.
var apiKeyPrefixes = []string{"$2a$", "$2b$"}

const minAPIKeyLength = 20

// ValidateAPIKey reports whether key looks like a JSONBin key. It checks the
// prefix and the length only; the remote store is the authority on validity.
func ValidateAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if len(key) < minAPIKeyLength {
		return fmt.Errorf("%w: key is too short", ErrInvalidAPIKey)
	}
	for _, p := range apiKeyPrefixes {
		if strings.HasPrefix(key, p) {
			return nil
		}
	}
	return fmt.Errorf("%w: expected prefix %s", ErrInvalidAPIKey, strings.Join(apiKeyPrefixes, " or "))
}
