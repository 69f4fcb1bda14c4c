package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/fit-sync/internal/app"
	"github.com/MKhiriev/fit-sync/internal/logger"
	"github.com/MKhiriev/fit-sync/internal/utils"
)

// Key headers accepted by the bin server. X-Access-Key is JSONBin's
// restricted key; the bin server treats it like a master key.
const (
	headerMasterKey = "X-Master-Key"
	headerAccessKey = "X-Access-Key"
)

// auth checks the request key against the configured master keys and stores
// the key fingerprint in the request context as the bin owner.
//
// Requests without a key or with an unknown key are rejected with HTTP 401
// and a JSONBin-style {"message": ...} body.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		key := requestKey(r)
		if key == "" {
			log.Err(ErrEmptyMasterKey).Send()
			utils.WriteError(w, app.MsgMasterKeyRequired, http.StatusUnauthorized)
			return
		}

		if !utils.KeyMatches(key, h.masterKeys) {
			log.Err(ErrInvalidMasterKey).Str("remote_addr", r.RemoteAddr).Msg("rejected key")
			utils.WriteError(w, app.MsgInvalidMasterKey, http.StatusUnauthorized)
			return
		}

		ctx := utils.WithOwner(r.Context(), utils.Fingerprint(key))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestKey(r *http.Request) string {
	if key := strings.TrimSpace(r.Header.Get(headerMasterKey)); key != "" {
		return key
	}
	return strings.TrimSpace(r.Header.Get(headerAccessKey))
}
