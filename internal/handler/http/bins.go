package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/fit-sync/internal/app"
	"github.com/MKhiriev/fit-sync/internal/logger"
	"github.com/MKhiriev/fit-sync/internal/utils"
	"github.com/MKhiriev/fit-sync/models"
)

const (
	headerBinName    = "X-Bin-Name"
	headerBinPrivate = "X-Bin-Private"
	headerBinMeta    = "X-Bin-Meta"
)

type deleteBinResponse struct {
	Metadata struct {
		ID              string `json:"id"`
		VersionsDeleted int    `json:"versionsDeleted"`
	} `json:"metadata"`
	Message string `json:"message"`
}

func (h *Handler) createBin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	record, ok := h.readRecord(w, r)
	if !ok {
		return
	}

	owner, _ := utils.GetOwnerFromContext(r.Context())
	name := strings.TrimSpace(r.Header.Get(headerBinName))
	private := !strings.EqualFold(r.Header.Get(headerBinPrivate), "false")

	bin, err := h.services.BinService.Create(r.Context(), owner, name, private, record)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createBin").Msg("error creating bin")
		writeServiceError(w, err)
		return
	}

	createdAt := bin.CreatedAt
	h.writeResponse(w, r, models.BinRecord{
		Record: bin.Record,
		Metadata: models.BinMetadata{
			ID:        bin.ID,
			Name:      bin.Name,
			CreatedAt: &createdAt,
			Private:   bin.Private,
		},
	})
}

func (h *Handler) readBin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	owner, _ := utils.GetOwnerFromContext(r.Context())
	bin, err := h.services.BinService.Get(r.Context(), chi.URLParam(r, "id"), owner)
	if err != nil {
		log.Err(err).Str("func", "*Handler.readBin").Msg("error reading bin")
		writeServiceError(w, err)
		return
	}

	w.Header().Set("ETag", fmt.Sprintf("%q", utils.Fingerprint(string(bin.Record))))

	if strings.EqualFold(r.Header.Get(headerBinMeta), "false") {
		if _, err = utils.WriteRaw(w, bin.Record, http.StatusOK); err != nil {
			log.Err(err).Str("func", "*Handler.readBin").Msg("error writing bin")
		}
		return
	}

	createdAt := bin.CreatedAt
	h.writeResponse(w, r, models.BinRecord{
		Record: bin.Record,
		Metadata: models.BinMetadata{
			ID:        bin.ID,
			Name:      bin.Name,
			CreatedAt: &createdAt,
			Private:   bin.Private,
		},
	})
}

func (h *Handler) updateBin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	record, ok := h.readRecord(w, r)
	if !ok {
		return
	}

	owner, _ := utils.GetOwnerFromContext(r.Context())
	bin, err := h.services.BinService.Update(r.Context(), chi.URLParam(r, "id"), owner, record)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateBin").Msg("error updating bin")
		writeServiceError(w, err)
		return
	}

	h.writeResponse(w, r, models.BinRecord{
		Record: bin.Record,
		Metadata: models.BinMetadata{
			ParentID: bin.ID,
			Private:  bin.Private,
		},
	})
}

func (h *Handler) deleteBin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	owner, _ := utils.GetOwnerFromContext(r.Context())
	if err := h.services.BinService.Delete(r.Context(), id, owner); err != nil {
		log.Err(err).Str("func", "*Handler.deleteBin").Msg("error deleting bin")
		writeServiceError(w, err)
		return
	}

	var resp deleteBinResponse
	resp.Metadata.ID = id
	resp.Message = app.MsgBinDeleted
	h.writeResponse(w, r, resp)
}

// readRecord reads at most maxBinSize+1 bytes of the body; anything longer is
// rejected by the validation layer as too large.
func (h *Handler) readRecord(w http.ResponseWriter, r *http.Request) (json.RawMessage, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, h.maxBinSize+1))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.readRecord").Msg("error reading request body")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return nil, false
	}
	return body, true
}

func (h *Handler) writeResponse(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeResponse").Msg("error writing response")
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)
	utils.WriteError(w, resp.message, resp.status)
}
