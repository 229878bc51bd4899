package httpadapter

import (
	"net/http"

	"streetcast/internal/core/port"
)

type impressionResp struct {
	Success      bool   `json:"success"`
	ImpressionID string `json:"impressionId"`
}

// handleImpression records one playback reported by a device.
func (h *Handler) handleImpression(w http.ResponseWriter, r *http.Request) {
	var req port.RecordImpressionReq
	if err := decodeJSON(r, &req); err != nil {
		h.writeBadJSON(w)
		return
	}
	imp, err := h.svc.RecordImpression(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "record impression", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, impressionResp{Success: true, ImpressionID: imp.ID})
}
