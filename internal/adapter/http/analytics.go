package httpadapter

import "net/http"

// handleAnalytics returns the dashboard snapshot recomputed from the full
// impression log.
func (h *Handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.ComputeAnalytics(r.Context())
	if err != nil {
		h.writeError(w, r, "analytics", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, snap)
}
