package httpadapter

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

var errMissingHost = errors.New("request has no host")

// handleManifest serves the playlist a device should loop until its next
// poll. Relative creative URLs are resolved against the origin the device
// used to reach us.
func (h *Handler) handleManifest(w http.ResponseWriter, r *http.Request) {
	origin, err := requestOrigin(r)
	if err != nil {
		h.writeError(w, r, "manifest", err)
		return
	}
	m, err := h.svc.BuildManifest(r.Context(), chi.URLParam(r, "deviceId"), origin)
	if err != nil {
		h.writeError(w, r, "manifest", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, m)
}

// requestOrigin returns scheme://host as seen by the client. The first
// X-Forwarded-Proto hop wins over the connection's own TLS state when it
// names http or https; anything else is ignored.
func requestOrigin(r *http.Request) (string, error) {
	if r.Host == "" {
		return "", errMissingHost
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		switch p := strings.ToLower(strings.TrimSpace(first)); p {
		case "http", "https":
			scheme = p
		}
	}
	return scheme + "://" + r.Host, nil
}
