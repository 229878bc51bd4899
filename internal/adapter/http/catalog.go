package httpadapter

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"streetcast/internal/core/domain"
	"streetcast/internal/core/port"
)

// campaignBody accepts dates either as RFC 3339 timestamps or as plain
// calendar dates (as sent by HTML date inputs, read as UTC midnight).
type campaignBody struct {
	Name         string `json:"name"`
	AdvertiserID string `json:"advertiserId"`
	StartAt      string `json:"startAt"`
	EndAt        string `json:"endAt"`
}

// creativeBody accepts duration as a JSON number or a numeric string.
type creativeBody struct {
	CampaignID string          `json:"campaignId"`
	URL        string          `json:"url"`
	Duration   json.RawMessage `json:"duration"`
}

func (h *Handler) handleListAdvertisers(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListAdvertisers(r.Context())
	if err != nil {
		h.writeError(w, r, "list advertisers", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, out)
}

func (h *Handler) handleCreateAdvertiser(w http.ResponseWriter, r *http.Request) {
	var req port.CreateAdvertiserReq
	if err := decodeJSON(r, &req); err != nil {
		h.writeBadJSON(w)
		return
	}
	adv, err := h.svc.CreateAdvertiser(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "create advertiser", err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, adv)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, "list campaigns", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, out)
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body campaignBody
	if err := decodeJSON(r, &body); err != nil {
		h.writeBadJSON(w)
		return
	}
	start, err := parseDate("startAt", body.StartAt)
	if err != nil {
		h.writeError(w, r, "create campaign", err)
		return
	}
	end, err := parseDate("endAt", body.EndAt)
	if err != nil {
		h.writeError(w, r, "create campaign", err)
		return
	}
	out, err := h.svc.CreateCampaign(r.Context(), port.CreateCampaignReq{
		Name:         body.Name,
		AdvertiserID: body.AdvertiserID,
		StartAt:      start,
		EndAt:        end,
	})
	if err != nil {
		h.writeError(w, r, "create campaign", err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, out)
}

func (h *Handler) handleListCreatives(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListCreatives(r.Context())
	if err != nil {
		h.writeError(w, r, "list creatives", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, out)
}

func (h *Handler) handleCreateCreative(w http.ResponseWriter, r *http.Request) {
	var body creativeBody
	if err := decodeJSON(r, &body); err != nil {
		h.writeBadJSON(w)
		return
	}
	duration, err := parseDuration(body.Duration)
	if err != nil {
		h.writeError(w, r, "create creative", err)
		return
	}
	out, err := h.svc.CreateCreative(r.Context(), port.CreateCreativeReq{
		CampaignID: body.CampaignID,
		URL:        body.URL,
		Duration:   duration,
	})
	if err != nil {
		h.writeError(w, r, "create creative", err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, out)
}

func (h *Handler) handleDeleteCreative(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCreative(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, "delete creative", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, successBody{Success: true})
}

func (h *Handler) handleListDevices(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListDevices(r.Context())
	if err != nil {
		h.writeError(w, r, "list devices", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, out)
}

func (h *Handler) handleCreateDevice(w http.ResponseWriter, r *http.Request) {
	var req port.CreateDeviceReq
	if err := decodeJSON(r, &req); err != nil {
		h.writeBadJSON(w)
		return
	}
	dev, err := h.svc.CreateDevice(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "create device", err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, dev)
}

// parseDate returns the zero time for an empty value so the use case can
// report the field as required.
func parseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, domain.NewValidationError(field, "must be an RFC 3339 timestamp or a YYYY-MM-DD date")
}

// parseDuration returns 0 for a missing or null value so the use case can
// report the field as required.
func parseDuration(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}
	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, domain.NewValidationError("duration", "must be a positive integer")
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, domain.NewValidationError("duration", "must be a positive integer")
	}
	return n, nil
}
