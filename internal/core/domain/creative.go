package domain

import "time"

// Creative represents an individual advertisement video. URL is opaque and
// may be absolute or root-relative.
type Creative struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaignId"`
	URL        string    `json:"url"`
	Duration   int       `json:"duration"` // in seconds
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
