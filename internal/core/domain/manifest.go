package domain

import "time"

// Manifest is the playlist a device should currently loop through. It is
// rebuilt on every poll and never cached.
type Manifest struct {
	Version     string          `json:"version"`
	DeviceID    string          `json:"deviceId"`
	Creatives   []ManifestEntry `json:"creatives"`
	GeneratedAt time.Time       `json:"generatedAt"`
}

// ManifestEntry is a creative annotated with its owning campaign. URL is
// always absolute.
type ManifestEntry struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	Duration     int    `json:"duration"`
	CampaignID   string `json:"campaignId"`
	CampaignName string `json:"campaignName"`
}

// CampaignWithCreatives pairs an eligible campaign with its creatives in
// store order.
type CampaignWithCreatives struct {
	Campaign  Campaign
	Creatives []Creative
}
