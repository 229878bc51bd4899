package domain

import "time"

// ImpressionDetail is an impression joined with everything the dashboard
// shows. The joined parts are nil when the referenced row no longer exists.
type ImpressionDetail struct {
	Impression
	Device     *DeviceRef     `json:"device"`
	Creative   *Creative      `json:"creative"`
	Campaign   *Campaign      `json:"campaign"`
	Advertiser *AdvertiserRef `json:"advertiser"`
}

// DeviceRef is the denormalized device part of an ImpressionDetail.
type DeviceRef struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location *string `json:"location"`
}

// AdvertiserRef is the denormalized advertiser part of an ImpressionDetail.
type AdvertiserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CampaignCount is one row of impressions grouped by campaign.
type CampaignCount struct {
	CampaignID     string `json:"campaignId"`
	CampaignName   string `json:"campaignName"`
	AdvertiserName string `json:"advertiserName"`
	Count          int64  `json:"count"`
}

// DeviceCount is one row of impressions grouped by device.
type DeviceCount struct {
	DeviceID   string  `json:"deviceId"`
	DeviceName string  `json:"deviceName"`
	Location   *string `json:"location"`
	Count      int64   `json:"count"`
}

// AnalyticsSnapshot is recomputed from the impression log on every request.
type AnalyticsSnapshot struct {
	TotalImpressions      int64              `json:"totalImpressions"`
	ImpressionsByCampaign []CampaignCount    `json:"impressionsByCampaign"`
	ImpressionsByDevice   []DeviceCount      `json:"impressionsByDevice"`
	RecentImpressions     []ImpressionDetail `json:"recentImpressions"`
	GeneratedAt           time.Time          `json:"generatedAt"`
}
