package port

import (
	"context"
	"time"

	"streetcast/internal/core/domain"
)

// SignageUseCase defines the business operations exposed to devices and to
// the admin dashboard. This interface represents the primary port into the
// application domain. Mock implementations can be generated from this
// interface for testing.
type SignageUseCase interface {
	// BuildManifest returns the playlist for a device at the current instant.
	// It is not side-effect free: on success the device's LastSeen is set to
	// the build instant before eligibility is evaluated. Relative creative
	// URLs are resolved against origin (scheme://host). An unknown device
	// yields domain.ErrDeviceNotFound and nothing is written.
	BuildManifest(ctx context.Context, deviceID, origin string) (*domain.Manifest, error)

	// RecordImpression appends one playback event stamped with the recording
	// instant. Both ids must resolve; the device is checked first. Repeated
	// calls are never deduplicated.
	RecordImpression(ctx context.Context, req RecordImpressionReq) (*domain.Impression, error)

	// ComputeAnalytics recomputes totals, groupings and the recent feed from
	// the full impression log.
	ComputeAnalytics(ctx context.Context) (*domain.AnalyticsSnapshot, error)

	CreateAdvertiser(ctx context.Context, req CreateAdvertiserReq) (*domain.Advertiser, error)
	ListAdvertisers(ctx context.Context) ([]AdvertiserListing, error)

	// CreateCampaign rejects inverted windows instead of swapping them.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*CampaignListing, error)
	ListCampaigns(ctx context.Context) ([]CampaignListing, error)

	CreateCreative(ctx context.Context, req CreateCreativeReq) (*CreativeListing, error)
	ListCreatives(ctx context.Context) ([]CreativeListing, error)
	DeleteCreative(ctx context.Context, id string) error

	CreateDevice(ctx context.Context, req CreateDeviceReq) (*domain.Device, error)
	ListDevices(ctx context.Context) ([]DeviceListing, error)
}

// RecordImpressionReq is the body a device posts after each playback.
type RecordImpressionReq struct {
	DeviceID   string `json:"deviceId" validate:"required"`
	CreativeID string `json:"creativeId" validate:"required"`
}

type CreateAdvertiserReq struct {
	Name        string `json:"name" validate:"required"`
	ContactInfo string `json:"contactInfo"`
}

type CreateCampaignReq struct {
	Name         string    `json:"name" validate:"required"`
	AdvertiserID string    `json:"advertiserId" validate:"required"`
	StartAt      time.Time `json:"startAt" validate:"required"`
	EndAt        time.Time `json:"endAt" validate:"required"`
}

type CreateCreativeReq struct {
	CampaignID string `json:"campaignId" validate:"required"`
	URL        string `json:"url" validate:"required"`
	Duration   int    `json:"duration" validate:"required,gt=0"`
}

type CreateDeviceReq struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location"`
}

// AdvertiserListing is an advertiser with the campaigns it owns.
type AdvertiserListing struct {
	domain.Advertiser
	Campaigns []NamedRef `json:"campaigns"`
}

// CampaignListing is a campaign with its advertiser, creatives and the
// status computed at listing time.
type CampaignListing struct {
	domain.Campaign
	Advertiser NamedRef              `json:"advertiser"`
	Creatives  []CreativeRef         `json:"creatives"`
	Status     domain.CampaignStatus `json:"status"`
}

// CreativeListing is a creative with its campaign and advertiser.
type CreativeListing struct {
	domain.Creative
	Campaign   NamedRef `json:"campaign"`
	Advertiser NamedRef `json:"advertiser"`
}

// DeviceListing is a device with its liveness and lifetime impression count.
type DeviceListing struct {
	domain.Device
	ImpressionCount int64               `json:"impressionCount"`
	Status          domain.DeviceStatus `json:"status"`
}

type NamedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreativeRef struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Duration int    `json:"duration"`
}
