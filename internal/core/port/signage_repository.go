package port

import (
	"context"
	"time"

	"streetcast/internal/core/domain"
)

// SignageRepository defines the Entity Store. It is an outbound port in
// hexagonal architecture. Implementations must be safe for concurrent use.
// Lookups return (nil, nil) when the row does not exist. No method spans
// more than one statement's worth of consistency; cross-entity checks are
// done by the use case as read-then-write.
type SignageRepository interface {
	// GetDevice returns a device by id.
	GetDevice(ctx context.Context, id string) (*domain.Device, error)
	// TouchDevice sets the device's last_seen to seenAt.
	TouchDevice(ctx context.Context, id string, seenAt time.Time) error
	// ListEligibleCampaigns returns campaigns whose window contains now, most
	// recently created first, each with its creatives in store order.
	ListEligibleCampaigns(ctx context.Context, now time.Time) ([]domain.CampaignWithCreatives, error)

	// GetCreative returns a creative by id.
	GetCreative(ctx context.Context, id string) (*domain.Creative, error)
	// CreateImpression appends an impression row.
	CreateImpression(ctx context.Context, imp *domain.Impression) error

	// CountImpressions returns the number of impression rows.
	CountImpressions(ctx context.Context) (int64, error)
	// ListImpressionDetails returns every impression joined with its device,
	// creative, campaign and advertiser where those still exist.
	ListImpressionDetails(ctx context.Context) ([]domain.ImpressionDetail, error)
	// RecentImpressionDetails returns the newest impressions by shown_at.
	RecentImpressionDetails(ctx context.Context, limit int) ([]domain.ImpressionDetail, error)

	CreateAdvertiser(ctx context.Context, adv *domain.Advertiser) error
	GetAdvertiser(ctx context.Context, id string) (*domain.Advertiser, error)
	ListAdvertisers(ctx context.Context) ([]AdvertiserListing, error)

	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// ListCampaigns leaves Status unset; it is computed by the use case.
	ListCampaigns(ctx context.Context) ([]CampaignListing, error)

	CreateCreative(ctx context.Context, cr *domain.Creative) error
	ListCreatives(ctx context.Context) ([]CreativeListing, error)
	// DeleteCreative removes a creative and reports whether a row existed.
	DeleteCreative(ctx context.Context, id string) (bool, error)

	CreateDevice(ctx context.Context, d *domain.Device) error
	// ListDevices leaves Status unset; it is computed by the use case.
	ListDevices(ctx context.Context) ([]DeviceListing, error)
}
