package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// Execer is the subset of pgxpool.Pool used by Seed.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Fixed ids of the development data set.
const (
	SeedAdvertiserID = "dev-advertiser-1"
	SeedCampaignID   = "dev-campaign-1"
	SeedDeviceID     = "dev-device-1"
)

type seedCreative struct {
	id       string
	url      string
	duration int
}

var seedCreatives = []seedCreative{
	{id: "dev-creative-1", url: "/videos/sample-ad-1.mp4", duration: 15},
	{id: "dev-creative-2", url: "/videos/sample-ad-2.mp4", duration: 20},
}

// Seed inserts the development data set. Every row has a fixed id and is
// inserted with ON CONFLICT DO NOTHING, so running it twice is harmless. The
// campaign window is anchored on now so the demo device receives a non-empty
// manifest.
func Seed(ctx context.Context, db Execer, now time.Time) error {
	if _, err := db.Exec(ctx, `INSERT INTO advertisers (id, name, contact_info)
VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`,
		SeedAdvertiserID, "Tennis Ball Co.", "contact@tennisballco.com"); err != nil {
		return fmt.Errorf("seed advertiser: %w", err)
	}

	if _, err := db.Exec(ctx, `INSERT INTO campaigns (id, advertiser_id, name, start_at, end_at)
VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING`,
		SeedCampaignID, SeedAdvertiserID, "Summer Tennis Campaign",
		now.AddDate(0, 0, -1), now.AddDate(1, 0, 0)); err != nil {
		return fmt.Errorf("seed campaign: %w", err)
	}

	for _, c := range seedCreatives {
		if _, err := db.Exec(ctx, `INSERT INTO creatives (id, campaign_id, url, duration)
VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING`,
			c.id, SeedCampaignID, c.url, c.duration); err != nil {
			return fmt.Errorf("seed creative %s: %w", c.id, err)
		}
	}

	if _, err := db.Exec(ctx, `INSERT INTO devices (id, name, location, last_seen)
VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING`,
		SeedDeviceID, "Tennis Court Display #1", "Central Park Tennis Courts", now); err != nil {
		return fmt.Errorf("seed device: %w", err)
	}

	for i, c := range seedCreatives {
		shownAt := now.Add(-time.Hour + time.Duration(i)*30*time.Minute)
		if _, err := db.Exec(ctx, `INSERT INTO impressions (id, device_id, creative_id, shown_at)
VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING`,
			fmt.Sprintf("dev-impression-%d", i+1), SeedDeviceID, c.id, shownAt); err != nil {
			return fmt.Errorf("seed impression: %w", err)
		}
	}
	return nil
}
