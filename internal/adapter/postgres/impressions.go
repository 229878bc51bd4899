package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"streetcast/internal/core/domain"
)

// CreateImpression appends an impression row.
func (r *Repository) CreateImpression(ctx context.Context, imp *domain.Impression) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO impressions (id, device_id, creative_id, shown_at) VALUES ($1,$2,$3,$4)`,
		imp.ID, imp.DeviceID, imp.CreativeID, imp.ShownAt)
	return err
}

// CountImpressions returns the size of the impression log.
func (r *Repository) CountImpressions(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM impressions`).Scan(&n)
	return n, err
}

// impressionDetailQuery joins every impression to whatever still exists of
// its device, creative, campaign and advertiser.
const impressionDetailQuery = `
        SELECT
            i.id, i.device_id, i.creative_id, i.shown_at,
            d.id, d.name, d.location,
            cr.id, cr.campaign_id, cr.url, cr.duration, cr.created_at, cr.updated_at,
            c.id, c.name, c.advertiser_id, c.start_at, c.end_at, c.created_at, c.updated_at,
            a.id, a.name
        FROM impressions i
        LEFT JOIN devices d ON d.id = i.device_id
        LEFT JOIN creatives cr ON cr.id = i.creative_id
        LEFT JOIN campaigns c ON c.id = cr.campaign_id
        LEFT JOIN advertisers a ON a.id = c.advertiser_id`

// ListImpressionDetails returns the full joined impression log.
func (r *Repository) ListImpressionDetails(ctx context.Context) ([]domain.ImpressionDetail, error) {
	rows, err := r.pool.Query(ctx, impressionDetailQuery)
	if err != nil {
		return nil, err
	}
	raw, err := pgx.CollectRows(rows, scanImpressionDetail)
	if err != nil {
		return nil, err
	}
	return toDetails(raw), nil
}

// RecentImpressionDetails returns the newest impressions; ties on shown_at
// break by id descending.
func (r *Repository) RecentImpressionDetails(ctx context.Context, limit int) ([]domain.ImpressionDetail, error) {
	rows, err := r.pool.Query(ctx, impressionDetailQuery+`
        ORDER BY i.shown_at DESC, i.id DESC
        LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	raw, err := pgx.CollectRows(rows, scanImpressionDetail)
	if err != nil {
		return nil, err
	}
	return toDetails(raw), nil
}

// impressionDetailRow holds the nullable side of the LEFT JOINs.
type impressionDetailRow struct {
	Imp domain.Impression

	DeviceID       *string
	DeviceName     *string
	DeviceLocation *string

	CreativeID         *string
	CreativeCampaignID *string
	CreativeURL        *string
	CreativeDuration   *int
	CreativeCreatedAt  *time.Time
	CreativeUpdatedAt  *time.Time

	CampaignID           *string
	CampaignName         *string
	CampaignAdvertiserID *string
	CampaignStartAt      *time.Time
	CampaignEndAt        *time.Time
	CampaignCreatedAt    *time.Time
	CampaignUpdatedAt    *time.Time

	AdvertiserID   *string
	AdvertiserName *string
}

func scanImpressionDetail(row pgx.CollectableRow) (impressionDetailRow, error) {
	var r impressionDetailRow
	err := row.Scan(
		&r.Imp.ID, &r.Imp.DeviceID, &r.Imp.CreativeID, &r.Imp.ShownAt,
		&r.DeviceID, &r.DeviceName, &r.DeviceLocation,
		&r.CreativeID, &r.CreativeCampaignID, &r.CreativeURL, &r.CreativeDuration, &r.CreativeCreatedAt, &r.CreativeUpdatedAt,
		&r.CampaignID, &r.CampaignName, &r.CampaignAdvertiserID, &r.CampaignStartAt, &r.CampaignEndAt, &r.CampaignCreatedAt, &r.CampaignUpdatedAt,
		&r.AdvertiserID, &r.AdvertiserName,
	)
	return r, err
}

func toDetails(rows []impressionDetailRow) []domain.ImpressionDetail {
	out := make([]domain.ImpressionDetail, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDetail())
	}
	return out
}

func (r impressionDetailRow) toDetail() domain.ImpressionDetail {
	d := domain.ImpressionDetail{Impression: r.Imp}
	if r.DeviceID != nil {
		d.Device = &domain.DeviceRef{ID: *r.DeviceID, Name: deref(r.DeviceName), Location: r.DeviceLocation}
	}
	if r.CreativeID != nil {
		d.Creative = &domain.Creative{
			ID:         *r.CreativeID,
			CampaignID: deref(r.CreativeCampaignID),
			URL:        deref(r.CreativeURL),
			Duration:   derefInt(r.CreativeDuration),
			CreatedAt:  derefTime(r.CreativeCreatedAt),
			UpdatedAt:  derefTime(r.CreativeUpdatedAt),
		}
	}
	if r.CampaignID != nil {
		d.Campaign = &domain.Campaign{
			ID:           *r.CampaignID,
			Name:         deref(r.CampaignName),
			AdvertiserID: deref(r.CampaignAdvertiserID),
			StartAt:      derefTime(r.CampaignStartAt),
			EndAt:        derefTime(r.CampaignEndAt),
			CreatedAt:    derefTime(r.CampaignCreatedAt),
			UpdatedAt:    derefTime(r.CampaignUpdatedAt),
		}
	}
	if r.AdvertiserID != nil {
		d.Advertiser = &domain.AdvertiserRef{ID: *r.AdvertiserID, Name: deref(r.AdvertiserName)}
	}
	return d
}
