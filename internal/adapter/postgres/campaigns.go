package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"streetcast/internal/core/domain"
	"streetcast/internal/core/port"
)

const campaignColumns = `c.id, c.name, c.advertiser_id, c.start_at, c.end_at, c.created_at, c.updated_at`

// GetCampaign returns a campaign by id.
func (r *Repository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	var c domain.Campaign
	found, err := queryOne(ctx, r.pool,
		`SELECT `+campaignColumns+` FROM campaigns c WHERE c.id = $1`,
		[]any{id},
		&c.ID, &c.Name, &c.AdvertiserID, &c.StartAt, &c.EndAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil || !found {
		return nil, err
	}
	return &c, nil
}

// CreateCampaign inserts a campaign.
func (r *Repository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO campaigns (id, advertiser_id, name, start_at, end_at, created_at, updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		c.ID, c.AdvertiserID, c.Name, c.StartAt, c.EndAt, c.CreatedAt, c.UpdatedAt)
	return err
}

// campaignCreativeRow is one row of a campaign LEFT JOIN creatives query.
// Creative columns are nil for a campaign without creatives.
type campaignCreativeRow struct {
	Camp       domain.Campaign
	CreativeID *string
	URL        *string
	Duration   *int
	CreatedAt  *time.Time
	UpdatedAt  *time.Time
}

func scanCampaignCreative(row pgx.CollectableRow) (campaignCreativeRow, error) {
	var rc campaignCreativeRow
	err := row.Scan(
		&rc.Camp.ID,
		&rc.Camp.Name,
		&rc.Camp.AdvertiserID,
		&rc.Camp.StartAt,
		&rc.Camp.EndAt,
		&rc.Camp.CreatedAt,
		&rc.Camp.UpdatedAt,
		&rc.CreativeID,
		&rc.URL,
		&rc.Duration,
		&rc.CreatedAt,
		&rc.UpdatedAt,
	)
	return rc, err
}

// groupCampaignRows folds consecutive rows of the same campaign into one
// CampaignWithCreatives, preserving row order for both levels.
func groupCampaignRows(rows []campaignCreativeRow) []domain.CampaignWithCreatives {
	out := make([]domain.CampaignWithCreatives, 0)
	for _, rc := range rows {
		if len(out) == 0 || out[len(out)-1].Campaign.ID != rc.Camp.ID {
			out = append(out, domain.CampaignWithCreatives{Campaign: rc.Camp, Creatives: []domain.Creative{}})
		}
		if rc.CreativeID == nil {
			continue
		}
		last := &out[len(out)-1]
		last.Creatives = append(last.Creatives, domain.Creative{
			ID:         *rc.CreativeID,
			CampaignID: rc.Camp.ID,
			URL:        deref(rc.URL),
			Duration:   derefInt(rc.Duration),
			CreatedAt:  derefTime(rc.CreatedAt),
			UpdatedAt:  derefTime(rc.UpdatedAt),
		})
	}
	return out
}

// ListEligibleCampaigns returns campaigns with start_at <= now <= end_at,
// newest first, each with creatives in insertion order.
func (r *Repository) ListEligibleCampaigns(ctx context.Context, now time.Time) ([]domain.CampaignWithCreatives, error) {
	query := `
        SELECT ` + campaignColumns + `,
            cr.id,
            cr.url,
            cr.duration,
            cr.created_at,
            cr.updated_at
        FROM campaigns c
        LEFT JOIN creatives cr ON cr.campaign_id = c.id
        WHERE c.start_at <= $1 AND c.end_at >= $1
        ORDER BY c.created_at DESC, c.id, cr.created_at, cr.id`
	rows, err := r.pool.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	raw, err := pgx.CollectRows(rows, scanCampaignCreative)
	if err != nil {
		return nil, err
	}
	return groupCampaignRows(raw), nil
}

// ListCampaigns returns every campaign newest first with its advertiser and
// creatives. Status is left for the caller.
func (r *Repository) ListCampaigns(ctx context.Context) ([]port.CampaignListing, error) {
	query := `
        SELECT ` + campaignColumns + `,
            cr.id,
            cr.url,
            cr.duration,
            cr.created_at,
            cr.updated_at
        FROM campaigns c
        LEFT JOIN creatives cr ON cr.campaign_id = c.id
        ORDER BY c.created_at DESC, c.id, cr.created_at, cr.id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	raw, err := pgx.CollectRows(rows, scanCampaignCreative)
	if err != nil {
		return nil, err
	}

	names, err := r.advertiserNames(ctx)
	if err != nil {
		return nil, err
	}

	grouped := groupCampaignRows(raw)
	out := make([]port.CampaignListing, 0, len(grouped))
	for _, cw := range grouped {
		l := port.CampaignListing{
			Campaign:   cw.Campaign,
			Advertiser: port.NamedRef{ID: cw.Campaign.AdvertiserID, Name: names[cw.Campaign.AdvertiserID]},
			Creatives:  make([]port.CreativeRef, 0, len(cw.Creatives)),
		}
		for _, cr := range cw.Creatives {
			l.Creatives = append(l.Creatives, port.CreativeRef{ID: cr.ID, URL: cr.URL, Duration: cr.Duration})
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *Repository) advertiserNames(ctx context.Context) (map[string]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM advertisers`)
	if err != nil {
		return nil, err
	}
	refs, err := pgx.CollectRows(rows, pgx.RowToStructByPos[port.NamedRef])
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(refs))
	for _, ref := range refs {
		names[ref.ID] = ref.Name
	}
	return names, nil
}
