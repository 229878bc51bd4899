package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"streetcast/internal/core/domain"
	"streetcast/internal/core/port"
)

// GetCreative returns a creative by id.
func (r *Repository) GetCreative(ctx context.Context, id string) (*domain.Creative, error) {
	var cr domain.Creative
	found, err := queryOne(ctx, r.pool,
		`SELECT id, campaign_id, url, duration, created_at, updated_at FROM creatives WHERE id = $1`,
		[]any{id},
		&cr.ID, &cr.CampaignID, &cr.URL, &cr.Duration, &cr.CreatedAt, &cr.UpdatedAt)
	if err != nil || !found {
		return nil, err
	}
	return &cr, nil
}

// CreateCreative inserts a creative.
func (r *Repository) CreateCreative(ctx context.Context, cr *domain.Creative) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO creatives (id, campaign_id, url, duration, created_at, updated_at) VALUES ($1,$2,$3,$4,$5,$6)`,
		cr.ID, cr.CampaignID, cr.URL, cr.Duration, cr.CreatedAt, cr.UpdatedAt)
	return err
}

// ListCreatives returns creatives newest first with campaign and advertiser.
func (r *Repository) ListCreatives(ctx context.Context) ([]port.CreativeListing, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT cr.id, cr.campaign_id, cr.url, cr.duration, cr.created_at, cr.updated_at,
            c.name, a.id, a.name
        FROM creatives cr
        JOIN campaigns c ON c.id = cr.campaign_id
        JOIN advertisers a ON a.id = c.advertiser_id
        ORDER BY cr.created_at DESC, cr.id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.CreativeListing, error) {
		var l port.CreativeListing
		err := row.Scan(&l.ID, &l.CampaignID, &l.URL, &l.Duration, &l.CreatedAt, &l.UpdatedAt,
			&l.Campaign.Name, &l.Advertiser.ID, &l.Advertiser.Name)
		l.Campaign.ID = l.CampaignID
		return l, err
	})
}

// DeleteCreative removes a creative and reports whether it existed.
func (r *Repository) DeleteCreative(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM creatives WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
