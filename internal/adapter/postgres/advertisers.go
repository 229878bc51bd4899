package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"streetcast/internal/core/domain"
	"streetcast/internal/core/port"
)

// CreateAdvertiser inserts an advertiser.
func (r *Repository) CreateAdvertiser(ctx context.Context, adv *domain.Advertiser) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO advertisers (id, name, contact_info, created_at, updated_at) VALUES ($1,$2,$3,$4,$5)`,
		adv.ID, adv.Name, adv.ContactInfo, adv.CreatedAt, adv.UpdatedAt)
	return err
}

// GetAdvertiser returns an advertiser by id.
func (r *Repository) GetAdvertiser(ctx context.Context, id string) (*domain.Advertiser, error) {
	var a domain.Advertiser
	found, err := queryOne(ctx, r.pool,
		`SELECT id, name, contact_info, created_at, updated_at FROM advertisers WHERE id = $1`,
		[]any{id},
		&a.ID, &a.Name, &a.ContactInfo, &a.CreatedAt, &a.UpdatedAt)
	if err != nil || !found {
		return nil, err
	}
	return &a, nil
}

// ListAdvertisers returns advertisers newest first with their campaigns.
func (r *Repository) ListAdvertisers(ctx context.Context) ([]port.AdvertiserListing, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT a.id, a.name, a.contact_info, a.created_at, a.updated_at, c.id, c.name
        FROM advertisers a
        LEFT JOIN campaigns c ON c.advertiser_id = a.id
        ORDER BY a.created_at DESC, a.id, c.created_at DESC, c.id`)
	if err != nil {
		return nil, err
	}
	type rawRow struct {
		Adv          domain.Advertiser
		CampaignID   *string
		CampaignName *string
	}
	raw, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (rawRow, error) {
		var rr rawRow
		err := row.Scan(&rr.Adv.ID, &rr.Adv.Name, &rr.Adv.ContactInfo, &rr.Adv.CreatedAt, &rr.Adv.UpdatedAt,
			&rr.CampaignID, &rr.CampaignName)
		return rr, err
	})
	if err != nil {
		return nil, err
	}

	out := make([]port.AdvertiserListing, 0)
	for _, rr := range raw {
		if len(out) == 0 || out[len(out)-1].ID != rr.Adv.ID {
			out = append(out, port.AdvertiserListing{Advertiser: rr.Adv, Campaigns: []port.NamedRef{}})
		}
		if rr.CampaignID != nil {
			last := &out[len(out)-1]
			last.Campaigns = append(last.Campaigns, port.NamedRef{ID: *rr.CampaignID, Name: deref(rr.CampaignName)})
		}
	}
	return out, nil
}
