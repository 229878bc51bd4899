package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"streetcast/internal/core/domain"
	"streetcast/internal/core/port"
)

// GetDevice returns a device by id.
func (r *Repository) GetDevice(ctx context.Context, id string) (*domain.Device, error) {
	var d domain.Device
	found, err := queryOne(ctx, r.pool,
		`SELECT id, name, location, last_seen, created_at, updated_at FROM devices WHERE id = $1`,
		[]any{id},
		&d.ID, &d.Name, &d.Location, &d.LastSeen, &d.CreatedAt, &d.UpdatedAt)
	if err != nil || !found {
		return nil, err
	}
	return &d, nil
}

// TouchDevice records a poll. Concurrent polls from one device race; the
// last committed value wins.
func (r *Repository) TouchDevice(ctx context.Context, id string, seenAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE devices SET last_seen = $2, updated_at = now() WHERE id = $1`, id, seenAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// deleted between lookup and update
		return domain.ErrDeviceNotFound
	}
	return nil
}

// CreateDevice inserts a device.
func (r *Repository) CreateDevice(ctx context.Context, d *domain.Device) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO devices (id, name, location, last_seen, created_at, updated_at) VALUES ($1,$2,$3,$4,$5,$6)`,
		d.ID, d.Name, d.Location, d.LastSeen, d.CreatedAt, d.UpdatedAt)
	return err
}

// ListDevices returns devices newest first with their impression counts.
func (r *Repository) ListDevices(ctx context.Context) ([]port.DeviceListing, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT d.id, d.name, d.location, d.last_seen, d.created_at, d.updated_at, COUNT(i.id)
        FROM devices d
        LEFT JOIN impressions i ON i.device_id = d.id
        GROUP BY d.id
        ORDER BY d.created_at DESC, d.id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.DeviceListing, error) {
		var l port.DeviceListing
		err := row.Scan(&l.ID, &l.Name, &l.Location, &l.LastSeen, &l.CreatedAt, &l.UpdatedAt, &l.ImpressionCount)
		return l, err
	})
}
