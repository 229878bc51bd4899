package db

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streetcast/db/migrations"
	"streetcast/internal/config/configs"
)

type recordingExecer struct {
	stmts  []string
	args   [][]any
	failOn string
}

func (r *recordingExecer) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if r.failOn != "" && strings.Contains(sql, r.failOn) {
		return pgconn.CommandTag{}, errors.New("boom")
	}
	r.stmts = append(r.stmts, sql)
	r.args = append(r.args, args)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func TestSeed(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	rec := &recordingExecer{}

	require.NoError(t, Seed(context.Background(), rec, now))
	require.Len(t, rec.stmts, 7)
	for _, s := range rec.stmts {
		assert.Contains(t, s, "ON CONFLICT (id) DO NOTHING")
	}

	campaign := rec.args[1]
	assert.Equal(t, SeedCampaignID, campaign[0])
	start, end := campaign[3].(time.Time), campaign[4].(time.Time)
	assert.True(t, start.Before(now) && end.After(now), "seed campaign must be active at seed time")

	assert.Equal(t, []any{"dev-impression-1", SeedDeviceID, "dev-creative-1", now.Add(-time.Hour)}, rec.args[5])
	assert.Equal(t, []any{"dev-impression-2", SeedDeviceID, "dev-creative-2", now.Add(-30 * time.Minute)}, rec.args[6])
}

func TestSeedStopsOnError(t *testing.T) {
	rec := &recordingExecer{failOn: "INSERT INTO creatives"}
	err := Seed(context.Background(), rec, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dev-creative-1")
	assert.Len(t, rec.stmts, 2)
}

func TestPoolConfig(t *testing.T) {
	addr, err := url.Parse("postgres://u:p@db:5432/streetcast?sslmode=disable")
	require.NoError(t, err)

	conf, err := poolConfig(configs.Postgres{Addr: *addr, MaxConns: 12, MinConns: 2})
	require.NoError(t, err)
	assert.Equal(t, int32(12), conf.MaxConns)
	assert.Equal(t, int32(2), conf.MinConns)
	assert.Equal(t, "db", conf.ConnConfig.Host)

	def, err := poolConfig(configs.Postgres{Addr: *addr})
	require.NoError(t, err)
	assert.Positive(t, def.MaxConns)
}

func TestEmbeddedMigrations(t *testing.T) {
	up, err := migrations.FS.ReadFile("000001_init.up.sql")
	require.NoError(t, err)
	for _, table := range []string{"advertisers", "campaigns", "creatives", "devices", "impressions"} {
		assert.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS "+table)
	}
	_, err = migrations.FS.ReadFile("000001_init.down.sql")
	assert.NoError(t, err)
}
