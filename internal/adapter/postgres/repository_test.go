package postgres

import (
	"context"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"streetcast/internal/adapter/usecase"
	"streetcast/internal/config/configs"
	"streetcast/internal/core/domain"
	"streetcast/internal/core/port"
	"streetcast/internal/db"
)

// startPostgres runs a throwaway Postgres, applies the embedded migrations
// and returns a pool connected to it.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping Postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "streetcast",
			},
			// the entrypoint starts the server twice; the second start is the real one
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	addr, err := url.Parse(fmt.Sprintf("postgres://postgres:password@%s:%s/streetcast?sslmode=disable", host, port.Port()))
	require.NoError(t, err)

	require.NoError(t, db.Migrate(addr.String()))

	pool, err := db.NewPostgresPool(ctx, configs.Postgres{Addr: *addr})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `TRUNCATE impressions, creatives, campaigns, devices, advertisers`)
	require.NoError(t, err)
}

type fixture struct {
	t    *testing.T
	repo *Repository
}

func (f fixture) advertiser(id string) {
	f.t.Helper()
	now := time.Now().UTC()
	require.NoError(f.t, f.repo.CreateAdvertiser(context.Background(),
		&domain.Advertiser{ID: id, Name: "Adv " + id, CreatedAt: now, UpdatedAt: now}))
}

func (f fixture) campaign(id, advertiserID string, start, end, created time.Time) {
	f.t.Helper()
	require.NoError(f.t, f.repo.CreateCampaign(context.Background(), &domain.Campaign{
		ID: id, Name: "Campaign " + id, AdvertiserID: advertiserID,
		StartAt: start, EndAt: end, CreatedAt: created, UpdatedAt: created,
	}))
}

func (f fixture) creative(id, campaignID string, created time.Time) {
	f.t.Helper()
	require.NoError(f.t, f.repo.CreateCreative(context.Background(), &domain.Creative{
		ID: id, CampaignID: campaignID, URL: "/videos/" + id + ".mp4", Duration: 15,
		CreatedAt: created, UpdatedAt: created,
	}))
}

func (f fixture) device(id string, created time.Time) {
	f.t.Helper()
	require.NoError(f.t, f.repo.CreateDevice(context.Background(), &domain.Device{
		ID: id, Name: "Device " + id, CreatedAt: created, UpdatedAt: created,
	}))
}

func campaignIDs(list []domain.CampaignWithCreatives) []string {
	ids := make([]string, 0, len(list))
	for _, c := range list {
		ids = append(ids, c.Campaign.ID)
	}
	return ids
}

func TestRepositoryIntegration(t *testing.T) {
	pool := startPostgres(t)
	repo := NewRepository(pool)
	ctx := context.Background()
	f := fixture{t: t, repo: repo}

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("eligibility is a closed interval", func(t *testing.T) {
		truncate(t, pool)
		f.t = t
		start := base
		end := time.Date(2024, 6, 30, 23, 59, 0, 0, time.UTC)
		f.advertiser("adv")
		f.campaign("A", "adv", start, end, base.Add(-24*time.Hour))
		f.creative("X", "A", base)

		cases := []struct {
			at   time.Time
			want []string
		}{
			{at: start.Add(-time.Millisecond), want: []string{}},
			{at: start, want: []string{"A"}},
			{at: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC), want: []string{"A"}},
			{at: end, want: []string{"A"}},
			{at: end.Add(time.Millisecond), want: []string{}},
			// same instant expressed in another zone
			{at: end.In(time.FixedZone("UTC+3", 3*3600)), want: []string{"A"}},
		}
		for _, tc := range cases {
			got, err := repo.ListEligibleCampaigns(ctx, tc.at)
			require.NoError(t, err)
			assert.Equal(t, tc.want, campaignIDs(got), tc.at)
		}
	})

	t.Run("campaigns newest first with creatives in insertion order", func(t *testing.T) {
		truncate(t, pool)
		f.t = t
		start, end := base, base.AddDate(0, 1, 0)
		f.advertiser("adv")
		f.campaign("old", "adv", start, end, base.Add(-48*time.Hour))
		f.campaign("new", "adv", start, end, base.Add(-24*time.Hour))
		f.campaign("empty", "adv", start, end, base.Add(-12*time.Hour))
		f.campaign("expired", "adv", start.AddDate(0, -2, 0), start.AddDate(0, -1, 0), base)
		f.creative("o1", "old", base)
		f.creative("n2", "new", base.Add(time.Minute))
		f.creative("n1", "new", base)

		got, err := repo.ListEligibleCampaigns(ctx, base.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, []string{"empty", "new", "old"}, campaignIDs(got))
		assert.Empty(t, got[0].Creatives)
		require.Len(t, got[1].Creatives, 2)
		assert.Equal(t, "n1", got[1].Creatives[0].ID)
		assert.Equal(t, "n2", got[1].Creatives[1].ID)
	})

	t.Run("record then analytics", func(t *testing.T) {
		truncate(t, pool)
		f.t = t
		f.advertiser("adv")
		f.campaign("A", "adv", base, base.AddDate(0, 1, 0), base)
		f.creative("c1", "A", base)
		f.device("d1", base)
		f.device("d2", base.Add(time.Minute))

		svc := usecase.NewSignageUseCase(repo)

		before, err := svc.ComputeAnalytics(ctx)
		require.NoError(t, err)

		res, err := svc.RecordImpression(ctx, port.RecordImpressionReq{DeviceID: "d1", CreativeID: "c1"})
		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)

		after, err := svc.ComputeAnalytics(ctx)
		require.NoError(t, err)
		assert.Equal(t, before.TotalImpressions+1, after.TotalImpressions)
		require.NotEmpty(t, after.RecentImpressions)
		assert.Equal(t, "c1", after.RecentImpressions[0].CreativeID)
		require.NotNil(t, after.RecentImpressions[0].Creative)
		assert.Equal(t, "c1", after.RecentImpressions[0].Creative.ID)
		require.Len(t, after.ImpressionsByCampaign, 1)
		assert.Equal(t, int64(1), after.ImpressionsByCampaign[0].Count)
		assert.Equal(t, "Adv adv", after.ImpressionsByCampaign[0].AdvertiserName)

		devices, err := repo.ListDevices(ctx)
		require.NoError(t, err)
		require.Len(t, devices, 2)
		assert.Equal(t, "d2", devices[0].ID)
		assert.Equal(t, int64(0), devices[0].ImpressionCount)
		assert.Equal(t, int64(1), devices[1].ImpressionCount)

		// the log outlives the creative
		deleted, err := repo.DeleteCreative(ctx, "c1")
		require.NoError(t, err)
		assert.True(t, deleted)
		deleted, err = repo.DeleteCreative(ctx, "c1")
		require.NoError(t, err)
		assert.False(t, deleted)

		orphaned, err := svc.ComputeAnalytics(ctx)
		require.NoError(t, err)
		assert.Equal(t, after.TotalImpressions, orphaned.TotalImpressions)
		assert.Empty(t, orphaned.ImpressionsByCampaign)
		require.Len(t, orphaned.RecentImpressions, 1)
		assert.Nil(t, orphaned.RecentImpressions[0].Creative)
	})

	t.Run("recent feed is limited and newest first", func(t *testing.T) {
		truncate(t, pool)
		f.t = t
		f.device("d1", base)
		for i := 0; i < 60; i++ {
			require.NoError(t, repo.CreateImpression(ctx, &domain.Impression{
				ID: fmt.Sprintf("imp-%02d", i), DeviceID: "d1", CreativeID: "gone",
				ShownAt: base.Add(time.Duration(i) * time.Second),
			}))
		}
		// tie on shown_at with the newest row breaks by id descending
		require.NoError(t, repo.CreateImpression(ctx, &domain.Impression{
			ID: "imp-99", DeviceID: "d1", CreativeID: "gone", ShownAt: base.Add(59 * time.Second),
		}))

		total, err := repo.CountImpressions(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(61), total)

		recent, err := repo.RecentImpressionDetails(ctx, 50)
		require.NoError(t, err)
		require.Len(t, recent, 50)
		assert.Equal(t, "imp-99", recent[0].ID)
		assert.Equal(t, "imp-59", recent[1].ID)
		assert.Equal(t, "imp-11", recent[49].ID)
		for i := 1; i < len(recent); i++ {
			assert.False(t, recent[i].ShownAt.After(recent[i-1].ShownAt))
		}
	})

	t.Run("touch and lookups", func(t *testing.T) {
		truncate(t, pool)
		f.t = t
		f.device("d1", base)

		seen := base.Add(time.Hour)
		require.NoError(t, repo.TouchDevice(ctx, "d1", seen))
		dev, err := repo.GetDevice(ctx, "d1")
		require.NoError(t, err)
		require.NotNil(t, dev.LastSeen)
		assert.True(t, seen.Equal(*dev.LastSeen))

		assert.ErrorIs(t, repo.TouchDevice(ctx, "ghost", seen), domain.ErrDeviceNotFound)

		missing, err := repo.GetDevice(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, missing)
		cr, err := repo.GetCreative(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, cr)
	})
}
