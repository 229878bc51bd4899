package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streetcast/internal/core/domain"
)

func ptr[T any](v T) *T { return &v }

func TestGroupCampaignRows(t *testing.T) {
	created := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	newer := domain.Campaign{ID: "c2", Name: "Newer", CreatedAt: created.Add(time.Hour)}
	older := domain.Campaign{ID: "c1", Name: "Older", CreatedAt: created}
	empty := domain.Campaign{ID: "c0", Name: "Empty"}

	rows := []campaignCreativeRow{
		{Camp: newer, CreativeID: ptr("x1"), URL: ptr("/a.mp4"), Duration: ptr(15), CreatedAt: ptr(created)},
		{Camp: newer, CreativeID: ptr("x2"), URL: ptr("/b.mp4"), Duration: ptr(20), CreatedAt: ptr(created)},
		{Camp: older, CreativeID: ptr("y1"), URL: ptr("https://cdn/c.mp4"), Duration: ptr(30)},
		{Camp: empty},
	}

	got := groupCampaignRows(rows)
	require.Len(t, got, 3)

	assert.Equal(t, "c2", got[0].Campaign.ID)
	require.Len(t, got[0].Creatives, 2)
	assert.Equal(t, "x1", got[0].Creatives[0].ID)
	assert.Equal(t, "x2", got[0].Creatives[1].ID)
	assert.Equal(t, "c2", got[0].Creatives[1].CampaignID)
	assert.Equal(t, 20, got[0].Creatives[1].Duration)

	assert.Equal(t, "c1", got[1].Campaign.ID)
	require.Len(t, got[1].Creatives, 1)
	assert.Equal(t, "https://cdn/c.mp4", got[1].Creatives[0].URL)

	assert.Equal(t, "c0", got[2].Campaign.ID)
	assert.NotNil(t, got[2].Creatives)
	assert.Empty(t, got[2].Creatives)
}

func TestGroupCampaignRowsEmpty(t *testing.T) {
	got := groupCampaignRows(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestImpressionDetailRow(t *testing.T) {
	shown := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	base := domain.Impression{ID: "i1", DeviceID: "d1", CreativeID: "x1", ShownAt: shown}

	t.Run("fully resolved", func(t *testing.T) {
		row := impressionDetailRow{
			Imp:                  base,
			DeviceID:             ptr("d1"),
			DeviceName:           ptr("Court 1"),
			DeviceLocation:       ptr("Central Park"),
			CreativeID:           ptr("x1"),
			CreativeCampaignID:   ptr("c1"),
			CreativeURL:          ptr("/a.mp4"),
			CreativeDuration:     ptr(15),
			CampaignID:           ptr("c1"),
			CampaignName:         ptr("Summer"),
			CampaignAdvertiserID: ptr("a1"),
			AdvertiserID:         ptr("a1"),
			AdvertiserName:       ptr("Acme"),
		}
		d := row.toDetail()
		assert.Equal(t, base, d.Impression)
		require.NotNil(t, d.Device)
		assert.Equal(t, "Central Park", *d.Device.Location)
		require.NotNil(t, d.Creative)
		assert.Equal(t, 15, d.Creative.Duration)
		require.NotNil(t, d.Campaign)
		assert.Equal(t, "Summer", d.Campaign.Name)
		require.NotNil(t, d.Advertiser)
		assert.Equal(t, "Acme", d.Advertiser.Name)
	})

	t.Run("dangling references", func(t *testing.T) {
		d := impressionDetailRow{Imp: base}.toDetail()
		assert.Equal(t, "x1", d.CreativeID)
		assert.Nil(t, d.Device)
		assert.Nil(t, d.Creative)
		assert.Nil(t, d.Campaign)
		assert.Nil(t, d.Advertiser)
	})
}
