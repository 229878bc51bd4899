package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"streetcast/internal/core/domain"
	"streetcast/internal/core/port/mocks"
)

func detail(id string, dev *domain.DeviceRef, camp *domain.Campaign, adv *domain.AdvertiserRef, shownAt time.Time) domain.ImpressionDetail {
	d := domain.ImpressionDetail{
		Impression: domain.Impression{ID: id, ShownAt: shownAt},
		Device:     dev,
		Campaign:   camp,
		Advertiser: adv,
	}
	if dev != nil {
		d.DeviceID = dev.ID
	}
	if camp != nil {
		d.Creative = &domain.Creative{ID: "cr-" + camp.ID, CampaignID: camp.ID}
		d.CreativeID = d.Creative.ID
	}
	return d
}

func TestComputeAnalytics(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	court := "Court 1"
	d1 := &domain.DeviceRef{ID: "d1", Name: "Display", Location: &court}
	// same display name, different identity
	d2 := &domain.DeviceRef{ID: "d2", Name: "Display"}
	acme := &domain.AdvertiserRef{ID: "adv1", Name: "Acme"}
	summer := &domain.Campaign{ID: "c-summer", Name: "Summer"}
	winter := &domain.Campaign{ID: "c-winter", Name: "Summer"}

	details := []domain.ImpressionDetail{
		detail("i1", d1, summer, acme, now.Add(-3*time.Minute)),
		detail("i2", d2, summer, acme, now.Add(-2*time.Minute)),
		detail("i3", d1, winter, acme, now.Add(-1*time.Minute)),
		detail("i4", d1, summer, acme, now),
	}

	repo := mocks.NewMockSignageRepository(t)
	repo.EXPECT().CountImpressions(mock.Anything).Return(int64(4), nil)
	repo.EXPECT().ListImpressionDetails(mock.Anything).Return(details, nil)
	repo.EXPECT().RecentImpressionDetails(mock.Anything, 50).Return([]domain.ImpressionDetail{details[3], details[2]}, nil)

	svc := NewSignageUseCase(repo, WithClock(fixedClock(now)))
	snap, err := svc.ComputeAnalytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), snap.TotalImpressions)
	assert.Equal(t, []domain.CampaignCount{
		{CampaignID: "c-summer", CampaignName: "Summer", AdvertiserName: "Acme", Count: 3},
		{CampaignID: "c-winter", CampaignName: "Summer", AdvertiserName: "Acme", Count: 1},
	}, snap.ImpressionsByCampaign)
	assert.Equal(t, []domain.DeviceCount{
		{DeviceID: "d1", DeviceName: "Display", Location: &court, Count: 3},
		{DeviceID: "d2", DeviceName: "Display", Count: 1},
	}, snap.ImpressionsByDevice)
	require.Len(t, snap.RecentImpressions, 2)
	assert.Equal(t, "i4", snap.RecentImpressions[0].ID)

	var sum int64
	for _, row := range snap.ImpressionsByCampaign {
		sum += row.Count
	}
	assert.Equal(t, snap.TotalImpressions, sum)
}

func TestComputeAnalyticsSkipsUnresolved(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	d1 := &domain.DeviceRef{ID: "d1", Name: "Display"}
	camp := &domain.Campaign{ID: "c1", Name: "Spring"}

	details := []domain.ImpressionDetail{
		detail("i1", d1, camp, nil, now),
		// creative deleted after playback
		detail("i2", d1, nil, nil, now),
		// device deleted after playback
		detail("i3", nil, camp, nil, now),
	}

	repo := mocks.NewMockSignageRepository(t)
	repo.EXPECT().CountImpressions(mock.Anything).Return(int64(3), nil)
	repo.EXPECT().ListImpressionDetails(mock.Anything).Return(details, nil)
	repo.EXPECT().RecentImpressionDetails(mock.Anything, 10).Return(nil, nil)

	svc := NewSignageUseCase(repo, WithClock(fixedClock(now)), WithRecentLimit(10))
	snap, err := svc.ComputeAnalytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), snap.TotalImpressions)
	assert.Equal(t, []domain.CampaignCount{{CampaignID: "c1", CampaignName: "Spring", Count: 2}}, snap.ImpressionsByCampaign)
	assert.Equal(t, []domain.DeviceCount{{DeviceID: "d1", DeviceName: "Display", Count: 2}}, snap.ImpressionsByDevice)
	assert.NotNil(t, snap.RecentImpressions)
	assert.Empty(t, snap.RecentImpressions)
}

func TestComputeAnalyticsEmptyLog(t *testing.T) {
	repo := mocks.NewMockSignageRepository(t)
	repo.EXPECT().CountImpressions(mock.Anything).Return(int64(0), nil)
	repo.EXPECT().ListImpressionDetails(mock.Anything).Return(nil, nil)
	repo.EXPECT().RecentImpressionDetails(mock.Anything, 50).Return(nil, nil)

	snap, err := NewSignageUseCase(repo).ComputeAnalytics(context.Background())
	require.NoError(t, err)
	assert.Zero(t, snap.TotalImpressions)
	assert.NotNil(t, snap.ImpressionsByCampaign)
	assert.NotNil(t, snap.ImpressionsByDevice)
	assert.Empty(t, snap.ImpressionsByCampaign)
	assert.Empty(t, snap.ImpressionsByDevice)
}
