package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"streetcast/internal/core/domain"
	"streetcast/internal/core/port"
	"streetcast/internal/core/port/mocks"
	"streetcast/internal/idgen"
)

func TestCreateAdvertiser(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	repo := mocks.NewMockSignageRepository(t)
	repo.EXPECT().CreateAdvertiser(mock.Anything, mock.AnythingOfType("*domain.Advertiser")).Return(nil)

	svc := NewSignageUseCase(repo, WithClock(fixedClock(now)))
	adv, err := svc.CreateAdvertiser(context.Background(), port.CreateAdvertiserReq{Name: "  Tennis Ball Co. ", ContactInfo: ""})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(adv.ID, idgen.PrefixAdvertiser))
	assert.Equal(t, "Tennis Ball Co.", adv.Name)
	assert.Nil(t, adv.ContactInfo)
	assert.Equal(t, now, adv.CreatedAt)
}

func TestCreateAdvertiserRequiresName(t *testing.T) {
	svc := NewSignageUseCase(mocks.NewMockSignageRepository(t))
	_, err := svc.CreateAdvertiser(context.Background(), port.CreateAdvertiserReq{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.EqualError(t, err, "name is required")
}

func TestCreateCampaign(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	req := port.CreateCampaignReq{
		Name:         "Summer",
		AdvertiserID: "adv1",
		StartAt:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndAt:        time.Date(2024, 6, 30, 23, 59, 0, 0, time.UTC),
	}

	t.Run("created", func(t *testing.T) {
		repo := mocks.NewMockSignageRepository(t)
		repo.EXPECT().GetAdvertiser(mock.Anything, "adv1").Return(&domain.Advertiser{ID: "adv1", Name: "Acme"}, nil)
		repo.EXPECT().CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)

		svc := NewSignageUseCase(repo, WithClock(fixedClock(now)))
		got, err := svc.CreateCampaign(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "adv1", got.AdvertiserID)
		assert.Equal(t, port.NamedRef{ID: "adv1", Name: "Acme"}, got.Advertiser)
		assert.Equal(t, domain.CampaignActive, got.Status)
		assert.NotNil(t, got.Creatives)
	})

	t.Run("unknown advertiser", func(t *testing.T) {
		repo := mocks.NewMockSignageRepository(t)
		repo.EXPECT().GetAdvertiser(mock.Anything, "adv1").Return(nil, nil)

		_, err := NewSignageUseCase(repo).CreateCampaign(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrAdvertiserNotFound)
	})

	t.Run("inverted window", func(t *testing.T) {
		inverted := req
		inverted.StartAt, inverted.EndAt = req.EndAt, req.StartAt

		_, err := NewSignageUseCase(mocks.NewMockSignageRepository(t)).CreateCampaign(context.Background(), inverted)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "endAt", ve.Field)
	})

	t.Run("missing dates", func(t *testing.T) {
		missing := req
		missing.EndAt = time.Time{}

		_, err := NewSignageUseCase(mocks.NewMockSignageRepository(t)).CreateCampaign(context.Background(), missing)
		assert.EqualError(t, err, "endAt is required")
	})
}

func TestCreateCreative(t *testing.T) {
	camp := &domain.Campaign{ID: "cmp1", Name: "Summer", AdvertiserID: "adv1"}

	t.Run("created", func(t *testing.T) {
		repo := mocks.NewMockSignageRepository(t)
		repo.EXPECT().GetCampaign(mock.Anything, "cmp1").Return(camp, nil)
		repo.EXPECT().CreateCreative(mock.Anything, mock.AnythingOfType("*domain.Creative")).Return(nil)
		repo.EXPECT().GetAdvertiser(mock.Anything, "adv1").Return(&domain.Advertiser{ID: "adv1", Name: "Acme"}, nil)

		got, err := NewSignageUseCase(repo).CreateCreative(context.Background(), port.CreateCreativeReq{
			CampaignID: "cmp1", URL: "/videos/a.mp4", Duration: 15,
		})
		require.NoError(t, err)
		assert.Equal(t, 15, got.Duration)
		assert.Equal(t, "cmp1", got.CampaignID)
		assert.Equal(t, port.NamedRef{ID: "adv1", Name: "Acme"}, got.Advertiser)
	})

	t.Run("non positive duration", func(t *testing.T) {
		svc := NewSignageUseCase(mocks.NewMockSignageRepository(t))
		_, err := svc.CreateCreative(context.Background(), port.CreateCreativeReq{CampaignID: "cmp1", URL: "/a.mp4", Duration: -5})
		assert.EqualError(t, err, "duration must be a positive integer")

		_, err = svc.CreateCreative(context.Background(), port.CreateCreativeReq{CampaignID: "cmp1", URL: "/a.mp4"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown campaign", func(t *testing.T) {
		repo := mocks.NewMockSignageRepository(t)
		repo.EXPECT().GetCampaign(mock.Anything, "cmp1").Return(nil, nil)

		_, err := NewSignageUseCase(repo).CreateCreative(context.Background(), port.CreateCreativeReq{
			CampaignID: "cmp1", URL: "/a.mp4", Duration: 5,
		})
		assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
	})
}

func TestDeleteCreative(t *testing.T) {
	repo := mocks.NewMockSignageRepository(t)
	repo.EXPECT().DeleteCreative(mock.Anything, "crv1").Return(true, nil).Once()
	repo.EXPECT().DeleteCreative(mock.Anything, "crv2").Return(false, nil).Once()

	svc := NewSignageUseCase(repo)
	assert.NoError(t, svc.DeleteCreative(context.Background(), "crv1"))
	assert.ErrorIs(t, svc.DeleteCreative(context.Background(), "crv2"), domain.ErrCreativeNotFound)
}

func TestListCampaignsComputesStatus(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	window := func(id string, start, end time.Time) port.CampaignListing {
		return port.CampaignListing{Campaign: domain.Campaign{ID: id, StartAt: start, EndAt: end}}
	}

	repo := mocks.NewMockSignageRepository(t)
	repo.EXPECT().ListCampaigns(mock.Anything).Return([]port.CampaignListing{
		window("up", now.Add(time.Hour), now.Add(2*time.Hour)),
		window("on", now, now),
		window("gone", now.Add(-2*time.Hour), now.Add(-time.Hour)),
	}, nil)

	list, err := NewSignageUseCase(repo, WithClock(fixedClock(now))).ListCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, domain.CampaignUpcoming, list[0].Status)
	assert.Equal(t, domain.CampaignActive, list[1].Status)
	assert.Equal(t, domain.CampaignExpired, list[2].Status)
	assert.NotNil(t, list[0].Creatives)
}

func TestCreateAndListDevices(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	seen := now.Add(-10 * time.Minute)

	repo := mocks.NewMockSignageRepository(t)
	repo.EXPECT().CreateDevice(mock.Anything, mock.AnythingOfType("*domain.Device")).Return(nil)
	repo.EXPECT().ListDevices(mock.Anything).Return([]port.DeviceListing{
		{Device: domain.Device{ID: "d1", LastSeen: &seen}, ImpressionCount: 7},
		{Device: domain.Device{ID: "d2"}},
	}, nil)

	svc := NewSignageUseCase(repo, WithClock(fixedClock(now)), WithDeviceWindows(15*time.Minute, time.Hour))

	d, err := svc.CreateDevice(context.Background(), port.CreateDeviceReq{Name: "Court 1 Display", Location: "Court 1"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(d.ID, idgen.PrefixDevice))
	require.NotNil(t, d.Location)
	assert.Equal(t, "Court 1", *d.Location)
	assert.Nil(t, d.LastSeen)

	list, err := svc.ListDevices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DeviceOnline, list[0].Status)
	assert.Equal(t, domain.DeviceOffline, list[1].Status)
}
