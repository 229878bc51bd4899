package usecase

import (
	"context"
	"fmt"
	"strings"

	"streetcast/internal/core/domain"
	"streetcast/internal/core/port"
	"streetcast/internal/idgen"
)

// CreateAdvertiser stores a new advertiser. Name is required.
func (u *SignageUseCase) CreateAdvertiser(ctx context.Context, req port.CreateAdvertiserReq) (*domain.Advertiser, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := u.check(req); err != nil {
		return nil, err
	}
	id, err := idgen.New(idgen.PrefixAdvertiser)
	if err != nil {
		return nil, err
	}
	now := u.now().UTC()
	adv := &domain.Advertiser{
		ID:          id,
		Name:        req.Name,
		ContactInfo: optional(req.ContactInfo),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = u.repo.CreateAdvertiser(ctx, adv); err != nil {
		return nil, fmt.Errorf("create advertiser: %w", err)
	}
	return adv, nil
}

func (u *SignageUseCase) ListAdvertisers(ctx context.Context) ([]port.AdvertiserListing, error) {
	list, err := u.repo.ListAdvertisers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list advertisers: %w", err)
	}
	return nonNil(list), nil
}

// CreateCampaign stores a campaign for an existing advertiser. A window
// whose start is after its end is rejected rather than swapped.
func (u *SignageUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*port.CampaignListing, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := u.check(req); err != nil {
		return nil, err
	}
	if req.StartAt.After(req.EndAt) {
		return nil, domain.NewValidationError("endAt", "must not be before startAt")
	}

	adv, err := u.repo.GetAdvertiser(ctx, req.AdvertiserID)
	if err != nil {
		return nil, fmt.Errorf("get advertiser: %w", err)
	}
	if adv == nil {
		return nil, domain.ErrAdvertiserNotFound
	}

	id, err := idgen.New(idgen.PrefixCampaign)
	if err != nil {
		return nil, err
	}
	now := u.now().UTC()
	c := &domain.Campaign{
		ID:           id,
		Name:         req.Name,
		AdvertiserID: adv.ID,
		StartAt:      req.StartAt.UTC(),
		EndAt:        req.EndAt.UTC(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err = u.repo.CreateCampaign(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return &port.CampaignListing{
		Campaign:   *c,
		Advertiser: port.NamedRef{ID: adv.ID, Name: adv.Name},
		Creatives:  []port.CreativeRef{},
		Status:     c.Status(now),
	}, nil
}

// ListCampaigns returns all campaigns with their status at the current instant.
func (u *SignageUseCase) ListCampaigns(ctx context.Context) ([]port.CampaignListing, error) {
	list, err := u.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	now := u.now()
	for i := range list {
		list[i].Status = list[i].Campaign.Status(now)
		if list[i].Creatives == nil {
			list[i].Creatives = []port.CreativeRef{}
		}
	}
	return nonNil(list), nil
}

// CreateCreative stores a creative under an existing campaign. Duration must
// be a positive number of seconds.
func (u *SignageUseCase) CreateCreative(ctx context.Context, req port.CreateCreativeReq) (*port.CreativeListing, error) {
	req.URL = strings.TrimSpace(req.URL)
	if err := u.check(req); err != nil {
		return nil, err
	}

	camp, err := u.repo.GetCampaign(ctx, req.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if camp == nil {
		return nil, domain.ErrCampaignNotFound
	}

	id, err := idgen.New(idgen.PrefixCreative)
	if err != nil {
		return nil, err
	}
	now := u.now().UTC()
	cr := &domain.Creative{
		ID:         id,
		CampaignID: camp.ID,
		URL:        req.URL,
		Duration:   req.Duration,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err = u.repo.CreateCreative(ctx, cr); err != nil {
		return nil, fmt.Errorf("create creative: %w", err)
	}

	listing := &port.CreativeListing{
		Creative: *cr,
		Campaign: port.NamedRef{ID: camp.ID, Name: camp.Name},
	}
	adv, err := u.repo.GetAdvertiser(ctx, camp.AdvertiserID)
	if err != nil {
		return nil, fmt.Errorf("get advertiser: %w", err)
	}
	if adv != nil {
		listing.Advertiser = port.NamedRef{ID: adv.ID, Name: adv.Name}
	}
	return listing, nil
}

func (u *SignageUseCase) ListCreatives(ctx context.Context) ([]port.CreativeListing, error) {
	list, err := u.repo.ListCreatives(ctx)
	if err != nil {
		return nil, fmt.Errorf("list creatives: %w", err)
	}
	return nonNil(list), nil
}

// DeleteCreative removes a creative. Impressions already recorded for it
// stay in the log.
func (u *SignageUseCase) DeleteCreative(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrCreativeNotFound
	}
	ok, err := u.repo.DeleteCreative(ctx, id)
	if err != nil {
		return fmt.Errorf("delete creative: %w", err)
	}
	if !ok {
		return domain.ErrCreativeNotFound
	}
	return nil
}

// CreateDevice registers a device. The returned id is the device's polling
// credential.
func (u *SignageUseCase) CreateDevice(ctx context.Context, req port.CreateDeviceReq) (*domain.Device, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := u.check(req); err != nil {
		return nil, err
	}
	id, err := idgen.New(idgen.PrefixDevice)
	if err != nil {
		return nil, err
	}
	now := u.now().UTC()
	d := &domain.Device{
		ID:        id,
		Name:      req.Name,
		Location:  optional(req.Location),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = u.repo.CreateDevice(ctx, d); err != nil {
		return nil, fmt.Errorf("create device: %w", err)
	}
	return d, nil
}

// ListDevices returns all devices with their liveness at the current instant.
func (u *SignageUseCase) ListDevices(ctx context.Context) ([]port.DeviceListing, error) {
	list, err := u.repo.ListDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	now := u.now()
	for i := range list {
		list[i].Status = list[i].Device.Liveness(now, u.onlineWindow, u.warningWindow)
	}
	return nonNil(list), nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
