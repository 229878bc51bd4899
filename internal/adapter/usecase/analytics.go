package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"streetcast/internal/core/domain"
)

// ComputeAnalytics recomputes the dashboard snapshot from the impression
// log. Groups are keyed by entity id, never by display name, and entities
// without impressions do not appear.
func (u *SignageUseCase) ComputeAnalytics(ctx context.Context) (*domain.AnalyticsSnapshot, error) {
	now := u.now()

	total, err := u.repo.CountImpressions(ctx)
	if err != nil {
		return nil, fmt.Errorf("count impressions: %w", err)
	}
	details, err := u.repo.ListImpressionDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("list impressions: %w", err)
	}
	recent, err := u.repo.RecentImpressionDetails(ctx, u.recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent impressions: %w", err)
	}
	if recent == nil {
		recent = []domain.ImpressionDetail{}
	}

	return &domain.AnalyticsSnapshot{
		TotalImpressions:      total,
		ImpressionsByCampaign: groupByCampaign(details),
		ImpressionsByDevice:   groupByDevice(details),
		RecentImpressions:     recent,
		GeneratedAt:           now.UTC(),
	}, nil
}

// groupByCampaign counts impressions per campaign reached through their
// creative. Impressions whose creative or campaign no longer resolves are
// skipped. Rows are ordered by count descending, then campaign id.
func groupByCampaign(details []domain.ImpressionDetail) []domain.CampaignCount {
	index := make(map[string]int)
	out := make([]domain.CampaignCount, 0)
	for _, d := range details {
		if d.Campaign == nil {
			continue
		}
		i, ok := index[d.Campaign.ID]
		if !ok {
			row := domain.CampaignCount{
				CampaignID:   d.Campaign.ID,
				CampaignName: d.Campaign.Name,
			}
			if d.Advertiser != nil {
				row.AdvertiserName = d.Advertiser.Name
			}
			i = len(out)
			index[d.Campaign.ID] = i
			out = append(out, row)
		}
		out[i].Count++
	}
	slices.SortStableFunc(out, func(a, b domain.CampaignCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.CampaignID, b.CampaignID)
	})
	return out
}

// groupByDevice counts impressions per device, skipping devices that no
// longer exist.
func groupByDevice(details []domain.ImpressionDetail) []domain.DeviceCount {
	index := make(map[string]int)
	out := make([]domain.DeviceCount, 0)
	for _, d := range details {
		if d.Device == nil {
			continue
		}
		i, ok := index[d.Device.ID]
		if !ok {
			i = len(out)
			index[d.Device.ID] = i
			out = append(out, domain.DeviceCount{
				DeviceID:   d.Device.ID,
				DeviceName: d.Device.Name,
				Location:   d.Device.Location,
			})
		}
		out[i].Count++
	}
	slices.SortStableFunc(out, func(a, b domain.DeviceCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.DeviceID, b.DeviceID)
	})
	return out
}
