package usecase

import (
	"cmp"
	"context"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"streetcast/internal/core/domain"
	"streetcast/internal/core/port"
	"streetcast/internal/metrics"
)

// BuildManifest looks the device up, records the poll as its heartbeat and
// flattens the creatives of every campaign eligible at the build instant.
// The heartbeat write happens only after the lookup succeeds, so an unknown
// device leaves the store untouched.
func (u *SignageUseCase) BuildManifest(ctx context.Context, deviceID, origin string) (*domain.Manifest, error) {
	now := u.now()

	if deviceID == "" {
		metrics.RecordManifest(metrics.ResultDeviceNotFound, 0)
		return nil, domain.ErrDeviceNotFound
	}
	dev, err := u.repo.GetDevice(ctx, deviceID)
	if err != nil {
		metrics.RecordManifest(metrics.ResultError, 0)
		return nil, fmt.Errorf("get device: %w", err)
	}
	if dev == nil {
		metrics.RecordManifest(metrics.ResultDeviceNotFound, 0)
		return nil, domain.ErrDeviceNotFound
	}

	if err = u.repo.TouchDevice(ctx, dev.ID, now); err != nil {
		metrics.RecordManifest(metrics.ResultError, 0)
		return nil, fmt.Errorf("touch device: %w", err)
	}
	u.publish(ctx, port.SubjectDeviceHeartbeat, port.DeviceHeartbeat{DeviceID: dev.ID, LastSeen: now})

	campaigns, err := u.repo.ListEligibleCampaigns(ctx, now)
	if err != nil {
		metrics.RecordManifest(metrics.ResultError, 0)
		return nil, fmt.Errorf("list eligible campaigns: %w", err)
	}
	// newest campaign first; creatives keep store order
	slices.SortStableFunc(campaigns, func(a, b domain.CampaignWithCreatives) int {
		return cmp.Compare(b.Campaign.CreatedAt.UnixNano(), a.Campaign.CreatedAt.UnixNano())
	})

	entries := make([]domain.ManifestEntry, 0)
	for _, cw := range campaigns {
		if !cw.Campaign.IsEligible(now) {
			continue
		}
		for _, cr := range cw.Creatives {
			entries = append(entries, domain.ManifestEntry{
				ID:           cr.ID,
				URL:          resolveCreativeURL(origin, cr.URL),
				Duration:     cr.Duration,
				CampaignID:   cw.Campaign.ID,
				CampaignName: cw.Campaign.Name,
			})
		}
	}

	metrics.RecordManifest(metrics.ResultOK, len(entries))
	return &domain.Manifest{
		Version:     u.nextVersion(now),
		DeviceID:    dev.ID,
		Creatives:   entries,
		GeneratedAt: now.UTC(),
	}, nil
}

// nextVersion derives a version from the build instant in milliseconds,
// bumped past the previous version when the clock has not advanced.
func (u *SignageUseCase) nextVersion(now time.Time) string {
	ms := now.UnixMilli()
	for {
		last := u.lastVersion.Load()
		next := ms
		if next <= last {
			next = last + 1
		}
		if u.lastVersion.CompareAndSwap(last, next) {
			return strconv.FormatInt(next, 10)
		}
	}
}

// resolveCreativeURL returns raw unchanged when it already has a scheme,
// otherwise joins it to origin with exactly one slash.
func resolveCreativeURL(origin, raw string) string {
	if hasScheme(raw) {
		return raw
	}
	return strings.TrimRight(origin, "/") + "/" + strings.TrimLeft(raw, "/")
}

// hasScheme reports whether raw parses with a scheme. A bare host:port such
// as "localhost:3000/x" parses as scheme "localhost" with an opaque part
// starting with the port digits; that is treated as schemeless.
func hasScheme(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return false
	}
	if parsed.Opaque != "" && parsed.Opaque[0] >= '0' && parsed.Opaque[0] <= '9' {
		return false
	}
	return true
}
