package usecase

import (
	"context"
	"fmt"

	"streetcast/internal/core/domain"
	"streetcast/internal/core/port"
	"streetcast/internal/idgen"
	"streetcast/internal/metrics"
)

// RecordImpression validates both references and appends one impression
// stamped with the recording instant. The existence checks and the insert
// are separate statements: a creative deleted between them still gets its
// impression, which the analytics joins tolerate.
func (u *SignageUseCase) RecordImpression(ctx context.Context, req port.RecordImpressionReq) (*domain.Impression, error) {
	if err := u.check(req); err != nil {
		metrics.RecordImpression(metrics.ResultValidationFailure)
		return nil, err
	}

	dev, err := u.repo.GetDevice(ctx, req.DeviceID)
	if err != nil {
		metrics.RecordImpression(metrics.ResultError)
		return nil, fmt.Errorf("get device: %w", err)
	}
	if dev == nil {
		metrics.RecordImpression(metrics.ResultDeviceNotFound)
		return nil, domain.ErrDeviceNotFound
	}

	cr, err := u.repo.GetCreative(ctx, req.CreativeID)
	if err != nil {
		metrics.RecordImpression(metrics.ResultError)
		return nil, fmt.Errorf("get creative: %w", err)
	}
	if cr == nil {
		metrics.RecordImpression(metrics.ResultCreativeNotFound)
		return nil, domain.ErrCreativeNotFound
	}

	id, err := idgen.New(idgen.PrefixImpression)
	if err != nil {
		metrics.RecordImpression(metrics.ResultError)
		return nil, err
	}
	imp := &domain.Impression{
		ID:         id,
		DeviceID:   dev.ID,
		CreativeID: cr.ID,
		ShownAt:    u.now().UTC(),
	}
	if err = u.repo.CreateImpression(ctx, imp); err != nil {
		metrics.RecordImpression(metrics.ResultError)
		return nil, fmt.Errorf("create impression: %w", err)
	}
	metrics.RecordImpression(metrics.ResultOK)

	u.publish(ctx, port.SubjectImpressionRecorded, port.ImpressionRecorded{
		ImpressionID: imp.ID,
		DeviceID:     imp.DeviceID,
		CreativeID:   imp.CreativeID,
		ShownAt:      imp.ShownAt,
	})
	return imp, nil
}
