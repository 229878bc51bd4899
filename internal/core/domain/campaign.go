package domain

import "time"

// CampaignStatus classifies a campaign window relative to an instant.
type CampaignStatus string

const (
	CampaignUpcoming CampaignStatus = "upcoming"
	CampaignActive   CampaignStatus = "active"
	CampaignExpired  CampaignStatus = "expired"
)

// Campaign represents an advertising campaign that plays between StartAt and
// EndAt inclusive. StartAt <= EndAt is expected but not enforced here; an
// inverted window is simply never eligible.
type Campaign struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	AdvertiserID string    `json:"advertiserId"`
	StartAt      time.Time `json:"startAt"`
	EndAt        time.Time `json:"endAt"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsEligible reports whether the campaign may play at now. Both ends of the
// window are inclusive.
func (c Campaign) IsEligible(now time.Time) bool {
	return !now.Before(c.StartAt) && !now.After(c.EndAt)
}

// Status returns the admin view classification of the campaign at now.
func (c Campaign) Status(now time.Time) CampaignStatus {
	switch {
	case now.Before(c.StartAt):
		return CampaignUpcoming
	case now.After(c.EndAt):
		return CampaignExpired
	default:
		return CampaignActive
	}
}
