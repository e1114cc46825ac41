package domain

import "errors"

var (
	ErrNilCampaign      = errors.New("campaign is nil")
	ErrInvalidCampaign  = errors.New("invalid campaign")
	ErrInvalidScenario  = errors.New("invalid scenario")
	ErrCampaignNotFound = errors.New("campaign not found")
)
