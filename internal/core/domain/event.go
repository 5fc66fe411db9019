package domain

import (
	"time"
)

// ViewRecord is a record of a campaign being shown to the visitor.
type ViewRecord struct {
	CampaignID string
	Timestamp  time.Time
}

// TrackEvent names a tracked visitor interaction.
type TrackEvent string

const (
	EventView       TrackEvent = "view"
	EventClick      TrackEvent = "click"
	EventConversion TrackEvent = "conversion"
)

// Apply bumps the counter matching ev and stamps UpdatedAt. It reports false
// for an unknown event.
func (c *Campaign) Apply(ev TrackEvent, now time.Time) bool {
	switch ev {
	case EventView:
		c.ViewCount++
	case EventClick:
		c.ClickCount++
	case EventConversion:
		c.ConversionCount++
	default:
		return false
	}
	c.UpdatedAt = now.UTC()
	return true
}
