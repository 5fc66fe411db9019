package domain

import (
	"fmt"
	"strings"
	"time"
)

// CampaignType classifies a popup campaign. It has no effect on eligibility.
type CampaignType string

const (
	TypePromo        CampaignType = "promo"
	TypeAnnouncement CampaignType = "announcement"
	TypeSurvey       CampaignType = "survey"
	TypeWelcome      CampaignType = "welcome"
	TypeExit         CampaignType = "exit"
)

// Frequency is the repeat-display policy of a campaign for one visitor.
type Frequency string

const (
	FrequencyOnce   Frequency = "once"
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyAlways Frequency = "always"
)

// Audience is the visitor segment a campaign targets. It is carried as
// metadata only; no eligibility rule reads it.
type Audience string

const (
	AudienceAll       Audience = "all"
	AudienceNew       Audience = "new"
	AudienceReturning Audience = "returning"
)

// Campaign represents a popup campaign shown on the storefront.
// Counters are only ever incremented by tracking events.
type Campaign struct {
	ID             string
	Title          string
	Description    string
	ImageURL       string
	Type           CampaignType
	StartDate      time.Time
	EndDate        time.Time
	Frequency      Frequency
	TargetAudience Audience
	IsActive       bool
	Priority       int
	CTAText        string
	CTAAction      string
	CTALink        string

	ViewCount       int64
	ClickCount      int64
	ConversionCount int64

	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string
}

// CampaignFields holds every field an admin supplies when creating a campaign.
type CampaignFields struct {
	Title          string
	Description    string
	ImageURL       string
	Type           CampaignType
	StartDate      time.Time
	EndDate        time.Time
	Frequency      Frequency
	TargetAudience Audience
	IsActive       bool
	Priority       int
	CTAText        string
	CTAAction      string
	CTALink        string
	CreatedBy      string
}

// CampaignPatch is a partial update. Nil fields are left unchanged.
type CampaignPatch struct {
	Title          *string
	Description    *string
	ImageURL       *string
	Type           *CampaignType
	StartDate      *time.Time
	EndDate        *time.Time
	Frequency      *Frequency
	TargetAudience *Audience
	IsActive       *bool
	Priority       *int
	CTAText        *string
	CTAAction      *string
	CTALink        *string
}

// Validate checks the create payload. Date order, negative priority and the
// shape of CTALink are not checked.
func (f CampaignFields) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(f.ImageURL) == "" {
		return fmt.Errorf("%w: image url is required", ErrValidation)
	}
	if _, err := ParseCampaignType(string(f.Type)); err != nil {
		return err
	}
	if _, err := ParseFrequency(string(f.Frequency)); err != nil {
		return err
	}
	if _, err := ParseAudience(string(f.TargetAudience)); err != nil {
		return err
	}
	return nil
}

// NewCampaign builds a campaign with zeroed counters and both timestamps set to now.
func NewCampaign(id string, f CampaignFields, now time.Time) Campaign {
	now = now.UTC()
	return Campaign{
		ID:             id,
		Title:          f.Title,
		Description:    f.Description,
		ImageURL:       f.ImageURL,
		Type:           f.Type,
		StartDate:      f.StartDate.UTC(),
		EndDate:        f.EndDate.UTC(),
		Frequency:      f.Frequency,
		TargetAudience: f.TargetAudience,
		IsActive:       f.IsActive,
		Priority:       f.Priority,
		CTAText:        f.CTAText,
		CTAAction:      f.CTAAction,
		CTALink:        f.CTALink,
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedBy:      f.CreatedBy,
	}
}

// Fields returns the editable part of the campaign.
func (c Campaign) Fields() CampaignFields {
	return CampaignFields{
		Title:          c.Title,
		Description:    c.Description,
		ImageURL:       c.ImageURL,
		Type:           c.Type,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		Frequency:      c.Frequency,
		TargetAudience: c.TargetAudience,
		IsActive:       c.IsActive,
		Priority:       c.Priority,
		CTAText:        c.CTAText,
		CTAAction:      c.CTAAction,
		CTALink:        c.CTALink,
		CreatedBy:      c.CreatedBy,
	}
}

// CopyFields returns the fields of a duplicate: inactive, with "(Copy)"
// appended to the title.
func (c Campaign) CopyFields() CampaignFields {
	f := c.Fields()
	f.Title = c.Title + " (Copy)"
	f.IsActive = false
	return f
}

// ApplyPatch validates and applies p, then stamps UpdatedAt.
// On error the campaign is left untouched.
func (c *Campaign) ApplyPatch(p CampaignPatch, now time.Time) error {
	next := *c
	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return fmt.Errorf("%w: title must not be empty", ErrValidation)
		}
		next.Title = *p.Title
	}
	if p.Description != nil {
		next.Description = *p.Description
	}
	if p.ImageURL != nil {
		if strings.TrimSpace(*p.ImageURL) == "" {
			return fmt.Errorf("%w: image url must not be empty", ErrValidation)
		}
		next.ImageURL = *p.ImageURL
	}
	if p.Type != nil {
		t, err := ParseCampaignType(string(*p.Type))
		if err != nil {
			return err
		}
		next.Type = t
	}
	if p.StartDate != nil {
		next.StartDate = p.StartDate.UTC()
	}
	if p.EndDate != nil {
		next.EndDate = p.EndDate.UTC()
	}
	if p.Frequency != nil {
		f, err := ParseFrequency(string(*p.Frequency))
		if err != nil {
			return err
		}
		next.Frequency = f
	}
	if p.TargetAudience != nil {
		a, err := ParseAudience(string(*p.TargetAudience))
		if err != nil {
			return err
		}
		next.TargetAudience = a
	}
	if p.IsActive != nil {
		next.IsActive = *p.IsActive
	}
	if p.Priority != nil {
		next.Priority = *p.Priority
	}
	if p.CTAText != nil {
		next.CTAText = *p.CTAText
	}
	if p.CTAAction != nil {
		next.CTAAction = *p.CTAAction
	}
	if p.CTALink != nil {
		next.CTALink = *p.CTALink
	}
	next.UpdatedAt = now.UTC()
	*c = next
	return nil
}

// InWindow reports whether now falls inside [StartDate, EndDate], both ends inclusive.
func (c Campaign) InWindow(now time.Time) bool {
	return !now.Before(c.StartDate) && !now.After(c.EndDate)
}

// ParseCampaignType returns s as a CampaignType, or an error wrapping
// ErrValidation when s is not a known type.
func ParseCampaignType(s string) (CampaignType, error) {
	switch t := CampaignType(s); t {
	case TypePromo, TypeAnnouncement, TypeSurvey, TypeWelcome, TypeExit:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown campaign type %q", ErrValidation, s)
}

// ParseFrequency returns s as a Frequency, or an error wrapping
// ErrValidation when s is not a known policy.
func ParseFrequency(s string) (Frequency, error) {
	switch f := Frequency(s); f {
	case FrequencyOnce, FrequencyDaily, FrequencyWeekly, FrequencyAlways:
		return f, nil
	}
	return "", fmt.Errorf("%w: unknown frequency %q", ErrValidation, s)
}

// ParseAudience returns s as an Audience, or an error wrapping ErrValidation
// when s is not a known segment.
func ParseAudience(s string) (Audience, error) {
	switch a := Audience(s); a {
	case AudienceAll, AudienceNew, AudienceReturning:
		return a, nil
	}
	return "", fmt.Errorf("%w: unknown target audience %q", ErrValidation, s)
}
