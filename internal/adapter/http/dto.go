package httpadapter

import (
	"time"

	"sniptaste-popups/internal/core/domain"
)

type campaignResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	ImageURL        string    `json:"imageUrl"`
	Type            string    `json:"type"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	Frequency       string    `json:"frequency"`
	TargetAudience  string    `json:"targetAudience"`
	IsActive        bool      `json:"isActive"`
	Priority        int       `json:"priority"`
	CTAText         string    `json:"ctaText"`
	CTAAction       string    `json:"ctaAction"`
	CTALink         string    `json:"ctaLink,omitempty"`
	ViewCount       int64     `json:"viewCount"`
	ClickCount      int64     `json:"clickCount"`
	ConversionCount int64     `json:"conversionCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	CreatedBy       string    `json:"createdBy"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		ImageURL:        c.ImageURL,
		Type:            string(c.Type),
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		Frequency:       string(c.Frequency),
		TargetAudience:  string(c.TargetAudience),
		IsActive:        c.IsActive,
		Priority:        c.Priority,
		CTAText:         c.CTAText,
		CTAAction:       c.CTAAction,
		CTALink:         c.CTALink,
		ViewCount:       c.ViewCount,
		ClickCount:      c.ClickCount,
		ConversionCount: c.ConversionCount,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
		CreatedBy:       c.CreatedBy,
	}
}

func toCampaignResponses(cs []domain.Campaign) []campaignResponse {
	out := make([]campaignResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCampaignResponse(c))
	}
	return out
}

type createCampaignRequest struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"imageUrl"`
	Type           string    `json:"type"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	Frequency      string    `json:"frequency"`
	TargetAudience string    `json:"targetAudience"`
	IsActive       bool      `json:"isActive"`
	Priority       int       `json:"priority"`
	CTAText        string    `json:"ctaText"`
	CTAAction      string    `json:"ctaAction"`
	CTALink        string    `json:"ctaLink"`
	CreatedBy      string    `json:"createdBy"`
}

func (r createCampaignRequest) toFields() domain.CampaignFields {
	return domain.CampaignFields{
		Title:          r.Title,
		Description:    r.Description,
		ImageURL:       r.ImageURL,
		Type:           domain.CampaignType(r.Type),
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Frequency:      domain.Frequency(r.Frequency),
		TargetAudience: domain.Audience(r.TargetAudience),
		IsActive:       r.IsActive,
		Priority:       r.Priority,
		CTAText:        r.CTAText,
		CTAAction:      r.CTAAction,
		CTALink:        r.CTALink,
		CreatedBy:      r.CreatedBy,
	}
}

// updateCampaignRequest mirrors domain.CampaignPatch; absent JSON fields stay nil.
type updateCampaignRequest struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	ImageURL       *string    `json:"imageUrl"`
	Type           *string    `json:"type"`
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	Frequency      *string    `json:"frequency"`
	TargetAudience *string    `json:"targetAudience"`
	IsActive       *bool      `json:"isActive"`
	Priority       *int       `json:"priority"`
	CTAText        *string    `json:"ctaText"`
	CTAAction      *string    `json:"ctaAction"`
	CTALink        *string    `json:"ctaLink"`
}

func (r updateCampaignRequest) toPatch() domain.CampaignPatch {
	p := domain.CampaignPatch{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		IsActive:    r.IsActive,
		Priority:    r.Priority,
		CTAText:     r.CTAText,
		CTAAction:   r.CTAAction,
		CTALink:     r.CTALink,
	}
	if r.Type != nil {
		t := domain.CampaignType(*r.Type)
		p.Type = &t
	}
	if r.Frequency != nil {
		f := domain.Frequency(*r.Frequency)
		p.Frequency = &f
	}
	if r.TargetAudience != nil {
		a := domain.Audience(*r.TargetAudience)
		p.TargetAudience = &a
	}
	return p
}

type summaryResponse struct {
	Total             int     `json:"total"`
	Active            int     `json:"active"`
	TotalViews        int64   `json:"totalViews"`
	TotalClicks       int64   `json:"totalClicks"`
	TotalConversions  int64   `json:"totalConversions"`
	AvgClickRate      float64 `json:"avgClickRate"`
	AvgConversionRate float64 `json:"avgConversionRate"`
}

type campaignMetricsResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	IsActive       bool    `json:"isActive"`
	Views          int64   `json:"views"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	ClickRate      float64 `json:"clickRate"`
	ConversionRate float64 `json:"conversionRate"`
}
