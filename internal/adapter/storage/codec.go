// Package storage persists the campaign collection and the view ledger as
// two JSON records in a port.RecordStore.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sniptaste-popups/internal/core/domain"
)

// ErrCorrupt marks a stored record that cannot be decoded.
var ErrCorrupt = errors.New("corrupt record")

// timeLayout is ISO-8601 with as many fractional digits as needed, so a
// stored timestamp reads back equal to the one written. Millisecond strings
// written by browsers with toISOString parse with the same layout.
const timeLayout = time.RFC3339Nano

// Keys names the two records of one storefront.
type Keys struct {
	Campaigns string
	Views     string
}

// KeysFor derives the record keys from a prefix, e.g. "sniptaste" gives
// sniptaste_popups and sniptaste_viewed_popups.
func KeysFor(prefix string) Keys {
	return Keys{
		Campaigns: prefix + "_popups",
		Views:     prefix + "_viewed_popups",
	}
}

type campaignJSON struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	ImageURL        string `json:"imageUrl"`
	Type            string `json:"type"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	Frequency       string `json:"frequency"`
	TargetAudience  string `json:"targetAudience"`
	IsActive        bool   `json:"isActive"`
	Priority        int    `json:"priority"`
	CTAText         string `json:"ctaText"`
	CTAAction       string `json:"ctaAction"`
	CTALink         string `json:"ctaLink,omitempty"`
	ViewCount       int64  `json:"viewCount"`
	ClickCount      int64  `json:"clickCount"`
	ConversionCount int64  `json:"conversionCount"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
	CreatedBy       string `json:"createdBy"`
}

type viewJSON struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(field, s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, field, err)
	}
	return t.UTC(), nil
}

// EncodeCampaigns serializes the collection in its stored order.
func EncodeCampaigns(cs []domain.Campaign) ([]byte, error) {
	out := make([]campaignJSON, 0, len(cs))
	for _, c := range cs {
		out = append(out, campaignJSON{
			ID:              c.ID,
			Title:           c.Title,
			Description:     c.Description,
			ImageURL:        c.ImageURL,
			Type:            string(c.Type),
			StartDate:       formatTime(c.StartDate),
			EndDate:         formatTime(c.EndDate),
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
			CreatedAt:       formatTime(c.CreatedAt),
			UpdatedAt:       formatTime(c.UpdatedAt),
			CreatedBy:       c.CreatedBy,
		})
	}
	return json.Marshal(out)
}

// DecodeCampaigns rehydrates a stored collection. Any malformed entry makes
// the whole record corrupt.
func DecodeCampaigns(data []byte) ([]domain.Campaign, error) {
	var raw []campaignJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	out := make([]domain.Campaign, 0, len(raw))
	for _, r := range raw {
		c := domain.Campaign{
			ID:              r.ID,
			Title:           r.Title,
			Description:     r.Description,
			ImageURL:        r.ImageURL,
			Type:            domain.CampaignType(r.Type),
			Frequency:       domain.Frequency(r.Frequency),
			TargetAudience:  domain.Audience(r.TargetAudience),
			IsActive:        r.IsActive,
			Priority:        r.Priority,
			CTAText:         r.CTAText,
			CTAAction:       r.CTAAction,
			CTALink:         r.CTALink,
			ViewCount:       r.ViewCount,
			ClickCount:      r.ClickCount,
			ConversionCount: r.ConversionCount,
			CreatedBy:       r.CreatedBy,
		}
		var err error
		if c.StartDate, err = parseTime("startDate", r.StartDate); err != nil {
			return nil, err
		}
		if c.EndDate, err = parseTime("endDate", r.EndDate); err != nil {
			return nil, err
		}
		if c.CreatedAt, err = parseTime("createdAt", r.CreatedAt); err != nil {
			return nil, err
		}
		if c.UpdatedAt, err = parseTime("updatedAt", r.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// EncodeViews serializes the view ledger in append order as {id, timestamp}
// entries.
func EncodeViews(vs []domain.ViewRecord) ([]byte, error) {
	out := make([]viewJSON, 0, len(vs))
	for _, v := range vs {
		out = append(out, viewJSON{ID: v.CampaignID, Timestamp: formatTime(v.Timestamp)})
	}
	return json.Marshal(out)
}

// DecodeViews rehydrates a stored ledger. A malformed entry or timestamp
// makes the whole record corrupt and the error wraps ErrCorrupt.
func DecodeViews(data []byte) ([]domain.ViewRecord, error) {
	var raw []viewJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	out := make([]domain.ViewRecord, 0, len(raw))
	for _, r := range raw {
		ts, err := parseTime("timestamp", r.Timestamp)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.ViewRecord{CampaignID: r.ID, Timestamp: ts})
	}
	return out, nil
}
