package storage

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sniptaste-popups/internal/core/domain"
)

func TestKeysFor(t *testing.T) {
	assert.Equal(t, Keys{Campaigns: "sniptaste_popups", Views: "sniptaste_viewed_popups"}, KeysFor("sniptaste"))
}

func TestEncodeCampaigns_WireLayout(t *testing.T) {
	c := domain.NewCampaign("c1", fields("X"), t0)
	data, err := EncodeCampaigns([]domain.Campaign{c})
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "c1", raw[0]["id"])
	assert.Equal(t, "u", raw[0]["imageUrl"])
	assert.Equal(t, "2025-03-01T09:30:00Z", raw[0]["startDate"])
	assert.Equal(t, "2025-03-01T09:30:00Z", raw[0]["createdAt"])
	assert.Equal(t, "always", raw[0]["frequency"])
	assert.Equal(t, float64(0), raw[0]["viewCount"])
	assert.NotContains(t, raw[0], "ctaLink")
}

func TestDecodeCampaigns_AcceptsOffsetsAndRehydratesUTC(t *testing.T) {
	raw := `[{"id":"1","title":"T","imageUrl":"u","type":"promo","frequency":"daily","targetAudience":"all",` +
		`"startDate":"2025-03-01T11:30:00+02:00","endDate":"2025-03-08T09:30:00Z",` +
		`"createdAt":"2025-03-01T09:30:00.123Z","updatedAt":"2025-03-01T09:30:00.123Z","priority":4}]`

	cs, err := DecodeCampaigns([]byte(raw))
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.True(t, cs[0].StartDate.Equal(t0))
	assert.Equal(t, time.UTC, cs[0].StartDate.Location())
	assert.Equal(t, 123*time.Millisecond, cs[0].CreatedAt.Sub(t0))
	assert.Equal(t, domain.FrequencyDaily, cs[0].Frequency)
	assert.Equal(t, 4, cs[0].Priority)
}

func TestDecode_Corrupt(t *testing.T) {
	_, err := DecodeCampaigns([]byte(`{"id":"1"}`))
	assert.ErrorIs(t, err, ErrCorrupt)

	_, err = DecodeViews([]byte(`[{"id":"a","timestamp":"not-a-date"}]`))
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestViews_RoundTrip(t *testing.T) {
	in := []domain.ViewRecord{
		{CampaignID: "a", Timestamp: t0},
		{CampaignID: "b", Timestamp: t0.Add(1500 * time.Millisecond)},
	}
	data, err := EncodeViews(in)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a","timestamp":"2025-03-01T09:30:00Z"},{"id":"b","timestamp":"2025-03-01T09:30:01.5Z"}]`, string(data))

	out, err := DecodeViews(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCodec_KeepsSubMillisecondPrecision(t *testing.T) {
	at := t0.Add(123456789 * time.Nanosecond)

	data, err := EncodeViews([]domain.ViewRecord{{CampaignID: "a", Timestamp: at}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a","timestamp":"2025-03-01T09:30:00.123456789Z"}]`, string(data))
	vs, err := DecodeViews(data)
	require.NoError(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, at, vs[0].Timestamp)

	c := domain.NewCampaign("c1", fields("X"), at)
	data, err = EncodeCampaigns([]domain.Campaign{c})
	require.NoError(t, err)
	cs, err := DecodeCampaigns(data)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, c, cs[0])
}
