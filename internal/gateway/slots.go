package gateway

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// AvailableTimes queries the upstream availability endpoint for one date.
// The upstream keys the filter by professional NAME, not id; an empty name
// means "let the backend choose". serviceIDs are comma-joined and omitted
// entirely when empty (plan-only sessions carry no fixed duration).
//
// Transport failures and unrecognized bodies both degrade to an empty list.
func (c *Client) AvailableTimes(ctx context.Context, date, professionalName string, serviceIDs []string) []string {
	params := url.Values{"data": {date}}
	if professionalName != "" {
		params.Set("barbeiro", professionalName)
	}
	if len(serviceIDs) > 0 {
		params.Set("servico_ids", strings.Join(serviceIDs, ","))
	}

	var raw json.RawMessage
	if err := c.get(ctx, EndpointAvailableTimes, params, &raw); err != nil {
		c.log.Warn("available times failed", zap.String("date", date), zap.Error(err))
		return []string{}
	}

	return NormalizeTimes(raw)
}

// NormalizeTimes flattens the envelope shapes the upstream has been seen
// returning for availability:
//
//	["09:00", ...]
//	{"horarios": [...]}
//	{"data": {"horarios": [...]}}
//	{"data": [...]}
//
// Anything else yields an empty list.
func NormalizeTimes(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var bare []string
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare
	}

	var envelope struct {
		Horarios []string        `json:"horarios"`
		Data     json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return []string{}
	}

	if envelope.Horarios != nil {
		return envelope.Horarios
	}

	if len(envelope.Data) > 0 {
		var inner []string
		if err := json.Unmarshal(envelope.Data, &inner); err == nil {
			return inner
		}

		var nested struct {
			Horarios []string `json:"horarios"`
		}
		if err := json.Unmarshal(envelope.Data, &nested); err == nil && nested.Horarios != nil {
			return nested.Horarios
		}
	}

	return []string{}
}
