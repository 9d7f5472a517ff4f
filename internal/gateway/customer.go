package gateway

import (
	"context"

	"go.uber.org/zap"
)

// CustomerExists asks the upstream whether the given customer id still
// exists. Any failure reports true: the liveness check fails open so a
// network hiccup never logs anyone out.
func (c *Client) CustomerExists(ctx context.Context, customerID string) bool {
	body := map[string]string{"cliente_id": customerID}

	var envelope struct {
		Exists bool `json:"existe"`
	}
	if err := c.post(ctx, EndpointVerifyCustomer, body, &envelope); err != nil {
		c.log.Warn("customer liveness check failed", zap.String("customer_id", customerID), zap.Error(err))
		return true
	}
	return envelope.Exists
}

// SendTemporaryPassword asks the upstream to generate a one-time password
// and deliver it out of band (messaging channel). The secret itself is
// never returned to this application.
func (c *Client) SendTemporaryPassword(ctx context.Context, phone string) SubmitResult {
	body := map[string]string{"telefone": phone}

	var envelope submitEnvelope
	if err := c.post(ctx, EndpointTemporaryPassword, body, &envelope); err != nil {
		c.log.Warn("temporary password request failed", zap.Error(err))
		return SubmitResult{Success: false, Error: err.Error()}
	}
	return envelope.result()
}

// UpdateCustomer forwards profile edits to the dashboard's customer record.
func (c *Client) UpdateCustomer(ctx context.Context, customerID string, fields map[string]any) SubmitResult {
	body := map[string]any{"cliente_id": customerID}
	for k, v := range fields {
		body[k] = v
	}

	var envelope submitEnvelope
	if err := c.post(ctx, EndpointUpdateCustomer, body, &envelope); err != nil {
		c.log.Warn("update customer failed", zap.String("customer_id", customerID), zap.Error(err))
		return SubmitResult{Success: false, Error: err.Error()}
	}
	return envelope.result()
}
