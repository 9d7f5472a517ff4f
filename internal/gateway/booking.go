package gateway

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

// CreateBookingRequest matches the upstream create endpoint. Data is in the
// DD-MM-YYYY wire format.
type CreateBookingRequest struct {
	CustomerName   string   `json:"cliente_nome"`
	Phone          string   `json:"telefone"`
	Date           string   `json:"data"`
	Time           string   `json:"hora"`
	ServiceIDs     []string `json:"servico_ids"`
	ProductIDs     []string `json:"produto_ids"`
	PlanIDs        []string `json:"plano_ids"`
	ProfessionalID string   `json:"barbeiro_id,omitempty"`
}

type CreatePurchaseRequest struct {
	CustomerName string   `json:"cliente_nome"`
	Phone        string   `json:"telefone"`
	ProductIDs   []string `json:"produto_ids"`
	PlanIDs      []string `json:"plano_ids"`
}

type CancelBookingRequest struct {
	BookingID   string `json:"agendamento_id"`
	Reason      string `json:"motivo,omitempty"`
	CancelledBy string `json:"cancelado_por"`
}

// SubmitResult is the uniform outcome of upstream writes: either success,
// or a failure whose message should be surfaced verbatim when present.
type SubmitResult struct {
	Success bool            `json:"success"`
	Booking json.RawMessage `json:"agendamento,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type submitEnvelope struct {
	Success bool            `json:"success"`
	Booking json.RawMessage `json:"agendamento"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func (e submitEnvelope) result() SubmitResult {
	msg := e.Error
	if msg == "" {
		msg = e.Message
	}
	return SubmitResult{Success: e.Success, Booking: e.Booking, Error: msg}
}

func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) SubmitResult {
	var envelope submitEnvelope
	if err := c.post(ctx, EndpointCreateBooking, req, &envelope); err != nil {
		c.log.Warn("create booking failed", zap.Error(err))
		return SubmitResult{Success: false, Error: err.Error()}
	}
	return envelope.result()
}

func (c *Client) CreatePurchase(ctx context.Context, req CreatePurchaseRequest) SubmitResult {
	var envelope submitEnvelope
	if err := c.post(ctx, EndpointCreatePurchase, req, &envelope); err != nil {
		c.log.Warn("create purchase failed", zap.Error(err))
		return SubmitResult{Success: false, Error: err.Error()}
	}
	return envelope.result()
}

func (c *Client) CancelBooking(ctx context.Context, req CancelBookingRequest) SubmitResult {
	if req.CancelledBy == "" {
		req.CancelledBy = "cliente"
	}
	if req.Reason == "" {
		req.Reason = "Cancelado pelo cliente"
	}

	var envelope submitEnvelope
	if err := c.delete(ctx, EndpointCancelBooking, req, &envelope); err != nil {
		c.log.Warn("cancel booking failed", zap.String("booking_id", req.BookingID), zap.Error(err))
		return SubmitResult{Success: false, Error: err.Error()}
	}
	return envelope.result()
}
