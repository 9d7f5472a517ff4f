package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Upstream endpoints of the barbershop dashboard API.
const (
	EndpointServices          = "/api/servicos"
	EndpointProducts          = "/api/produtos/listar"
	EndpointPlans             = "/api/planos/listar"
	EndpointProfessionals     = "/api/barbeiros/listar"
	EndpointAvailableTimes    = "/api/agendamentos/horarios-disponiveis"
	EndpointCreateBooking     = "/api/agendamentos/criar"
	EndpointCancelBooking     = "/api/agendamentos/cancelar"
	EndpointCreatePurchase    = "/api/compras/criar"
	EndpointUpcomingBookings  = "/api/clientes/meus-agendamentos"
	EndpointBookingHistory    = "/api/clientes/historico"
	EndpointVerifyCustomer    = "/api/clientes/verificar"
	EndpointUpdateCustomer    = "/api/clientes/atualizar"
	EndpointTemporaryPassword = "/api/clientes/enviar-senha-temporaria"
)

// Client issues authenticated calls to the upstream booking API. Every
// request carries the server-held bearer token; the token never reaches
// the browser.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL, token string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     logger,
	}
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, params url.Values, body any) (*http.Request, error) {
	u := c.baseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// do runs the request and decodes the body into out. Non-2xx statuses are
// returned as errors carrying the upstream error text when present.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &envelope)
		msg := envelope.Error
		if msg == "" {
			msg = envelope.Message
		}
		if msg != "" {
			return fmt.Errorf("upstream %d: %s", resp.StatusCode, msg)
		}
		return fmt.Errorf("upstream %d: %s", resp.StatusCode, resp.Status)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, params, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	req, err := c.newRequest(ctx, http.MethodPost, endpoint, nil, body)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) delete(ctx context.Context, endpoint string, body, out any) error {
	req, err := c.newRequest(ctx, http.MethodDelete, endpoint, nil, body)
	if err != nil {
		return err
	}
	return c.do(req, out)
}
