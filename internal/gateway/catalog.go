package gateway

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/vincibarbearia/app-agendamento/internal/models"
)

// Catalog reads degrade to empty lists on any transport or decode failure;
// the caller decides whether an empty catalog is acceptable.

func (c *Client) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := c.get(ctx, EndpointServices, nil, &services); err != nil {
		c.log.Warn("list services failed", zap.Error(err))
		return nil, err
	}

	active := make([]models.Service, 0, len(services))
	for _, s := range services {
		if s.Active {
			active = append(active, s)
		}
	}
	return active, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	params := url.Values{"ativo": {"true"}}

	var envelope struct {
		Products []models.Product `json:"produtos"`
	}
	if err := c.get(ctx, EndpointProducts, params, &envelope); err != nil {
		c.log.Warn("list products failed", zap.Error(err))
		return nil, err
	}
	return envelope.Products, nil
}

func (c *Client) ListPlans(ctx context.Context) ([]models.Plan, error) {
	var envelope struct {
		Plans []models.Plan `json:"planos"`
	}
	if err := c.get(ctx, EndpointPlans, nil, &envelope); err != nil {
		c.log.Warn("list plans failed", zap.Error(err))
		return nil, err
	}

	active := make([]models.Plan, 0, len(envelope.Plans))
	for _, p := range envelope.Plans {
		if p.Active {
			active = append(active, p)
		}
	}
	return active, nil
}

func (c *Client) ListProfessionals(ctx context.Context) ([]models.Professional, error) {
	params := url.Values{"ativo": {"true"}}

	var envelope struct {
		Professionals []models.Professional `json:"barbeiros"`
	}
	if err := c.get(ctx, EndpointProfessionals, params, &envelope); err != nil {
		c.log.Warn("list professionals failed", zap.Error(err))
		return nil, err
	}

	active := make([]models.Professional, 0, len(envelope.Professionals))
	for _, p := range envelope.Professionals {
		if p.Active {
			active = append(active, p)
		}
	}
	return active, nil
}
