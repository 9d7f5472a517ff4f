package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/vincibarbearia/app-agendamento/internal/models"
)

// The upstream returns bookings in more than one shape depending on the
// endpoint and its own version: dates as DD/MM/YYYY, ISO datetimes or
// YYYY-MM-DD; the professional as a bare name or a nested object; services
// directly or nested under agendamento_servicos. Everything is flattened
// here and never leaks past the gateway.

type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		s = ""
	}
	*f = flexID(s)
	return nil
}

type rawService struct {
	ID              flexID   `json:"id"`
	Name            string   `json:"nome"`
	Description     string   `json:"descricao"`
	Value           *float64 `json:"valor"`
	Price           *float64 `json:"preco"`
	DurationMinutes int      `json:"duracao_minutos"`
	Active          *bool    `json:"ativo"`
}

func (r rawService) toService() models.Service {
	price := 0.0
	if r.Value != nil {
		price = *r.Value
	} else if r.Price != nil {
		price = *r.Price
	}

	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return models.Service{
		ID:              string(r.ID),
		Name:            r.Name,
		Description:     r.Description,
		Price:           price,
		DurationMinutes: r.DurationMinutes,
		Active:          active,
	}
}

type rawBookedService struct {
	rawService
	Nested *rawService `json:"servicos"`
}

type rawAppointment struct {
	ID             flexID               `json:"id"`
	Date           string               `json:"data"`
	DateFull       string               `json:"data_agendamento"`
	StartTime      string               `json:"hora_inicio"`
	Status         string               `json:"status"`
	BarberName     string               `json:"barbeiro"`
	Professional   *models.Professional `json:"profissional"`
	Professionals  *models.Professional `json:"profissionais"`
	Services       []rawService         `json:"servicos"`
	BookedServices []rawBookedService   `json:"agendamento_servicos"`
	Notes          string               `json:"observacoes"`
	Value          *float64             `json:"valor"`
	TotalValue     *float64             `json:"valor_total"`
}

// normalizeDate brings a booking date to YYYY-MM-DD.
func normalizeDate(s string) string {
	if s == "" {
		return ""
	}

	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) == 3 {
			return fmt.Sprintf("%s-%s-%s", parts[2], pad2(parts[1]), pad2(parts[0]))
		}
	}

	if i := strings.Index(s, "T"); i > 0 {
		return s[:i]
	}

	return s
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func (r rawAppointment) toAppointment() models.Appointment {
	date := r.DateFull
	if date == "" {
		date = r.Date
	}

	var prof *models.Professional
	switch {
	case r.Professional != nil:
		prof = r.Professional
	case r.Professionals != nil:
		prof = r.Professionals
	case r.BarberName != "":
		prof = &models.Professional{Name: r.BarberName}
	}

	var services []models.Service
	if len(r.BookedServices) > 0 {
		for _, bs := range r.BookedServices {
			if bs.Nested != nil {
				services = append(services, bs.Nested.toService())
			} else {
				services = append(services, bs.toService())
			}
		}
	} else {
		for _, s := range r.Services {
			services = append(services, s.toService())
		}
	}

	total := 0.0
	switch {
	case r.Value != nil && *r.Value > 0:
		total = *r.Value
	case r.TotalValue != nil && *r.TotalValue > 0:
		total = *r.TotalValue
	default:
		for _, s := range services {
			total += s.Price
		}
	}

	return models.Appointment{
		ID:           string(r.ID),
		Date:         normalizeDate(date),
		StartTime:    r.StartTime,
		Status:       r.Status,
		Professional: prof,
		Services:     services,
		Notes:        r.Notes,
		TotalValue:   total,
	}
}

// UpcomingBookings lists the customer's future bookings. The upstream
// already filters out past ones.
func (c *Client) UpcomingBookings(ctx context.Context, phone string) []models.Appointment {
	params := url.Values{"telefone": {phone}}

	var envelope struct {
		Future []rawAppointment `json:"agendamentos_futuros"`
		All    []rawAppointment `json:"agendamentos"`
	}
	if err := c.get(ctx, EndpointUpcomingBookings, params, &envelope); err != nil {
		c.log.Warn("upcoming bookings failed", zap.Error(err))
		return []models.Appointment{}
	}

	rows := envelope.Future
	if rows == nil {
		rows = envelope.All
	}

	out := make([]models.Appointment, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toAppointment())
	}
	return out
}

// BookingHistory lists the customer's full past bookings.
func (c *Client) BookingHistory(ctx context.Context, phone string) []models.Appointment {
	params := url.Values{"telefone": {phone}}

	var envelope struct {
		Rows []rawAppointment `json:"agendamentos"`
	}
	if err := c.get(ctx, EndpointBookingHistory, params, &envelope); err != nil {
		c.log.Warn("booking history failed", zap.Error(err))
		return []models.Appointment{}
	}

	out := make([]models.Appointment, 0, len(envelope.Rows))
	for _, r := range envelope.Rows {
		out = append(out, r.toAppointment())
	}
	return out
}
