package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vincibarbearia/app-agendamento/internal/gateway"
	"github.com/vincibarbearia/app-agendamento/internal/httperr"
	"github.com/vincibarbearia/app-agendamento/internal/httpresp"
	"github.com/vincibarbearia/app-agendamento/internal/store"
)

type AppointmentHandler struct {
	api       *gateway.Client
	customers *store.CustomerStore
}

func NewAppointmentHandler(api *gateway.Client, customers *store.CustomerStore) *AppointmentHandler {
	return &AppointmentHandler{api: api, customers: customers}
}

// List returns the customer's bookings. filter=historico reads the full
// history endpoint; anything else returns the upcoming ones.
func (h *AppointmentHandler) List(c *gin.Context) {
	customer, ok := currentCustomer(c, h.customers)
	if !ok {
		return
	}

	if c.Query("filtro") == "historico" {
		httpresp.List(c, h.api.BookingHistory(c.Request.Context(), customer.Phone))
		return
	}
	httpresp.List(c, h.api.UpcomingBookings(c.Request.Context(), customer.Phone))
}

type CancelRequest struct {
	Reason string `json:"motivo"`
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	if _, ok := currentCustomer(c, h.customers); !ok {
		return
	}

	bookingID := c.Param("id")
	if bookingID == "" {
		httperr.BadRequest(c, "missing_booking_id", "Agendamento inválido.")
		return
	}

	var req CancelRequest
	_ = c.ShouldBindJSON(&req)

	result := h.api.CancelBooking(c.Request.Context(), gateway.CancelBookingRequest{
		BookingID:   bookingID,
		Reason:      req.Reason,
		CancelledBy: "cliente",
	})
	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "Erro ao cancelar"
		}
		httperr.BadRequest(c, "cancel_failed", msg)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
