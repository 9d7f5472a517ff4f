package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vincibarbearia/app-agendamento/internal/booking"
	"github.com/vincibarbearia/app-agendamento/internal/httperr"
	"github.com/vincibarbearia/app-agendamento/internal/httpresp"
	"github.com/vincibarbearia/app-agendamento/internal/models"
	"github.com/vincibarbearia/app-agendamento/internal/store"
)

type BookingHandler struct {
	workflow  *booking.Workflow
	customers *store.CustomerStore
}

func NewBookingHandler(workflow *booking.Workflow, customers *store.CustomerStore) *BookingHandler {
	return &BookingHandler{workflow: workflow, customers: customers}
}

func (h *BookingHandler) currentCustomer(c *gin.Context) (models.Customer, bool) {
	return currentCustomer(c, h.customers)
}

func writeBusiness(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		httperr.BadRequest(c, be.Code, be.Message)
		return
	}
	httperr.Internal(c, fallbackCode, fallbackMsg)
}

// --------------------------------------------------
// Cart
// --------------------------------------------------

type ToggleRequest struct {
	ID              string          `json:"id" binding:"required"`
	Kind            models.ItemKind `json:"tipo" binding:"required,oneof=servico produto plano"`
	Name            string          `json:"nome" binding:"required"`
	Price           float64         `json:"preco"`
	DurationMinutes int             `json:"duracao"`
}

func (h *BookingHandler) GetCart(c *gin.Context) {
	customer, ok := h.currentCustomer(c)
	if !ok {
		return
	}

	items := h.workflow.Cart(c.Request.Context(), customer.ID)
	c.JSON(http.StatusOK, gin.H{
		"itens":  items,
		"resumo": models.Classify(items),
		"etapa":  h.workflow.SessionState(customer.ID),
	})
}

func (h *BookingHandler) ToggleCart(c *gin.Context) {
	customer, ok := h.currentCustomer(c)
	if !ok {
		return
	}

	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	items, err := h.workflow.Toggle(c.Request.Context(), customer.ID, models.CartItem{
		ID:              req.ID,
		Kind:            req.Kind,
		Name:            req.Name,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		httperr.Internal(c, "cart_update_failed", "Erro ao atualizar carrinho.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"itens":  items,
		"resumo": models.Classify(items),
	})
}

func (h *BookingHandler) ClearCart(c *gin.Context) {
	customer, ok := h.currentCustomer(c)
	if !ok {
		return
	}

	if err := h.workflow.ClearCart(c.Request.Context(), customer.ID); err != nil {
		httperr.Internal(c, "cart_clear_failed", "Erro ao limpar carrinho.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (h *BookingHandler) Catalog(c *gin.Context) {
	if _, ok := h.currentCustomer(c); !ok {
		return
	}

	catalog, err := h.workflow.LoadCatalog(c.Request.Context())
	if err != nil {
		writeBusiness(c, err, "catalog_failed", "Erro ao carregar dados")
		return
	}
	httpresp.OK(c, catalog)
}

// --------------------------------------------------
// Workflow
// --------------------------------------------------

func (h *BookingHandler) Proceed(c *gin.Context) {
	customer, ok := h.currentCustomer(c)
	if !ok {
		return
	}

	outcome, err := h.workflow.Proceed(c.Request.Context(), customer)
	if err != nil {
		writeBusiness(c, err, "proceed_failed", "Erro ao avançar.")
		return
	}
	c.JSON(http.StatusOK, outcome)
}

func (h *BookingHandler) Slots(c *gin.Context) {
	customer, ok := h.currentCustomer(c)
	if !ok {
		return
	}

	date := c.Query("data")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data é obrigatória")
		return
	}

	buckets := h.workflow.FetchSlots(c.Request.Context(), customer.ID, date, c.Query("barbeiro_id"))
	c.JSON(http.StatusOK, gin.H{"periodos": buckets})
}

type ConfirmRequest struct {
	Date           string `json:"data" binding:"required"` // YYYY-MM-DD
	Time           string `json:"hora" binding:"required"` // HH:MM
	ProfessionalID string `json:"barbeiro_id"`
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	customer, ok := h.currentCustomer(c)
	if !ok {
		return
	}

	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_date_time", "Selecione data e horário")
		return
	}

	outcome, err := h.workflow.Confirm(c.Request.Context(), customer, booking.ConfirmRequest{
		Date:           req.Date,
		Time:           req.Time,
		ProfessionalID: req.ProfessionalID,
	})
	if err != nil {
		writeBusiness(c, err, "booking_failed", "Erro ao criar agendamento")
		return
	}
	c.JSON(http.StatusOK, outcome)
}

func (h *BookingHandler) Purchase(c *gin.Context) {
	customer, ok := h.currentCustomer(c)
	if !ok {
		return
	}

	outcome, err := h.workflow.Purchase(c.Request.Context(), customer)
	if err != nil {
		writeBusiness(c, err, "purchase_failed", "Erro ao processar compra")
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// SessionState reports which step of the booking flow the customer is in.
func (h *BookingHandler) SessionState(c *gin.Context) {
	customer, ok := h.currentCustomer(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"etapa": h.workflow.SessionState(customer.ID)})
}

func (h *BookingHandler) Back(c *gin.Context) {
	customer, ok := h.currentCustomer(c)
	if !ok {
		return
	}

	if err := h.workflow.Back(customer.ID); err != nil {
		writeBusiness(c, err, "back_failed", "Erro ao voltar.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"etapa": h.workflow.SessionState(customer.ID)})
}
