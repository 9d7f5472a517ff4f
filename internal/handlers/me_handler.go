package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vincibarbearia/app-agendamento/internal/gateway"
	"github.com/vincibarbearia/app-agendamento/internal/httperr"
	"github.com/vincibarbearia/app-agendamento/internal/store"
)

type MeHandler struct {
	api       *gateway.Client
	customers *store.CustomerStore
}

func NewMeHandler(api *gateway.Client, customers *store.CustomerStore) *MeHandler {
	return &MeHandler{api: api, customers: customers}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	customer, ok := currentCustomer(c, h.customers)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"cliente": customer})
}

// UpdateMeRequest accepts the editable profile fields. Pointers
// distinguish "not sent" from "cleared".
type UpdateMeRequest struct {
	FullName       *string `json:"nome_completo,omitempty"`
	Email          *string `json:"email,omitempty"`
	Profession     *string `json:"profissao,omitempty"`
	PreferredStaff *string `json:"profissional_preferido,omitempty"`
	PreferredStyle *string `json:"estilo_cabelo,omitempty"`
	PreferredDrink *string `json:"tipo_bebida,omitempty"`
}

// UpdateMe forwards profile edits to the dashboard's customer record and
// refreshes the cached session copy on success.
func (h *MeHandler) UpdateMe(c *gin.Context) {
	customer, ok := currentCustomer(c, h.customers)
	if !ok {
		return
	}

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	fields := map[string]any{}
	if req.FullName != nil {
		fields["nome_completo"] = *req.FullName
		customer.FullName = *req.FullName
	}
	if req.Email != nil {
		fields["email"] = *req.Email
		customer.Email = *req.Email
	}
	if req.Profession != nil {
		fields["profissao"] = *req.Profession
		customer.Profession = *req.Profession
	}
	if req.PreferredStaff != nil {
		fields["profissional_preferido"] = *req.PreferredStaff
		customer.PreferredStaff = *req.PreferredStaff
	}
	if req.PreferredStyle != nil {
		fields["estilo_cabelo"] = *req.PreferredStyle
		customer.PreferredStyle = *req.PreferredStyle
	}
	if req.PreferredDrink != nil {
		fields["tipo_bebida"] = *req.PreferredDrink
		customer.PreferredDrink = *req.PreferredDrink
	}

	if len(fields) == 0 {
		c.JSON(http.StatusOK, gin.H{"cliente": customer})
		return
	}

	result := h.api.UpdateCustomer(c.Request.Context(), customer.ID, fields)
	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "Erro ao atualizar dados"
		}
		httperr.BadGateway(c, "update_failed", msg)
		return
	}

	if err := h.customers.Save(c.Request.Context(), customer); err != nil {
		httperr.Internal(c, "session_save_failed", "Erro ao salvar sessão.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"cliente": customer})
}
