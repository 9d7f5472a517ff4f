package proxy

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/vincibarbearia/app-agendamento/internal/gateway"
	"github.com/vincibarbearia/app-agendamento/internal/httperr"
)

// Register mounts the passthrough table under /api/proxy.
func (h *Handler) Register(r *gin.RouterGroup) {
	r.GET("/servicos", h.relayGet(gateway.EndpointServices))
	r.GET("/produtos", h.fixedQuery(gateway.EndpointProducts, "ativo", "true"))
	r.GET("/planos", h.relayGet(gateway.EndpointPlans))
	r.GET("/barbeiros", h.fixedQuery(gateway.EndpointProfessionals, "ativo", "true"))

	r.GET("/horarios", h.availableTimes)

	r.POST("/criar-agendamento", h.relayBody(http.MethodPost, gateway.EndpointCreateBooking))
	r.POST("/criar-compra", h.relayBody(http.MethodPost, gateway.EndpointCreatePurchase))
	r.DELETE("/cancelar-agendamento", h.relayBody(http.MethodDelete, gateway.EndpointCancelBooking))

	r.GET("/meus-agendamentos", h.byPhone(gateway.EndpointUpcomingBookings))
	r.GET("/clientes-historico", h.byPhone(gateway.EndpointBookingHistory))

	r.POST("/enviar-senha-temporaria", h.relayBody(http.MethodPost, gateway.EndpointTemporaryPassword))
	r.POST("/verificar-cliente", h.relayBody(http.MethodPost, gateway.EndpointVerifyCustomer))
	r.POST("/atualizar-cliente", h.relayBody(http.MethodPost, gateway.EndpointUpdateCustomer))
}

func (h *Handler) fixedQuery(endpoint, key, value string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.relay(c, http.MethodGet, endpoint, url.Values{key: {value}}, nil)
	}
}

func (h *Handler) availableTimes(c *gin.Context) {
	if c.Query("data") == "" {
		httperr.BadRequest(c, "missing_date", "Data é obrigatória")
		return
	}

	params := url.Values{"data": {c.Query("data")}}
	if v := c.Query("barbeiro"); v != "" {
		params.Set("barbeiro", v)
	}
	if v := c.Query("servico_ids"); v != "" {
		params.Set("servico_ids", v)
	}
	h.relay(c, http.MethodGet, gateway.EndpointAvailableTimes, params, nil)
}

func (h *Handler) byPhone(endpoint string) gin.HandlerFunc {
	return func(c *gin.Context) {
		phone := c.Query("telefone")
		if phone == "" {
			httperr.BadRequest(c, "missing_phone", "Telefone é obrigatório")
			return
		}
		h.relay(c, http.MethodGet, endpoint, url.Values{"telefone": {phone}}, nil)
	}
}
