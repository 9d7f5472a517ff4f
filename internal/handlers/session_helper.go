package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vincibarbearia/app-agendamento/internal/httperr"
	"github.com/vincibarbearia/app-agendamento/internal/middleware"
	"github.com/vincibarbearia/app-agendamento/internal/models"
	"github.com/vincibarbearia/app-agendamento/internal/store"
)

// currentCustomer resolves the session customer cached at login. A missing
// cache means the session was ended, by the liveness sweep or an explicit
// logout, and the request is refused.
func currentCustomer(c *gin.Context, customers *store.CustomerStore) (models.Customer, bool) {
	customerID := c.MustGet(middleware.ContextCustomerID).(string)

	customer, ok := customers.Load(c.Request.Context(), customerID)
	if !ok {
		httperr.Unauthorized(c, "session_expired", "Sessão expirada. Faça login novamente.")
		return models.Customer{}, false
	}
	return customer, true
}
