package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vincibarbearia/app-agendamento/internal/auth"
	"github.com/vincibarbearia/app-agendamento/internal/gateway"
	"github.com/vincibarbearia/app-agendamento/internal/httperr"
	"github.com/vincibarbearia/app-agendamento/internal/middleware"
	"github.com/vincibarbearia/app-agendamento/internal/store"
)

type AuthHandler struct {
	service   *auth.Service
	issuer    *auth.TokenIssuer
	customers *store.CustomerStore
	api       *gateway.Client
}

func NewAuthHandler(service *auth.Service, issuer *auth.TokenIssuer, customers *store.CustomerStore, api *gateway.Client) *AuthHandler {
	return &AuthHandler{
		service:   service,
		issuer:    issuer,
		customers: customers,
		api:       api,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Phone    string `json:"telefone" binding:"required"`
	Password string `json:"senha" binding:"required"`
}

type RegisterRequest struct {
	FullName       string `json:"nome_completo" binding:"required"`
	Phone          string `json:"telefone" binding:"required"`
	Email          string `json:"email"`
	Password       string `json:"senha" binding:"required,min=6"`
	BirthDate      string `json:"data_nascimento"`
	Profession     string `json:"profissao"`
	MaritalStatus  string `json:"estado_civil"`
	HasChildren    *bool  `json:"tem_filhos"`
	ReferralSource string `json:"como_soube"`
	LikesSmallTalk *bool  `json:"gosta_conversar"`
}

type PhoneRequest struct {
	Phone string `json:"telefone" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"senha_atual" binding:"required"`
	NewPassword     string `json:"nova_senha" binding:"required,min=6"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"nova_senha" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	customer, err := h.service.Login(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		var be httperr.BusinessError
		if errors.As(err, &be) {
			httperr.Unauthorized(c, be.Code, be.Message)
			return
		}
		httperr.Internal(c, "login_failed", "Erro ao fazer login. Tente novamente.")
		return
	}

	token, err := h.issuer.Issue(customer)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar sessão.")
		return
	}

	if err := h.customers.Save(c.Request.Context(), customer); err != nil {
		httperr.Internal(c, "session_save_failed", "Erro ao salvar sessão.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cliente": customer,
		"token":   token,
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	customer, err := h.service.Register(c.Request.Context(), auth.RegisterInput{
		FullName:       req.FullName,
		Phone:          req.Phone,
		Email:          req.Email,
		Password:       req.Password,
		BirthDate:      req.BirthDate,
		Profession:     req.Profession,
		MaritalStatus:  req.MaritalStatus,
		HasChildren:    req.HasChildren,
		ReferralSource: req.ReferralSource,
		LikesSmallTalk: req.LikesSmallTalk,
	})
	if err != nil {
		var be httperr.BusinessError
		if errors.As(err, &be) {
			httperr.BadRequest(c, be.Code, be.Message)
			return
		}
		httperr.Internal(c, "register_failed", "Erro ao cadastrar. Tente novamente.")
		return
	}

	token, err := h.issuer.Issue(customer)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar sessão.")
		return
	}

	if err := h.customers.Save(c.Request.Context(), customer); err != nil {
		httperr.Internal(c, "session_save_failed", "Erro ao salvar sessão.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"cliente": customer,
		"token":   token,
	})
}

// Verify is the pre-login probe: does this phone belong to a customer,
// and did that customer ever set a password.
func (h *AuthHandler) Verify(c *gin.Context) {
	var req PhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	result, err := h.service.Verify(c.Request.Context(), req.Phone)
	if err != nil {
		httperr.Internal(c, "verify_failed", "Erro ao verificar cliente.")
		return
	}
	c.JSON(http.StatusOK, result)
}

// TemporaryPassword asks the upstream to deliver a one-time password out
// of band. The secret never transits this server.
func (h *AuthHandler) TemporaryPassword(c *gin.Context) {
	var req PhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	result := h.api.SendTemporaryPassword(c.Request.Context(), auth.NormalizePhone(req.Phone))
	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "Erro ao gerar senha temporária"
		}
		httperr.BadGateway(c, "temporary_password_failed", msg)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextCustomerID).(string)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), customerID, req.CurrentPassword, req.NewPassword); err != nil {
		var be httperr.BusinessError
		if errors.As(err, &be) {
			httperr.BadRequest(c, be.Code, be.Message)
			return
		}
		httperr.Internal(c, "change_password_failed", "Erro ao atualizar senha. Tente novamente.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ResetPassword is the forced rotation after a temporary-password login;
// the session token is proof enough, no current password required.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextCustomerID).(string)

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), customerID, req.NewPassword); err != nil {
		var be httperr.BusinessError
		if errors.As(err, &be) {
			httperr.BadRequest(c, be.Code, be.Message)
			return
		}
		httperr.Internal(c, "reset_password_failed", "Erro ao trocar senha.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextCustomerID).(string)

	if err := h.customers.Delete(c.Request.Context(), customerID); err != nil {
		httperr.Internal(c, "logout_failed", "Erro ao encerrar sessão.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
