package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vincibarbearia/app-agendamento/internal/auth"
	"github.com/vincibarbearia/app-agendamento/internal/booking"
	"github.com/vincibarbearia/app-agendamento/internal/config"
	"github.com/vincibarbearia/app-agendamento/internal/gateway"
	"github.com/vincibarbearia/app-agendamento/internal/handlers"
	"github.com/vincibarbearia/app-agendamento/internal/middleware"
	"github.com/vincibarbearia/app-agendamento/internal/proxy"
	"github.com/vincibarbearia/app-agendamento/internal/store"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger, api *gateway.Client, customers *store.CustomerStore, carts *store.CartStore) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	customerRepo := auth.NewGormRepository(db)

	authService := auth.NewService(customerRepo, log)
	tokenIssuer := auth.NewTokenIssuer(cfg.JWTSecret)

	workflow := booking.NewWorkflow(carts, api, log)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(authService, tokenIssuer, customers, api)
	bookingHandler := handlers.NewBookingHandler(workflow, customers)
	appointmentHandler := handlers.NewAppointmentHandler(api, customers)
	meHandler := handlers.NewMeHandler(api, customers)

	proxyHandler := proxy.NewHandler(cfg.APIBaseURL, cfg.APIToken, log)

	// ======================================================
	// ROTAS API
	// ======================================================
	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/auth/login", authHandler.Login)
		apiGroup.POST("/auth/register", authHandler.Register)
		apiGroup.POST("/auth/verificar", authHandler.Verify)
		apiGroup.POST("/auth/senha-temporaria", authHandler.TemporaryPassword)

		proxyGroup := apiGroup.Group("/proxy")
		proxyHandler.Register(proxyGroup)

		secured := apiGroup.Group("/")
		secured.Use(middleware.CustomerAuth(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.POST("/auth/logout", authHandler.Logout)
			secured.POST("/auth/alterar-senha", authHandler.ChangePassword)
			secured.POST("/auth/redefinir-senha", authHandler.ResetPassword)

			secured.GET("/catalogo", bookingHandler.Catalog)

			secured.GET("/carrinho", bookingHandler.GetCart)
			secured.POST("/carrinho/alternar", bookingHandler.ToggleCart)
			secured.DELETE("/carrinho", bookingHandler.ClearCart)

			secured.GET("/agendamento/sessao", bookingHandler.SessionState)
			secured.POST("/agendamento/prosseguir", bookingHandler.Proceed)
			secured.GET("/agendamento/horarios", bookingHandler.Slots)
			secured.POST("/agendamento/confirmar", bookingHandler.Confirm)
			secured.POST("/agendamento/comprar", bookingHandler.Purchase)
			secured.POST("/agendamento/voltar", bookingHandler.Back)

			secured.GET("/agendamentos", appointmentHandler.List)
			secured.POST("/agendamentos/:id/cancelar", appointmentHandler.Cancel)
		}
	}
}
