package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vincibarbearia/app-agendamento/internal/config"
	dbpkg "github.com/vincibarbearia/app-agendamento/internal/db"
	"github.com/vincibarbearia/app-agendamento/internal/gateway"
	"github.com/vincibarbearia/app-agendamento/internal/logging"
	"github.com/vincibarbearia/app-agendamento/internal/routes"
	"github.com/vincibarbearia/app-agendamento/internal/store"
)

func main() {

	cfg := config.Load()

	log := logging.New(cfg.Environment)
	defer log.Sync()

	db := dbpkg.NewDB(cfg)

	kv := store.NewRedisKV(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	customers := store.NewCustomerStore(kv)
	carts := store.NewCartStore(kv)

	api := gateway.NewClient(cfg.APIBaseURL, cfg.APIToken, log)

	sweeper := store.NewLivenessSweeper(customers, api, log)
	go sweeper.Run(context.Background())

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log, api, customers, carts)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
