// Package main GerenciadorPedidos API
//
//	@title			GerenciadorPedidos API
//	@version		1.0
//	@description	API de gerenciamento de pedidos: criação (unitária e em lote), cálculo de imposto e consulta.
//
//	@host		localhost:8080
//	@BasePath	/
//	@schemes	http
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Nestor-Neto/GerenciadorPedidos/docs/swagger"
	"github.com/Nestor-Neto/GerenciadorPedidos/internal/orders/adapters"
	"github.com/Nestor-Neto/GerenciadorPedidos/internal/orders/application"
	"github.com/Nestor-Neto/GerenciadorPedidos/internal/orders/infrastructure"
	"github.com/Nestor-Neto/GerenciadorPedidos/internal/orders/ports"
	"github.com/Nestor-Neto/GerenciadorPedidos/pkg/cache"
	"github.com/Nestor-Neto/GerenciadorPedidos/pkg/config"
	"github.com/Nestor-Neto/GerenciadorPedidos/pkg/db"
	"github.com/Nestor-Neto/GerenciadorPedidos/pkg/events"
	"github.com/Nestor-Neto/GerenciadorPedidos/pkg/featureflags"
	"github.com/Nestor-Neto/GerenciadorPedidos/pkg/logger"
	"github.com/Nestor-Neto/GerenciadorPedidos/pkg/middleware"
	"github.com/Nestor-Neto/GerenciadorPedidos/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.ServiceName, cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	log.Info("starting gerenciador-pedidos service")

	dbConn, err := db.NewConnection(db.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
		Timeout:  cfg.DBTimeout,
	})
	if err != nil {
		log.Fatal("failed to connect to database: " + err.Error())
	}
	log.Info("connected to database")

	repo := adapters.NewPostgresOrderRepository(dbConn)
	if err := repo.Migrate(); err != nil {
		log.Fatal("failed to migrate database: " + err.Error())
	}

	// Partner system integration is optional: without a broker the service
	// still creates orders, it just skips the notification.
	var notifier ports.OrderNotifier
	rabbitConn, err := rabbitmq.NewConnection(cfg.RabbitMQURL, log)
	if err != nil {
		log.Warn("failed to connect to RabbitMQ, partner notifications disabled: " + err.Error())
	} else {
		defer rabbitConn.Close()

		pub, err := rabbitmq.NewPublisher(rabbitConn, events.ExchangePedidos, log)
		if err != nil {
			log.Warn("failed to create publisher: " + err.Error())
		} else {
			notifier = adapters.NewRabbitMQNotifier(pub, cfg.NotifyTimeout, log)
		}
	}

	// Read cache is optional as well.
	var readCache ports.Cache
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedisCache(cfg.RedisAddr)
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			log.Warn("failed to connect to Redis, read cache disabled: " + err.Error())
		} else {
			defer redisCache.Close()
			readCache = redisCache
			log.Info("connected to Redis")
		}
		cancel()
	}

	flags := featureflags.NewProvider()
	taxService := application.NewTaxService(flags, log)
	useCase := application.NewOrderUseCase(repo, taxService, notifier, readCache, cfg.CacheTTL, log)

	httpHandler := infrastructure.NewHTTPHandler(useCase)
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.TraceID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.ErrorHandler(log))
	router.Use(middleware.CORS())

	api := router.Group("/api")
	httpHandler.RegisterRoutes(api)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	httpServer := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
	}

	go func() {
		log.Info("HTTP server listening on :" + cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error: " + err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP shutdown error: " + err.Error())
	}

	log.Info("server stopped")
}
