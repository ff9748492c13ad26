package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "rutvans_api/docs"
	"rutvans_api/internal/adapter/http/handlers"
	"rutvans_api/internal/config"
	"rutvans_api/internal/usecase"
	"rutvans_api/internal/usecase/interfaces"
)

// Dependencies are the adapters the HTTP surface runs on.
type Dependencies struct {
	Sales interfaces.ISaleRepository
	Cache interfaces.IReportCache
}

// Run wires the configured store and cache, serves HTTP and shuts down
// gracefully on SIGINT or SIGTERM.
func Run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sales, closeStore, err := buildSaleRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	cache, closeCache := buildReportCache(ctx, cfg, logger)
	defer closeCache()

	server := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           NewRouter(cfg, logger, Dependencies{Sales: sales, Cache: cache}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("[app] listening", zap.String("addr", cfg.Server.HTTPAddr), zap.String("store", cfg.Store.Driver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("[app] shutdown error", zap.Error(err))
	}
	logger.Info("[app] server stopped")
	return nil
}

// NewRouter builds the gin engine with every route mounted.
func NewRouter(cfg config.Config, logger *zap.Logger, deps Dependencies) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	setMiddlewares(router, cfg, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	reportUseCase := usecase.NewReportUseCase(deps.Sales, deps.Cache, cfg.Redis.ReportTTL, logger)
	saleUseCase := usecase.NewSaleUseCase(deps.Sales, deps.Cache, logger)

	reportHandler := handlers.NewReportHandler(reportUseCase, logger)
	saleHandler := handlers.NewSaleHandler(saleUseCase, logger)

	addPingRoutes(router.Group("/v1"))

	api := router.Group("/api")
	addFinanceRoutes(api, reportHandler)
	addSaleRoutes(api, saleHandler)

	return router
}

func setMiddlewares(router *gin.Engine, cfg config.Config, logger *zap.Logger) {
	router.Use(requestLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("[app] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig(cfg.CORS)))
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.DefaultConfig()
	origins := make([]string, 0, len(cfg.AllowedOrigins))
	allowAll := false
	for _, o := range cfg.AllowedOrigins {
		if o == "*" {
			allowAll = true
		}
		if o != "" {
			origins = append(origins, o)
		}
	}
	if allowAll || len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	c.AddAllowMethods("GET", "POST", "PUT", "DELETE", "OPTIONS")
	c.AddAllowHeaders("Origin", "Content-Type", "Authorization")
	c.AddExposeHeaders("Content-Length", "Content-Disposition")
	return c
}

// requestLogger logs one line per request through zap.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Warn("[http] request", fields...)
			return
		}
		logger.Info("[http] request", fields...)
	}
}
