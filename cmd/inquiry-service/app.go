package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"golang.org/x/sync/errgroup"

	"driveline/internal/config"
	"driveline/internal/constants"
	"driveline/internal/inquiry"
	"driveline/internal/logger"
	"driveline/internal/mailer"
	"driveline/internal/vitals"
	"driveline/pkg/circuitbreaker"
	"driveline/pkg/health"
	"driveline/pkg/metrics"
	"driveline/pkg/middleware"
	"driveline/pkg/quota"
	"driveline/pkg/ratelimit"
	"driveline/pkg/retry"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type App struct {
	config      *config.Config
	logger      logger.Logger
	redisClient *redis.Client
	limiter     quota.Limiter
	server      *http.Server
	router      *gin.Engine
}

func NewApp(cfg *config.Config, log logger.Logger) *App {
	return &App{
		config: cfg,
		logger: log,
	}
}

func (a *App) Initialize(ctx context.Context) error {
	if err := a.initQuota(ctx); err != nil {
		return fmt.Errorf("failed to initialize submission quota: %w", err)
	}

	if err := a.initRouter(); err != nil {
		return fmt.Errorf("failed to initialize router: %w", err)
	}

	a.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  a.config.Server.ReadTimeoutSeconds * time.Second,
		WriteTimeout: a.config.Server.WriteTimeoutSeconds * time.Second,
	}

	return nil
}

func (a *App) quotaConfig() quota.Config {
	return quota.Config{
		Limit:           a.config.Quota.Limit,
		Window:          time.Duration(a.config.Quota.WindowSeconds) * time.Second,
		CleanupInterval: time.Duration(a.config.Quota.CleanupIntervalSeconds) * time.Second,
	}
}

func (a *App) initQuota(ctx context.Context) error {
	if a.config.Quota.Store != "redis" {
		a.limiter = quota.NewMemoryStore(a.quotaConfig())
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", a.config.Database.Redis.Host, a.config.Database.Redis.Port),
		Password: a.config.Database.Redis.Password,
		DB:       a.config.Database.Redis.DB,
	})

	err := retry.Retry(ctx, retry.DefaultPolicy(), func() error {
		return client.Ping(ctx).Err()
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	a.logger.InfowCtx(ctx, "Redis connected, using shared submission quota")
	a.redisClient = client
	a.limiter = quota.NewRedisStore(client, a.quotaConfig(), constants.CacheKeyPrefixQuota)
	return nil
}

func (a *App) initRouter() error {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(a.logger))
	router.Use(middleware.LoggerMiddleware(a.logger))
	router.Use(middleware.RequestIDMiddleware())

	if a.config.RateLimit.Enabled {
		rateLimitConfig := ratelimit.Config{
			RPS:             a.config.RateLimit.RPS,
			Burst:           a.config.RateLimit.Burst,
			CleanupInterval: time.Duration(a.config.RateLimit.CleanupInterval) * time.Second,
			MaxAge:          time.Duration(a.config.RateLimit.MaxAge) * time.Second,
		}
		router.Use(ratelimit.Middleware(rateLimitConfig))
		a.logger.Infow("API rate limiting enabled", "rps", rateLimitConfig.RPS, "burst", rateLimitConfig.Burst)
	}

	var sender mailer.Sender = mailer.NewResendClient(a.config.Mailer)
	if a.config.CircuitBreaker.Enabled {
		breakerCfg := circuitbreaker.DefaultConfig("mailer")
		if a.config.CircuitBreaker.MaxRequests > 0 {
			breakerCfg.MaxRequests = a.config.CircuitBreaker.MaxRequests
		}
		if a.config.CircuitBreaker.Interval > 0 {
			breakerCfg.Interval = a.config.CircuitBreaker.Interval
		}
		if a.config.CircuitBreaker.Timeout > 0 {
			breakerCfg.Timeout = a.config.CircuitBreaker.Timeout
		}
		if ratio, min := a.config.CircuitBreaker.FailureRatio, a.config.CircuitBreaker.MinRequests; ratio > 0 {
			breakerCfg.ReadyToTrip = func(counts gobreaker.Counts) bool {
				return counts.Requests >= min &&
					float64(counts.TotalFailures)/float64(counts.Requests) >= ratio
			}
		}
		sender = mailer.NewBreakerSender(sender, circuitbreaker.NewWrapper(breakerCfg))
		a.logger.Infow("Mailer circuit breaker enabled")
	}
	if !sender.Configured() {
		a.logger.Warnw("Email provider credential missing, inquiries will be rejected with NOT_CONFIGURED")
	}

	opts := []inquiry.ServiceOption{}
	if len(a.config.Spam.Rules) > 0 {
		filter, err := inquiry.NewRuleFilter(a.config.Spam.Rules)
		if err != nil {
			return fmt.Errorf("failed to compile spam rules: %w", err)
		}
		opts = append(opts, inquiry.WithSpamFilter(filter))
		a.logger.Infow("Spam rules loaded", "count", len(a.config.Spam.Rules))
	}

	svc := inquiry.NewService(sender, a.logger, opts...)
	inquiryHandler := inquiry.NewHandler(svc, a.limiter, a.logger)
	inquiryHandler.RegisterRoutes(router)

	if a.config.Vitals.Enabled {
		vitalsStore := vitals.NewFileStore(a.config.Vitals.File)
		vitalsHandler := vitals.NewHandler(vitalsStore, a.logger)
		vitalsHandler.RegisterRoutes(router)
		a.logger.Infow("Vitals collection enabled", "file", a.config.Vitals.File)
	}

	metrics.RegisterInquiryMetrics()

	healthRegistry := health.NewCheckerRegistry()
	healthRegistry.Register(health.NewMailerChecker(sender.Configured))
	if a.redisClient != nil {
		healthRegistry.Register(health.NewRedisChecker(a.redisClient))
	}

	router.GET("/health", func(c *gin.Context) {
		h := healthRegistry.Check(c.Request.Context())
		statusCode := http.StatusOK
		if h.Status == health.StatusUnhealthy {
			statusCode = http.StatusServiceUnavailable
		}
		c.JSON(statusCode, h)
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	a.router = router
	return nil
}

func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.InfowCtx(ctx, "Server listening", "port", a.config.Server.Port)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		return a.Shutdown(ctx)
	})

	return g.Wait()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.InfowCtx(ctx, "Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	var errs []error

	if a.server != nil {
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("server shutdown error: %w", err))
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis close error: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}

	a.logger.InfowCtx(ctx, "Server exited successfully")
	return nil
}
