package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rafaelleal24/products-api/internal/adapters/config"
	"github.com/rafaelleal24/products-api/internal/adapters/http/controllers"
	"github.com/rafaelleal24/products-api/internal/adapters/http/handlers"
	"github.com/rafaelleal24/products-api/internal/adapters/http/middleware"
	"github.com/rafaelleal24/products-api/internal/core/logger"
)

const (
	rateLimitWindow = time.Minute
	shutdownTimeout = 5 * time.Second
)

type Router struct {
	healthController        *controllers.HealthController
	productController       *controllers.ProductController
	productOptionController *controllers.ProductOptionController
	rateLimiter             middleware.RateLimiter
	config                  config.Config
}

// NewRouter wires the controllers. rateLimiter may be nil, which disables
// write limiting.
func NewRouter(
	healthController *controllers.HealthController,
	productController *controllers.ProductController,
	productOptionController *controllers.ProductOptionController,
	rateLimiter middleware.RateLimiter,
	cfg config.Config,
) *Router {
	return &Router{
		healthController:        healthController,
		productController:       productController,
		productOptionController: productOptionController,
		rateLimiter:             rateLimiter,
		config:                  cfg,
	}
}

func (r *Router) corsConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "Idempotency-Key")
	corsConfig.ExposeHeaders = []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"}
	origins := r.config.HTTP.CORSAllowedOrigins
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	return corsConfig
}

// Engine builds the gin engine with every route and middleware installed.
func (r *Router) Engine() *gin.Engine {
	handlers.RegisterJSONFieldNames()

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(gin.CustomRecovery(handlers.Recover))
	engine.Use(cors.New(r.corsConfig()))
	engine.NoRoute(handlers.NotFound)
	engine.NoMethod(handlers.MethodNotAllowed)

	r.SetupRoutes(engine)
	return engine
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	writeLimit := middleware.RateLimit(r.rateLimiter, r.config.Products.RateLimitWrites, rateLimitWindow)

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		products := v1Group.Group("/products")
		products.GET("", r.productController.ListProducts)
		products.GET("/:id", r.productController.GetProduct)
		products.POST("", writeLimit, r.productController.CreateProduct)
		products.PUT("/:id", writeLimit, r.productController.UpdateProduct)
		products.DELETE("/:id", writeLimit, r.productController.DeleteProduct)

		options := products.Group("/:id/options")
		options.GET("", r.productOptionController.ListOptions)
		options.GET("/:optionId", r.productOptionController.GetOption)
		options.POST("", writeLimit, r.productOptionController.CreateOption)
		options.PUT("/:optionId", writeLimit, r.productOptionController.UpdateOption)
		options.DELETE("/:optionId", writeLimit, r.productOptionController.DeleteOption)
	}
}

// ListenAndServe blocks until ctx is cancelled, then drains in-flight requests.
func (r *Router) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", r.config.HTTP.BindInterface, r.config.HTTP.Port),
		Handler:           r.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(shutdownCtx, "http: shutdown failed", err, nil)
		}
	}()

	logger.Info(ctx, "http: listening", map[string]any{"addr": srv.Addr})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
