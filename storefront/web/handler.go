// Package web is the storefront HTTP surface.
package web

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cart "github.com/Ramakant55/Trendora-Boutique/cart/logic"
	catalog "github.com/Ramakant55/Trendora-Boutique/catalog/logic"
	"github.com/Ramakant55/Trendora-Boutique/config"
)

// Options configures the storefront.
type Options struct {
	CookieName   string
	CookieSecure bool
	NewArrivals  int
	Name         string
	Site         config.SiteConfig
}

// OptionsFromConfig builds Options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		CookieName:   cfg.Sessions.CookieName,
		CookieSecure: cfg.Sessions.CookieSecure,
		NewArrivals:  cfg.Catalog.NewArrivals,
		Name:         cfg.Name,
		Site:         cfg.Site,
	}
}

// Handler serves catalog pages and session carts.
type Handler struct {
	store    *catalog.Store
	sessions *cart.Sessions
	opts     Options
	logger   *zap.Logger
}

func NewHandler(store *catalog.Store, sessions *cart.Sessions, opts Options, logger *zap.Logger) *Handler {
	if opts.CookieName == "" {
		opts.CookieName = config.DefaultConfig().Sessions.CookieName
	}
	return &Handler{store: store, sessions: sessions, opts: opts, logger: logger}
}

// NewRouter builds the gin engine with recovery, request logging and all
// storefront routes.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	// Route on the escaped path so encoded slashes stay inside :name.
	r.UseRawPath = true
	r.Use(gin.Recovery(), requestLogger(h.logger))
	h.Register(&r.RouterGroup)
	return r
}

// Register mounts the storefront routes on rg.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/healthz", h.Health)

	site := rg.Group("")
	site.Use(h.sessionCookie())
	{
		site.GET("/", h.Home)
		site.GET("/collections", h.ListCollections)
		site.GET("/products", h.ListProducts)
		site.GET("/collection/:name", h.CollectionProducts)
		site.GET("/about", h.About)
		site.GET("/contact", h.Contact)
		site.DELETE("/session", h.EndSession)
	}

	carts := site.Group("/cart")
	{
		carts.GET("", h.GetCart)
		carts.GET("/count", h.CartCount)
		carts.GET("/history", h.History)
		carts.POST("/items", h.AddItem)
		carts.PUT("/items/:id", h.UpdateItem)
		carts.DELETE("/items/:id", h.RemoveItem)
	}
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
