package routes

import (
	"net/http"
	"strings"
	"time"

	"cerberus/handlers"
	"cerberus/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterContactRoutes registers the contact form endpoint.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	if hb.ContactLimiter != nil {
		api.POST("/contact", hb.ContactLimiter, hb.SubmitContact)
		return
	}
	api.POST("/contact", hb.SubmitContact)
}

// RegisterEstimateRoutes registers the catalog and estimator endpoints.
func RegisterEstimateRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/catalog", hb.GetCatalog)

	api := r.Group("/api/estimate")
	{
		api.POST("", hb.ComputeEstimate)
		api.POST("/post-only", hb.SelectPostOnly)
		api.POST("/summary", hb.EstimateSummary)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": utils.GetHealthStatus()})
	})
}

// CORSConfig allows the configured origins. allowedOrigin may be "*" or a
// comma-separated list.
func CORSConfig(allowedOrigin string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if allowedOrigin == "" || allowedOrigin == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, o := range strings.Split(allowedOrigin, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, o)
		}
	}
	return cfg
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigin string) {
	r.Use(cors.New(CORSConfig(allowedOrigin)))

	RegisterContactRoutes(r, hb)
	RegisterEstimateRoutes(r, hb)
	RegisterHealthRoute(r)
}
