package routes

import (
	"net/http"
	"time"

	"concierge/handlers"
	"concierge/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// contactRequestsPerMin caps form submissions per client IP.
const contactRequestsPerMin = 5

// RegisterPageRoutes registers the page document endpoints.
func RegisterPageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.HomeHandler)
	r.GET("/services", hb.ServicesHandler)
	r.GET("/services/:id", hb.ServiceDetailHandler)
	r.GET("/about", hb.AboutHandler)
	r.GET("/contact", hb.ContactPageHandler)
}

// RegisterContactRoutes registers the inquiry submission endpoint.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	limiter := middleware.NewRateLimiterStore(contactRequestsPerMin)
	r.POST("/contact", middleware.RateLimitMiddleware(limiter), hb.SubmitContactHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterFallback sends every unknown path back to the home page.
func RegisterFallback(r *gin.Engine) {
	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, origins []string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterPageRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterHealthRoute(r, hb)
	RegisterFallback(r)
}
