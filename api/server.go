package api

import (
	"newsdesk/archive"
	"newsdesk/news"
	"newsdesk/newsletter"
	"newsdesk/search"

	"github.com/gin-gonic/gin"
)

// Deps holds the services the API layer exposes. Archiver may be nil.
type Deps struct {
	News       *news.Service
	Search     *search.Service
	Newsletter *newsletter.Service
	Archiver   *archive.Archiver
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	// Register resource routers
	RegisterArticleRoutes(r, deps)
	RegisterNewsletterRoutes(r, deps.Newsletter)
	RegisterHealthRoutes(r)
	return r
}

// RegisterHealthRoutes registers the health endpoint.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})
}
