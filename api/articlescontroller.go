package api

import (
	"context"
	"net/http"
	"strconv"

	"newsdesk/config"
	"newsdesk/search"

	"github.com/gin-gonic/gin"
)

// RegisterArticleRoutes registers article, search, and refresh endpoints.
func RegisterArticleRoutes(r *gin.Engine, deps Deps) {
	ctrl := &articlesController{deps: deps}

	g := r.Group("/api")
	g.GET("/articles", ctrl.handleListArticles)
	g.GET("/articles/:id", ctrl.handleGetArticle)
	g.GET("/articles/:id/related", ctrl.handleRelated)
	g.GET("/search", ctrl.handleSearch)
	g.GET("/suggestions", ctrl.handleSuggestions)
	g.POST("/refresh", ctrl.handleRefresh)
}

type articlesController struct {
	deps Deps
}

// handleListArticles returns the aggregated mixed feed.
// GET /api/articles?limit=12
func (ctrl *articlesController) handleListArticles(c *gin.Context) {
	limit := queryInt(c, "limit", config.DefaultFeedLimit)
	posts := ctrl.deps.News.GetMixedNews(c.Request.Context(), limit)
	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

// handleGetArticle looks up a single article by its generated ID.
// GET /api/articles/:id
func (ctrl *articlesController) handleGetArticle(c *gin.Context) {
	id := c.Param("id")
	post, err := ctrl.deps.News.GetArticleByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed", "code": "INTERNAL_ERROR"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found", "code": "NOT_FOUND"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// handleRelated returns posts similar to the given article.
// GET /api/articles/:id/related?limit=4
func (ctrl *articlesController) handleRelated(c *gin.Context) {
	id := c.Param("id")
	limit := queryInt(c, "limit", 4)
	posts := ctrl.deps.Search.Related(c.Request.Context(), id, limit)
	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

// handleSearch scores the current snapshot against a free-text query.
// GET /api/search?q=...&category=all&sort=relevance
func (ctrl *articlesController) handleSearch(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required", "code": "MISSING_QUERY"})
		return
	}
	category := c.DefaultQuery("category", "all")
	sortKey := c.DefaultQuery("sort", search.SortRelevance)
	posts := ctrl.deps.Search.Search(c.Request.Context(), q, category, sortKey)
	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

// handleSuggestions returns autocomplete suggestions.
// GET /api/suggestions?q=...
func (ctrl *articlesController) handleSuggestions(c *gin.Context) {
	suggestions := ctrl.deps.Search.Suggest(c.Request.Context(), c.Query("q"))
	if suggestions == nil {
		suggestions = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// handleRefresh rebuilds the search snapshot and archives it when an S3
// bucket is configured. Runs asynchronously and returns 202 Accepted.
func (ctrl *articlesController) handleRefresh(c *gin.Context) {
	go func() {
		posts := ctrl.deps.Search.Refresh(context.Background())
		if ctrl.deps.Archiver != nil {
			_ = ctrl.deps.Archiver.ArchivePosts(context.Background(), posts)
		}
	}()
	c.JSON(http.StatusAccepted, gin.H{"status": "refresh started"})
}

func queryInt(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
