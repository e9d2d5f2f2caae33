package api

import (
	"errors"
	"net/http"

	"newsdesk/newsletter"

	"github.com/gin-gonic/gin"
)

// RegisterNewsletterRoutes registers newsletter endpoints.
func RegisterNewsletterRoutes(r *gin.Engine, svc *newsletter.Service) {
	ctrl := &newsletterController{svc: svc}
	r.POST("/api/newsletter", ctrl.handleSubscribe)
	r.GET("/api/newsletter", ctrl.handleActions)
	r.POST("/api/newsletter/campaigns", ctrl.handleAddCampaign)
}

type newsletterController struct {
	svc *newsletter.Service
}

// SubscribeRequest is the POST /api/newsletter body.
type SubscribeRequest struct {
	Email string `json:"email"`
}

// handleSubscribe runs the full subscription flow.
// POST /api/newsletter
func (ctrl *newsletterController) handleSubscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body", "code": newsletter.CodeMissingEmail})
		return
	}

	result, err := ctrl.svc.Subscribe(c.Request.Context(), req.Email, c.ClientIP())
	if err != nil {
		var subErr *newsletter.SubscribeError
		if errors.As(err, &subErr) {
			c.JSON(subErr.Status, gin.H{"error": subErr.Message, "code": subErr.Code})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "subscription failed", "code": newsletter.CodeInternalError})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      result.Message,
		"success":      true,
		"subscriberId": result.SubscriberID,
	})
}

// CampaignRequest is the POST /api/newsletter/campaigns body.
type CampaignRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// handleAddCampaign stores a campaign draft.
// POST /api/newsletter/campaigns
func (ctrl *newsletterController) handleAddCampaign(c *gin.Context) {
	var req CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	id, err := ctrl.svc.AddCampaign(c.Request.Context(), req.Subject, req.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "success": true})
}

// handleActions serves diagnostic/admin actions.
// GET /api/newsletter?action=test-convertkit|debug|stats|campaigns
func (ctrl *newsletterController) handleActions(c *gin.Context) {
	switch c.Query("action") {
	case "test-convertkit":
		provider, err := ctrl.svc.TestProvider(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "provider": provider})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "provider test succeeded", "provider": provider})
	case "debug":
		c.JSON(http.StatusOK, ctrl.svc.Debug())
	case "stats":
		stats, err := ctrl.svc.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	case "campaigns":
		campaigns, err := ctrl.svc.Campaigns(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load campaigns"})
			return
		}
		if campaigns == nil {
			campaigns = []newsletter.Campaign{}
		}
		c.JSON(http.StatusOK, gin.H{"campaigns": campaigns, "count": len(campaigns)})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "newsletter API is running"})
	}
}
