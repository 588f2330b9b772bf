// File: handlers/review.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	reviewRepo "luxego/database/repository/review"
	"luxego/models"
	"luxego/services/review"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler exposes the review endpoints.
type ReviewHandler struct {
	Service review.ReviewService
	Logger  *zap.Logger
}

func NewReviewHandler(svc review.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{Service: svc, Logger: logger}
}

// CreateReview handles POST /api/reviews.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body"})
		return
	}

	rv, err := h.Service.SubmitReview(input)
	if err != nil {
		var rlErr *review.RateLimitError
		var vErr *review.ValidationError
		switch {
		case errors.As(err, &rlErr):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": rlErr.Error()})
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid review data", "errors": vErr.Fields})
		default:
			h.Logger.Error("review submission failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to create review"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": gin.H{"review": rv}})
}

// ListReviews handles GET /api/reviews. Only approved reviews are returned.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	filter := reviewRepo.ReviewFilter{SortBy: c.Query("sort")}
	if v := c.Query("rating"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid rating filter"})
			return
		}
		filter.Rating = &r
	}
	if v := c.Query("featured"); v == "true" {
		featured := true
		filter.Featured = &featured
	}
	filter.Limit, _ = strconv.Atoi(c.Query("limit"))

	reviews, err := h.Service.ListReviews(filter)
	if err != nil {
		h.Logger.Error("review list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to list reviews"})
		return
	}
	avg, total, err := h.Service.AverageRating()
	if err != nil {
		h.Logger.Error("average rating failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to compute average rating"})
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "success",
		"results":       len(reviews),
		"averageRating": avg,
		"totalRatings":  total,
		"data":          gin.H{"reviews": reviews},
	})
}

// AdminListReviews handles GET /api/reviews/admin/all, returning every review
// including unapproved ones.
func (h *ReviewHandler) AdminListReviews(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit <= 0 {
		limit = 100
	}
	reviews, err := h.Service.ListReviews(reviewRepo.ReviewFilter{Admin: true, Limit: limit})
	if err != nil {
		h.Logger.Error("admin review list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to list reviews"})
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(reviews),
		"data":    gin.H{"reviews": reviews},
	})
}

// ApproveReview handles PATCH /api/reviews/:id/approve.
func (h *ReviewHandler) ApproveReview(c *gin.Context) {
	rv, err := h.Service.Approve(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{"review": rv}})
}

// FeatureReview handles PATCH /api/reviews/:id/feature.
func (h *ReviewHandler) FeatureReview(c *gin.Context) {
	var req struct {
		Featured bool `json:"featured"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body"})
		return
	}
	rv, err := h.Service.Feature(c.Param("id"), req.Featured)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{"review": rv}})
}

// RespondReview handles PATCH /api/reviews/:id/respond.
func (h *ReviewHandler) RespondReview(c *gin.Context) {
	var req struct {
		Response    string `json:"response"`
		RespondedBy string `json:"respondedBy"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body"})
		return
	}
	rv, err := h.Service.Respond(c.Param("id"), req.Response, req.RespondedBy)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{"review": rv}})
}

// ReviewStats handles GET /api/reviews/stats/summary.
func (h *ReviewHandler) ReviewStats(c *gin.Context) {
	stats, err := h.Service.Stats()
	if err != nil {
		h.Logger.Error("review stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to compute review stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"averageRating": stats.AverageRating,
			"totalReviews":  stats.TotalReviews,
			"distribution":  stats.Distribution,
		},
	})
}

func (h *ReviewHandler) respondError(c *gin.Context, err error) {
	var nfErr *review.NotFoundError
	var vErr *review.ValidationError
	switch {
	case errors.As(err, &nfErr):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "No review found with that ID"})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid review data", "errors": vErr.Fields})
	default:
		h.Logger.Error("review request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Internal Server Error"})
	}
}
