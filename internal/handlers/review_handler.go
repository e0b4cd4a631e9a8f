package handlers

import (
	"net/http"

	"homeserve_backend/internal/services"
	"homeserve_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reviews := rg.Group("/reviews")
	{
		reviews.POST("", h.CreateReview)
		reviews.GET("/mine", h.GetMyReviews)
	}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req dto.CreateReviewRequest
	if !h.Bind(c, &req) {
		return
	}

	created, err := h.reviewService.Create(h.GetDB(c), h.Caller(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Success(c, http.StatusCreated, "Review submitted successfully", created)
}

func (h *ReviewHandler) GetMyReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListMine(h.GetDB(c), h.Caller(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Success(c, http.StatusOK, "Reviews retrieved successfully", reviews)
}
