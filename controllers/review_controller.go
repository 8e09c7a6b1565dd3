// controllers/review_controller.go
package controllers

import (
	"tourbooking/pkg/resp"
	"tourbooking/services"
	"tourbooking/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Service *services.ReviewService
}

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Service: s}
}

// POST /tours/:id/reviews (Protected)
func (rc *ReviewController) Create(c *gin.Context) {
	tourID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rev, err := rc.Service.Create(utils.CurrentUserID(c), tourID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, rev)
}

// GET /tours/:id/reviews (Public)
func (rc *ReviewController) ListForTour(c *gin.Context) {
	tourID, ok := paramID(c, "id")
	if !ok {
		return
	}
	limit, offset := limitOffset(c)
	out, err := rc.Service.ListForTour(tourID, limit, offset)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{
		"items":     out.Items,
		"meta":      gin.H{"limit": limit, "offset": offset},
		"aggregate": out.Aggregate,
	})
}

// GET /profile/reviews (Protected)
func (rc *ReviewController) ListForMe(c *gin.Context) {
	limit, offset := limitOffset(c)
	items, err := rc.Service.ListForUser(utils.CurrentUserID(c), limit, offset)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "meta": gin.H{"limit": limit, "offset": offset}})
}

// DELETE /reviews/:id (owner or admin)
func (rc *ReviewController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := rc.Service.Delete(utils.CurrentUserID(c), utils.CurrentRole(c), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
