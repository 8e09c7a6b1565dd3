package controllers

import (
	"tourbooking/entity"
	"tourbooking/pkg/resp"
	"tourbooking/services"
	"tourbooking/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Service *services.BookingService
}

func NewBookingController(s *services.BookingService) *BookingController {
	return &BookingController{Service: s}
}

// POST /bookings
func (ctl *BookingController) Create(c *gin.Context) {
	var req services.CreateBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	b, err := ctl.Service.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, b)
}

// GET /profile/bookings
func (ctl *BookingController) ListForMe(c *gin.Context) {
	items, err := ctl.Service.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /bookings/:id (เจ้าของหรือ admin)
func (ctl *BookingController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	b, err := ctl.Service.Detail(utils.CurrentUserID(c), utils.CurrentRole(c), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, b)
}

// PATCH /bookings/:id/cancel
func (ctl *BookingController) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	b, err := ctl.Service.CancelByUser(utils.CurrentUserID(c), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, b)
}

// ===== Admin =====

// GET /admin/bookings?status=&page=&limit=
func (ctl *BookingController) AdminList(c *gin.Context) {
	page, limit := pageParams(c)
	out, err := ctl.Service.List(entity.BookingStatus(c.Query("status")), page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /admin/bookings/:id/confirm
func (ctl *BookingController) AdminConfirm(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	b, err := ctl.Service.AdminConfirm(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, b)
}

// PATCH /admin/bookings/:id/cancel
func (ctl *BookingController) AdminCancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	b, err := ctl.Service.AdminCancel(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, b)
}
