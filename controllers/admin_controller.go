package controllers

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"tourbooking/pkg/resp"
	"tourbooking/services"
	"tourbooking/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminController struct {
	Reports *services.ReportService
	Users   *services.UserService
	Export  *services.ExportService
}

func NewAdminController(reports *services.ReportService, users *services.UserService, export *services.ExportService) *AdminController {
	return &AdminController{Reports: reports, Users: users, Export: export}
}

type AdminUpdateUserRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	IsAdmin *bool   `json:"isAdmin"`
}

// Dashboard: ตัวเลขรวม ๆ
func (ac *AdminController) Dashboard(c *gin.Context) {
	sum, err := ac.Reports.Dashboard(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, sum)
}

// รายการผู้ใช้ (page/limit)
func (ac *AdminController) ListUsers(c *gin.Context) {
	page, limit := pageParams(c)
	users, total, err := ac.Users.List(page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	items := make([]gin.H, 0, len(users))
	for i := range users {
		items = append(items, userJSON(&users[i]))
	}
	resp.OK(c, gin.H{"items": items, "page": page, "limit": limit, "total": total})
}

// PATCH /admin/users/:id
func (ac *AdminController) UpdateUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req AdminUpdateUserRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		// body ถูก cache ไว้แล้ว อ่านซ้ำเพื่อ log ได้
		var raw map[string]any
		if err2 := c.ShouldBindBodyWith(&raw, binding.JSON); err2 == nil {
			log.Printf("❌ update user %d: raw body %+v", id, raw)
		}
		resp.BadRequest(c, err.Error())
		return
	}
	u, err := ac.Users.Update(id, services.AdminUserUpdate{Name: req.Name, Phone: req.Phone, IsAdmin: req.IsAdmin})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, userJSON(u))
}

// DELETE /admin/users/:id
func (ac *AdminController) DeleteUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ac.Users.Delete(utils.CurrentUserID(c), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}

// GET /admin/bookings/export → xlsx
func (ac *AdminController) ExportBookings(c *gin.Context) {
	var buf bytes.Buffer
	if err := ac.Export.WriteBookingsXLSX(&buf); err != nil {
		resp.ServerError(c, err)
		return
	}
	filename := fmt.Sprintf("bookings-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
