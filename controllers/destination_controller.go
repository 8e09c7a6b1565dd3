package controllers

import (
	"tourbooking/pkg/resp"
	"tourbooking/services"

	"github.com/gin-gonic/gin"
)

type DestinationRequest struct {
	Name     string `json:"name" binding:"required"`
	Province string `json:"province"`
}

type DestinationController struct {
	Service *services.DestinationService
}

func NewDestinationController(s *services.DestinationService) *DestinationController {
	return &DestinationController{Service: s}
}

// GET /destinations
func (ctl *DestinationController) List(c *gin.Context) {
	dests, err := ctl.Service.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": dests})
}

// GET /destinations/:id
func (ctl *DestinationController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	d, err := ctl.Service.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, d)
}

// POST /admin/destinations
func (ctl *DestinationController) Create(c *gin.Context) {
	var req DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	d, err := ctl.Service.Create(req.Name, req.Province)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, d)
}

// PUT /admin/destinations/:id
func (ctl *DestinationController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	d, err := ctl.Service.Update(id, req.Name, req.Province)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, d)
}

// DELETE /admin/destinations/:id
func (ctl *DestinationController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ctl.Service.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
