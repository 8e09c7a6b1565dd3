// controllers/tour_controller.go
package controllers

import (
	"strconv"

	"tourbooking/pkg/resp"
	"tourbooking/repository"
	"tourbooking/services"

	"github.com/gin-gonic/gin"
)

type TourController struct {
	Service *services.TourService
}

func NewTourController(s *services.TourService) *TourController {
	return &TourController{Service: s}
}

// ===== DTO =====

type TourRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	Price         int64  `json:"price" binding:"min=0"`
	Duration      string `json:"duration"`
	Location      string `json:"location"`
	Featured      bool   `json:"featured"`
	DestinationID *uint  `json:"destinationId"`
}

func (r *TourRequest) input() services.TourInput {
	return services.TourInput{
		Name: r.Name, Description: r.Description, Price: r.Price,
		Duration: r.Duration, Location: r.Location, Featured: r.Featured,
		DestinationID: r.DestinationID,
	}
}

type AddImageRequest struct {
	URL string `json:"url" binding:"required,url"`
}

func optInt64(c *gin.Context, key string) (*int64, bool) {
	v := c.Query(key)
	if v == "" {
		return nil, true
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid "+key)
		return nil, false
	}
	return &n, true
}

func parseTourFilter(c *gin.Context) (repository.TourFilter, int, bool) {
	page, limit := pageParams(c)
	f := repository.TourFilter{
		Query:    c.Query("q"),
		Location: c.Query("location"),
		Sort:     c.Query("sort"),
		Limit:    limit,
	}
	var ok bool
	if f.MinPrice, ok = optInt64(c, "minPrice"); !ok {
		return f, 0, false
	}
	if f.MaxPrice, ok = optInt64(c, "maxPrice"); !ok {
		return f, 0, false
	}
	if v := c.Query("destinationId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid destinationId")
			return f, 0, false
		}
		f.DestinationID = uint(id)
	}
	if v := c.Query("minRating"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			resp.BadRequest(c, "invalid minRating")
			return f, 0, false
		}
		f.MinRating = r
	}
	if v := c.Query("featured"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			resp.BadRequest(c, "invalid featured")
			return f, 0, false
		}
		f.Featured = &b
	}
	return f, page, true
}

// ====== Public ======

// GET /tours?q=&location=&minPrice=&maxPrice=&minRating=&featured=&sort=&page=&limit=
func (ctl *TourController) List(c *gin.Context) {
	f, page, ok := parseTourFilter(c)
	if !ok {
		return
	}
	out, err := ctl.Service.Search(f, page)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /tours/featured?limit=
func (ctl *TourController) Featured(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if limit <= 0 || limit > 50 {
		limit = 6
	}
	tours, err := ctl.Service.Featured(limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": tours})
}

// GET /tours/:id
func (ctl *TourController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	t, err := ctl.Service.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, t)
}

// GET /tours/:id/images
func (ctl *TourController) Images(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	imgs, err := ctl.Service.Images(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": imgs})
}

// ====== Admin ======

// POST /admin/tours
func (ctl *TourController) Create(c *gin.Context) {
	var req TourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := ctl.Service.Create(req.input())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, t)
}

// PUT /admin/tours/:id
func (ctl *TourController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req TourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := ctl.Service.Update(id, req.input())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, t)
}

// DELETE /admin/tours/:id
func (ctl *TourController) Delete(c *gin.Context) {
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

// POST /admin/tours/:id/images
func (ctl *TourController) AddImage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req AddImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	img, err := ctl.Service.AddImage(id, req.URL)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, img)
}

// DELETE /admin/tour-images/:id
func (ctl *TourController) DeleteImage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ctl.Service.DeleteImage(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
