package controllers

import (
	"strconv"

	"tourbooking/pkg/resp"

	"github.com/gin-gonic/gin"
)

// ===== utils =====

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

const (
	defaultLimit = 20
	maxLimit     = 100
)

// clampLimit: invalid or missing -> 20, too large -> 100
func clampLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	switch {
	case err != nil || limit <= 0:
		return defaultLimit
	case limit > maxLimit:
		return maxLimit
	}
	return limit
}

// pageParams อ่าน page/limit (default 1/20, limit สูงสุด 100)
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	return page, clampLimit(c.Query("limit"))
}

func limitOffset(c *gin.Context) (int, int) {
	limit := clampLimit(c.Query("limit"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
