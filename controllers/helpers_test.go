package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ctxWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/x?"+query, nil)
	return c
}

func TestPageParams(t *testing.T) {
	tests := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", 1, 20},
		{"page=3&limit=50", 3, 50},
		{"limit=500", 1, 100},
		{"page=-2&limit=0", 1, 20},
		{"limit=abc", 1, 20},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			page, limit := pageParams(ctxWithQuery(tt.query))
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestLimitOffset(t *testing.T) {
	limit, offset := limitOffset(ctxWithQuery("limit=1000&offset=-5"))
	assert.Equal(t, 100, limit)
	assert.Zero(t, offset)

	limit, offset = limitOffset(ctxWithQuery("limit=10&offset=30"))
	assert.Equal(t, 10, limit)
	assert.Equal(t, 30, offset)
}
