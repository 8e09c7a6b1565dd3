package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"tourbooking/entity"
	"tourbooking/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ใช้ตรวจ token และ (ถ้ามี) บังคับ role
func AuthMiddleware(secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(h, "Bearer "), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			return
		}

		utils.SetIdentity(c, claims)

		if !roleAllowed(claims.Role, requiredRoles) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			return
		}
		c.Next()
	}
}

// UserLookup loads the live account behind a token.
type UserLookup interface {
	FindByID(id uint) (*entity.User, error)
}

// CurrentUser re-reads the token's account so deletes and admin changes apply before the token
// expires. The stored role is replaced with the one derived from the row.
func CurrentUser(users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := users.FindByID(utils.CurrentUserID(c))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "account no longer exists"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.Set(utils.CtxRole, u.Role())
		c.Next()
	}
}

// RequireRole gates a route on the role an earlier auth middleware stored.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !roleAllowed(utils.CurrentRole(c), roles) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			return
		}
		c.Next()
	}
}

func roleAllowed(role string, required []string) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}
