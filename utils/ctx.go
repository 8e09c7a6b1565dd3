package utils

import "github.com/gin-gonic/gin"

// Context keys set by the auth middlewares.
const (
	CtxUserID = "userId"
	CtxRole   = "role"
	CtxClaims = "claims"
)

// SetIdentity stores the verified token on the request context.
func SetIdentity(c *gin.Context, claims *Claims) {
	c.Set(CtxUserID, claims.UserID)
	c.Set(CtxRole, claims.Role)
	c.Set(CtxClaims, claims)
}

// CurrentUserID returns 0 on routes without auth.
func CurrentUserID(c *gin.Context) uint {
	return c.GetUint(CtxUserID)
}

func CurrentRole(c *gin.Context) string {
	return c.GetString(CtxRole)
}

func CurrentClaims(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(CtxClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}
