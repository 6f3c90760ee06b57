package cookie

import (
	"github.com/gin-gonic/gin"
)

// Issued by the identity service that fronts this API; we only ever read it.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
