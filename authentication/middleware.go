package authentication

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"DocSpot/utils"
)

/*
* Extract the bearer token from the Authorization header
* A bare "token" header is accepted as well
 */
func tokenFromRequest(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.GetHeader("token")
}

func authorize(c *gin.Context, role string) (*Claims, bool) {
	tokenStr := tokenFromRequest(c)
	if tokenStr == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, utils.FailedResponse(errors.New(utils.TOKEN_NOT_PROVIDED)))
		return nil, false
	}
	claims, err := ParseToken(tokenStr)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, utils.FailedResponse(errors.New(utils.INVALID_TOKEN)))
		return nil, false
	}
	if claims.Role != role {
		c.AbortWithStatusJSON(http.StatusUnauthorized, utils.FailedResponse(errors.New(utils.NOT_AUTHORIZED)))
		return nil, false
	}
	return claims, true
}

// AuthUser guards patient routes and sets userId on the context.
func AuthUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authorize(c, RoleUser)
		if !ok {
			return
		}
		c.Set("userId", claims.Sub)
	}
}

// AuthDoctor guards doctor routes and sets docId on the context.
func AuthDoctor() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authorize(c, RoleDoctor)
		if !ok {
			return
		}
		c.Set("docId", claims.Sub)
	}
}

// AuthAdmin guards admin routes.
func AuthAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authorize(c, RoleAdmin); !ok {
			return
		}
	}
}
