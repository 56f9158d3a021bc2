package middleware

import (
	"net/http"
	"strings"

	"qnaboard/internal/dto"
	"qnaboard/internal/model"
	"qnaboard/internal/service"

	"github.com/gin-gonic/gin"
)

const loginUserKey = "loginUser"

// Auth resolves the Authorization bearer token to the acting user and aborts
// with 401 when it cannot.
func Auth(authSvc service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing or malformed Authorization header"})
			return
		}
		user, err := authSvc.Authenticate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}
		ctx.Set(loginUserKey, *user)
		ctx.Next()
	}
}

// LoginUser returns the authenticated user placed in the context by Auth.
func LoginUser(ctx *gin.Context) (model.User, bool) {
	value, exists := ctx.Get(loginUserKey)
	if !exists {
		return model.User{}, false
	}
	user, ok := value.(model.User)
	return user, ok
}
