package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	db "github.com/greencycle/wastehub/db/sqlc"
	"github.com/greencycle/wastehub/token"
)

const userRolesKey = "user_roles"

// RoleMiddleware checks that the authenticated user holds at least one of the
// allowed roles. Only active role grants count. The full role list is cached
// on the context for handlers that need it.
func (server *Server) RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

		userRoles, err := server.store.ListUserRoles(ctx, authPayload.UserID)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}

		ctx.Set(userRolesKey, userRoles)

		hasRole := false
		for _, userRole := range userRoles {
			if userRole.Status != "active" {
				continue
			}
			for _, allowed := range allowedRoles {
				if userRole.Role == allowed {
					hasRole = true
					break
				}
			}
			if hasRole {
				break
			}
		}

		if !hasRole {
			ctx.AbortWithStatusJSON(http.StatusForbidden, errorResponse(
				errors.New("you don't have permission to access this resource"),
			))
			return
		}

		ctx.Next()
	}
}

// userHasActiveRole reports whether a role grant list contains an active
// grant for the given role.
func userHasActiveRole(roles []db.UserRole, role string) bool {
	for _, r := range roles {
		if r.Role == role && r.Status == "active" {
			return true
		}
	}
	return false
}
