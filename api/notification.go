package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	db "github.com/greencycle/wastehub/db/sqlc"
	"github.com/greencycle/wastehub/token"
)

type listNotificationsRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=5,max=100"`
}

// listNotifications returns the authenticated user's notifications
// GET /v1/notifications
func (server *Server) listNotifications(ctx *gin.Context) {
	var req listNotificationsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	notifications, err := server.store.ListNotificationsByUser(ctx, db.ListNotificationsByUserParams{
		UserID: authPayload.UserID,
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, notifications)
}

// countUnreadNotifications returns the unread badge count
// GET /v1/notifications/unread-count
func (server *Server) countUnreadNotifications(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	count, err := server.store.CountUnreadNotifications(ctx, authPayload.UserID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"unread_count": count})
}

type notificationURIRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// markNotificationRead marks one of the user's notifications as read
// PATCH /v1/notifications/:id/read
func (server *Server) markNotificationRead(ctx *gin.Context) {
	var req notificationURIRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	notification, err := server.store.MarkNotificationRead(ctx, db.MarkNotificationReadParams{
		ID:     req.ID,
		UserID: authPayload.UserID,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, notification)
}
