package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	db "github.com/greencycle/wastehub/db/sqlc"
	"github.com/greencycle/wastehub/token"
)

type rewardResponse struct {
	Points    int64      `json:"points"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Expired   bool       `json:"expired"`
}

// getMyReward returns the authenticated resident's reward balance. A resident
// with no accruals yet has a zero balance, not a missing one.
// GET /v1/rewards/me
func (server *Server) getMyReward(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	reward, err := server.store.GetReward(ctx, authPayload.UserID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusOK, rewardResponse{Points: 0})
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rsp := rewardResponse{
		Points:    reward.Points,
		ExpiresAt: &reward.ExpiresAt,
		Expired:   time.Now().After(reward.ExpiresAt),
	}
	if rsp.Expired {
		// An expired balance spends as zero
		rsp.Points = 0
	}

	ctx.JSON(http.StatusOK, rsp)
}
