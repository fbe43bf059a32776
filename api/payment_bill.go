package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	db "github.com/greencycle/wastehub/db/sqlc"
	"github.com/greencycle/wastehub/token"
	"github.com/greencycle/wastehub/util"
	"github.com/greencycle/wastehub/worker"
)

// listMyBills returns the authenticated resident's payment bills
// GET /v1/bills/me
func (server *Server) listMyBills(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	bills, err := server.store.ListPaymentBillsByUser(ctx, authPayload.UserID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, bills)
}

type billURIRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getBill returns a single bill. Residents only see their own; staff see all.
// GET /v1/bills/:id
func (server *Server) getBill(ctx *gin.Context) {
	var uri billURIRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	bill, err := server.store.GetPaymentBill(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)
	if bill.UserID != authPayload.UserID {
		roles, err := server.store.ListUserRoles(ctx, authPayload.UserID)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}
		if !userHasActiveRole(roles, util.AdminRole) && !userHasActiveRole(roles, util.StaffRole) {
			ctx.JSON(http.StatusForbidden, errorResponse(errors.New("bill belongs to another user")))
			return
		}
	}

	ctx.JSON(http.StatusOK, bill)
}

type payBillRequest struct {
	RedeemPoints int64 `json:"redeem_points" binding:"omitempty,gte=0"`
}

type payBillResponse struct {
	Bill           db.PaymentBill `json:"bill"`
	PaidAmount     int64          `json:"paid_amount"`
	PointsRedeemed int64          `json:"points_redeemed"`
	PointsAccrued  int64          `json:"points_accrued"`
	PointsBalance  int64          `json:"points_balance"`
}

// payBill settles a bill. Reward points can be redeemed against the total;
// the settlement accrues new points on the amount actually paid.
// POST /v1/bills/:id/pay
func (server *Server) payBill(ctx *gin.Context) {
	var uri billURIRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req payBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	bill, err := server.store.GetPaymentBill(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if bill.UserID != authPayload.UserID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("bill belongs to another user")))
		return
	}

	result, err := server.store.PayBillTx(ctx, db.PayBillTxParams{
		BillID:          uri.ID,
		RequestedPoints: req.RedeemPoints,
		Rewards:         server.rewards,
	})
	if err != nil {
		RecordBillPaid(false)
		if errors.Is(err, db.ErrBillNotPayable) {
			ctx.JSON(http.StatusConflict, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	RecordBillPaid(true)

	server.notifyUser(ctx, authPayload.UserID, worker.NotificationTypeBilling,
		"Payment received",
		fmt.Sprintf("Bill #%d settled. Paid %d, redeemed %d points, earned %d points.",
			result.Bill.ID, result.PaidAmount, result.PointsRedeemed, result.PointsAccrued),
	)

	ctx.JSON(http.StatusOK, payBillResponse{
		Bill:           result.Bill,
		PaidAmount:     result.PaidAmount,
		PointsRedeemed: result.PointsRedeemed,
		PointsAccrued:  result.PointsAccrued,
		PointsBalance:  result.Reward.Points,
	})
}
