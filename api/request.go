package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog/log"

	"github.com/greencycle/wastehub/algorithm"
	db "github.com/greencycle/wastehub/db/sqlc"
	"github.com/greencycle/wastehub/token"
	"github.com/greencycle/wastehub/util"
	"github.com/greencycle/wastehub/worker"
)

type createRequestRequest struct {
	RequestType     string  `json:"request_type" binding:"required,requestType"`
	WasteCategory   string  `json:"waste_category" binding:"required,wasteCategory"`
	Description     string  `json:"description" binding:"omitempty,max=1000"`
	Address         string  `json:"address" binding:"required,min=1,max=300"`
	Urgency         string  `json:"urgency" binding:"required,urgency"`
	EstimatedWeight float64 `json:"estimated_weight" binding:"omitempty,gte=0"`
}

type requestResponse struct {
	db.Request
	Fee algorithm.FeeResult `json:"fee"`
}

func newRequestResponse(request db.Request) requestResponse {
	return requestResponse{
		Request: request,
		Fee: algorithm.FeeResult{
			BaseFee:            request.BaseFee,
			WeightFee:          request.WeightFee,
			UrgencyFee:         request.UrgencyFee,
			SpecialHandlingFee: request.SpecialHandlingFee,
			Total:              request.TotalFee,
		},
	}
}

// createRequest files a collection request. The fee is computed server-side
// from the published pricing table and frozen on the request row.
// POST /v1/requests
func (server *Server) createRequest(ctx *gin.Context) {
	var req createRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	fee := server.feeCalculator.Calculate(algorithm.FeeInput{
		RequestType:     req.RequestType,
		Urgency:         req.Urgency,
		EstimatedWeight: req.EstimatedWeight,
	})

	arg := db.CreateRequestParams{
		UserID:             authPayload.UserID,
		RequestType:        req.RequestType,
		WasteCategory:      req.WasteCategory,
		Description:        req.Description,
		Address:            req.Address,
		Urgency:            req.Urgency,
		BaseFee:            fee.BaseFee,
		WeightFee:          fee.WeightFee,
		UrgencyFee:         fee.UrgencyFee,
		SpecialHandlingFee: fee.SpecialHandlingFee,
		TotalFee:           fee.Total,
	}
	if req.EstimatedWeight > 0 {
		arg.EstimatedWeight = pgtype.Float8{Float64: req.EstimatedWeight, Valid: true}
	}

	request, err := server.store.CreateRequest(ctx, arg)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusCreated, newRequestResponse(request))
}

type quoteRequestFeeRequest struct {
	RequestType     string  `json:"request_type" binding:"required,requestType"`
	Urgency         string  `json:"urgency" binding:"required,urgency"`
	EstimatedWeight float64 `json:"estimated_weight" binding:"omitempty,gte=0"`
}

// quoteRequestFee prices a request without creating it
// POST /v1/requests/quote
func (server *Server) quoteRequestFee(ctx *gin.Context) {
	var req quoteRequestFeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	fee := server.feeCalculator.Calculate(algorithm.FeeInput{
		RequestType:     req.RequestType,
		Urgency:         req.Urgency,
		EstimatedWeight: req.EstimatedWeight,
	})

	ctx.JSON(http.StatusOK, fee)
}

// listMyRequests returns the authenticated resident's requests
// GET /v1/requests/me
func (server *Server) listMyRequests(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	requests, err := server.store.ListRequestsByUser(ctx, authPayload.UserID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, requests)
}

type listRequestsRequest struct {
	PageID   int32  `form:"page_id" binding:"required,min=1"`
	PageSize int32  `form:"page_size" binding:"required,min=5,max=100"`
	Status   string `form:"status" binding:"omitempty,oneof=pending approved rejected scheduled in_progress completed cancelled"`
}

// listRequests returns all requests, optionally filtered by status. Staff only.
// GET /v1/requests
func (server *Server) listRequests(ctx *gin.Context) {
	var req listRequestsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	arg := db.ListRequestsParams{
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	}
	if req.Status != "" {
		arg.Status = pgtype.Text{String: req.Status, Valid: true}
	}

	requests, err := server.store.ListRequests(ctx, arg)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, requests)
}

type requestURIRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getRequest returns a single request. Residents can only see their own.
// GET /v1/requests/:id
func (server *Server) getRequest(ctx *gin.Context) {
	var req requestURIRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	request, err := server.store.GetRequest(ctx, req.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)
	if request.UserID != authPayload.UserID {
		userRoles, err := server.store.ListUserRoles(ctx, authPayload.UserID)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}
		if !userHasActiveRole(userRoles, util.AdminRole) &&
			!userHasActiveRole(userRoles, util.StaffRole) &&
			!userHasActiveRole(userRoles, util.DriverRole) {
			ctx.JSON(http.StatusForbidden, errorResponse(errors.New("request belongs to another user")))
			return
		}
	}

	ctx.JSON(http.StatusOK, newRequestResponse(request))
}

type approveRequestResponse struct {
	Request  db.Request      `json:"request"`
	Bill     *db.PaymentBill `json:"bill,omitempty"`
	Warnings []string        `json:"warnings,omitempty"`
}

// approveRequest approves a pending request. Approval also opens the billing
// trail: a waste record and a payment bill are created in a follow-up
// transaction. Billing failure does not undo the approval, it is reported as
// a warning instead.
// POST /v1/requests/:id/approve
func (server *Server) approveRequest(ctx *gin.Context) {
	var req requestURIRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	request, err := server.store.ApproveRequest(ctx, req.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			server.requestStateConflict(ctx, req.ID, db.RequestStatusPending, "approved")
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rsp := approveRequestResponse{Request: request}

	weight := 0.0
	if request.EstimatedWeight.Valid {
		weight = request.EstimatedWeight.Float64
	}

	dueAt := time.Now().Add(server.config.BillDueAfter)
	billing, err := server.store.CreateBillingTx(ctx, db.CreateBillingTxParams{
		UserID:        request.UserID,
		RequestID:     request.ID,
		WasteCategory: request.WasteCategory,
		Weight:        weight,
		Amount:        request.TotalFee,
		DueAt:         dueAt,
	})
	if err != nil {
		log.Error().Err(err).Int64("request_id", request.ID).Msg("billing setup failed after approval")
		rsp.Warnings = append(rsp.Warnings, "request approved but billing could not be created")
	} else {
		rsp.Bill = &billing.Bill
		server.scheduleBillOverdueCheck(ctx, billing.Bill.ID, dueAt)
	}

	server.notifyUser(ctx, request.UserID, worker.NotificationTypeRequest,
		"Collection request approved",
		fmt.Sprintf("Your collection request #%d has been approved. Total fee: %d.", request.ID, request.TotalFee),
	)

	ctx.JSON(http.StatusOK, rsp)
}

type rejectRequestRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=500"`
}

// rejectRequest rejects a pending or approved request with a reason
// POST /v1/requests/:id/reject
func (server *Server) rejectRequest(ctx *gin.Context) {
	var uri requestURIRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req rejectRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	request, err := server.store.RejectRequest(ctx, db.RejectRequestParams{
		ID:              uri.ID,
		RejectionReason: req.Reason,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			server.requestStateConflict(ctx, uri.ID, "pending or approved", "rejected")
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	server.notifyUser(ctx, request.UserID, worker.NotificationTypeRequest,
		"Collection request rejected",
		fmt.Sprintf("Your collection request #%d was rejected: %s", request.ID, req.Reason),
	)

	ctx.JSON(http.StatusOK, request)
}

type scheduleRequestRequest struct {
	DriverID      int64  `json:"driver_id" binding:"required,min=1"`
	TruckID       int64  `json:"truck_id" binding:"required,min=1"`
	ScheduledDate string `json:"scheduled_date" binding:"required,datetime=2006-01-02"`
}

// scheduleRequest assigns an approved request to a driver and truck. Both
// assignments are hard preconditions: the driver must hold an active driver
// role and the truck must exist, otherwise nothing is changed.
// POST /v1/requests/:id/schedule
func (server *Server) scheduleRequest(ctx *gin.Context) {
	var uri requestURIRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req scheduleRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	// Validate the driver before touching the request
	if _, err := server.store.GetUser(ctx, req.DriverID); err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("driver not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	driverRoles, err := server.store.ListUserRoles(ctx, req.DriverID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if !userHasActiveRole(driverRoles, util.DriverRole) {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("assigned user is not a driver")))
		return
	}

	// Validate the truck
	if _, err := server.store.GetTruck(ctx, req.TruckID); err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("truck not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	scheduledDate, err := time.Parse("2006-01-02", req.ScheduledDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	request, err := server.store.ScheduleRequest(ctx, db.ScheduleRequestParams{
		ID:            uri.ID,
		DriverID:      pgtype.Int8{Int64: req.DriverID, Valid: true},
		TruckID:       pgtype.Int8{Int64: req.TruckID, Valid: true},
		ScheduledDate: pgtype.Date{Time: scheduledDate, Valid: true},
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			server.requestStateConflict(ctx, uri.ID, db.RequestStatusApproved, "scheduled")
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	server.notifyUser(ctx, request.UserID, worker.NotificationTypeRequest,
		"Collection scheduled",
		fmt.Sprintf("Your collection request #%d is scheduled for %s.", request.ID, req.ScheduledDate),
	)

	ctx.JSON(http.StatusOK, request)
}

type updateRequestStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=in_progress completed cancelled"`
}

// updateRequestStatus advances a scheduled or in-progress request
// POST /v1/requests/:id/status
func (server *Server) updateRequestStatus(ctx *gin.Context) {
	var uri requestURIRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req updateRequestStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	request, err := server.store.UpdateRequestStatus(ctx, db.UpdateRequestStatusParams{
		ID:        uri.ID,
		NewStatus: req.Status,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			server.requestStateConflict(ctx, uri.ID, "scheduled or in_progress", req.Status)
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if request.Status == db.RequestStatusCompleted {
		server.notifyUser(ctx, request.UserID, worker.NotificationTypeRequest,
			"Collection completed",
			fmt.Sprintf("Your collection request #%d has been completed.", request.ID),
		)
	}

	ctx.JSON(http.StatusOK, request)
}

type rateRequestRequest struct {
	Rating  int16  `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"omitempty,max=500"`
}

// rateRequest lets the resident rate a completed collection
// POST /v1/requests/:id/rate
func (server *Server) rateRequest(ctx *gin.Context) {
	var uri requestURIRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req rateRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	request, err := server.store.GetRequest(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if request.UserID != authPayload.UserID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("request belongs to another user")))
		return
	}

	rated, err := server.store.RateRequest(ctx, db.RateRequestParams{
		ID:            uri.ID,
		Rating:        pgtype.Int2{Int16: req.Rating, Valid: true},
		RatingComment: req.Comment,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err := fmt.Errorf("only a completed request can be rated (current status: %s)", request.Status)
			ctx.JSON(http.StatusConflict, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, rated)
}

// requestStateConflict distinguishes a missing request from an illegal state
// transition. The conditional update matched no rows; a follow-up read tells
// us which case we hit.
func (server *Server) requestStateConflict(ctx *gin.Context, id int64, expectedState, action string) {
	request, err := server.store.GetRequest(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("request not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	err = fmt.Errorf("request cannot be %s: expected %s, current status is %s", action, expectedState, request.Status)
	ctx.JSON(http.StatusConflict, errorResponse(err))
}

// notifyUser enqueues a notification, tolerating distributor outages
func (server *Server) notifyUser(ctx *gin.Context, userID int64, notificationType, title, body string) {
	if server.taskDistributor == nil {
		return
	}

	err := server.taskDistributor.DistributeTaskSendNotification(ctx, &worker.SendNotificationPayload{
		UserID: userID,
		Type:   notificationType,
		Title:  title,
		Body:   body,
	}, asynq.Queue(worker.QueueDefault))
	if err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("failed to enqueue notification")
	}
}

// scheduleBillOverdueCheck enqueues the delayed overdue check for a bill
func (server *Server) scheduleBillOverdueCheck(ctx *gin.Context, billID int64, dueAt time.Time) {
	if server.taskDistributor == nil {
		return
	}

	err := server.taskDistributor.DistributeTaskBillOverdue(ctx, &worker.BillOverduePayload{
		BillID: billID,
	}, asynq.ProcessAt(dueAt), asynq.Queue(worker.QueueDefault))
	if err != nil {
		log.Warn().Err(err).Int64("bill_id", billID).Msg("failed to enqueue overdue check")
	}
}
