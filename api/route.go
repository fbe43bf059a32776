package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/greencycle/wastehub/autoroute"
	db "github.com/greencycle/wastehub/db/sqlc"
	"github.com/greencycle/wastehub/token"
	"github.com/greencycle/wastehub/util"
)

type generateRoutesRequest struct {
	Zone          string `json:"zone" binding:"omitempty,max=100"`
	ScheduledDate string `json:"scheduled_date" binding:"omitempty,datetime=2006-01-02"`
	MaxRoutes     int    `json:"max_routes" binding:"omitempty,min=1,max=100"`
}

// generateRoutes runs route generation on demand. A run that finds no
// eligible bins succeeds with an empty route list.
// POST /v1/routes/generate
func (server *Server) generateRoutes(ctx *gin.Context) {
	var req generateRoutesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	arg := autoroute.GenerateParams{
		Zone:      req.Zone,
		MaxRoutes: req.MaxRoutes,
	}
	if req.ScheduledDate != "" {
		scheduledDate, err := time.Parse("2006-01-02", req.ScheduledDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		arg.ScheduledDate = scheduledDate
	}

	result, err := server.routeGenerator.Generate(ctx, arg)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	RecordRoutesGenerated(result.RouteCount)
	ctx.JSON(http.StatusOK, result)
}

type listRoutesRequest struct {
	PageID   int32  `form:"page_id" binding:"required,min=1"`
	PageSize int32  `form:"page_size" binding:"required,min=5,max=100"`
	Status   string `form:"status" binding:"omitempty,oneof=planned in_progress completed cancelled"`
	Mine     bool   `form:"mine"`
}

// listRoutes returns routes, optionally filtered by status or restricted to
// the authenticated driver's assignments.
// GET /v1/routes
func (server *Server) listRoutes(ctx *gin.Context) {
	var req listRoutesRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if req.Mine {
		authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)
		routes, err := server.store.ListRoutesByDriver(ctx, pgtype.Int8{Int64: authPayload.UserID, Valid: true})
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}
		ctx.JSON(http.StatusOK, routes)
		return
	}

	arg := db.ListRoutesParams{
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	}
	if req.Status != "" {
		arg.Status = pgtype.Text{String: req.Status, Valid: true}
	}

	routes, err := server.store.ListRoutes(ctx, arg)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, routes)
}

type routeURIRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type routeDetailResponse struct {
	Route db.Route       `json:"route"`
	Stops []db.RouteStop `json:"stops"`
}

// getRoute returns a route with its ordered stops
// GET /v1/routes/:id
func (server *Server) getRoute(ctx *gin.Context) {
	var req routeURIRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	route, err := server.store.GetRoute(ctx, req.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	stops, err := server.store.ListRouteStops(ctx, route.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, routeDetailResponse{Route: route, Stops: stops})
}

type assignRouteRequest struct {
	DriverID int64 `json:"driver_id" binding:"required,min=1"`
	TruckID  int64 `json:"truck_id" binding:"required,min=1"`
}

// assignRoute assigns a driver and truck to a planned route. The driver must
// hold an active driver role and the truck must exist.
// POST /v1/routes/:id/assign
func (server *Server) assignRoute(ctx *gin.Context) {
	var uri routeURIRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req assignRouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
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

	if _, err := server.store.GetTruck(ctx, req.TruckID); err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("truck not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	route, err := server.store.UpdateRoute(ctx, db.UpdateRouteParams{
		ID:       uri.ID,
		DriverID: pgtype.Int8{Int64: req.DriverID, Valid: true},
		TruckID:  pgtype.Int8{Int64: req.TruckID, Valid: true},
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("route not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, route)
}

type updateRouteStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=in_progress cancelled"`
}

// updateRouteStatus moves a route between statuses manually. Completion
// happens through stop collection, not here.
// PATCH /v1/routes/:id/status
func (server *Server) updateRouteStatus(ctx *gin.Context) {
	var uri routeURIRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req updateRouteStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	route, err := server.store.GetRoute(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if route.Status == db.RouteStatusCompleted || route.Status == db.RouteStatusCancelled {
		err := fmt.Errorf("route is already %s", route.Status)
		ctx.JSON(http.StatusConflict, errorResponse(err))
		return
	}

	updated, err := server.store.UpdateRoute(ctx, db.UpdateRouteParams{
		ID:     uri.ID,
		Status: pgtype.Text{String: req.Status, Valid: true},
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

type collectStopRequest struct {
	Weight float64 `json:"weight" binding:"omitempty,gte=0"`
	Notes  string  `json:"notes" binding:"omitempty,max=500"`
}

type collectStopResponse struct {
	Stop           db.RouteStop `json:"stop"`
	Bin            db.Bin       `json:"bin"`
	Route          db.Route     `json:"route"`
	RouteCompleted bool         `json:"route_completed"`
}

// collectStop marks a route stop as collected: the bin is emptied and the
// route advances, completing when the last stop is done.
// POST /v1/routes/stops/:id/collect
func (server *Server) collectStop(ctx *gin.Context) {
	var uri routeURIRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req collectStopRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result, err := server.store.CollectStopTx(ctx, db.CollectStopTxParams{
		StopID: uri.ID,
		Weight: req.Weight,
		Notes:  req.Notes,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("stop not found or already collected")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	RecordStopCollected()

	ctx.JSON(http.StatusOK, collectStopResponse{
		Stop:           result.Stop,
		Bin:            result.Bin,
		Route:          result.Route,
		RouteCompleted: result.RouteCompleted,
	})
}

// deleteRoute removes a planned route together with its stops. Routes that
// started or finished stay on record.
// DELETE /v1/routes/:id
func (server *Server) deleteRoute(ctx *gin.Context) {
	var req routeURIRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	route, err := server.store.GetRoute(ctx, req.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if route.Status != db.RouteStatusPlanned {
		err := fmt.Errorf("only a planned route can be deleted (current status: %s)", route.Status)
		ctx.JSON(http.StatusConflict, errorResponse(err))
		return
	}

	if err := server.store.DeleteRouteStops(ctx, route.ID); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if err := server.store.DeleteRoute(ctx, route.ID); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "route deleted"})
}
