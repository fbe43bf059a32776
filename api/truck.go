package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"

	db "github.com/greencycle/wastehub/db/sqlc"
)

type createTruckRequest struct {
	PlateNumber string  `json:"plate_number" binding:"required,min=1,max=20"`
	Model       string  `json:"model" binding:"omitempty,max=100"`
	CapacityKg  float64 `json:"capacity_kg" binding:"required,gt=0"`
}

// createTruck registers a collection truck
// POST /v1/trucks
func (server *Server) createTruck(ctx *gin.Context) {
	var req createTruckRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	truck, err := server.store.CreateTruck(ctx, db.CreateTruckParams{
		PlateNumber: req.PlateNumber,
		Model:       req.Model,
		CapacityKg:  req.CapacityKg,
	})
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("plate number is already registered")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusCreated, truck)
}

type listTrucksRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=5,max=100"`
}

// listTrucks returns the fleet, paginated
// GET /v1/trucks
func (server *Server) listTrucks(ctx *gin.Context) {
	var req listTrucksRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	trucks, err := server.store.ListTrucks(ctx, db.ListTrucksParams{
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, trucks)
}

type truckURIRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getTruck returns a single truck
// GET /v1/trucks/:id
func (server *Server) getTruck(ctx *gin.Context) {
	var req truckURIRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	truck, err := server.store.GetTruck(ctx, req.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, truck)
}

type updateTruckRequest struct {
	Model      *string  `json:"model" binding:"omitempty,max=100"`
	CapacityKg *float64 `json:"capacity_kg" binding:"omitempty,gt=0"`
	Status     *string  `json:"status" binding:"omitempty,oneof=available on_route maintenance"`
}

// updateTruck updates a truck's model, capacity or availability
// PATCH /v1/trucks/:id
func (server *Server) updateTruck(ctx *gin.Context) {
	var uri truckURIRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req updateTruckRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	arg := db.UpdateTruckParams{ID: uri.ID}
	if req.Model != nil {
		arg.Model = pgtype.Text{String: *req.Model, Valid: true}
	}
	if req.CapacityKg != nil {
		arg.CapacityKg = pgtype.Float8{Float64: *req.CapacityKg, Valid: true}
	}
	if req.Status != nil {
		arg.Status = pgtype.Text{String: *req.Status, Valid: true}
	}

	truck, err := server.store.UpdateTruck(ctx, arg)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, truck)
}

// deleteTruck removes a truck from the fleet
// DELETE /v1/trucks/:id
func (server *Server) deleteTruck(ctx *gin.Context) {
	var req truckURIRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := server.store.DeleteTruck(ctx, req.ID); err != nil {
		if db.ErrorCode(err) == db.ForeignKeyViolation {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("truck is referenced by existing routes or requests")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "truck deleted"})
}
