package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog/log"

	db "github.com/greencycle/wastehub/db/sqlc"
	"github.com/greencycle/wastehub/maps"
	"github.com/greencycle/wastehub/token"
	"github.com/greencycle/wastehub/worker"
)

type createBinRequest struct {
	WasteCategory string   `json:"waste_category" binding:"required,wasteCategory"`
	Latitude      *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude     *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	MapURL        string   `json:"map_url" binding:"omitempty,max=2048"`
	LocationName  string   `json:"location_name" binding:"omitempty,max=200"`
	Zone          string   `json:"zone" binding:"omitempty,max=100"`
}

// createBin registers a waste bin for the authenticated resident. The
// position comes either from explicit coordinates or from a shared map link.
// POST /v1/bins
func (server *Server) createBin(ctx *gin.Context) {
	var req createBinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var latitude, longitude float64
	switch {
	case req.Latitude != nil && req.Longitude != nil:
		latitude = *req.Latitude
		longitude = *req.Longitude
	case req.MapURL != "":
		location, err := maps.ExtractCoordinates(req.MapURL)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		latitude = location.Latitude
		longitude = location.Longitude
	default:
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("either coordinates or a map url is required")))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	bin, err := server.store.CreateBin(ctx, db.CreateBinParams{
		UserID:        authPayload.UserID,
		WasteCategory: req.WasteCategory,
		Latitude:      latitude,
		Longitude:     longitude,
		LocationName:  req.LocationName,
		Zone:          req.Zone,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusCreated, bin)
}

// listMyBins returns the authenticated resident's bins
// GET /v1/bins/me
func (server *Server) listMyBins(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	bins, err := server.store.ListBinsByUser(ctx, authPayload.UserID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, bins)
}

type getBinRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getBin returns a single bin
// GET /v1/bins/:id
func (server *Server) getBin(ctx *gin.Context) {
	var req getBinRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	bin, err := server.store.GetBin(ctx, req.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, bin)
}

type updateBinRequest struct {
	WasteCategory *string  `json:"waste_category" binding:"omitempty,wasteCategory"`
	Latitude      *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude     *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	LocationName  *string  `json:"location_name" binding:"omitempty,max=200"`
	Zone          *string  `json:"zone" binding:"omitempty,max=100"`
	FillLevel     *int32   `json:"fill_level" binding:"omitempty,min=0,max=100"`
}

// updateBin updates a bin owned by the authenticated resident. A fill level
// at or above the collection threshold marks the bin ready for pickup;
// anything below drops it back to pending.
// PATCH /v1/bins/:id
func (server *Server) updateBin(ctx *gin.Context) {
	var uri getBinRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req updateBinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	bin, err := server.store.GetBin(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if bin.UserID != authPayload.UserID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("bin belongs to another user")))
		return
	}

	arg := db.UpdateBinParams{
		ID:      bin.ID,
		Version: bin.Version,
	}

	if req.WasteCategory != nil {
		arg.WasteCategory = pgtype.Text{String: *req.WasteCategory, Valid: true}
	}
	if req.Latitude != nil {
		arg.Latitude = pgtype.Float8{Float64: *req.Latitude, Valid: true}
	}
	if req.Longitude != nil {
		arg.Longitude = pgtype.Float8{Float64: *req.Longitude, Valid: true}
	}
	if req.LocationName != nil {
		arg.LocationName = pgtype.Text{String: *req.LocationName, Valid: true}
	}
	if req.Zone != nil {
		arg.Zone = pgtype.Text{String: *req.Zone, Valid: true}
	}
	if req.FillLevel != nil {
		arg.FillLevel = pgtype.Int4{Int32: *req.FillLevel, Valid: true}
		status := db.BinStatusPending
		if *req.FillLevel >= server.config.CollectionFillThreshold {
			status = db.BinStatusReady
		}
		arg.Status = pgtype.Text{String: status, Valid: true}
	}

	updated, err := server.store.UpdateBin(ctx, arg)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			// Version moved under us
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("bin was modified concurrently, retry")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

type listBinsRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=5,max=100"`
}

// listBins returns all bins, paginated. Staff only.
// GET /v1/bins
func (server *Server) listBins(ctx *gin.Context) {
	var req listBinsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	bins, err := server.store.ListBins(ctx, db.ListBinsParams{
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, bins)
}

// deleteBin removes a bin. Staff only.
// DELETE /v1/bins/:id
func (server *Server) deleteBin(ctx *gin.Context) {
	var req getBinRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := server.store.DeleteBin(ctx, req.ID); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "bin deleted"})
}

type collectBinRequest struct {
	Weight float64 `json:"weight" binding:"omitempty,gte=0"`
}

type collectBinResponse struct {
	Bin         db.Bin          `json:"bin"`
	WasteRecord *db.WasteRecord `json:"waste_record,omitempty"`
}

// collectBin records a standalone collection scan outside a route: the bin is
// emptied and stamped, and a waste record is written when a weight was taken.
// POST /v1/bins/:id/collect
func (server *Server) collectBin(ctx *gin.Context) {
	var uri getBinRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req collectBinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	bin, err := server.store.MarkBinCollected(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rsp := collectBinResponse{Bin: bin}

	if req.Weight > 0 {
		record, err := server.store.CreateWasteRecord(ctx, db.CreateWasteRecordParams{
			UserID:        bin.UserID,
			BinID:         pgtype.Int8{Int64: bin.ID, Valid: true},
			WasteCategory: bin.WasteCategory,
			Weight:        req.Weight,
		})
		if err != nil {
			// the scan itself succeeded, only the record is missing
			log.Warn().Err(err).Int64("bin_id", bin.ID).Msg("failed to write waste record for bin scan")
		} else {
			rsp.WasteRecord = &record
		}
	}

	server.notifyUser(ctx, bin.UserID, worker.NotificationTypeRoute,
		"Bin collected", "Your bin has been emptied.")

	ctx.JSON(http.StatusOK, rsp)
}

// cancelBin retires a bin owned by the authenticated resident. Cancelled bins
// never show up as collection candidates.
// POST /v1/bins/:id/cancel
func (server *Server) cancelBin(ctx *gin.Context) {
	var uri getBinRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	bin, err := server.store.GetBin(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if bin.UserID != authPayload.UserID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("bin belongs to another user")))
		return
	}

	updated, err := server.store.UpdateBin(ctx, db.UpdateBinParams{
		ID:      bin.ID,
		Version: bin.Version,
		Status:  pgtype.Text{String: db.BinStatusCanceled, Valid: true},
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("bin was modified concurrently, retry")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}
