package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/greencycle/wastehub/algorithm"
	"github.com/greencycle/wastehub/autoroute"
	db "github.com/greencycle/wastehub/db/sqlc"
	"github.com/greencycle/wastehub/token"
	"github.com/greencycle/wastehub/util"
	"github.com/greencycle/wastehub/worker"
)

// MessageResponse is the generic message envelope
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

// Server serves HTTP requests for the waste collection service.
type Server struct {
	config          util.Config
	store           db.Store
	tokenMaker      token.Maker
	taskDistributor worker.TaskDistributor
	routeGenerator  *autoroute.Generator
	feeCalculator   *algorithm.FeeCalculator
	rewards         *algorithm.RewardCalculator
	router          *gin.Engine
}

// NewServer creates a new HTTP server and sets up routing.
func NewServer(config util.Config, store db.Store, taskDistributor worker.TaskDistributor) (*Server, error) {
	tokenMaker, err := token.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	server := &Server{
		config:          config,
		store:           store,
		tokenMaker:      tokenMaker,
		taskDistributor: taskDistributor,
		routeGenerator:  autoroute.NewGenerator(config, store),
		feeCalculator:   algorithm.NewDefaultFeeCalculator(),
		rewards:         algorithm.NewDefaultRewardCalculator(),
	}

	server.setupRouter()
	return server, nil
}

func (server *Server) setupRouter() {
	if server.config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	registerCustomValidators()

	router.Use(CORSMiddleware(server.config.AllowedOrigins))
	router.Use(SecurityHeadersMiddleware())
	router.Use(RequestTracingMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(PrometheusMiddleware())

	rateLimiter := NewRateLimiter(DefaultRateLimiterConfig())
	router.Use(rateLimiter.Middleware())
	router.Use(TimeoutMiddleware(30 * time.Second))

	router.GET("/metrics", MetricsHandler())
	router.GET("/health", server.healthCheck)
	router.GET("/ready", server.readinessCheck)

	v1 := router.Group("/v1")

	// Registration and login: no auth, tighter rate limit
	authPublicGroup := v1.Group("/auth")
	authPublicGroup.Use(rateLimiter.SensitiveAPIMiddleware(10))
	authPublicGroup.POST("/register", server.registerUser)
	authPublicGroup.POST("/login", server.loginUser)
	authPublicGroup.POST("/refresh", server.renewAccessToken)

	authGroup := v1.Group("")
	authGroup.Use(authMiddleware(server.tokenMaker))

	// Profile
	authGroup.GET("/users/me", server.getCurrentUser)
	authGroup.PATCH("/users/me", server.updateCurrentUser)

	// Resident bins
	authGroup.POST("/bins", server.createBin)
	authGroup.GET("/bins/me", server.listMyBins)
	authGroup.GET("/bins/:id", server.getBin)
	authGroup.PATCH("/bins/:id", server.updateBin)
	authGroup.POST("/bins/:id/cancel", server.cancelBin)

	// Collection requests (resident side)
	authGroup.POST("/requests", server.createRequest)
	authGroup.POST("/requests/quote", server.quoteRequestFee)
	authGroup.GET("/requests/me", server.listMyRequests)
	authGroup.GET("/requests/:id", server.getRequest)
	authGroup.POST("/requests/:id/rate", server.rateRequest)

	// Billing and rewards (resident side)
	authGroup.GET("/bills/me", server.listMyBills)
	authGroup.GET("/bills/:id", server.getBill)
	authGroup.POST("/bills/:id/pay", server.payBill)
	authGroup.GET("/rewards/me", server.getMyReward)

	// Notifications
	authGroup.GET("/notifications", server.listNotifications)
	authGroup.GET("/notifications/unread-count", server.countUnreadNotifications)
	authGroup.PATCH("/notifications/:id/read", server.markNotificationRead)

	// Staff console: request lifecycle, fleet, bins overview
	staffGroup := authGroup.Group("")
	staffGroup.Use(server.RoleMiddleware(util.AdminRole, util.StaffRole))
	{
		staffGroup.GET("/bins", server.listBins)
		staffGroup.POST("/bins/:id/collect", server.collectBin)
		staffGroup.DELETE("/bins/:id", server.deleteBin)

		staffGroup.GET("/requests", server.listRequests)
		staffGroup.POST("/requests/:id/approve", server.approveRequest)
		staffGroup.POST("/requests/:id/reject", server.rejectRequest)
		staffGroup.POST("/requests/:id/schedule", server.scheduleRequest)

		staffGroup.POST("/trucks", server.createTruck)
		staffGroup.GET("/trucks", server.listTrucks)
		staffGroup.GET("/trucks/:id", server.getTruck)
		staffGroup.PATCH("/trucks/:id", server.updateTruck)
		staffGroup.DELETE("/trucks/:id", server.deleteTruck)

		staffGroup.POST("/routes/generate", server.generateRoutes)
		staffGroup.POST("/routes/:id/assign", server.assignRoute)
		staffGroup.DELETE("/routes/:id", server.deleteRoute)
	}

	// Routes: drivers and staff both work with them
	routeGroup := authGroup.Group("")
	routeGroup.Use(server.RoleMiddleware(util.AdminRole, util.StaffRole, util.DriverRole))
	{
		routeGroup.GET("/routes", server.listRoutes)
		routeGroup.GET("/routes/:id", server.getRoute)
		routeGroup.PATCH("/routes/:id/status", server.updateRouteStatus)
		routeGroup.POST("/routes/stops/:id/collect", server.collectStop)

		routeGroup.POST("/requests/:id/status", server.updateRequestStatus)
	}

	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

// GetRouter returns the gin router for creating http.Server
func (server *Server) GetRouter() *gin.Engine {
	return server.router
}

// healthCheck is the basic liveness probe
// GET /health
func (server *Server) healthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "wastehub-api",
	})
}

// readinessCheck verifies the service dependencies
// GET /ready
func (server *Server) readinessCheck(ctx *gin.Context) {
	if err := server.store.Ping(ctx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "database connection failed",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"service":  "wastehub-api",
		"database": "connected",
	})
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// errorResponse creates an error response.
// For 4xx client errors: returns the actual error message
// For 5xx server errors: use internalError() instead to avoid leaking details
func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// internalError logs the actual error and returns a safe generic message.
// Use this for 5xx errors to prevent leaking internal implementation details.
func internalError(ctx *gin.Context, err error) gin.H {
	// Attach to gin context so RequestLoggingMiddleware can include it
	_ = ctx.Error(err)

	evt := log.Error().
		Err(err).
		Str("request_id", GetRequestID(ctx)).
		Str("path", ctx.Request.URL.Path).
		Str("method", ctx.Request.Method)

	// If it's a Postgres error, log structured fields for faster debugging
	if pgErr, ok := err.(*pgconn.PgError); ok {
		evt = evt.
			Str("sqlstate", pgErr.Code).
			Str("pg_message", pgErr.Message).
			Str("pg_detail", pgErr.Detail).
			Str("pg_constraint", pgErr.ConstraintName)
	}

	evt.Msg("internal error")

	return gin.H{"error": "internal server error"}
}
