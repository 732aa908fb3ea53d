package handler

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-scheduler/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-scheduler/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	auth           echo.MiddlewareFunc
	authHandler    *Auth
	userHandler    *User
	companyHandler *Company
	meetingHandler *Meeting
	minutesHandler *Minutes
	zoomHandler    *Zoom
	static         fs.FS
}

// Handlers groups the resource handlers passed to NewRouter
type Handlers struct {
	Auth    *Auth
	User    *User
	Company *Company
	Meeting *Meeting
	Minutes *Minutes
	Zoom    *Zoom
}

// NewRouter creates a new router with all handlers. verifier backs the one
// authentication middleware shared by every protected route; static holds
// the frontend and may be nil.
func NewRouter(cfg *config.Config, verifier middleware.TokenVerifier, h Handlers, static fs.FS) *Router {
	return &Router{
		cfg:            cfg,
		auth:           middleware.EchoAuth(verifier),
		authHandler:    h.Auth,
		userHandler:    h.User,
		companyHandler: h.Company,
		meetingHandler: h.Meeting,
		minutesHandler: h.Minutes,
		zoomHandler:    h.Zoom,
		static:         static,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	rt.setupAuthRoutes(api)
	rt.setupUserRoutes(api)
	rt.setupCompanyRoutes(api)
	rt.setupMeetingRoutes(api)
	rt.setupMinutesRoutes(api)
	rt.setupZoomRoutes(api)

	if rt.static != nil {
		e.Use(echoMiddleware.StaticWithConfig(echoMiddleware.StaticConfig{
			Filesystem: http.FS(rt.static),
			Index:      "index.html",
			Skipper: func(c echo.Context) bool {
				return strings.HasPrefix(c.Request().URL.Path, "/api/")
			},
		}))
	}
}

func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")

	authGroup.POST("/register", rt.authHandler.Register)
	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.POST("/logout", rt.authHandler.Logout, rt.auth)
	authGroup.GET("/me", rt.authHandler.Me, rt.auth)
}

func (rt *Router) setupUserRoutes(g *echo.Group) {
	users := g.Group("/users", rt.auth)

	users.GET("", rt.userHandler.List)
	users.POST("", rt.userHandler.Create, middleware.RequireRole("Only Admin can add users", entities.RoleAdmin))
}

func (rt *Router) setupCompanyRoutes(g *echo.Group) {
	companies := g.Group("/companies", rt.auth)

	companies.GET("", rt.companyHandler.List)
	companies.POST("", rt.companyHandler.Create)
	companies.GET("/:id", rt.companyHandler.Get)
	companies.PUT("/:id", rt.companyHandler.Update)
}

func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings", rt.auth)

	meetings.POST("", rt.meetingHandler.Create)
	meetings.GET("", rt.meetingHandler.List)
	meetings.GET("/grouped", rt.meetingHandler.Grouped)

	g.GET("/dashboard/:userId", rt.meetingHandler.Dashboard, rt.auth)
	g.GET("/notifications/:userId", rt.meetingHandler.Notifications, rt.auth)
}

func (rt *Router) setupMinutesRoutes(g *echo.Group) {
	minutes := g.Group("/meeting-minutes", rt.auth)

	minutes.POST("", rt.minutesHandler.Create)
	minutes.GET("/all", rt.minutesHandler.List)
	minutes.GET("/:id", rt.minutesHandler.Get)
}

func (rt *Router) setupZoomRoutes(g *echo.Group) {
	zoom := g.Group("/zoom", rt.auth)

	zoom.POST("/meeting", rt.zoomHandler.CreateMeeting)
	zoom.GET("/meetings", rt.zoomHandler.ListMeetings)
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	resp := common.HealthResponse{Status: "ok"}
	if rt.cfg != nil {
		resp.Environment = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, resp)
}
