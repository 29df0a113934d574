package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Rahul-Patel0907/Hack-A-Tron-Backend/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	meetingController *MeetingController
	chatController    *ChatController
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingController *MeetingController, chatController *ChatController) *Router {
	return &Router{
		cfg:               cfg,
		meetingController: meetingController,
		chatController:    chatController,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/", rt.welcome)
	e.GET("/health", rt.healthCheck)

	api := e.Group("/api")
	api.POST("/process-video", rt.meetingController.ProcessVideo)
	api.POST("/chat", rt.chatController.Chat)
}

// welcome returns a friendly root response
func (rt *Router) welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to Hack-a-tron Backend API!",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
