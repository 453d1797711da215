package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/communityforge/events-api/internal/interface/http"
	"github.com/communityforge/events-api/internal/interface/middleware"
	"github.com/communityforge/events-api/pkg/helpers"
)

// EventModule wires event routes.
// Public: GET /api/events, GET /api/events/:id
// Admin:  POST /api/events, PUT/DELETE /api/events/:id
type EventModule struct {
	Handler *handlers.EventHandler
	JWT     *helpers.JWTManager
}

func NewEventModule(h *handlers.EventHandler, jwt *helpers.JWTManager) *EventModule {
	return &EventModule{Handler: h, JWT: jwt}
}

func (m *EventModule) Name() string { return "events" }

func (m *EventModule) Register(rg *gin.RouterGroup) {
	rg.GET("/events", m.Handler.List)
	rg.GET("/events/:id", m.Handler.GetByID)

	admin := rg.Group("/events")
	admin.Use(middleware.RequireAuth(m.JWT), middleware.RequireAdmin())
	{
		admin.POST("", m.Handler.Create)
		admin.PUT("/:id", m.Handler.Update)
		admin.DELETE("/:id", m.Handler.Delete)
	}
}
