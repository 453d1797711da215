package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/communityforge/events-api/internal/interface/http"
	"github.com/communityforge/events-api/internal/interface/middleware"
	"github.com/communityforge/events-api/pkg/helpers"
)

// ParticipantModule mirrors EventModule's auth layout.
type ParticipantModule struct {
	Handler *handlers.ParticipantHandler
	JWT     *helpers.JWTManager
}

func NewParticipantModule(h *handlers.ParticipantHandler, jwt *helpers.JWTManager) *ParticipantModule {
	return &ParticipantModule{Handler: h, JWT: jwt}
}

func (m *ParticipantModule) Name() string { return "participants" }

func (m *ParticipantModule) Register(rg *gin.RouterGroup) {
	rg.GET("/participants", m.Handler.List)
	rg.GET("/participants/:id", m.Handler.GetByID)

	admin := rg.Group("/participants")
	admin.Use(middleware.RequireAuth(m.JWT), middleware.RequireAdmin())
	{
		admin.POST("", m.Handler.Create)
		admin.PUT("/:id", m.Handler.Update)
		admin.DELETE("/:id", m.Handler.Delete)
	}
}
