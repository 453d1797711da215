package router

import (
	"github.com/communityforge/events-api/internal/application"
	"github.com/communityforge/events-api/internal/container"
	pginfra "github.com/communityforge/events-api/internal/infrastructure/postgres"
	handlers "github.com/communityforge/events-api/internal/interface/http"
	"github.com/communityforge/events-api/internal/router/modules"
)

// InitModules wires repositories, services, and handlers from the container
// singletons and registers every feature module. Called once at startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	userRepo := pginfra.NewUserRepository(pool)
	eventRepo := pginfra.NewEventRepository(pool)
	participantRepo := pginfra.NewParticipantRepository(pool)

	authSvc := application.NewAuthService(userRepo, jwt, logger)
	eventSvc := application.NewEventService(eventRepo, logger)
	participantSvc := application.NewParticipantService(participantRepo, eventRepo, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewEventModule(handlers.NewEventHandler(eventSvc, logger), jwt))
	r.Add(modules.NewParticipantModule(handlers.NewParticipantHandler(participantSvc, logger), jwt))
}
