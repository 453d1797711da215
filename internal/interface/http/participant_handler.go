package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/communityforge/events-api/internal/application"
	"github.com/communityforge/events-api/pkg/response"
	"github.com/communityforge/events-api/pkg/validation"
)

type ParticipantHandler struct {
	Svc    *application.ParticipantService
	Logger *logrus.Logger
}

func NewParticipantHandler(svc *application.ParticipantService, logger *logrus.Logger) *ParticipantHandler {
	return &ParticipantHandler{Svc: svc, Logger: logger}
}

type createParticipantRequest struct {
	Event  string `json:"event" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Status string `json:"status" binding:"omitempty,oneof=registered cancelled attended"`
}

type updateParticipantRequest struct {
	Event  *string `json:"event" binding:"omitempty,min=1"`
	Name   *string `json:"name" binding:"omitempty,min=1"`
	Email  *string `json:"email" binding:"omitempty,email"`
	Status *string `json:"status" binding:"omitempty,oneof=registered cancelled attended"`
}

// List handles GET /api/participants. Newest first, with the event summary
// embedded (null when the event has since been deleted).
func (h *ParticipantHandler) List(c *gin.Context) {
	participants, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.AbortWithError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, participants)
}

// GetByID handles GET /api/participants/:id
func (h *ParticipantHandler) GetByID(c *gin.Context) {
	p, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Create handles POST /api/participants (admin only). The referenced event
// must exist at this moment; nothing maintains the invariant afterwards.
func (h *ParticipantHandler) Create(c *gin.Context) {
	var req createParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AbortWithError(c, http.StatusBadRequest, errors.New(validation.Message(err)))
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), application.ParticipantInput{
		Event:  req.Event,
		Name:   req.Name,
		Email:  req.Email,
		Status: req.Status,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Update handles PUT /api/participants/:id (admin only)
func (h *ParticipantHandler) Update(c *gin.Context) {
	var req updateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AbortWithError(c, http.StatusBadRequest, errors.New(validation.Message(err)))
		return
	}

	p, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.ParticipantUpdate{
		Event:  req.Event,
		Name:   req.Name,
		Email:  req.Email,
		Status: req.Status,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /api/participants/:id (admin only)
func (h *ParticipantHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.Message(c, "Participant deleted")
}

func (h *ParticipantHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrParticipantNotFound):
		response.AbortWithError(c, http.StatusNotFound, err)
	case errors.Is(err, application.ErrInvalidEventID):
		response.AbortWithError(c, http.StatusBadRequest, err)
	default:
		response.AbortWithError(c, http.StatusInternalServerError, err)
	}
}
