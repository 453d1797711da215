package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/communityforge/events-api/internal/application"
	"github.com/communityforge/events-api/pkg/response"
	"github.com/communityforge/events-api/pkg/validation"
)

type EventHandler struct {
	Svc    *application.EventService
	Logger *logrus.Logger
}

func NewEventHandler(svc *application.EventService, logger *logrus.Logger) *EventHandler {
	return &EventHandler{Svc: svc, Logger: logger}
}

type createEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	Organizer   string    `json:"organizer" binding:"required"`
	Type        string    `json:"type" binding:"omitempty,oneof=volunteering fundraising awareness workshop other"`
	Capacity    int       `json:"capacity" binding:"omitempty,gte=1"`
	Status      string    `json:"status" binding:"omitempty,oneof=draft published cancelled completed"`
	Tags        []string  `json:"tags"`
}

type updateEventRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location" binding:"omitempty,min=1"`
	Organizer   *string    `json:"organizer" binding:"omitempty,min=1"`
	Type        *string    `json:"type" binding:"omitempty,oneof=volunteering fundraising awareness workshop other"`
	Capacity    *int       `json:"capacity" binding:"omitempty,gte=1"`
	Status      *string    `json:"status" binding:"omitempty,oneof=draft published cancelled completed"`
	Tags        *[]string  `json:"tags"`
}

// List handles GET /api/events. Full scan ordered by date, no pagination.
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.AbortWithError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetByID handles GET /api/events/:id
func (h *EventHandler) GetByID(c *gin.Context) {
	e, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// Create handles POST /api/events (admin only)
func (h *EventHandler) Create(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AbortWithError(c, http.StatusBadRequest, errors.New(validation.Message(err)))
		return
	}

	e, err := h.Svc.Create(c.Request.Context(), application.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Organizer:   req.Organizer,
		Type:        req.Type,
		Capacity:    req.Capacity,
		Status:      req.Status,
		Tags:        req.Tags,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// Update handles PUT /api/events/:id (admin only). Partial merge-update.
func (h *EventHandler) Update(c *gin.Context) {
	var req updateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AbortWithError(c, http.StatusBadRequest, errors.New(validation.Message(err)))
		return
	}

	e, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.EventUpdate{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Organizer:   req.Organizer,
		Type:        req.Type,
		Capacity:    req.Capacity,
		Status:      req.Status,
		Tags:        req.Tags,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// Delete handles DELETE /api/events/:id (admin only). Participants that
// reference the event are left untouched.
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.Message(c, "Event deleted")
}

func (h *EventHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, application.ErrEventNotFound) {
		response.AbortWithError(c, http.StatusNotFound, err)
		return
	}
	response.AbortWithError(c, http.StatusInternalServerError, err)
}
