package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/deskhive/interview-booking-backend/internal/auth"
	"github.com/deskhive/interview-booking-backend/internal/pkg/request"
	"github.com/deskhive/interview-booking-backend/internal/pkg/response"
	"github.com/deskhive/interview-booking-backend/internal/provider"
	"github.com/deskhive/interview-booking-backend/internal/room"
	"github.com/deskhive/interview-booking-backend/internal/schedule"
	"github.com/deskhive/interview-booking-backend/internal/space"
	"github.com/deskhive/interview-booking-backend/internal/user"
)

type Handler struct {
	service      room.Service
	spaceService space.Service
	provService  provider.Service
	userService  user.Service
}

func NewHandler(
	service room.Service,
	spaceService space.Service,
	provService provider.Service,
	userService user.Service,
) *Handler {
	return &Handler{
		service:      service,
		spaceService: spaceService,
		provService:  provService,
		userService:  userService,
	}
}

// canManageProvider reports whether the user manages the given provider
// or is a system admin.
func (h *Handler) canManageProvider(c *gin.Context, providerID string) bool {
	userID := auth.GetUserID(c)
	if u, err := h.userService.GetByID(c.Request.Context(), userID); err == nil && u.IsSystemAdmin {
		return true
	}
	ok, err := h.provService.IsManagerOrAbove(c.Request.Context(), providerID, userID)
	return err == nil && ok
}

// isScheduleError reports whether err is a schedule validation failure.
func isScheduleError(err error) bool {
	return errors.Is(err, schedule.ErrNoWorkingDays) ||
		errors.Is(err, schedule.ErrInvalidWindow) ||
		errors.Is(err, schedule.ErrWindowTooShort) ||
		errors.Is(err, schedule.ErrInvalidTime) ||
		errors.Is(err, schedule.ErrInvalidDate) ||
		errors.Is(err, schedule.ErrInvalidDuration)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	sp, err := h.spaceService.GetByID(c.Request.Context(), req.SpaceID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "space not found"})
		return
	}

	if !h.canManageProvider(c, sp.ProviderID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	rm, err := h.service.Create(c.Request.Context(), room.CreateRequest{
		SpaceID:         req.SpaceID,
		Name:            req.Name,
		Capacity:        req.Capacity,
		HourlyRateCents: req.HourlyRateCents,
		Amenities:       req.Amenities,
		Schedule:        req.Schedule.toDomain(),
	})
	if err != nil {
		switch {
		case err == room.ErrSpaceNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case err == room.ErrNameRequired, err == room.ErrInvalidCapacity, err == room.ErrInvalidRate,
			isScheduleError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create room"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewRoomResponse(rm))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	rm, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == room.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get room"})
		return
	}

	c.JSON(http.StatusOK, NewRoomResponse(rm))
}

func (h *Handler) List(c *gin.Context) {
	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	params.Normalize()

	filter := room.Filter{
		SpaceID:    c.Query("space_id"),
		ProviderID: c.Query("provider_id"),
		Keyword:    c.Query("keyword"),
		Page:       params.Page,
		PageSize:   params.PageSize,
	}

	rooms, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rooms"})
		return
	}

	items := make([]RoomResponse, len(rooms))
	for i, rm := range rooms {
		items[i] = NewRoomResponse(rm)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, params.Page, params.PageSize, total))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	rm, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == room.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get room"})
		return
	}

	if !h.canManageProvider(c, rm.ProviderID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, room.UpdateRequest{
		Name:            req.Name,
		Capacity:        req.Capacity,
		HourlyRateCents: req.HourlyRateCents,
		Amenities:       req.Amenities,
		Schedule:        req.Schedule.toDomain(),
		IsActive:        req.IsActive,
	})
	if err != nil {
		switch {
		case err == room.ErrNameRequired, err == room.ErrInvalidCapacity, err == room.ErrInvalidRate,
			isScheduleError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update room"})
		}
		return
	}

	c.JSON(http.StatusOK, NewRoomResponse(updated))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	rm, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == room.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get room"})
		return
	}

	if !h.canManageProvider(c, rm.ProviderID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete room"})
		return
	}

	c.Status(http.StatusNoContent)
}
