package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/deskhive/interview-booking-backend/internal/auth"
	"github.com/deskhive/interview-booking-backend/internal/pkg/request"
	"github.com/deskhive/interview-booking-backend/internal/pkg/response"
	"github.com/deskhive/interview-booking-backend/internal/provider"
	"github.com/deskhive/interview-booking-backend/internal/space"
	"github.com/deskhive/interview-booking-backend/internal/user"
)

type Handler struct {
	service     space.Service
	provService provider.Service
	userService user.Service
}

func NewHandler(service space.Service, provService provider.Service, userService user.Service) *Handler {
	return &Handler{
		service:     service,
		provService: provService,
		userService: userService,
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

func (h *Handler) Create(c *gin.Context) {
	var req CreateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if !h.canManageProvider(c, req.ProviderID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	sp, err := h.service.Create(c.Request.Context(), space.CreateRequest{
		ProviderID:  req.ProviderID,
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		Longitude:   req.Longitude,
		Latitude:    req.Latitude,
	})
	if err != nil {
		switch err {
		case space.ErrProviderNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case space.ErrNameRequired, space.ErrProviderIDRequired, space.ErrInvalidGeo:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create space"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewSpaceResponse(sp))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	sp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == space.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "space not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get space"})
		return
	}

	c.JSON(http.StatusOK, NewSpaceResponse(sp))
}

func (h *Handler) List(c *gin.Context) {
	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	params.Normalize()

	filter := space.Filter{
		ProviderID: c.Query("provider_id"),
		Keyword:    c.Query("keyword"),
		Page:       params.Page,
		PageSize:   params.PageSize,
	}

	spaces, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list spaces"})
		return
	}

	items := make([]SpaceResponse, len(spaces))
	for i, sp := range spaces {
		items[i] = NewSpaceResponse(sp)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, params.Page, params.PageSize, total))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	sp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == space.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "space not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get space"})
		return
	}

	if !h.canManageProvider(c, sp.ProviderID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	var req UpdateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, space.UpdateRequest{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		Longitude:   req.Longitude,
		Latitude:    req.Latitude,
		IsActive:    req.IsActive,
	})
	if err != nil {
		switch err {
		case space.ErrNameRequired, space.ErrInvalidGeo:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update space"})
		}
		return
	}

	c.JSON(http.StatusOK, NewSpaceResponse(updated))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	sp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == space.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "space not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get space"})
		return
	}

	if !h.canManageProvider(c, sp.ProviderID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete space"})
		return
	}

	c.Status(http.StatusNoContent)
}
