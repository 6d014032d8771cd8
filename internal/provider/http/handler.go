package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/deskhive/interview-booking-backend/internal/auth"
	"github.com/deskhive/interview-booking-backend/internal/pkg/request"
	"github.com/deskhive/interview-booking-backend/internal/pkg/response"
	"github.com/deskhive/interview-booking-backend/internal/provider"
	"github.com/deskhive/interview-booking-backend/internal/user"
)

type Handler struct {
	service     provider.Service
	userService user.Service
}

func NewHandler(service provider.Service, userService user.Service) *Handler {
	return &Handler{
		service:     service,
		userService: userService,
	}
}

// checkIsSysAdmin reports whether the current user is a system admin.
func (h *Handler) checkIsSysAdmin(c *gin.Context, userID string) bool {
	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		return false
	}
	return u.IsSystemAdmin
}

// requireManager aborts with 403 unless the user manages the provider or is a sysadmin.
func (h *Handler) requireManager(c *gin.Context, providerID string) bool {
	userID := auth.GetUserID(c)
	if h.checkIsSysAdmin(c, userID) {
		return true
	}

	ok, err := h.service.IsManagerOrAbove(c.Request.Context(), providerID, userID)
	if err != nil || !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return false
	}
	return true
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	p, err := h.service.Create(c.Request.Context(), provider.CreateRequest{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		OwnerUserID:  userID,
	})
	if err != nil {
		if err == provider.ErrNameRequired {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create provider"})
		return
	}

	c.JSON(http.StatusCreated, NewProviderResponse(p))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == provider.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get provider"})
		return
	}

	c.JSON(http.StatusOK, NewProviderResponse(p))
}

func (h *Handler) List(c *gin.Context) {
	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	params.Normalize()

	providers, total, err := h.service.List(c.Request.Context(), provider.Filter{
		Page:     params.Page,
		PageSize: params.PageSize,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list providers"})
		return
	}

	items := make([]ProviderResponse, len(providers))
	for i, p := range providers {
		items[i] = NewProviderResponse(p)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, params.Page, params.PageSize, total))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if !h.requireManager(c, id) {
		return
	}

	var req UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, provider.UpdateRequest{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		IsActive:     req.IsActive,
	})
	if err != nil {
		switch err {
		case provider.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
		case provider.ErrNameRequired:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update provider"})
		}
		return
	}

	c.JSON(http.StatusOK, NewProviderResponse(p))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if !h.requireManager(c, id) {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if err == provider.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete provider"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) AddMember(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if !h.requireManager(c, id) {
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.AddMember(c.Request.Context(), id, req.UserID, req.Role); err != nil {
		switch err {
		case provider.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
		case user.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case provider.ErrAlreadyMember:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case provider.ErrInvalidRole:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add member"})
		}
		return
	}

	c.Status(http.StatusCreated)
}

func (h *Handler) RemoveMember(c *gin.Context) {
	id := c.Param("id")
	memberID := c.Param("userId")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}
	if _, err := uuid.Parse(memberID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if !h.requireManager(c, id) {
		return
	}

	if err := h.service.RemoveMember(c.Request.Context(), id, memberID); err != nil {
		switch err {
		case provider.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
		case provider.ErrMemberMissing:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove member"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListMembers(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if !h.requireManager(c, id) {
		return
	}

	members, err := h.service.ListMembers(c.Request.Context(), id)
	if err != nil {
		if err == provider.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list members"})
		return
	}

	items := make([]MemberResponse, len(members))
	for i, m := range members {
		items[i] = NewMemberResponse(m)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
