package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/deskhive/interview-booking-backend/internal/auth"
	"github.com/deskhive/interview-booking-backend/internal/photo"
	"github.com/deskhive/interview-booking-backend/internal/pkg/response"
	"github.com/deskhive/interview-booking-backend/internal/provider"
	"github.com/deskhive/interview-booking-backend/internal/room"
	"github.com/deskhive/interview-booking-backend/internal/user"
)

type Handler struct {
	service     photo.Service
	roomService room.Service
	provService provider.Service
	userService user.Service
}

func NewHandler(
	service photo.Service,
	roomService room.Service,
	provService provider.Service,
	userService user.Service,
) *Handler {
	return &Handler{
		service:     service,
		roomService: roomService,
		provService: provService,
		userService: userService,
	}
}

func (h *Handler) canManageProvider(c *gin.Context, providerID string) bool {
	userID := auth.GetUserID(c)
	if u, err := h.userService.GetByID(c.Request.Context(), userID); err == nil && u.IsSystemAdmin {
		return true
	}
	ok, err := h.provService.IsManagerOrAbove(c.Request.Context(), providerID, userID)
	return err == nil && ok
}

// Upload serves POST /v1/rooms/:id/photos with a multipart "file" part.
func (h *Handler) Upload(c *gin.Context) {
	roomID := c.Param("id")
	if _, err := uuid.Parse(roomID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	rm, err := h.roomService.GetByID(c.Request.Context(), roomID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	if !h.canManageProvider(c, rm.ProviderID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file part is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer file.Close()

	p, err := h.service.Upload(c.Request.Context(), photo.UploadRequest{
		RoomID:      roomID,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		SizeBytes:   fileHeader.Size,
		Content:     file,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewPhotoResponse(p))
}

// ListByRoom serves GET /v1/rooms/:id/photos.
func (h *Handler) ListByRoom(c *gin.Context) {
	roomID := c.Param("id")
	if _, err := uuid.Parse(roomID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	photos, err := h.service.ListByRoom(c.Request.Context(), roomID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		items[i] = NewPhotoResponse(p)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) serve(c *gin.Context, thumbnail bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	var content io.ReadCloser
	contentType := p.ContentType
	if thumbnail {
		content, err = h.service.OpenThumbnail(c.Request.Context(), p)
		contentType = "image/jpeg"
	} else {
		content, err = h.service.Open(c.Request.Context(), p)
	}
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "photo content not found"})
		return
	}
	defer content.Close()

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	io.Copy(c.Writer, content)
}

// Get serves GET /v1/photos/:id (the original image bytes).
func (h *Handler) Get(c *gin.Context) {
	h.serve(c, false)
}

// GetThumbnail serves GET /v1/photos/:id/thumbnail.
func (h *Handler) GetThumbnail(c *gin.Context) {
	h.serve(c, true)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	rm, err := h.roomService.GetByID(c.Request.Context(), p.RoomID)
	if err == nil && !h.canManageProvider(c, rm.ProviderID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
