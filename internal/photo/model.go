package photo

import (
	"net/http"
	"time"

	"github.com/deskhive/interview-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "photo not found")
	ErrRoomNotFound     = apperror.New(http.StatusNotFound, "room not found")
	ErrUnsupportedType  = apperror.New(http.StatusBadRequest, "unsupported image type")
	ErrTooLarge         = apperror.New(http.StatusBadRequest, "image exceeds the size limit")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
)

// Photo is an uploaded room image plus its generated thumbnail.
type Photo struct {
	ID          string
	RoomID      string
	FileName    string
	ContentType string
	SizeBytes   int64
	// Path and ThumbPath are storage-relative locations.
	Path      string
	ThumbPath string
	CreatedAt time.Time
}
