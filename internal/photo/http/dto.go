package http

import (
	"time"

	"github.com/deskhive/interview-booking-backend/internal/photo"
)

// PhotoResponse is the API shape of a photo record.
type PhotoResponse struct {
	ID           string    `json:"id"`
	RoomID       string    `json:"room_id"`
	FileName     string    `json:"file_name"`
	ContentType  string    `json:"content_type"`
	SizeBytes    int64     `json:"size_bytes"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewPhotoResponse(p *photo.Photo) PhotoResponse {
	return PhotoResponse{
		ID:           p.ID,
		RoomID:       p.RoomID,
		FileName:     p.FileName,
		ContentType:  p.ContentType,
		SizeBytes:    p.SizeBytes,
		URL:          "/v1/photos/" + p.ID,
		ThumbnailURL: "/v1/photos/" + p.ID + "/thumbnail",
		CreatedAt:    p.CreatedAt,
	}
}
