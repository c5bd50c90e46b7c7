package http

import (
	"net/http"

	"github.com/runocole/geomart/internal/videos"
)

type VideosHandler struct {
	client *videos.Client
}

func NewVideosHandler(client *videos.Client) *VideosHandler {
	return &VideosHandler{client: client}
}

func (h *VideosHandler) List(w http.ResponseWriter, r *http.Request) {
	// List never fails; it substitutes the static fallback internally.
	respondJSON(w, http.StatusOK, h.client.List(r.Context()))
}
