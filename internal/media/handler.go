package media

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/floracart/floracart/internal/platform/httpx"
)

// maxUploadBytes bounds in-memory parsing of multipart bodies.
const maxUploadBytes = 10 << 20

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// Upload accepts a multipart form with a "file" field and responds with
// the durable image URL.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		httpx.Problem(w, http.StatusServiceUnavailable, "Uploads Disabled", "media service is not configured")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: invalid multipart body", httpx.ErrValidation))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: file field is required", httpx.ErrValidation))
		return
	}
	defer file.Close()

	url, err := h.service.Upload(r.Context(), file)
	if err != nil {
		h.logger.Error("media upload failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"url": url})
}
