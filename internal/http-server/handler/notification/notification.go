package notification

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"image-resizer/internal/domain"
	"image-resizer/internal/event"
	"image-resizer/internal/http-server/handler/notification/dto"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/zlog"
)

const maxBodySize = 1 << 20

type NotificationHandler struct {
	compressor compressor
	validate   *validator.Validate
	logger     *zlog.Zerolog
}

func NewNotificationHandler(compressor compressor, logger *zlog.Zerolog) *NotificationHandler {
	return &NotificationHandler{
		compressor: compressor,
		validate:   validator.New(),
		logger:     logger,
	}
}

// Notify accepts a bucket notification delivered by a webhook target.
func (h *NotificationHandler) Notify(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to read notification body")
		h.respondError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	records, err := event.Parse(body)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to parse notification")
		h.respondError(w, http.StatusBadRequest, "Invalid notification", err)
		return
	}

	// Only the first record is handled, so only it has to be valid.
	record := records[0]
	if err := h.validate.Struct(record); err != nil {
		h.logger.Warn().Err(err).Str("key", record.Key).Msg("Notification record failed validation")
		h.respondError(w, http.StatusBadRequest, "Invalid notification record", err)
		return
	}

	if !record.IsObjectCreated() {
		h.logger.Debug().Str("event", record.EventName).Str("key", record.Key).Msg("Ignoring non-create event")
		h.respondJSON(w, http.StatusOK, domain.SuccessResponse())
		return
	}

	resp, err := h.compressor.HandleRecords(r.Context(), records)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.respondJSON(w, resp.StatusCode, resp)
}

func (h *NotificationHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

func (h *NotificationHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnidentifiedFormat):
		h.respondError(w, http.StatusUnprocessableEntity, "Unable to identify image format", err)
	case errors.Is(err, domain.ErrResourceExhaustion):
		h.respondError(w, http.StatusRequestEntityTooLarge, "Image exceeds resource limits", err)
	default:
		h.respondError(w, http.StatusInternalServerError, "Failed to process object", err)
	}
}

func (h *NotificationHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Interface("data", data).Msg("Failed to encode response")
	}
}

func (h *NotificationHandler) respondError(w http.ResponseWriter, status int, message string, err error) {
	response := dto.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	}

	if err != nil {
		response.Details = err.Error()
	}

	h.respondJSON(w, status, response)
}
