package router

import (
	"net/http"

	"image-resizer/internal/http-server/handler/notification"
	"image-resizer/internal/http-server/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/wb-go/wbf/zlog"
)

type Handler struct {
	NotificationHandler *notification.NotificationHandler
}

func SetupRouter(h *Handler, logger *zlog.Zerolog) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/events", h.NotificationHandler.Notify)
		r.Get("/health", h.NotificationHandler.Health)
	})

	return r
}
