package handlers

import (
	"log/slog"
	"net/http"

	"github.com/linemk/perfume-store/internal/service"
)

// LandingHandler обрабатывает запрос GET /
func LandingHandler(log *slog.Logger, landingService service.LandingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.LandingHandler"
		logger := log.With(slog.String("op", op))

		view, err := landingService.BuildLandingPage(r.Context())
		if err != nil {
			logger.Error("failed to build landing page", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, view)
	}
}
