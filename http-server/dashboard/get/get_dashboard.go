package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"atelier/internal/service/dashboard"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type SummaryGetter interface {
	GetSummary(ctx context.Context, now time.Time) (*dashboard.Summary, error)
}

type Response struct {
	Summary *dashboard.Summary `json:"summary,omitempty"`
	Error   string             `json:"error,omitempty"`
}

func GetDashboard(log *slog.Logger, service SummaryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.dashboard.get.GetDashboard"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		summary, err := service.GetSummary(ctx, time.Now())
		if err != nil {
			log.Error("failed to build dashboard summary", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Internal server error"})
			return
		}

		render.JSON(w, r, Response{Summary: summary})
	}
}
