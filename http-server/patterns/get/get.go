package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"atelier/internal/storage"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type ResponsePatterns struct {
	Patterns []*storage.Pattern `json:"patterns"`
	Status   string             `json:"status"`
	Error    string             `json:"error,omitempty"`
}

type PatternGetter interface {
	GetAllPatterns(ctx context.Context) ([]*storage.Pattern, error)
}

func GetPatterns(log *slog.Logger, getter PatternGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.patterns.get.GetPatterns"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		patterns, err := getter.GetAllPatterns(ctx)
		if err != nil {
			log.Error("failed to fetch patterns", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponsePatterns{Error: "Internal server error"})
			return
		}
		if patterns == nil {
			patterns = []*storage.Pattern{}
		}

		render.JSON(w, r, ResponsePatterns{
			Patterns: patterns,
			Status:   strconv.Itoa(http.StatusOK),
		})
	}
}
