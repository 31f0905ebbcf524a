package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"atelier/internal/storage"

	"github.com/go-chi/render"
	"github.com/google/uuid"
)

type PatternSaver interface {
	SavePattern(ctx context.Context, p storage.Pattern) error
}

type Response struct {
	ID     string            `json:"id,omitempty"`
	Status string            `json:"status"`
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

func SavePattern(log *slog.Logger, saver PatternSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.patterns.save.SavePattern"

		var pattern storage.Pattern
		if err := json.NewDecoder(r.Body).Decode(&pattern); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if fields := pattern.Validate(); len(fields) > 0 {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, Response{Error: "Validation failed", Fields: fields})
			return
		}

		pattern.ID = uuid.NewString()
		if pattern.Measurements.Custom == nil {
			pattern.Measurements.Custom = []storage.CustomMeasurement{}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SavePattern(ctx, pattern); err != nil {
			log.Error("failed to save pattern", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Internal server error"})
			return
		}

		render.JSON(w, r, Response{
			ID:     pattern.ID,
			Status: strconv.Itoa(http.StatusOK),
		})
	}
}
