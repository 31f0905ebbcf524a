package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"atelier/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type PatternUpdater interface {
	UpdatePattern(ctx context.Context, p storage.Pattern) error
}

type Response struct {
	Status string            `json:"status"`
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

func UpdatePattern(log *slog.Logger, updater PatternUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.patterns.update.UpdatePattern"

		var pattern storage.Pattern
		if err := json.NewDecoder(r.Body).Decode(&pattern); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		pattern.ID = chi.URLParam(r, "id")

		if fields := pattern.Validate(); len(fields) > 0 {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, Response{Error: "Validation failed", Fields: fields})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdatePattern(ctx, pattern); err != nil {
			if errors.Is(err, storage.ErrPatternNotFound) {
				http.Error(w, "Pattern not found", http.StatusNotFound)
				return
			}
			log.Error("failed to update pattern", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Internal server error"})
			return
		}

		render.JSON(w, r, Response{Status: strconv.Itoa(http.StatusOK)})
	}
}
