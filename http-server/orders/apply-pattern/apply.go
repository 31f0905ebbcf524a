package apply_pattern

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

type PatternApplier interface {
	ApplyPattern(ctx context.Context, orderID, patternID string) (*storage.Measurements, error)
}

type Request struct {
	PatternID string `json:"patternId"`
}

type Response struct {
	Measurements *storage.Measurements `json:"measurements,omitempty"`
	Status       string                `json:"status"`
	Error        string                `json:"error,omitempty"`
}

// ApplyPatternOperation overwrites the order's measurement set with a deep
// copy of the chosen pattern. An unknown pattern id is a no-op 404.
func ApplyPatternOperation(log *slog.Logger, service PatternApplier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.orders.apply_pattern.ApplyPatternOperation"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.PatternID == "" {
			http.Error(w, "Missing patternId", http.StatusBadRequest)
			return
		}

		orderID := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		applied, err := service.ApplyPattern(ctx, orderID, req.PatternID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrPatternNotFound):
				http.Error(w, "Pattern not found", http.StatusNotFound)
			case errors.Is(err, storage.ErrOrderNotFound):
				http.Error(w, "Order not found", http.StatusNotFound)
			default:
				log.Error("failed to apply pattern", slog.String("op", op), slog.String("error", err.Error()))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, Response{Error: "Internal server error"})
			}
			return
		}

		render.JSON(w, r, Response{
			Measurements: applied,
			Status:       strconv.Itoa(http.StatusOK),
		})
	}
}
