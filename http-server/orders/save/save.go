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

type OrderSaver interface {
	SaveOrder(ctx context.Context, o storage.Order) error
}

type Response struct {
	ID     string            `json:"id,omitempty"`
	Status string            `json:"status"`
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

func SaveOrder(log *slog.Logger, saver OrderSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.orders.save.SaveOrder"

		var order storage.Order
		if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if order.Status == "" {
			order.Status = storage.StatusPending
		}
		if fields := order.Validate(); len(fields) > 0 {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, Response{Error: "Validation failed", Fields: fields})
			return
		}

		order.ID = uuid.NewString()

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveOrder(ctx, order); err != nil {
			log.Error("failed to save order", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Internal server error"})
			return
		}

		render.JSON(w, r, Response{
			ID:     order.ID,
			Status: strconv.Itoa(http.StatusOK),
		})
	}
}
