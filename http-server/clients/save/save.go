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

type ClientSaver interface {
	SaveClient(ctx context.Context, c storage.Client) error
}

type Response struct {
	ID     string            `json:"id,omitempty"`
	Status string            `json:"status"`
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

func SaveClient(log *slog.Logger, saver ClientSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.clients.save.SaveClient"

		var client storage.Client
		if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if fields := client.Validate(); len(fields) > 0 {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, Response{Error: "Validation failed", Fields: fields})
			return
		}

		client.ID = uuid.NewString()

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveClient(ctx, client); err != nil {
			log.Error("failed to save client", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Internal server error"})
			return
		}

		render.JSON(w, r, Response{
			ID:     client.ID,
			Status: strconv.Itoa(http.StatusOK),
		})
	}
}
