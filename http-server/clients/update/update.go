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

type ClientUpdater interface {
	UpdateClient(ctx context.Context, c storage.Client) error
}

type Response struct {
	Status string            `json:"status"`
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

func UpdateClient(log *slog.Logger, updater ClientUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.clients.update.UpdateClient"

		var client storage.Client
		if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		client.ID = chi.URLParam(r, "id")

		if fields := client.Validate(); len(fields) > 0 {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, Response{Error: "Validation failed", Fields: fields})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateClient(ctx, client); err != nil {
			if errors.Is(err, storage.ErrClientNotFound) {
				http.Error(w, "Client not found", http.StatusNotFound)
				return
			}
			log.Error("failed to update client", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Internal server error"})
			return
		}

		render.JSON(w, r, Response{Status: strconv.Itoa(http.StatusOK)})
	}
}
