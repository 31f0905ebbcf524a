package delete

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"atelier/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ClientDeleter interface {
	DeleteClient(ctx context.Context, id string) error
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func DeleteClient(log *slog.Logger, deleter ClientDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.clients.delete.DeleteClient"

		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := deleter.DeleteClient(ctx, id); err != nil {
			switch {
			case errors.Is(err, storage.ErrClientNotFound):
				http.Error(w, "Client not found", http.StatusNotFound)
			case errors.Is(err, storage.ErrClientHasOrders):
				// deletion is blocked, never cascaded: the orders keep their
				// financial history
				w.WriteHeader(http.StatusConflict)
				render.JSON(w, r, Response{Error: "Des commandes sont encore associées à ce client"})
			default:
				log.Error("failed to delete client", slog.String("op", op), slog.String("error", err.Error()))
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
			return
		}

		render.JSON(w, r, Response{Status: strconv.Itoa(http.StatusOK)})
	}
}
