package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"atelier/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type ResponseClients struct {
	Clients []storage.Client `json:"clients"`
	Status  string           `json:"status"`
	Error   string           `json:"error,omitempty"`
}

type ClientGetter interface {
	GetAllClients(ctx context.Context) ([]storage.Client, error)
	GetClient(ctx context.Context, id string) (*storage.Client, error)
}

func GetClients(log *slog.Logger, getter ClientGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.clients.get.GetClients"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		clients, err := getter.GetAllClients(ctx)
		if err != nil {
			log.Error("failed to fetch clients", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseClients{Error: "Internal server error"})
			return
		}
		if clients == nil {
			clients = []storage.Client{}
		}

		render.JSON(w, r, ResponseClients{
			Clients: clients,
			Status:  strconv.Itoa(http.StatusOK),
		})
	}
}

func GetClient(log *slog.Logger, getter ClientGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.clients.get.GetClient"

		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		client, err := getter.GetClient(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrClientNotFound) {
				http.Error(w, "Client not found", http.StatusNotFound)
				return
			}
			log.Error("failed to fetch client", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, client)
	}
}
