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

type ResponseOrders struct {
	Orders []*storage.OrderWithClient `json:"orders"`
	Status string                     `json:"status"`
	Error  string                     `json:"error,omitempty"`
}

type OrdersGetter interface {
	GetAllOrders(ctx context.Context) ([]*storage.OrderWithClient, error)
}

// GetOrders returns every order with its resolved client name, newest
// delivery date first (the source ordering the frontend relies on).
func GetOrders(log *slog.Logger, getter OrdersGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.orders.get.GetOrders"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		orders, err := getter.GetAllOrders(ctx)
		if err != nil {
			log.Error("failed to fetch orders", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseOrders{Error: "Internal server error"})
			return
		}
		if orders == nil {
			orders = []*storage.OrderWithClient{}
		}

		render.JSON(w, r, ResponseOrders{
			Orders: orders,
			Status: strconv.Itoa(http.StatusOK),
		})
	}
}
