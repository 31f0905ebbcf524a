package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"atelier/internal/service/derive"
	"atelier/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// ResponsePortal is the public customer view of one order: the pieces the
// client portal page shows, nothing financial.
type ResponsePortal struct {
	OrderID         string   `json:"orderId"`
	Title           string   `json:"title"`
	ClientName      string   `json:"clientName"`
	Status          string   `json:"status"`
	StatusVariant   string   `json:"statusVariant"`
	ProgressPercent int      `json:"progressPercent"`
	DeliveryDate    string   `json:"deliveryDate"`
	Images          []string `json:"images"`
	ProgressImages  []string `json:"progressImages"`
}

type OrderGetter interface {
	GetOrder(ctx context.Context, id string) (*storage.OrderWithClient, error)
}

func GetPortalOrder(log *slog.Logger, getter OrderGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.portal.get.GetPortalOrder"

		id := chi.URLParam(r, "orderId")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		order, err := getter.GetOrder(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrOrderNotFound) {
				http.Error(w, "Order not found", http.StatusNotFound)
				return
			}
			log.Error("failed to fetch portal order", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		progressImages := order.ProgressImages
		if progressImages == nil {
			progressImages = []string{}
		}

		render.JSON(w, r, ResponsePortal{
			OrderID:         order.ID,
			Title:           order.Title,
			ClientName:      order.ClientName,
			Status:          order.Status,
			StatusVariant:   derive.StatusVariant(order.Status),
			ProgressPercent: derive.ProgressPercent(order.Status),
			DeliveryDate:    order.DeliveryDate.Format("2006-01-02"),
			Images:          order.Images,
			ProgressImages:  progressImages,
		})
	}
}
