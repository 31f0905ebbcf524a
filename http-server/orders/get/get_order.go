package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"atelier/internal/service/currency"
	"atelier/internal/service/derive"
	"atelier/internal/service/measure"
	"atelier/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type MeasurementItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

type ResponseOrder struct {
	*storage.OrderWithClient

	// Derived fields the detail page renders next to the raw data.
	TotalPaid       float64 `json:"totalPaid"`
	Balance         float64 `json:"balance"`
	BalanceF        string  `json:"balanceFormatted"`
	ProgressPercent int     `json:"progressPercent"`
	StatusVariant   string  `json:"statusVariant"`

	// HasMeasurements false means the page shows the explicit
	// "Aucune mensuration spécifiée" empty state instead of a grid.
	HasMeasurements  bool              `json:"hasMeasurements"`
	MeasurementItems []MeasurementItem `json:"measurementItems"`
}

type OrderGetter interface {
	GetOrder(ctx context.Context, id string) (*storage.OrderWithClient, error)
}

func GetOrder(log *slog.Logger, getter OrderGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.orders.get.GetOrder"

		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		order, err := getter.GetOrder(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrOrderNotFound) {
				http.Error(w, "Order not found", http.StatusNotFound)
				return
			}
			log.Error("failed to fetch order", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		balance := derive.Balance(&order.Order)
		render.JSON(w, r, ResponseOrder{
			OrderWithClient:  order,
			TotalPaid:        derive.TotalPaid(&order.Order),
			Balance:          balance,
			BalanceF:         currency.Format(balance),
			ProgressPercent:  derive.ProgressPercent(order.Status),
			StatusVariant:    derive.StatusVariant(order.Status),
			HasMeasurements:  !measure.IsEmpty(order.Measurements),
			MeasurementItems: measurementItems(order.Measurements),
		})
	}
}

// measurementItems lays the populated fields out in the grid order of the
// form: the standard fields first, then the custom entries.
func measurementItems(m storage.Measurements) []MeasurementItem {
	standard := []struct {
		key   string
		value string
	}{
		{"tourDePoitrine", m.Standard.TourDePoitrine},
		{"tourDeTaille", m.Standard.TourDeTaille},
		{"tourDeHanches", m.Standard.TourDeHanches},
		{"longueurBras", m.Standard.LongueurBras},
		{"longueurJambe", m.Standard.LongueurJambe},
		{"carrureDos", m.Standard.CarrureDos},
	}

	items := []MeasurementItem{}
	for _, s := range standard {
		if s.value == "" {
			continue
		}
		items = append(items, MeasurementItem{
			Label: measure.FormatLabel(s.key),
			Value: s.value,
			Unit:  m.Unit,
		})
	}
	for _, c := range m.Custom {
		items = append(items, MeasurementItem{
			Label: measure.FormatLabel(c.Name),
			Value: c.Value,
			Unit:  m.Unit,
		})
	}

	return items
}
