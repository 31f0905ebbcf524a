// Package derive holds the pure order derivations shown across the dashboard,
// the order detail page and the client portal. Everything here is total and
// side-effect free.
package derive

import (
	"fmt"
	"time"

	"atelier/internal/storage"
)

// TotalPaid sums the recorded payments in entry order.
func TotalPaid(o *storage.Order) float64 {
	var sum float64
	for _, p := range o.Payments {
		sum += p.Amount
	}
	return sum
}

// Balance is the remaining amount due. It is not floored at zero: an overpaid
// order has a negative balance and is rendered differently by the frontend.
func Balance(o *storage.Order) float64 {
	return o.TotalPrice - TotalPaid(o)
}

// ProgressPercent maps a status to the completion percentage shown to the
// end customer. Unknown statuses map to 0.
func ProgressPercent(status string) int {
	switch status {
	case storage.StatusPending:
		return 10
	case storage.StatusInProgress:
		return 50
	case storage.StatusReady:
		return 90
	case storage.StatusCompleted:
		return 100
	default:
		return 0
	}
}

// StatusVariant maps a status to the badge variant the frontend renders.
// "destructive" on Prêt à livrer denotes urgency, not an error state.
func StatusVariant(status string) string {
	switch status {
	case storage.StatusCompleted:
		return "secondary"
	case storage.StatusInProgress:
		return "default"
	case storage.StatusReady:
		return "destructive"
	case storage.StatusPending:
		return "outline"
	default:
		return "secondary"
	}
}

// DaysUntil returns the calendar-day distance from now to the delivery date,
// negative when the date has passed.
func DaysUntil(deliveryDate, now time.Time) int {
	d := StartOfDay(deliveryDate).Sub(StartOfDay(now))
	return int(d.Hours() / 24)
}

// DeliveryLabel renders the day count the way the dashboard shows it:
// "Aujourd'hui" for today, otherwise "Dans N jour(s)".
func DeliveryLabel(days int) string {
	if days == 0 {
		return "Aujourd'hui"
	}
	if days > 1 {
		return fmt.Sprintf("Dans %d jours", days)
	}
	return fmt.Sprintf("Dans %d jour", days)
}

// StartOfDay truncates a timestamp to midnight. Delivery dates carry no time
// component, so every comparison against the clock happens at day granularity.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
