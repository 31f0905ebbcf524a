// Package listing filters the order list for the dashboard widgets. The
// filters are pure and re-derived on every read; at tens to low thousands of
// orders there is nothing worth indexing.
package listing

import (
	"sort"
	"time"

	"atelier/internal/service/derive"
	"atelier/internal/storage"
)

// DefaultHorizonDays is the dashboard's "échéances proches" window.
const DefaultHorizonDays = 7

// Upcoming returns non-completed orders due within [today, today+horizonDays],
// bounds inclusive, soonest first. Delivery dates are stored at midnight, so
// the clock is truncated to the day: an order due today stays upcoming until
// the day is over, whatever the hour.
func Upcoming(orders []*storage.OrderWithClient, now time.Time, horizonDays int) []*storage.OrderWithClient {
	today := derive.StartOfDay(now)
	end := today.AddDate(0, 0, horizonDays)

	var upcoming []*storage.OrderWithClient
	for _, o := range orders {
		if o.Status == storage.StatusCompleted {
			continue
		}
		due := derive.StartOfDay(o.DeliveryDate)
		if due.Before(today) || due.After(end) {
			continue
		}
		upcoming = append(upcoming, o)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DeliveryDate.Before(upcoming[j].DeliveryDate)
	})

	return upcoming
}

// InProgress returns orders currently in confection.
func InProgress(orders []*storage.OrderWithClient) []*storage.OrderWithClient {
	var inProgress []*storage.OrderWithClient
	for _, o := range orders {
		if o.Status == storage.StatusInProgress {
			inProgress = append(inProgress, o)
		}
	}
	return inProgress
}

// Late returns orders whose delivery day has fully passed and that are not
// completed yet. An order due today is not late.
func Late(orders []*storage.OrderWithClient, now time.Time) []*storage.OrderWithClient {
	today := derive.StartOfDay(now)

	var late []*storage.OrderWithClient
	for _, o := range orders {
		if o.Status == storage.StatusCompleted {
			continue
		}
		if derive.StartOfDay(o.DeliveryDate).Before(today) {
			late = append(late, o)
		}
	}
	return late
}

// CompletedRevenue sums the total price of every completed order.
func CompletedRevenue(orders []*storage.OrderWithClient) float64 {
	var revenue float64
	for _, o := range orders {
		if o.Status == storage.StatusCompleted {
			revenue += o.TotalPrice
		}
	}
	return revenue
}
