package listing

import (
	"testing"
	"time"

	"atelier/internal/storage"

	"github.com/stretchr/testify/assert"
)

func testOrder(id, status string, delivery time.Time, price float64) *storage.OrderWithClient {
	return &storage.OrderWithClient{
		Order: storage.Order{
			ID:           id,
			Status:       status,
			DeliveryDate: delivery,
			TotalPrice:   price,
		},
	}
}

func TestUpcoming(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	orders := []*storage.OrderWithClient{
		testOrder("far", storage.StatusPending, now.AddDate(0, 0, 12), 100),
		testOrder("soon", storage.StatusInProgress, now.AddDate(0, 0, 2), 100),
		testOrder("later", storage.StatusPending, now.AddDate(0, 0, 5), 100),
		testOrder("past", storage.StatusInProgress, now.AddDate(0, 0, -1), 100),
	}

	upcoming := Upcoming(orders, now, DefaultHorizonDays)

	// sorted ascending by delivery date, horizon and past excluded
	assert.Len(t, upcoming, 2)
	assert.Equal(t, "soon", upcoming[0].ID)
	assert.Equal(t, "later", upcoming[1].ID)
}

// Delivery dates are stored at midnight; with the clock at mid-day, an order
// due today is still upcoming and never late.
func TestUpcoming_DueTodayMidDay(t *testing.T) {
	now := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	midnight := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	orders := []*storage.OrderWithClient{
		testOrder("today", storage.StatusInProgress, midnight, 100),
	}

	upcoming := Upcoming(orders, now, DefaultHorizonDays)
	assert.Len(t, upcoming, 1)
	assert.Equal(t, "today", upcoming[0].ID)

	assert.Empty(t, Late(orders, now))
}

// The horizon bound is inclusive: an order due exactly horizonDays from today
// is still upcoming, one day further out is not.
func TestUpcoming_HorizonBoundary(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	orders := []*storage.OrderWithClient{
		testOrder("boundary", storage.StatusPending, now.AddDate(0, 0, DefaultHorizonDays), 100),
		testOrder("beyond", storage.StatusPending, now.AddDate(0, 0, DefaultHorizonDays+1), 100),
	}

	upcoming := Upcoming(orders, now, DefaultHorizonDays)
	assert.Len(t, upcoming, 1)
	assert.Equal(t, "boundary", upcoming[0].ID)
}

// A completed order never shows up in the upcoming widget, even inside the
// horizon.
func TestUpcoming_ExcludesCompleted(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	orders := []*storage.OrderWithClient{
		testOrder("done", storage.StatusCompleted, now.AddDate(0, 0, 3), 100),
	}

	assert.Empty(t, Upcoming(orders, now, DefaultHorizonDays))
}

func TestInProgress(t *testing.T) {
	now := time.Now()

	orders := []*storage.OrderWithClient{
		testOrder("a", storage.StatusInProgress, now, 100),
		testOrder("b", storage.StatusPending, now, 100),
		testOrder("c", storage.StatusInProgress, now, 100),
	}

	inProgress := InProgress(orders)
	assert.Len(t, inProgress, 2)
	assert.Equal(t, "a", inProgress[0].ID)
	assert.Equal(t, "c", inProgress[1].ID)
}

func TestLate(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	orders := []*storage.OrderWithClient{
		testOrder("overdue", storage.StatusInProgress, now.AddDate(0, 0, -2), 100),
		testOrder("delivered", storage.StatusCompleted, now.AddDate(0, 0, -10), 100),
		testOrder("future", storage.StatusPending, now.AddDate(0, 0, 4), 100),
	}

	late := Late(orders, now)
	assert.Len(t, late, 1)
	assert.Equal(t, "overdue", late[0].ID)
}

func TestCompletedRevenue(t *testing.T) {
	now := time.Now()

	orders := []*storage.OrderWithClient{
		testOrder("a", storage.StatusCompleted, now, 120),
		testOrder("b", storage.StatusCompleted, now, 280),
		testOrder("c", storage.StatusInProgress, now, 1200),
	}

	assert.Equal(t, 400.0, CompletedRevenue(orders))
	assert.Equal(t, 0.0, CompletedRevenue(nil))
}
