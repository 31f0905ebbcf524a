// Package dashboard assembles the summary payload behind the main dashboard
// page from the order list and the derivations.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"atelier/internal/service/currency"
	"atelier/internal/service/derive"
	"atelier/internal/service/listing"
	"atelier/internal/storage"

	"golang.org/x/sync/errgroup"
)

type DashboardStorage interface {
	GetAllOrders(ctx context.Context) ([]*storage.OrderWithClient, error)
	CountClients(ctx context.Context) (int, error)
}

type Service struct {
	storage DashboardStorage
}

func NewService(storage DashboardStorage) *Service {
	return &Service{storage: storage}
}

type UpcomingEntry struct {
	OrderID      string `json:"orderId"`
	Title        string `json:"title"`
	ClientName   string `json:"clientName"`
	DeliveryDate string `json:"deliveryDate"`
	DaysLeft     int    `json:"daysLeft"`
	Label        string `json:"label"`
	Urgent       bool   `json:"urgent"`
}

type InProgressEntry struct {
	OrderID        string `json:"orderId"`
	Title          string `json:"title"`
	ClientName     string `json:"clientName"`
	TotalPrice     string `json:"totalPrice"`
	DeliveryDate   string `json:"deliveryDate"`
	ProgressImages int    `json:"progressImages"`
}

type Summary struct {
	InProgressCount   int               `json:"inProgressCount"`
	UpcomingCount     int               `json:"upcomingCount"`
	LateCount         int               `json:"lateCount"`
	ClientCount       int               `json:"clientCount"`
	CompletedRevenue  float64           `json:"completedRevenue"`
	CompletedRevenueF string            `json:"completedRevenueFormatted"`
	Upcoming          []UpcomingEntry   `json:"upcoming"`
	InProgress        []InProgressEntry `json:"inProgress"`
}

// GetSummary fans the storage reads out concurrently, then derives every
// widget from the single fetched order list.
func (s *Service) GetSummary(ctx context.Context, now time.Time) (*Summary, error) {
	const op = "service.dashboard.GetSummary"

	var orders []*storage.OrderWithClient
	var clientCount int

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.storage.GetAllOrders(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		clientCount, err = s.storage.CountClients(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	upcoming := listing.Upcoming(orders, now, listing.DefaultHorizonDays)
	inProgress := listing.InProgress(orders)
	late := listing.Late(orders, now)

	summary := &Summary{
		InProgressCount:   len(inProgress),
		UpcomingCount:     len(upcoming),
		LateCount:         len(late),
		ClientCount:       clientCount,
		CompletedRevenue:  listing.CompletedRevenue(orders),
		Upcoming:          make([]UpcomingEntry, 0, len(upcoming)),
		InProgress:        make([]InProgressEntry, 0, len(inProgress)),
	}
	summary.CompletedRevenueF = currency.Format(summary.CompletedRevenue)

	for _, o := range upcoming {
		days := derive.DaysUntil(o.DeliveryDate, now)
		summary.Upcoming = append(summary.Upcoming, UpcomingEntry{
			OrderID:      o.ID,
			Title:        o.Title,
			ClientName:   o.ClientName,
			DeliveryDate: o.DeliveryDate.Format("2006-01-02"),
			DaysLeft:     days,
			Label:        derive.DeliveryLabel(days),
			Urgent:       days <= 2,
		})
	}

	for _, o := range inProgress {
		summary.InProgress = append(summary.InProgress, InProgressEntry{
			OrderID:        o.ID,
			Title:          o.Title,
			ClientName:     o.ClientName,
			TotalPrice:     currency.Format(o.TotalPrice),
			DeliveryDate:   o.DeliveryDate.Format("2006-01-02"),
			ProgressImages: len(o.ProgressImages),
		})
	}

	return summary, nil
}
