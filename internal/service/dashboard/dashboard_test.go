package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"atelier/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockDashboardStorage struct {
	mock.Mock
}

func (m *MockDashboardStorage) GetAllOrders(ctx context.Context) ([]*storage.OrderWithClient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.OrderWithClient), args.Error(1)
}

func (m *MockDashboardStorage) CountClients(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func dashOrder(id, title, client, status string, delivery time.Time, price float64) *storage.OrderWithClient {
	return &storage.OrderWithClient{
		Order: storage.Order{
			ID:           id,
			Title:        title,
			Status:       status,
			DeliveryDate: delivery,
			TotalPrice:   price,
		},
		ClientName: client,
	}
}

func TestGetSummary(t *testing.T) {
	now := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)

	orders := []*storage.OrderWithClient{
		dashOrder("ord-1", "Robe de Soirée", "Marie Dubois", storage.StatusInProgress, now.AddDate(0, 0, 2), 450),
		dashOrder("ord-2", "Costume Trois Pièces", "Jean Martin", storage.StatusPending, now.AddDate(0, 0, 5), 1200),
		dashOrder("ord-3", "Jupe Plissée", "Sophie Bernard", storage.StatusReady, now.AddDate(0, 0, -2), 280),
		dashOrder("ord-4", "Chemise en Lin", "Lucas Petit", storage.StatusCompleted, now.AddDate(0, 0, -10), 120),
	}

	mockStorage := new(MockDashboardStorage)
	mockStorage.On("GetAllOrders", mock.Anything).Return(orders, nil)
	mockStorage.On("CountClients", mock.Anything).Return(4, nil)

	service := NewService(mockStorage)

	summary, err := service.GetSummary(context.Background(), now)
	assert.NoError(t, err)

	assert.Equal(t, 1, summary.InProgressCount)
	assert.Equal(t, 1, summary.LateCount)
	assert.Equal(t, 2, summary.UpcomingCount)
	assert.Equal(t, 4, summary.ClientCount)
	assert.Equal(t, 120.0, summary.CompletedRevenue)
	assert.Equal(t, "120\u00a0FCFA", summary.CompletedRevenueF)

	// upcoming is soonest first, with the French day label
	assert.Equal(t, "ord-1", summary.Upcoming[0].OrderID)
	assert.Equal(t, 2, summary.Upcoming[0].DaysLeft)
	assert.Equal(t, "Dans 2 jours", summary.Upcoming[0].Label)
	assert.True(t, summary.Upcoming[0].Urgent)

	assert.Equal(t, "ord-2", summary.Upcoming[1].OrderID)
	assert.False(t, summary.Upcoming[1].Urgent)

	assert.Len(t, summary.InProgress, 1)
	assert.Equal(t, "Marie Dubois", summary.InProgress[0].ClientName)
	assert.Equal(t, "450\u00a0FCFA", summary.InProgress[0].TotalPrice)

	mockStorage.AssertExpectations(t)
}

// An order due today shows up as "Aujourd'hui" in the upcoming widget even
// when the summary is built mid-day, and is never counted late.
func TestGetSummary_DueToday(t *testing.T) {
	now := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	midnight := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	orders := []*storage.OrderWithClient{
		dashOrder("ord-1", "Boubou Brodé", "Awa Traoré", storage.StatusReady, midnight, 300),
	}

	mockStorage := new(MockDashboardStorage)
	mockStorage.On("GetAllOrders", mock.Anything).Return(orders, nil)
	mockStorage.On("CountClients", mock.Anything).Return(1, nil)

	service := NewService(mockStorage)

	summary, err := service.GetSummary(context.Background(), now)
	assert.NoError(t, err)

	assert.Equal(t, 0, summary.LateCount)
	assert.Len(t, summary.Upcoming, 1)
	assert.Equal(t, 0, summary.Upcoming[0].DaysLeft)
	assert.Equal(t, "Aujourd'hui", summary.Upcoming[0].Label)
	assert.True(t, summary.Upcoming[0].Urgent)
}

func TestGetSummary_StorageError(t *testing.T) {
	mockStorage := new(MockDashboardStorage)
	mockStorage.On("GetAllOrders", mock.Anything).Return(nil, errors.New("connection timeout"))
	mockStorage.On("CountClients", mock.Anything).Return(0, nil).Maybe()

	service := NewService(mockStorage)

	_, err := service.GetSummary(context.Background(), time.Now())
	assert.Error(t, err)
}
