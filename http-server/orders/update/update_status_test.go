package update

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atelier/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockStatusUpdater struct {
	mock.Mock
}

func (m *MockStatusUpdater) UpdateOrderStatus(ctx context.Context, id string, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func TestUpdateOrderStatus_Success(t *testing.T) {
	mockStorage := new(MockStatusUpdater)
	mockStorage.On("UpdateOrderStatus", mock.Anything, "ord-1", storage.StatusReady).Return(nil)

	router := chi.NewRouter()
	router.Put("/api/orders/{id}/status", UpdateOrderStatus(slog.Default(), mockStorage))

	req := httptest.NewRequest(http.MethodPut, "/api/orders/ord-1/status", strings.NewReader(`{"status":"Prêt à livrer"}`))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockStorage.AssertExpectations(t)
}

// A status update against an unknown order surfaces the storage not-found
// error as a 404, with nothing written.
func TestUpdateOrderStatus_OrderNotFound(t *testing.T) {
	mockStorage := new(MockStatusUpdater)
	mockStorage.On("UpdateOrderStatus", mock.Anything, "missing", storage.StatusInProgress).
		Return(storage.ErrOrderNotFound)

	router := chi.NewRouter()
	router.Put("/api/orders/{id}/status", UpdateOrderStatus(slog.Default(), mockStorage))

	req := httptest.NewRequest(http.MethodPut, "/api/orders/missing/status", strings.NewReader(`{"status":"En cours"}`))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Order not found")
}

func TestUpdateOrderStatus_UnknownStatus(t *testing.T) {
	mockStorage := new(MockStatusUpdater)

	router := chi.NewRouter()
	router.Put("/api/orders/{id}/status", UpdateOrderStatus(slog.Default(), mockStorage))

	req := httptest.NewRequest(http.MethodPut, "/api/orders/ord-1/status", strings.NewReader(`{"status":"Annulée"}`))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Contains(t, resp.Fields, "status")

	mockStorage.AssertNotCalled(t, "UpdateOrderStatus")
}
