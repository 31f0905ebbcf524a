package apply_pattern

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

type MockPatternApplier struct {
	mock.Mock
}

func (m *MockPatternApplier) ApplyPattern(ctx context.Context, orderID, patternID string) (*storage.Measurements, error) {
	args := m.Called(ctx, orderID, patternID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Measurements), args.Error(1)
}

func TestApplyPatternOperation_Success(t *testing.T) {
	mockService := new(MockPatternApplier)

	applied := &storage.Measurements{
		Unit:     storage.UnitCm,
		Standard: storage.StandardMeasures{TourDeTaille: "70"},
		Custom:   []storage.CustomMeasurement{},
	}
	mockService.On("ApplyPattern", mock.Anything, "ord-1", "pat-1").Return(applied, nil)

	router := chi.NewRouter()
	router.Post("/api/orders/{id}/apply-pattern", ApplyPatternOperation(slog.Default(), mockService))

	req := httptest.NewRequest(http.MethodPost, "/api/orders/ord-1/apply-pattern", strings.NewReader(`{"patternId":"pat-1"}`))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "70", resp.Measurements.Standard.TourDeTaille)

	mockService.AssertExpectations(t)
}

func TestApplyPatternOperation_PatternNotFound(t *testing.T) {
	mockService := new(MockPatternApplier)
	mockService.On("ApplyPattern", mock.Anything, "ord-1", "missing").Return(nil, storage.ErrPatternNotFound)

	router := chi.NewRouter()
	router.Post("/api/orders/{id}/apply-pattern", ApplyPatternOperation(slog.Default(), mockService))

	req := httptest.NewRequest(http.MethodPost, "/api/orders/ord-1/apply-pattern", strings.NewReader(`{"patternId":"missing"}`))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Pattern not found")
}

func TestApplyPatternOperation_MissingPatternID(t *testing.T) {
	mockService := new(MockPatternApplier)

	router := chi.NewRouter()
	router.Post("/api/orders/{id}/apply-pattern", ApplyPatternOperation(slog.Default(), mockService))

	req := httptest.NewRequest(http.MethodPost, "/api/orders/ord-1/apply-pattern", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockService.AssertNotCalled(t, "ApplyPattern")
}
