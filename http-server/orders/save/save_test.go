package save

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atelier/internal/storage"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockOrderSaver struct {
	mock.Mock
}

func (m *MockOrderSaver) SaveOrder(ctx context.Context, o storage.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func TestSaveOrder_Success(t *testing.T) {
	mockStorage := new(MockOrderSaver)
	mockStorage.On("SaveOrder", mock.Anything, mock.MatchedBy(func(o storage.Order) bool {
		return o.Title == "Robe de Soirée Élégance" && o.ID != ""
	})).Return(nil)

	handler := SaveOrder(slog.Default(), mockStorage)

	body := `{
		"clientId": "1",
		"title": "Robe de Soirée Élégance",
		"description": "Robe longue en satin de soie bleu nuit",
		"images": [],
		"deliveryDate": "2024-06-01T00:00:00Z",
		"totalPrice": 450,
		"payments": [{"amount": 200, "date": "2024-05-01T00:00:00Z"}],
		"status": "En cours",
		"measurements": {"unit": "cm", "standard": {"tourDePoitrine": "92"}, "custom": []}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.ID)

	mockStorage.AssertExpectations(t)
}

// An order belongs either to a registered client or to a guest, never both
// and never neither.
func TestSaveOrder_OwnerInvariant(t *testing.T) {
	mockStorage := new(MockOrderSaver)
	handler := SaveOrder(slog.Default(), mockStorage)

	cases := []struct {
		name string
		body string
	}{
		{
			name: "both owners",
			body: `{"clientId":"1","guestClientName":"Awa","title":"Boubou","deliveryDate":"2024-06-01T00:00:00Z","measurements":{"unit":"cm"}}`,
		},
		{
			name: "no owner",
			body: `{"title":"Boubou","deliveryDate":"2024-06-01T00:00:00Z","measurements":{"unit":"cm"}}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)

			var resp Response
			err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
			assert.NoError(t, err)
			assert.Contains(t, resp.Fields, "clientId")
		})
	}

	mockStorage.AssertNotCalled(t, "SaveOrder")
}

func TestSaveOrder_NegativeAmounts(t *testing.T) {
	mockStorage := new(MockOrderSaver)
	handler := SaveOrder(slog.Default(), mockStorage)

	body := `{
		"clientId": "1",
		"title": "Costume",
		"deliveryDate": "2024-06-01T00:00:00Z",
		"totalPrice": -100,
		"payments": [{"amount": -20, "date": "2024-05-01T00:00:00Z"}],
		"measurements": {"unit": "cm"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Contains(t, resp.Fields, "totalPrice")
	assert.Contains(t, resp.Fields, "payments")

	mockStorage.AssertNotCalled(t, "SaveOrder")
}

// A missing status on a new order defaults to "En attente".
func TestSaveOrder_DefaultStatus(t *testing.T) {
	mockStorage := new(MockOrderSaver)
	mockStorage.On("SaveOrder", mock.Anything, mock.MatchedBy(func(o storage.Order) bool {
		return o.Status == storage.StatusPending
	})).Return(nil)

	handler := SaveOrder(slog.Default(), mockStorage)

	body := `{"clientId":"1","title":"Chemise en Lin","deliveryDate":"2024-06-01T00:00:00Z","measurements":{"unit":"cm"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockStorage.AssertExpectations(t)
}
