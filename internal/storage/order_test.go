package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestResolveClientName_Registered(t *testing.T) {
	order := &Order{ClientID: strPtr("1")}
	client := &Client{ID: "1", FirstName: "Marie", LastName: "Dubois"}

	assert.Equal(t, "Marie Dubois", ResolveClientName(order, client))
}

// A dangling client id renders as a label, it never raises.
func TestResolveClientName_DanglingReference(t *testing.T) {
	order := &Order{ClientID: strPtr("gone")}

	assert.Equal(t, "Client Inconnu", ResolveClientName(order, nil))
}

func TestResolveClientName_Guest(t *testing.T) {
	order := &Order{GuestClientName: strPtr("Awa Traoré")}

	assert.Equal(t, "Awa Traoré", ResolveClientName(order, nil))
}

func TestResolveClientName_NoOwnerInfo(t *testing.T) {
	assert.Equal(t, "Client Invité", ResolveClientName(&Order{}, nil))
}

func TestOrderValidate_ExactlyOneOwner(t *testing.T) {
	base := Order{
		Title:        "Robe de Soirée",
		DeliveryDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:       StatusPending,
		Measurements: Measurements{Unit: UnitCm},
	}

	valid := base
	valid.ClientID = strPtr("1")
	assert.Empty(t, valid.Validate())

	both := base
	both.ClientID = strPtr("1")
	both.GuestClientName = strPtr("Invitée")
	assert.Contains(t, both.Validate(), "clientId")

	neither := base
	assert.Contains(t, neither.Validate(), "clientId")
}

func TestOrderValidate_Money(t *testing.T) {
	order := Order{
		ClientID:     strPtr("1"),
		Title:        "Costume",
		DeliveryDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:       StatusInProgress,
		TotalPrice:   -10,
		Payments:     []Payment{{Amount: -5}},
		Measurements: Measurements{Unit: UnitCm},
	}

	fields := order.Validate()
	assert.Contains(t, fields, "totalPrice")
	assert.Contains(t, fields, "payments")
}

func TestOrderValidate_Status(t *testing.T) {
	order := Order{
		ClientID:     strPtr("1"),
		Title:        "Chemise",
		DeliveryDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:       "Annulée",
		Measurements: Measurements{Unit: UnitCm},
	}

	assert.Contains(t, order.Validate(), "status")
}

func TestClientValidate(t *testing.T) {
	client := Client{FirstName: "Marie", LastName: "Dubois", Email: "marie.dubois@example.com"}
	assert.Empty(t, client.Validate())

	client.Email = "not-an-email"
	assert.Contains(t, client.Validate(), "email")

	client = Client{}
	fields := client.Validate()
	assert.Contains(t, fields, "firstName")
	assert.Contains(t, fields, "lastName")
	assert.Contains(t, fields, "email")
}

func TestMeasurementsValidate_CustomEntries(t *testing.T) {
	pattern := Pattern{
		Name: "Tailleur",
		Measurements: Measurements{
			Unit:   UnitCm,
			Custom: []CustomMeasurement{{Name: "", Value: "38"}},
		},
	}

	assert.Contains(t, pattern.Validate(), "measurements")
}

func TestIsKnownStatus(t *testing.T) {
	for _, s := range KnownStatuses {
		assert.True(t, IsKnownStatus(s))
	}
	assert.False(t, IsKnownStatus("Annulée"))
	assert.False(t, IsKnownStatus(""))
}
