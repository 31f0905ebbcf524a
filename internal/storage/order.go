package storage

import "time"

const (
	StatusPending    = "En attente"
	StatusInProgress = "En cours"
	StatusReady      = "Prêt à livrer"
	StatusCompleted  = "Terminée"
)

// KnownStatuses lists every status an order may take, in workflow order.
// Transitions are free-form: any status is reachable from any other.
var KnownStatuses = []string{StatusPending, StatusInProgress, StatusReady, StatusCompleted}

func IsKnownStatus(status string) bool {
	for _, s := range KnownStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Payment struct {
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

// Order belongs either to a registered client (ClientID set) or to an ad-hoc
// guest (GuestClientName set) — exactly one of the two.
type Order struct {
	ID                 string       `json:"id"`
	ClientID           *string      `json:"clientId,omitempty"`
	GuestClientName    *string      `json:"guestClientName,omitempty"`
	GuestClientContact *string      `json:"guestClientContact,omitempty"`
	Title              string       `json:"title"`
	Description        string       `json:"description"`
	Images             []string     `json:"images"`
	ProgressImages     []string     `json:"progressImages,omitempty"`
	DeliveryDate       time.Time    `json:"deliveryDate"`
	TotalPrice         float64      `json:"totalPrice"`
	Payments           []Payment    `json:"payments"`
	Status             string       `json:"status"`
	Measurements       Measurements `json:"measurements"`
}

// OrderWithClient is the listing shape: the order plus the resolved display
// name of its owner.
type OrderWithClient struct {
	Order
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail,omitempty"`
}

// ResolveClientName downgrades referential failures to display labels: a
// dangling client id never raises, it renders as "Client Inconnu".
func ResolveClientName(o *Order, client *Client) string {
	if o.ClientID != nil && *o.ClientID != "" {
		if client == nil {
			return "Client Inconnu"
		}
		return client.FirstName + " " + client.LastName
	}
	if o.GuestClientName != nil && *o.GuestClientName != "" {
		return *o.GuestClientName
	}
	return "Client Invité"
}
