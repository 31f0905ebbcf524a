package storage

import "errors"

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrPatternNotFound = errors.New("pattern not found")

	// ErrClientHasOrders blocks client deletion while orders still reference
	// the client.
	ErrClientHasOrders = errors.New("client is referenced by existing orders")
)
