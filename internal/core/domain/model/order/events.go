package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChangeKind names what happened to an order.
type ChangeKind string

const (
	ChangeCreated       ChangeKind = "ORDER_CREATED"
	ChangeUpdated       ChangeKind = "ORDER_UPDATED"
	ChangeStatusChanged ChangeKind = "ORDER_STATUS_CHANGED"
	ChangeDeleted       ChangeKind = "ORDER_DELETED"
)

// Change is a mutation recorded on an order and not yet published.
type Change struct {
	Kind           ChangeKind
	PreviousStatus Status
	OccurredAt     time.Time
}

// ChangedEvent is the published form of a Change. It is built after commit,
// when the order carries its storage identity.
type ChangedEvent struct {
	EventID        string          `json:"eventId"`
	Type           ChangeKind      `json:"type"`
	OrderID        int64           `json:"orderId"`
	CustomerEmail  string          `json:"customerEmail"`
	Status         Status          `json:"status"`
	PreviousStatus Status          `json:"previousStatus,omitempty"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	OccurredAt     time.Time       `json:"occurredAt"`
}

// NewChangedEvent describes change c of order o.
func NewChangedEvent(o *Order, c Change) ChangedEvent {
	return ChangedEvent{
		EventID:        uuid.NewString(),
		Type:           c.Kind,
		OrderID:        o.ID(),
		CustomerEmail:  o.CustomerEmail(),
		Status:         o.Status(),
		PreviousStatus: c.PreviousStatus,
		TotalAmount:    o.TotalAmount(),
		OccurredAt:     c.OccurredAt,
	}
}

// ChangedEvents turns the pending changes of o into events.
func ChangedEvents(o *Order) []ChangedEvent {
	changes := o.PendingChanges()
	events := make([]ChangedEvent, 0, len(changes))
	for _, c := range changes {
		events = append(events, NewChangedEvent(o, c))
	}
	return events
}
