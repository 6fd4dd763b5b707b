package events

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hallbook/internal/domain"
)

// Event is one mutation as seen by connected clients. Booking payloads
// arrive with TotalCost and Advance already derived, so clients never
// recompute money figures.
type Event struct {
	Entity  string      `json:"entity"` // "booking" | "expense"
	Action  string      `json:"action"` // "created" | "updated" | "deleted" | "payment_added"
	ID      string      `json:"id"`
	At      time.Time   `json:"at"`
	Payload interface{} `json:"payload,omitempty"`
}

// Feed adapts the hub to the notification interfaces the booking and
// expense services expect.
type Feed struct {
	hub *Hub
	log *zap.Logger
}

func NewFeed(hub *Hub, log *zap.Logger) *Feed {
	return &Feed{hub: hub, log: log}
}

func (f *Feed) publish(ev Event) {
	ev.At = time.Now()
	f.hub.Broadcast(ev)
	f.log.Debug("event published",
		zap.String("entity", ev.Entity),
		zap.String("action", ev.Action),
		zap.String("id", ev.ID),
	)
}

func (f *Feed) BookingCreated(_ context.Context, b *domain.Booking) {
	f.publish(Event{Entity: "booking", Action: "created", ID: b.ID, Payload: b})
}

func (f *Feed) BookingUpdated(_ context.Context, b *domain.Booking) {
	f.publish(Event{Entity: "booking", Action: "updated", ID: b.ID, Payload: b})
}

func (f *Feed) BookingDeleted(_ context.Context, id string) {
	f.publish(Event{Entity: "booking", Action: "deleted", ID: id})
}

func (f *Feed) PaymentAdded(_ context.Context, b *domain.Booking, p domain.Payment) {
	f.publish(Event{Entity: "booking", Action: "payment_added", ID: b.ID, Payload: paymentPayload{Booking: b, Payment: p}})
}

func (f *Feed) ExpenseCreated(_ context.Context, e *domain.Expense) {
	f.publish(Event{Entity: "expense", Action: "created", ID: e.ID, Payload: e})
}

func (f *Feed) ExpenseUpdated(_ context.Context, e *domain.Expense) {
	f.publish(Event{Entity: "expense", Action: "updated", ID: e.ID, Payload: e})
}

func (f *Feed) ExpenseDeleted(_ context.Context, id string) {
	f.publish(Event{Entity: "expense", Action: "deleted", ID: id})
}

type paymentPayload struct {
	Booking *domain.Booking `json:"booking"`
	Payment domain.Payment  `json:"payment"`
}
