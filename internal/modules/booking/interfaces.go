package booking

import (
	"context"

	"hallbook/internal/domain"
)

// BookingRepository is the storage contract the service works against.
// Both the in-memory snapshot store and the gorm repositories satisfy it.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id string) error
	AddPayment(ctx context.Context, bookingID string, p domain.Payment) (*domain.Booking, error)
}

// ExpenseReader is the slice of the expense store needed for profit
// figures.
type ExpenseReader interface {
	ListByBookingID(ctx context.Context, bookingID string) ([]domain.Expense, error)
}

// NotificationSender receives fully computed bookings after each
// mutation. TotalCost and Advance are guaranteed current on handoff;
// formatting (WhatsApp, SMS, websocket frames) is the receiver's
// business.
type NotificationSender interface {
	BookingCreated(ctx context.Context, b *domain.Booking)
	BookingUpdated(ctx context.Context, b *domain.Booking)
	BookingDeleted(ctx context.Context, id string)
	PaymentAdded(ctx context.Context, b *domain.Booking, p domain.Payment)
}
