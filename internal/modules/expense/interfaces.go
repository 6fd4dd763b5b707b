package expense

import (
	"context"

	"hallbook/internal/domain"
)

type ExpenseRepository interface {
	Create(ctx context.Context, e *domain.Expense) error
	GetByID(ctx context.Context, id string) (*domain.Expense, error)
	List(ctx context.Context) ([]domain.Expense, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]domain.Expense, error)
	Update(ctx context.Context, e *domain.Expense) error
	Delete(ctx context.Context, id string) error
}

// BookingReader resolves the foreign key on expense creation. An
// expense may only be created against a booking that exists.
type BookingReader interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

type NotificationSender interface {
	ExpenseCreated(ctx context.Context, e *domain.Expense)
	ExpenseUpdated(ctx context.Context, e *domain.Expense)
	ExpenseDeleted(ctx context.Context, id string)
}
