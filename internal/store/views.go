package store

import (
	"context"

	"hallbook/internal/domain"
)

// BookingStore and ExpenseStore expose the shared Store through the
// same repository surface the gorm implementations have, so services
// do not care which backend main wired in. The context is accepted for
// interface parity; nothing here blocks.

type BookingStore struct {
	s *Store
}

func NewBookingStore(s *Store) *BookingStore {
	return &BookingStore{s: s}
}

func (r *BookingStore) Create(_ context.Context, b *domain.Booking) error {
	return r.s.createBooking(b)
}

func (r *BookingStore) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	return r.s.getBooking(id)
}

func (r *BookingStore) List(_ context.Context) ([]domain.Booking, error) {
	return r.s.listBookings(), nil
}

func (r *BookingStore) Update(_ context.Context, b *domain.Booking) error {
	return r.s.updateBooking(b)
}

func (r *BookingStore) Delete(_ context.Context, id string) error {
	return r.s.deleteBooking(id)
}

func (r *BookingStore) AddPayment(_ context.Context, bookingID string, p domain.Payment) (*domain.Booking, error) {
	return r.s.addPayment(bookingID, p)
}

type ExpenseStore struct {
	s *Store
}

func NewExpenseStore(s *Store) *ExpenseStore {
	return &ExpenseStore{s: s}
}

func (r *ExpenseStore) Create(_ context.Context, e *domain.Expense) error {
	return r.s.createExpense(e)
}

func (r *ExpenseStore) GetByID(_ context.Context, id string) (*domain.Expense, error) {
	return r.s.getExpense(id)
}

func (r *ExpenseStore) List(_ context.Context) ([]domain.Expense, error) {
	return r.s.listExpenses(""), nil
}

func (r *ExpenseStore) ListByBookingID(_ context.Context, bookingID string) ([]domain.Expense, error) {
	return r.s.listExpenses(bookingID), nil
}

func (r *ExpenseStore) Update(_ context.Context, e *domain.Expense) error {
	return r.s.updateExpense(e)
}

func (r *ExpenseStore) Delete(_ context.Context, id string) error {
	return r.s.deleteExpense(id)
}
