// Package store holds the booking and expense collections in memory,
// guarded by a single writer lock. Every successful mutation hands a
// fresh snapshot to the registered persistence hook, so the backing
// medium stays a swappable concern.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"hallbook/internal/domain"
	"hallbook/internal/finance"
)

type Store struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
	expenses map[string]*domain.Expense
	onMutate func(Snapshot)
}

func New() *Store {
	return &Store{
		bookings: make(map[string]*domain.Booking),
		expenses: make(map[string]*domain.Expense),
	}
}

// OnMutate registers the hook invoked after every successful mutation.
// The hook receives a detached snapshot and runs outside the lock.
func (s *Store) OnMutate(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onMutate = fn
}

// mutate runs fn under the write lock and fires the onMutate hook when
// fn succeeds.
func (s *Store) mutate(fn func() error) error {
	s.mu.Lock()
	err := fn()
	var snap Snapshot
	notify := err == nil && s.onMutate != nil
	if notify {
		snap = s.snapshotLocked()
	}
	hook := s.onMutate
	s.mu.Unlock()

	if notify {
		hook(snap)
	}
	return err
}

func (s *Store) createBooking(b *domain.Booking) error {
	return s.mutate(func() error {
		if b.ID == "" {
			b.ID = uuid.NewString()
		}
		now := time.Now()
		b.CreatedAt = now
		b.UpdatedAt = now
		s.bookings[b.ID] = cloneBooking(b)
		return nil
	})
}

func (s *Store) getBooking(id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneBooking(b), nil
}

func (s *Store) listBookings() []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, *cloneBooking(b))
	}
	sortBookings(out)
	return out
}

func (s *Store) updateBooking(b *domain.Booking) error {
	return s.mutate(func() error {
		prev, ok := s.bookings[b.ID]
		if !ok {
			return domain.ErrNotFound
		}
		b.CreatedAt = prev.CreatedAt
		b.UpdatedAt = time.Now()
		s.bookings[b.ID] = cloneBooking(b)
		return nil
	})
}

// deleteBooking removes the booking and cascade-deletes its expenses so
// no orphaned expense rows survive.
func (s *Store) deleteBooking(id string) error {
	return s.mutate(func() error {
		if _, ok := s.bookings[id]; !ok {
			return domain.ErrNotFound
		}
		delete(s.bookings, id)
		for eid, e := range s.expenses {
			if e.BookingID == id {
				delete(s.expenses, eid)
			}
		}
		return nil
	})
}

// addPayment appends a payment and bumps the cumulative advance. The
// amount must fall inside (0, remaining balance].
func (s *Store) addPayment(bookingID string, p domain.Payment) (*domain.Booking, error) {
	var out *domain.Booking
	err := s.mutate(func() error {
		b, ok := s.bookings[bookingID]
		if !ok {
			return domain.ErrNotFound
		}
		remaining := finance.Balance(b)
		if p.Amount <= 0 || p.Amount > remaining {
			return domain.ErrOverpayment
		}
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if p.Date.IsZero() {
			p.Date = time.Now()
		}
		if p.Method == "" {
			p.Method = domain.PaymentMethodCash
		}
		p.BookingID = bookingID
		b.Payments = append(b.Payments, p)
		b.Advance += p.Amount
		b.UpdatedAt = time.Now()
		out = cloneBooking(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) createExpense(e *domain.Expense) error {
	return s.mutate(func() error {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		now := time.Now()
		e.CreatedAt = now
		e.UpdatedAt = now
		cp := *e
		s.expenses[e.ID] = &cp
		return nil
	})
}

func (s *Store) getExpense(id string) (*domain.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.expenses[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (s *Store) listExpenses(bookingID string) []domain.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		if bookingID != "" && e.BookingID != bookingID {
			continue
		}
		out = append(out, *e)
	}
	sortExpenses(out)
	return out
}

func (s *Store) updateExpense(e *domain.Expense) error {
	return s.mutate(func() error {
		prev, ok := s.expenses[e.ID]
		if !ok {
			return domain.ErrNotFound
		}
		e.CreatedAt = prev.CreatedAt
		e.UpdatedAt = time.Now()
		cp := *e
		s.expenses[e.ID] = &cp
		return nil
	})
}

func (s *Store) deleteExpense(id string) error {
	return s.mutate(func() error {
		if _, ok := s.expenses[id]; !ok {
			return domain.ErrNotFound
		}
		delete(s.expenses, id)
		return nil
	})
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	cp := *b
	if b.MenuItems != nil {
		cp.MenuItems = append([]string(nil), b.MenuItems...)
	}
	if b.Payments != nil {
		cp.Payments = append([]domain.Payment(nil), b.Payments...)
	}
	return &cp
}
