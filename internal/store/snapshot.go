package store

import (
	"encoding/json"
	"fmt"
	"sort"

	"hallbook/internal/domain"
)

// Snapshot is the whole store detached from the lock, in a stable order.
type Snapshot struct {
	Bookings []domain.Booking `json:"bookings"`
	Expenses []domain.Expense `json:"expenses"`
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Bookings: make([]domain.Booking, 0, len(s.bookings)),
		Expenses: make([]domain.Expense, 0, len(s.expenses)),
	}
	for _, b := range s.bookings {
		snap.Bookings = append(snap.Bookings, *cloneBooking(b))
	}
	for _, e := range s.expenses {
		snap.Expenses = append(snap.Expenses, *e)
	}
	sortBookings(snap.Bookings)
	sortExpenses(snap.Expenses)
	return snap
}

// Snapshot serializes the whole store to a JSON blob.
func (s *Store) Snapshot() ([]byte, error) {
	s.mu.RLock()
	snap := s.snapshotLocked()
	s.mu.RUnlock()
	return json.Marshal(snap)
}

// Restore replaces the store contents from a snapshot blob. An empty
// blob resets the store. The onMutate hook is not fired.
func (s *Store) Restore(data []byte) error {
	var snap Snapshot
	if len(data) > 0 {
		if err := json.Unmarshal(data, &snap); err != nil {
			return fmt.Errorf("decode snapshot: %w", err)
		}
	}
	s.RestoreSnapshot(snap)
	return nil
}

// RestoreSnapshot replaces the store contents in one swap.
func (s *Store) RestoreSnapshot(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = make(map[string]*domain.Booking, len(snap.Bookings))
	for i := range snap.Bookings {
		b := snap.Bookings[i]
		s.bookings[b.ID] = &b
	}
	s.expenses = make(map[string]*domain.Expense, len(snap.Expenses))
	for i := range snap.Expenses {
		e := snap.Expenses[i]
		s.expenses[e.ID] = &e
	}
}

func sortBookings(bookings []domain.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].FunctionDate != bookings[j].FunctionDate {
			return bookings[i].FunctionDate < bookings[j].FunctionDate
		}
		if bookings[i].StartTime != bookings[j].StartTime {
			return bookings[i].StartTime < bookings[j].StartTime
		}
		return bookings[i].ID < bookings[j].ID
	})
}

func sortExpenses(expenses []domain.Expense) {
	sort.Slice(expenses, func(i, j int) bool {
		if !expenses[i].CreatedAt.Equal(expenses[j].CreatedAt) {
			return expenses[i].CreatedAt.Before(expenses[j].CreatedAt)
		}
		return expenses[i].ID < expenses[j].ID
	})
}
