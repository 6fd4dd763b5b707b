package expense

import (
	"context"
	"errors"

	"hallbook/internal/domain"
	"hallbook/internal/pkg/validator"
)

type Service struct {
	expenses ExpenseRepository
	bookings BookingReader
	notifs   NotificationSender
}

func NewService(expenses ExpenseRepository, bookings BookingReader, notifs NotificationSender) *Service {
	return &Service{
		expenses: expenses,
		bookings: bookings,
		notifs:   notifs,
	}
}

// Create stores an expense against an existing booking. Unknown booking
// ids are rejected; orphan expenses cannot be created.
func (s *Service) Create(ctx context.Context, req ExpenseRequest) (*domain.Expense, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	e := &domain.Expense{
		BookingID:    req.BookingID,
		Title:        req.Title,
		Category:     req.Category,
		Amount:       req.Amount,
		ReceiptImage: req.ReceiptImage,
	}
	if err := s.expenses.Create(ctx, e); err != nil {
		return nil, err
	}
	if s.notifs != nil {
		s.notifs.ExpenseCreated(ctx, e)
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, id string, req ExpenseRequest) (*domain.Expense, error) {
	existing, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	e := &domain.Expense{
		ID:           id,
		BookingID:    req.BookingID,
		Title:        req.Title,
		Category:     req.Category,
		Amount:       req.Amount,
		ReceiptImage: req.ReceiptImage,
		CreatedAt:    existing.CreatedAt,
	}
	if err := s.expenses.Update(ctx, e); err != nil {
		return nil, err
	}
	if s.notifs != nil {
		s.notifs.ExpenseUpdated(ctx, e)
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.expenses.Delete(ctx, id); err != nil {
		return err
	}
	if s.notifs != nil {
		s.notifs.ExpenseDeleted(ctx, id)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	return s.expenses.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Expense, error) {
	return s.expenses.List(ctx)
}

func (s *Service) ListByBookingID(ctx context.Context, bookingID string) ([]domain.Expense, error) {
	return s.expenses.ListByBookingID(ctx, bookingID)
}

func (s *Service) validate(ctx context.Context, req ExpenseRequest) error {
	if fields := validator.Validate(req); fields != nil {
		return &ValidationError{Fields: fields}
	}
	if _, err := s.bookings.GetByID(ctx, req.BookingID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &ValidationError{Fields: map[string]string{"BookingID": "exists"}}
		}
		return err
	}
	return nil
}
