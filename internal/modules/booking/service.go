package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hallbook/internal/domain"
	"hallbook/internal/finance"
	"hallbook/internal/pkg/validator"
	"hallbook/internal/schedule"
)

type Service struct {
	bookings BookingRepository
	expenses ExpenseReader
	notifs   NotificationSender
}

func NewService(bookings BookingRepository, expenses ExpenseReader, notifs NotificationSender) *Service {
	return &Service{
		bookings: bookings,
		expenses: expenses,
		notifs:   notifs,
	}
}

// Create validates the submission, checks the slot against every other
// booking and stores the record with its derived total cost.
func (s *Service) Create(ctx context.Context, req BookingRequest) (*domain.Booking, error) {
	b, err := s.prepare(ctx, req, "")
	if err != nil {
		return nil, err
	}
	b.BookingDate = time.Now().Format("2006-01-02")

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	if s.notifs != nil {
		s.notifs.BookingCreated(ctx, b)
	}
	return b, nil
}

// Update re-derives the totals and re-checks the slot, excluding the
// booking being edited from the conflict set. The payment history and
// original booking date survive the edit.
func (s *Service) Update(ctx context.Context, id string, req BookingRequest) (*domain.Booking, error) {
	existing, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b, err := s.prepare(ctx, req, id)
	if err != nil {
		return nil, err
	}
	b.ID = id
	b.BookingDate = existing.BookingDate
	b.Payments = existing.Payments

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	if s.notifs != nil {
		s.notifs.BookingUpdated(ctx, b)
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}
	if s.notifs != nil {
		s.notifs.BookingDeleted(ctx, id)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

// AddPayment appends an installment. Bounds checking happens in the
// store so both backends enforce the same (0, remaining] rule.
func (s *Service) AddPayment(ctx context.Context, bookingID string, req PaymentRequest) (*domain.Booking, error) {
	b, err := s.bookings.AddPayment(ctx, bookingID, domain.Payment{
		Amount: req.Amount,
		Method: req.Method,
	})
	if err != nil {
		return nil, err
	}
	if s.notifs != nil {
		s.notifs.PaymentAdded(ctx, b, b.Payments[len(b.Payments)-1])
	}
	return b, nil
}

// Finance returns the derived money view for one booking.
func (s *Service) Finance(ctx context.Context, bookingID string) (*FinanceSummary, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.ListByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	return &FinanceSummary{
		BookingID:    b.ID,
		TotalCost:    finance.TotalCost(b),
		Advance:      b.Advance,
		Balance:      finance.Balance(b),
		ExpenseTotal: finance.BookingExpenseTotal(expenses, b.ID),
		Profit:       finance.Profit(b, expenses),
	}, nil
}

// prepare runs the full submission validation pipeline and returns the
// booking ready to store. excludeID skips the edited booking during the
// overlap scan.
func (s *Service) prepare(ctx context.Context, req BookingRequest, excludeID string) (*domain.Booking, error) {
	if fields := validator.Validate(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}
	if err := schedule.ValidRange(req.StartTime, req.EndTime); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	switch req.BookingType {
	case domain.BookingPerHead:
		if req.CostPerHead <= 0 {
			return nil, &ValidationError{Fields: map[string]string{"CostPerHead": "gt"}}
		}
		req.FixedRate = 0
	case domain.BookingFixed:
		if req.FixedRate <= 0 {
			return nil, &ValidationError{Fields: map[string]string{"FixedRate": "gt"}}
		}
		req.CostPerHead = 0
	}

	existing, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	if id, conflict := schedule.FindConflict(req.FunctionDate, req.StartTime, req.EndTime, existing, excludeID); conflict {
		return nil, &SlotConflictError{ConflictingID: id}
	}

	b := &domain.Booking{
		FunctionDate:  req.FunctionDate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Guests:        req.Guests,
		FunctionType:  req.FunctionType,
		BookedBy:      req.BookedBy,
		Address:       req.Address,
		CNIC:          req.CNIC,
		ContactNumber: req.ContactNumber,
		BookingDays:   req.BookingDays,
		BookingType:   req.BookingType,
		CostPerHead:   req.CostPerHead,
		FixedRate:     req.FixedRate,
		DJCharges:     req.DJCharges,
		DecorCharges:  req.DecorCharges,
		TMACharges:    req.TMACharges,
		OtherCharges:  req.OtherCharges,
		Advance:       req.Advance,
		MenuItems:     cleanMenuItems(req.MenuItems),
		SpecialNotes:  req.SpecialNotes,
	}
	b.TotalCost = finance.TotalCost(b)

	if b.Advance > b.TotalCost {
		return nil, &ValidationError{Fields: map[string]string{"Advance": "lte_total_cost"}}
	}
	return b, nil
}

func cleanMenuItems(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it != "" {
			out = append(out, it)
		}
	}
	return out
}
