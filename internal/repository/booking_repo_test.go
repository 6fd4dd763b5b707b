package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"hallbook/internal/database"
	"hallbook/internal/domain"
	"hallbook/internal/finance"
)

func setupTestRepos(t *testing.T) (*BookingRepository, *ExpenseRepository) {
	t.Helper()
	dsn := fmt.Sprintf("file:hallbook_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return NewBookingRepository(db), NewExpenseRepository(db)
}

func sampleBooking() *domain.Booking {
	b := &domain.Booking{
		FunctionDate: "2025-06-01",
		StartTime:    "18:00",
		EndTime:      "23:00",
		Guests:       100,
		FunctionType: "Wedding",
		BookedBy:     "Ahmed Khan",
		CNIC:         "12345-1234567-1",
		BookingType:  domain.BookingPerHead,
		CostPerHead:  1000,
		BookingDays:  1,
		DJCharges:    5000,
		MenuItems:    []string{"chicken biryani", "mutton korma"},
	}
	b.TotalCost = finance.TotalCost(b)
	return b
}

func TestBookingRoundTrip(t *testing.T) {
	bookings, _ := setupTestRepos(t)
	ctx := context.Background()

	b := sampleBooking()
	if err := bookings.Create(ctx, b); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if b.ID == "" {
		t.Fatal("Create did not assign an id")
	}

	got, err := bookings.GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.TotalCost != 105000 {
		t.Fatalf("expected total cost 105000, got %d", got.TotalCost)
	}
	if len(got.MenuItems) != 2 {
		t.Fatalf("menu items lost: %v", got.MenuItems)
	}
}

func TestAddPaymentPersistsAdvanceAndHistory(t *testing.T) {
	bookings, _ := setupTestRepos(t)
	ctx := context.Background()

	b := sampleBooking()
	if err := bookings.Create(ctx, b); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := bookings.AddPayment(ctx, b.ID, domain.Payment{Amount: 50000})
	if err != nil {
		t.Fatalf("AddPayment returned error: %v", err)
	}
	if updated.Advance != 50000 {
		t.Fatalf("expected advance 50000, got %d", updated.Advance)
	}
	if len(updated.Payments) != 1 {
		t.Fatalf("expected one payment, got %d", len(updated.Payments))
	}
	if finance.Balance(updated) != 55000 {
		t.Fatalf("expected balance 55000, got %d", finance.Balance(updated))
	}

	if _, err := bookings.AddPayment(ctx, b.ID, domain.Payment{Amount: 55001}); !errors.Is(err, domain.ErrOverpayment) {
		t.Fatalf("expected ErrOverpayment, got %v", err)
	}
}

func TestDeleteCascadesExpensesAndPayments(t *testing.T) {
	bookings, expenses := setupTestRepos(t)
	ctx := context.Background()

	b := sampleBooking()
	if err := bookings.Create(ctx, b); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := bookings.AddPayment(ctx, b.ID, domain.Payment{Amount: 10000}); err != nil {
		t.Fatalf("AddPayment returned error: %v", err)
	}
	e := &domain.Expense{BookingID: b.ID, Title: "flowers", Category: "Decoration", Amount: 20000}
	if err := expenses.Create(ctx, e); err != nil {
		t.Fatalf("Create expense returned error: %v", err)
	}

	if err := bookings.Delete(ctx, b.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := bookings.GetByID(ctx, b.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	left, err := expenses.ListByBookingID(ctx, b.ID)
	if err != nil {
		t.Fatalf("ListByBookingID returned error: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("expected cascade delete of expenses, found %d", len(left))
	}

	if err := bookings.Delete(ctx, b.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestExpenseCRUD(t *testing.T) {
	_, expenses := setupTestRepos(t)
	ctx := context.Background()

	e := &domain.Expense{BookingID: "b1", Title: "staff wages", Category: "Labour Cost", Amount: 15000}
	if err := expenses.Create(ctx, e); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	e.Amount = 18000
	if err := expenses.Update(ctx, e); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	got, err := expenses.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Amount != 18000 {
		t.Fatalf("expected amount 18000, got %d", got.Amount)
	}

	if err := expenses.Delete(ctx, e.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := expenses.Delete(ctx, e.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
