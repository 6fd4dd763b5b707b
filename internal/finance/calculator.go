// Package finance derives monetary figures from bookings and their
// expenses. All functions are pure; amounts are whole rupees in int64.
package finance

import "hallbook/internal/domain"

// nonNegative coerces absent or invalid charge inputs to zero instead of
// failing. Missing charges mean "no charge", not an error.
func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

func days(b *domain.Booking) int64 {
	if b.BookingDays < 1 {
		return 1
	}
	return int64(b.BookingDays)
}

// BaseCost returns the venue cost before additional charges. Fixed-rate
// bookings multiply by booking days the same way per-head bookings do.
func BaseCost(b *domain.Booking) int64 {
	switch b.BookingType {
	case domain.BookingFixed:
		return nonNegative(b.FixedRate) * days(b)
	default:
		guests := int64(b.Guests)
		if guests < 0 {
			guests = 0
		}
		return guests * nonNegative(b.CostPerHead) * days(b)
	}
}

// TotalCost is the base cost plus DJ, decor, TMA and other charges.
func TotalCost(b *domain.Booking) int64 {
	return BaseCost(b) +
		nonNegative(b.DJCharges) +
		nonNegative(b.DecorCharges) +
		nonNegative(b.TMACharges) +
		nonNegative(b.OtherCharges)
}

// Balance is what the client still owes. A negative balance means the
// advance overpaid the total; it is kept as-is for the audit trail.
func Balance(b *domain.Booking) int64 {
	return TotalCost(b) - b.Advance
}

// BookingExpenseTotal sums the expenses attributed to one booking.
func BookingExpenseTotal(expenses []domain.Expense, bookingID string) int64 {
	var sum int64
	for _, e := range expenses {
		if e.BookingID == bookingID {
			sum += nonNegative(e.Amount)
		}
	}
	return sum
}

// Profit is the booking's total cost minus its attributed expenses.
func Profit(b *domain.Booking, expenses []domain.Expense) int64 {
	return TotalCost(b) - BookingExpenseTotal(expenses, b.ID)
}

// TotalRevenue sums the stored total cost across all bookings.
func TotalRevenue(bookings []domain.Booking) int64 {
	var sum int64
	for i := range bookings {
		sum += bookings[i].TotalCost
	}
	return sum
}

// TotalExpenses sums every expense regardless of booking.
func TotalExpenses(expenses []domain.Expense) int64 {
	var sum int64
	for _, e := range expenses {
		sum += nonNegative(e.Amount)
	}
	return sum
}

func NetProfit(revenue, expenses int64) int64 {
	return revenue - expenses
}
