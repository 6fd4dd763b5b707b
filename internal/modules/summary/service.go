package summary

import (
	"context"
	"sort"

	"hallbook/internal/domain"
	"hallbook/internal/finance"
)

type BookingLister interface {
	List(ctx context.Context) ([]domain.Booking, error)
}

type ExpenseLister interface {
	List(ctx context.Context) ([]domain.Expense, error)
}

// FunctionTypeSummary groups bookings by event kind for the order
// summary page.
type FunctionTypeSummary struct {
	FunctionType string `json:"function_type"`
	Count        int    `json:"count"`
	Revenue      int64  `json:"revenue"`
}

type Summary struct {
	TotalBookings   int                   `json:"total_bookings"`
	TotalRevenue    int64                 `json:"total_revenue"`
	TotalExpenses   int64                 `json:"total_expenses"`
	NetProfit       int64                 `json:"net_profit"`
	TotalAdvance    int64                 `json:"total_advance"`
	TotalReceivable int64                 `json:"total_receivable"`
	ByFunctionType  []FunctionTypeSummary `json:"by_function_type"`
}

type Service struct {
	bookings BookingLister
	expenses ExpenseLister
}

func NewService(bookings BookingLister, expenses ExpenseLister) *Service {
	return &Service{bookings: bookings, expenses: expenses}
}

// Build computes the dashboard aggregates on demand; nothing here is
// ever stored.
func (s *Service) Build(ctx context.Context) (*Summary, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return nil, err
	}

	revenue := finance.TotalRevenue(bookings)
	spent := finance.TotalExpenses(expenses)

	out := &Summary{
		TotalBookings: len(bookings),
		TotalRevenue:  revenue,
		TotalExpenses: spent,
		NetProfit:     finance.NetProfit(revenue, spent),
	}

	grouped := make(map[string]*FunctionTypeSummary)
	for i := range bookings {
		b := &bookings[i]
		out.TotalAdvance += b.Advance
		out.TotalReceivable += b.TotalCost - b.Advance

		g, ok := grouped[b.FunctionType]
		if !ok {
			g = &FunctionTypeSummary{FunctionType: b.FunctionType}
			grouped[b.FunctionType] = g
		}
		g.Count++
		g.Revenue += b.TotalCost
	}

	out.ByFunctionType = make([]FunctionTypeSummary, 0, len(grouped))
	for _, g := range grouped {
		out.ByFunctionType = append(out.ByFunctionType, *g)
	}
	sort.Slice(out.ByFunctionType, func(i, j int) bool {
		return out.ByFunctionType[i].FunctionType < out.ByFunctionType[j].FunctionType
	})

	return out, nil
}
