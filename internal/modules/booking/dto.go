package booking

import "hallbook/internal/domain"

// BookingRequest is the submission payload for both create and edit.
type BookingRequest struct {
	FunctionDate  string             `json:"function_date" validate:"required,datetime=2006-01-02"`
	StartTime     string             `json:"start_time" validate:"required"`
	EndTime       string             `json:"end_time" validate:"required"`
	Guests        int                `json:"guests" validate:"required,gt=0"`
	FunctionType  string             `json:"function_type" validate:"required"`
	BookedBy      string             `json:"booked_by" validate:"required"`
	Address       string             `json:"address" validate:"required"`
	CNIC          string             `json:"cnic" validate:"required,cnic"`
	ContactNumber string             `json:"contact_number" validate:"required,pkphone"`
	BookingDays   int                `json:"booking_days" validate:"required,gte=1"`
	BookingType   domain.BookingType `json:"booking_type" validate:"required,oneof=per_head fixed"`
	CostPerHead   int64              `json:"cost_per_head" validate:"gte=0"`
	FixedRate     int64              `json:"fixed_rate" validate:"gte=0"`
	DJCharges     int64              `json:"dj_charges" validate:"gte=0"`
	DecorCharges  int64              `json:"decor_charges" validate:"gte=0"`
	TMACharges    int64              `json:"tma_charges" validate:"gte=0"`
	OtherCharges  int64              `json:"other_charges" validate:"gte=0"`
	Advance       int64              `json:"advance" validate:"gte=0"`
	MenuItems     []string           `json:"menu_items"`
	SpecialNotes  string             `json:"special_notes"`
}

type PaymentRequest struct {
	Amount int64  `json:"amount" validate:"required,gt=0"`
	Method string `json:"method"`
}

// FinanceSummary is the derived money view handed to the UI.
type FinanceSummary struct {
	BookingID    string `json:"booking_id"`
	TotalCost    int64  `json:"total_cost"`
	Advance      int64  `json:"advance"`
	Balance      int64  `json:"balance"`
	ExpenseTotal int64  `json:"expense_total"`
	Profit       int64  `json:"profit"`
}
