package domain

import "time"

type BookingType string

const (
	BookingPerHead BookingType = "per_head"
	BookingFixed   BookingType = "fixed"
)

// Function types offered on the booking form. "Other" stays free text.
var FunctionTypes = []string{
	"Wedding",
	"Engagement",
	"Birthday",
	"Anniversary",
	"Corporate Event",
	"Other",
}

var PredefinedMenuItems = []string{
	"chicken biryani",
	"chicken karhai",
	"mutton korma",
}

const (
	PaymentMethodCash   = "Cash"
	PaymentMethodBank   = "Bank Transfer"
	PaymentMethodCheque = "Cheque"
	PaymentMethodMobile = "Mobile Wallet"
)

// Payment is a single received installment against a booking. The list on
// a booking is append-only; Advance is the running sum of all payments.
type Payment struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	BookingID string    `json:"booking_id" gorm:"index"`
	Amount    int64     `json:"amount"`
	Date      time.Time `json:"date"`
	Method    string    `json:"method"`
}

type Booking struct {
	ID            string      `json:"id" gorm:"primaryKey"`
	FunctionDate  string      `json:"function_date" gorm:"index"` // YYYY-MM-DD
	StartTime     string      `json:"start_time"`                 // HH:MM, same-day range
	EndTime       string      `json:"end_time"`
	Guests        int         `json:"guests"`
	FunctionType  string      `json:"function_type"`
	BookedBy      string      `json:"booked_by"`
	Address       string      `json:"address"`
	CNIC          string      `json:"cnic"`
	ContactNumber string      `json:"contact_number"`
	BookingDays   int         `json:"booking_days"`
	BookingType   BookingType `json:"booking_type"`
	CostPerHead   int64       `json:"cost_per_head"`
	FixedRate     int64       `json:"fixed_rate"`
	DJCharges     int64       `json:"dj_charges"`
	DecorCharges  int64       `json:"decor_charges"`
	TMACharges    int64       `json:"tma_charges"`
	OtherCharges  int64       `json:"other_charges"`
	Advance       int64       `json:"advance"`
	TotalCost     int64       `json:"total_cost"`
	BookingDate   string      `json:"booking_date"` // date the record was taken
	MenuItems     []string    `json:"menu_items" gorm:"serializer:json"`
	Payments      []Payment   `json:"payments" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	SpecialNotes  string      `json:"special_notes,omitempty" gorm:"type:text"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
