package domain

import "time"

// Predefined expense categories. Anything else entered on the form is
// kept as free text under "Other".
var ExpenseCategories = []string{
	"Labour Cost",
	"Maintenance",
	"Decoration",
	"Groceries",
	"Other",
}

type Expense struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	BookingID    string    `json:"booking_id" gorm:"index"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Amount       int64     `json:"amount"`
	ReceiptImage string    `json:"receipt_image,omitempty" gorm:"type:text"` // base64 or URL, opaque
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
