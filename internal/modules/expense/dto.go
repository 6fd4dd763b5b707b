package expense

// ExpenseRequest serves both create and edit. Category is usually one
// of domain.ExpenseCategories but free text is kept as entered.
type ExpenseRequest struct {
	BookingID    string `json:"booking_id" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Category     string `json:"category" validate:"required"`
	Amount       int64  `json:"amount" validate:"required,gt=0"`
	ReceiptImage string `json:"receipt_image"`
}
