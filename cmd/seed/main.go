package main

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"hallbook/internal/database"
	"hallbook/internal/domain"
	"hallbook/internal/finance"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hallbook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM expenses")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM bookings")

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	now := time.Now()
	today := now.Format("2006-01-02")

	wedding := domain.Booking{
		ID:            uuid.NewString(),
		FunctionType:  "Wedding",
		BookedBy:      "Ahmed Khan",
		Address:       "House 12, Street 4, Gulberg, Lahore",
		CNIC:          "35201-1234567-1",
		ContactNumber: "0300-1234567",
		BookingDate:   today,
		FunctionDate:  now.AddDate(0, 0, 7).Format("2006-01-02"),
		StartTime:     "18:00",
		EndTime:       "23:00",
		BookingDays:   1,
		BookingType:   domain.BookingPerHead,
		Guests:        300,
		CostPerHead:   1500,
		DJCharges:     25000,
		DecorCharges:  40000,
		MenuItems:     []string{"chicken biryani", "chicken karhai"},
		Advance:       100000,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	wedding.TotalCost = finance.TotalCost(&wedding)
	db.Create(&wedding)

	mehndi := domain.Booking{
		ID:            uuid.NewString(),
		FunctionType:  "Engagement",
		BookedBy:      "Sana Malik",
		Address:       "Flat 3B, Clifton Block 5, Karachi",
		CNIC:          "42101-7654321-3",
		ContactNumber: "0321-7654321",
		BookingDate:   today,
		FunctionDate:  now.AddDate(0, 0, 14).Format("2006-01-02"),
		StartTime:     "19:00",
		EndTime:       "23:30",
		BookingDays:   2,
		BookingType:   domain.BookingFixed,
		FixedRate:     200000,
		MenuItems:     []string{"mutton korma"},
		Advance:       150000,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	mehndi.TotalCost = finance.TotalCost(&mehndi)
	db.Create(&mehndi)

	// ================== PAYMENTS ==================
	log.Println("Creating payments...")

	db.Create(&domain.Payment{
		ID:        uuid.NewString(),
		BookingID: wedding.ID,
		Amount:    100000,
		Date:      now,
		Method:    domain.PaymentMethodCash,
	})
	db.Create(&domain.Payment{
		ID:        uuid.NewString(),
		BookingID: mehndi.ID,
		Amount:    150000,
		Date:      now,
		Method:    domain.PaymentMethodBank,
	})

	// ================== EXPENSES ==================
	log.Println("Creating expenses...")

	expenses := []domain.Expense{
		{Title: "Waiter staff for wedding", Category: "Labour Cost", Amount: 25000, BookingID: wedding.ID},
		{Title: "Stage flowers", Category: "Decoration", Amount: 18000, BookingID: wedding.ID},
		{Title: "Rice and spices", Category: "Groceries", Amount: 32000, BookingID: wedding.ID},
		{Title: "Generator fuel", Category: "Maintenance", Amount: 9000, BookingID: wedding.ID},
		{Title: "Fairy lights", Category: "Decoration", Amount: 12000, BookingID: mehndi.ID},
	}
	for i := range expenses {
		expenses[i].ID = uuid.NewString()
		expenses[i].CreatedAt = now
		expenses[i].UpdatedAt = now
		db.Create(&expenses[i])
	}

	log.Println("Seed complete:")
	log.Printf("  bookings: 2 (wedding total %d, engagement total %d)", wedding.TotalCost, mehndi.TotalCost)
	log.Printf("  payments: 2, expenses: %d", len(expenses))
}
