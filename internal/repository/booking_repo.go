package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"hallbook/internal/domain"
	"hallbook/internal/finance"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("booking %s already exists: %w", b.ID, err)
		}
		return err
	}
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).Preload("Payments").First(&b, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Payments").
		Order("function_date, start_time, id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&domain.Booking{}).Where("id = ?", b.ID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return domain.ErrNotFound
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(b).Error
	})
}

// Delete removes the booking together with its payments and expenses.
func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&domain.Booking{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		if err := tx.Delete(&domain.Payment{}, "booking_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Expense{}, "booking_id = ?", id).Error
	})
}

// AddPayment appends a payment row and bumps the cumulative advance in
// one transaction. The amount must fall inside (0, remaining balance].
func (r *BookingRepository) AddPayment(ctx context.Context, bookingID string, p domain.Payment) (*domain.Booking, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b domain.Booking
		if err := tx.First(&b, "id = ?", bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		remaining := finance.Balance(&b)
		if p.Amount <= 0 || p.Amount > remaining {
			return domain.ErrOverpayment
		}

		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if p.Date.IsZero() {
			p.Date = time.Now()
		}
		if p.Method == "" {
			p.Method = domain.PaymentMethodCash
		}
		p.BookingID = bookingID
		if err := tx.Create(&p).Error; err != nil {
			return err
		}

		return tx.Model(&domain.Booking{}).
			Where("id = ?", bookingID).
			Update("advance", b.Advance+p.Amount).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, bookingID)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
