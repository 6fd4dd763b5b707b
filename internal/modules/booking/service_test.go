package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hallbook/internal/domain"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b.ID == "" {
		b.ID = "generated-id"
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) AddPayment(ctx context.Context, bookingID string, p domain.Payment) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockExpenseReader struct {
	mock.Mock
}

func (m *MockExpenseReader) ListByBookingID(ctx context.Context, bookingID string) ([]domain.Expense, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) BookingCreated(ctx context.Context, b *domain.Booking) {
	m.Called(ctx, b)
}

func (m *MockNotificationSender) BookingUpdated(ctx context.Context, b *domain.Booking) {
	m.Called(ctx, b)
}

func (m *MockNotificationSender) BookingDeleted(ctx context.Context, id string) {
	m.Called(ctx, id)
}

func (m *MockNotificationSender) PaymentAdded(ctx context.Context, b *domain.Booking, p domain.Payment) {
	m.Called(ctx, b, p)
}

func validRequest() BookingRequest {
	return BookingRequest{
		FunctionDate:  "2025-06-01",
		StartTime:     "18:00",
		EndTime:       "23:00",
		Guests:        100,
		FunctionType:  "Wedding",
		BookedBy:      "Ahmed Khan",
		Address:       "House 12, Street 4, Lahore",
		CNIC:          "12345-1234567-1",
		ContactNumber: "0300-1234567",
		BookingDays:   1,
		BookingType:   domain.BookingPerHead,
		CostPerHead:   1000,
		DJCharges:     5000,
		MenuItems:     []string{"chicken biryani", "", "mutton korma"},
	}
}

func TestService_Create_Success(t *testing.T) {
	mockRepo := new(MockBookingRepository)
	mockRepo.On("List", mock.Anything).Return([]domain.Booking{}, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	mockNotifs := new(MockNotificationSender)
	mockNotifs.On("BookingCreated", mock.Anything, mock.Anything).Return()

	service := NewService(mockRepo, new(MockExpenseReader), mockNotifs)

	b, err := service.Create(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, int64(105000), b.TotalCost)
	assert.Equal(t, []string{"chicken biryani", "mutton korma"}, b.MenuItems)
	assert.NotEmpty(t, b.BookingDate)
	mockNotifs.AssertCalled(t, "BookingCreated", mock.Anything, mock.Anything)
}

func TestService_Create_SlotConflict(t *testing.T) {
	existing := []domain.Booking{{
		ID:           "taken",
		FunctionDate: "2025-06-01",
		StartTime:    "22:00",
		EndTime:      "23:59",
	}}
	mockRepo := new(MockBookingRepository)
	mockRepo.On("List", mock.Anything).Return(existing, nil)

	service := NewService(mockRepo, new(MockExpenseReader), nil)

	_, err := service.Create(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
	var slotErr *SlotConflictError
	assert.ErrorAs(t, err, &slotErr)
	assert.Equal(t, "taken", slotErr.ConflictingID)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_TouchingSlotAllowed(t *testing.T) {
	existing := []domain.Booking{{
		ID:           "before",
		FunctionDate: "2025-06-01",
		StartTime:    "12:00",
		EndTime:      "18:00",
	}}
	mockRepo := new(MockBookingRepository)
	mockRepo.On("List", mock.Anything).Return(existing, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, new(MockExpenseReader), nil)

	_, err := service.Create(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestService_Create_RejectsBadCNIC(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockExpenseReader), nil)

	req := validRequest()
	req.CNIC = "1234512345671"

	_, err := service.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrValidation)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "CNIC")
}

func TestService_Create_FixedNeedsRate(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockExpenseReader), nil)

	req := validRequest()
	req.BookingType = domain.BookingFixed
	req.FixedRate = 0

	_, err := service.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_FixedRateTimesDays(t *testing.T) {
	mockRepo := new(MockBookingRepository)
	mockRepo.On("List", mock.Anything).Return([]domain.Booking{}, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, new(MockExpenseReader), nil)

	req := validRequest()
	req.BookingType = domain.BookingFixed
	req.FixedRate = 200000
	req.BookingDays = 2
	req.DJCharges = 0

	b, err := service.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, int64(400000), b.TotalCost)
	assert.Zero(t, b.CostPerHead)
}

func TestService_Create_AdvanceCapped(t *testing.T) {
	mockRepo := new(MockBookingRepository)
	mockRepo.On("List", mock.Anything).Return([]domain.Booking{}, nil)

	service := NewService(mockRepo, new(MockExpenseReader), nil)

	req := validRequest()
	req.Advance = 200000 // total is 105000

	_, err := service.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Update_ExcludesSelfAndKeepsPayments(t *testing.T) {
	payments := []domain.Payment{{ID: "p1", Amount: 40000}}
	existing := &domain.Booking{
		ID:           "b1",
		FunctionDate: "2025-06-01",
		StartTime:    "18:00",
		EndTime:      "23:00",
		BookingDate:  "2025-01-15",
		Payments:     payments,
	}

	mockRepo := new(MockBookingRepository)
	mockRepo.On("GetByID", mock.Anything, "b1").Return(existing, nil)
	// Conflict set contains only the booking being edited.
	mockRepo.On("List", mock.Anything).Return([]domain.Booking{*existing}, nil)
	mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, new(MockExpenseReader), nil)

	req := validRequest()
	req.Advance = 40000
	b, err := service.Update(context.Background(), "b1", req)

	assert.NoError(t, err)
	assert.Equal(t, "b1", b.ID)
	assert.Equal(t, "2025-01-15", b.BookingDate)
	assert.Equal(t, payments, b.Payments)
}

func TestService_AddPayment_Notifies(t *testing.T) {
	paid := &domain.Booking{
		ID:       "b1",
		Advance:  50000,
		Payments: []domain.Payment{{ID: "p1", Amount: 50000, Method: domain.PaymentMethodCash}},
	}

	mockRepo := new(MockBookingRepository)
	mockRepo.On("AddPayment", mock.Anything, "b1", mock.Anything).Return(paid, nil)

	mockNotifs := new(MockNotificationSender)
	mockNotifs.On("PaymentAdded", mock.Anything, paid, paid.Payments[0]).Return()

	service := NewService(mockRepo, new(MockExpenseReader), mockNotifs)

	b, err := service.AddPayment(context.Background(), "b1", PaymentRequest{Amount: 50000})

	assert.NoError(t, err)
	assert.Equal(t, int64(50000), b.Advance)
	mockNotifs.AssertExpectations(t)
}

func TestService_Finance(t *testing.T) {
	b := &domain.Booking{
		ID:          "b1",
		BookingType: domain.BookingPerHead,
		Guests:      100,
		CostPerHead: 1000,
		BookingDays: 1,
		DJCharges:   5000,
		Advance:     50000,
	}
	b.TotalCost = 105000

	mockRepo := new(MockBookingRepository)
	mockRepo.On("GetByID", mock.Anything, "b1").Return(b, nil)

	mockExpenses := new(MockExpenseReader)
	mockExpenses.On("ListByBookingID", mock.Anything, "b1").Return([]domain.Expense{
		{BookingID: "b1", Amount: 20000},
	}, nil)

	service := NewService(mockRepo, mockExpenses, nil)

	summary, err := service.Finance(context.Background(), "b1")

	assert.NoError(t, err)
	assert.Equal(t, int64(105000), summary.TotalCost)
	assert.Equal(t, int64(55000), summary.Balance)
	assert.Equal(t, int64(20000), summary.ExpenseTotal)
	assert.Equal(t, int64(85000), summary.Profit)
}

func TestService_Delete_PassesThrough(t *testing.T) {
	mockRepo := new(MockBookingRepository)
	mockRepo.On("Delete", mock.Anything, "b1").Return(nil)
	mockRepo.On("Delete", mock.Anything, "missing").Return(domain.ErrNotFound)

	mockNotifs := new(MockNotificationSender)
	mockNotifs.On("BookingDeleted", mock.Anything, "b1").Return()

	service := NewService(mockRepo, new(MockExpenseReader), mockNotifs)

	assert.NoError(t, service.Delete(context.Background(), "b1"))
	assert.ErrorIs(t, service.Delete(context.Background(), "missing"), domain.ErrNotFound)
	mockNotifs.AssertNumberOfCalls(t, "BookingDeleted", 1)
}
