package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingserrors "travelbook/internal/bookings/errors"
	"travelbook/internal/bookings/repository"
	"travelbook/internal/bookings/validator"
	"travelbook/pkg/config"
	"travelbook/pkg/dates"
	apperrors "travelbook/pkg/errors"
	"travelbook/pkg/logger"
	"travelbook/pkg/model"
)

// Mock repository for testing
type mockBookingRepository struct {
	insertFunc        func(ctx context.Context, booking *model.Booking) error
	findAllFunc       func(ctx context.Context) ([]*model.Booking, error)
	findActiveFunc    func(ctx context.Context, today time.Time) ([]*model.Booking, error)
	deleteByIDFunc    func(ctx context.Context, id string) error
	deleteExpiredFunc func(ctx context.Context, today time.Time) (int64, error)
	countFunc         func(ctx context.Context) (int64, error)
}

func (m *mockBookingRepository) Insert(ctx context.Context, booking *model.Booking) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, booking)
	}
	booking.ID = "64a1f2c3d4e5f60718293a4b"
	booking.CreatedAt = time.Now().UTC()
	return nil
}

func (m *mockBookingRepository) FindAll(ctx context.Context) ([]*model.Booking, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) FindActive(ctx context.Context, today time.Time) ([]*model.Booking, error) {
	if m.findActiveFunc != nil {
		return m.findActiveFunc(ctx, today)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) DeleteByID(ctx context.Context, id string) error {
	if m.deleteByIDFunc != nil {
		return m.deleteByIDFunc(ctx, id)
	}
	return nil
}

func (m *mockBookingRepository) DeleteExpired(ctx context.Context, today time.Time) (int64, error) {
	if m.deleteExpiredFunc != nil {
		return m.deleteExpiredFunc(ctx, today)
	}
	return 0, nil
}

func (m *mockBookingRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func newTestConfig() *config.Config {
	return &config.Config{
		SweepTimezone: "UTC",
		Log: logger.New(logger.Config{
			Level:   "error",
			Format:  logger.JSON,
			Service: "test",
		}),
	}
}

func newTestService(repo repository.BookingRepository) BookingService {
	cfg := newTestConfig()
	return NewBookingService(repo, validator.NewBookingValidator(cfg.Log), nil, cfg)
}

func TestCreate_ValidRequest(t *testing.T) {
	var stored *model.Booking
	repo := &mockBookingRepository{
		insertFunc: func(ctx context.Context, booking *model.Booking) error {
			booking.ID = "64a1f2c3d4e5f60718293a4b"
			stored = booking
			return nil
		},
	}
	svc := newTestService(repo)

	booking, err := svc.Create(context.Background(), &model.BookingRequest{
		Name:        "  Ana ",
		Email:       "A@B.com",
		Destination: "Rome",
		Date:        "2099-01-01",
	})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "64a1f2c3d4e5f60718293a4b", booking.ID)
	assert.Equal(t, "Ana", booking.Name, "name should be normalized before persistence")
	assert.Equal(t, "a@b.com", booking.Email)
	assert.Equal(t, "Rome", booking.Destination)

	want := time.Date(2099, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, booking.Date.Equal(want), "date should be stored at midnight of the travel day, got %v", booking.Date)
}

func TestCreate_SameDayAdmitted(t *testing.T) {
	repo := &mockBookingRepository{}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), &model.BookingRequest{
		Name:        "Ana",
		Email:       "a@b.com",
		Destination: "Rome",
		Date:        dates.Today(time.UTC).String(),
	})

	assert.NoError(t, err, "a booking dated today must not be rejected as past")
}

func TestCreate_PastDateRejected(t *testing.T) {
	inserted := false
	repo := &mockBookingRepository{
		insertFunc: func(ctx context.Context, booking *model.Booking) error {
			inserted = true
			return nil
		},
	}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), &model.BookingRequest{
		Name:        "Ana",
		Email:       "a@b.com",
		Destination: "Rome",
		Date:        "2000-01-01",
	})

	require.Error(t, err)
	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.Message, "past")
	assert.False(t, inserted, "no insert may happen for a rejected request")
}

func TestCreate_InvalidDateFormat(t *testing.T) {
	svc := newTestService(&mockBookingRepository{})

	for _, date := range []string{"not-a-date", "2025-02-31", "2025-13-01"} {
		_, err := svc.Create(context.Background(), &model.BookingRequest{
			Name:        "Ana",
			Email:       "a@b.com",
			Destination: "Rome",
			Date:        date,
		})

		require.Error(t, err, "date %q should be rejected", date)
		appErr := apperrors.AsAppError(err)
		assert.Equal(t, apperrors.CodeValidation, appErr.Code)
		assert.Contains(t, appErr.Message, "Invalid date format")
	}
}

func TestCreate_WhitespaceFieldsRejected(t *testing.T) {
	svc := newTestService(&mockBookingRepository{})

	tests := []struct {
		name string
		req  *model.BookingRequest
	}{
		{
			name: "whitespace-only name",
			req:  &model.BookingRequest{Name: "   ", Email: "a@b.com", Destination: "Rome", Date: "2099-01-01"},
		},
		{
			name: "whitespace-only destination",
			req:  &model.BookingRequest{Name: "Ana", Email: "a@b.com", Destination: " \t ", Date: "2099-01-01"},
		},
		{
			name: "bad email shape",
			req:  &model.BookingRequest{Name: "Ana", Email: "not-an-email", Destination: "Rome", Date: "2099-01-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, apperrors.CodeValidation, apperrors.AsAppError(err).Code)
		})
	}
}

func TestCreate_StoreFailure(t *testing.T) {
	repo := &mockBookingRepository{
		insertFunc: func(ctx context.Context, booking *model.Booking) error {
			return errors.New("connection reset")
		},
	}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), &model.BookingRequest{
		Name:        "Ana",
		Email:       "a@b.com",
		Destination: "Rome",
		Date:        "2099-01-01",
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInternal, apperrors.AsAppError(err).Code)
}

func TestDelete_InvalidID(t *testing.T) {
	repo := &mockBookingRepository{
		deleteByIDFunc: func(ctx context.Context, id string) error {
			return fmt.Errorf("%w: %s", bookingserrors.ErrInvalidID, id)
		},
	}
	svc := newTestService(repo)

	result, err := svc.Delete(context.Background(), "not-a-hex-id")

	require.NoError(t, err, "a malformed id must not surface as an error")
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid booking ID format", result.Message)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &mockBookingRepository{
		deleteByIDFunc: func(ctx context.Context, id string) error {
			return bookingserrors.ErrNotFound
		},
	}
	svc := newTestService(repo)

	result, err := svc.Delete(context.Background(), "64a1f2c3d4e5f60718293a4b")

	require.NoError(t, err, "an unknown id must not surface as an error")
	assert.False(t, result.Success)
	assert.Equal(t, "Booking not found", result.Message)
}

func TestDelete_Success(t *testing.T) {
	svc := newTestService(&mockBookingRepository{})

	result, err := svc.Delete(context.Background(), "64a1f2c3d4e5f60718293a4b")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Booking deleted successfully", result.Message)
}

func TestDelete_StoreFailure(t *testing.T) {
	repo := &mockBookingRepository{
		deleteByIDFunc: func(ctx context.Context, id string) error {
			return errors.New("connection reset")
		},
	}
	svc := newTestService(repo)

	result, err := svc.Delete(context.Background(), "64a1f2c3d4e5f60718293a4b")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, apperrors.CodeInternal, apperrors.AsAppError(err).Code)
}

func TestGetActive_BoundaryIsStartOfToday(t *testing.T) {
	var boundary time.Time
	repo := &mockBookingRepository{
		findActiveFunc: func(ctx context.Context, today time.Time) ([]*model.Booking, error) {
			boundary = today
			return []*model.Booking{}, nil
		},
	}
	svc := newTestService(repo)

	_, err := svc.GetActive(context.Background())
	require.NoError(t, err)

	h, m, s := boundary.Clock()
	assert.Zero(t, h)
	assert.Zero(t, m)
	assert.Zero(t, s)
	assert.Equal(t, dates.FromTime(time.Now().UTC()), dates.FromTime(boundary))
}

func TestSweep_ReturnsDeletedCount(t *testing.T) {
	repo := &mockBookingRepository{
		deleteExpiredFunc: func(ctx context.Context, today time.Time) (int64, error) {
			return 3, nil
		},
	}
	svc := newTestService(repo)

	deleted, err := svc.Sweep(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestSweep_StoreFailure(t *testing.T) {
	repo := &mockBookingRepository{
		deleteExpiredFunc: func(ctx context.Context, today time.Time) (int64, error) {
			return 0, errors.New("store unavailable")
		},
	}
	svc := newTestService(repo)

	_, err := svc.Sweep(context.Background())

	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInternal, apperrors.AsAppError(err).Code)
}
