package bookings

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/domain"
	bookingRepo "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/infra/storage/booking"
	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/service/bookings/models"
	"github.com/autoscuoleaba/ABA-PrenotazioniService/pkg/ptr"
)

type fakeRepo struct {
	bookings   []*domain.Booking
	stats      *domain.BookingStats
	listErr    error
	deleteErr  error
	statsErr   error
	lastFilter domain.BookingsFilter
	deletedID  int64
}

func (r *fakeRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.lastFilter = filter
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.bookings, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deletedID = id
	return nil
}

func (r *fakeRepo) Stats(ctx context.Context, now time.Time) (*domain.BookingStats, error) {
	if r.statsErr != nil {
		return nil, r.statsErr
	}
	return r.stats, nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func sampleBookings() []*domain.Booking {
	expiry := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)
	period := domain.PeriodMidMonth
	return []*domain.Booking{
		{
			ID:              2,
			FullName:        "Lucia Bianchi",
			Email:           "lucia@example.it",
			LicenseType:     domain.LicenseA1,
			PreferredMonth:  "Marzo 2025",
			PreferredPeriod: &period,
			TheoryExpiry:    &expiry,
			Note:            ptr.Ptr("preferisce il pomeriggio"),
			Status:          domain.StatusNew,
			CreatedAt:       time.Date(2025, time.January, 14, 16, 0, 0, 0, time.UTC),
		},
		{
			ID:             1,
			FullName:       "Mario Rossi",
			Email:          "mario@example.it",
			LicenseType:    domain.LicenseB,
			PreferredMonth: "Febbraio 2025",
			Status:         domain.StatusConfirmed,
			CreatedAt:      time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC),
		},
	}
}

func newTestService(repo *fakeRepo) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fakeTimeProvider{
		now: time.Date(2025, time.January, 15, 11, 0, 0, 0, time.UTC),
	}
	return svc
}

func TestList(t *testing.T) {
	t.Run("returns bookings with stats", func(t *testing.T) {
		repo := &fakeRepo{
			bookings: sampleBookings(),
			stats:    &domain.BookingStats{Today: 1, New: 1, Confirmed: 1},
		}
		svc := newTestService(repo)

		resp, err := svc.List(context.Background(), &models.ListBookingsRequest{})
		require.NoError(t, err)

		require.Len(t, resp.Bookings, 2)
		assert.Equal(t, "Lucia Bianchi", resp.Bookings[0].FullName)
		assert.Equal(t, "2025-04-10", *resp.Bookings[0].TheoryExpiry)
		assert.Equal(t, 2, resp.Stats.Total)
		assert.Equal(t, 1, resp.Stats.New)
		assert.Equal(t, 1, resp.Stats.Confirmed)
	})

	t.Run("filter is converted to domain values", func(t *testing.T) {
		repo := &fakeRepo{stats: &domain.BookingStats{}}
		svc := newTestService(repo)

		_, err := svc.List(context.Background(), &models.ListBookingsRequest{
			Month:       ptr.Ptr("Febbraio 2025"),
			LicenseType: ptr.Ptr("B"),
			Status:      ptr.Ptr("nuovo"),
		})
		require.NoError(t, err)

		require.NotNil(t, repo.lastFilter.Month)
		assert.Equal(t, "Febbraio 2025", *repo.lastFilter.Month)
		require.NotNil(t, repo.lastFilter.LicenseType)
		assert.Equal(t, domain.LicenseB, *repo.lastFilter.LicenseType)
		require.NotNil(t, repo.lastFilter.Status)
		assert.Equal(t, domain.StatusNew, *repo.lastFilter.Status)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		svc := newTestService(&fakeRepo{})

		_, err := svc.List(context.Background(), &models.ListBookingsRequest{
			Status: ptr.Ptr("annullato"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		repo := &fakeRepo{listErr: errors.New("connection refused")}
		svc := newTestService(repo)

		_, err := svc.List(context.Background(), &models.ListBookingsRequest{})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestDelete(t *testing.T) {
	t.Run("deletes existing booking", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		require.NoError(t, svc.Delete(context.Background(), 7))
		assert.Equal(t, int64(7), repo.deletedID)
	})

	t.Run("missing id is an error, not silent success", func(t *testing.T) {
		repo := &fakeRepo{deleteErr: bookingRepo.ErrBookingNotFound}
		svc := newTestService(repo)

		err := svc.Delete(context.Background(), 99)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		repo := &fakeRepo{deleteErr: errors.New("connection refused")}
		svc := newTestService(repo)

		err := svc.Delete(context.Background(), 7)
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestExportCSV(t *testing.T) {
	t.Run("exports filtered view", func(t *testing.T) {
		repo := &fakeRepo{bookings: sampleBookings()}
		svc := newTestService(repo)

		data, filename, err := svc.ExportCSV(context.Background(), &models.ListBookingsRequest{})
		require.NoError(t, err)

		assert.Equal(t, "prenotazioni_aba_2025-01-15.csv", filename)

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "Data,Nome,Email,Telefono,Patente,Mese,Periodo,Scadenza Teoria,Stato,Note", lines[0])
		assert.Contains(t, lines[1], "Lucia Bianchi")
		assert.Contains(t, lines[1], "Metà mese")
		assert.Contains(t, lines[1], "2025-04-10")
		assert.Contains(t, lines[2], "Mario Rossi")
		assert.Contains(t, lines[2], "confermato")
	})

	t.Run("empty view yields header only", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		data, _, err := svc.ExportCSV(context.Background(), &models.ListBookingsRequest{})
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		assert.Len(t, lines, 1)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		repo := &fakeRepo{listErr: errors.New("connection refused")}
		svc := newTestService(repo)

		_, _, err := svc.ExportCSV(context.Background(), &models.ListBookingsRequest{})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
