package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/domain"
	"github.com/autoscuoleaba/ABA-PrenotazioniService/pkg/psqlbuilder"
)

// bookingColumns колонки таблицы prenotazioni в порядке сканирования
var bookingColumns = []string{
	"id",
	"nome_cognome",
	"email",
	"telefono",
	"tipo_patente",
	"mese_preferito",
	"periodo_mese",
	"data_scadenza",
	"note",
	"stato",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с заявками на экзамен
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую заявку. ID и created_at назначает база,
// заявка возвращается с заполненными серверными полями.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Insert("prenotazioni").
		Columns(
			"nome_cognome",
			"email",
			"telefono",
			"tipo_patente",
			"mese_preferito",
			"periodo_mese",
			"data_scadenza",
			"note",
			"stato",
		).
		Values(
			b.FullName,
			b.Email,
			b.Telefono,
			b.LicenseType,
			b.PreferredMonth,
			b.PreferredPeriod,
			b.TheoryExpiry,
			b.Note,
			b.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("prenotazioni").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		b                    domain.Booking
		createdAt, updatedAt sql.NullTime
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.FullName,
		&b.Email,
		&b.Telefono,
		&b.LicenseType,
		&b.PreferredMonth,
		&b.PreferredPeriod,
		&b.TheoryExpiry,
		&b.Note,
		&b.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// List получает заявки с фильтрацией по месяцу, категории прав и статусу.
// Сортировка всегда по created_at DESC - сначала свежие заявки.
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("prenotazioni").
		OrderBy("created_at DESC")

	if filter.Month != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"mese_preferito": *filter.Month})
	}
	if filter.LicenseType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"tipo_patente": *filter.LicenseType})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"stato": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus обновляет статус заявки
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (time.Time, error) {
	query, args, err := psqlbuilder.Update("prenotazioni").
		Set("stato", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return time.Time{}, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt time.Time
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, ErrBookingNotFound
		}
		return time.Time{}, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return updatedAt, nil
}

// Delete удаляет заявку (физическое удаление по явному действию администратора)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("prenotazioni").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Stats возвращает счётчики для шапки админской панели.
// Total заполняет вызывающий по отфильтрованной выборке.
func (r *Repository) Stats(ctx context.Context, now time.Time) (*domain.BookingStats, error) {
	stats := &domain.BookingStats{}

	// Счётчики по статусам одним запросом
	query, args, err := psqlbuilder.Select("stato", "COUNT(*)").
		From("prenotazioni").
		GroupBy("stato").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Stats - build status query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Stats - execute status query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status domain.BookingStatus
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: Stats - scan status count: %v", ErrScanRow, err)
		}

		switch status {
		case domain.StatusNew:
			stats.New = count
		case domain.StatusConfirmed:
			stats.Confirmed = count
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Stats - rows error: %v", ErrScanRow, err)
	}

	// Заявки, созданные сегодня
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	query, args, err = psqlbuilder.Select("COUNT(*)").
		From("prenotazioni").
		Where(squirrel.GtOrEq{"created_at": dayStart}).
		Where(squirrel.Lt{"created_at": dayStart.AddDate(0, 0, 1)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Stats - build today query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&stats.Today); err != nil {
		return nil, fmt.Errorf("%w: Stats - scan today count: %v", ErrScanRow, err)
	}

	return stats, nil
}

// scanBookings сканирует результаты запроса в слайс заявок
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var (
			b                    domain.Booking
			createdAt, updatedAt sql.NullTime
		)

		err := rows.Scan(
			&b.ID,
			&b.FullName,
			&b.Email,
			&b.Telefono,
			&b.LicenseType,
			&b.PreferredMonth,
			&b.PreferredPeriod,
			&b.TheoryExpiry,
			&b.Note,
			&b.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
