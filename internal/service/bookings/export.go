package bookings

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/domain"
	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/service/bookings/models"
)

// csvHeaders колонки экспорта, в порядке таблицы админской панели
var csvHeaders = []string{
	"Data", "Nome", "Email", "Telefono", "Patente", "Mese", "Periodo", "Scadenza Teoria", "Stato", "Note",
}

// ExportCSV формирует CSV по текущей отфильтрованной выборке администратора.
// Возвращает содержимое и имя файла вида prenotazioni_aba_2025-01-15.csv.
func (s *Service) ExportCSV(ctx context.Context, req *models.ListBookingsRequest) ([]byte, string, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ExportCSV: invalid filter: %v", err)
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ExportCSV: repository error: %v", err)
		return nil, "", fmt.Errorf("%w: ExportCSV - repository error: %v", ErrInternal, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeaders); err != nil {
		return nil, "", fmt.Errorf("%w: ExportCSV - write header: %v", ErrInternal, err)
	}

	for _, b := range list {
		if err := w.Write(csvRow(b)); err != nil {
			return nil, "", fmt.Errorf("%w: ExportCSV - write row: %v", ErrInternal, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("%w: ExportCSV - flush: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	filename := fmt.Sprintf("prenotazioni_aba_%s.csv", now.Format(domain.DateFormat))

	s.logger.Info("ExportCSV: exported %d bookings to %s", len(list), filename)
	return buf.Bytes(), filename, nil
}

func csvRow(b *domain.Booking) []string {
	row := []string{
		b.CreatedAt.Format(domain.DateFormat),
		b.FullName,
		b.Email,
		"",
		string(b.LicenseType),
		b.PreferredMonth,
		"",
		"",
		string(b.Status),
		"",
	}
	if b.Telefono != nil {
		row[3] = *b.Telefono
	}
	if b.PreferredPeriod != nil {
		row[6] = string(*b.PreferredPeriod)
	}
	if b.TheoryExpiry != nil {
		row[7] = b.TheoryExpiry.Format(domain.DateFormat)
	}
	if b.Note != nil {
		row[9] = *b.Note
	}
	return row
}
