package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/infra/storage/booking"
	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/service/bookings/models"
)

// Service сервис админских операций над заявками
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List возвращает заявки по фильтру (месяц, категория, статус) вместе со
// счётчиками панели. Сортировка по created_at DESC выполняется хранилищем.
// Выборка - read-only снимок: после каждой мутации админка запрашивает
// список заново, локально ничего не патчится.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	stats, err := s.bookingRepo.Stats(ctx, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("List: failed to load stats: %v", err)
		return nil, fmt.Errorf("%w: List - failed to load stats: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(list))

	return &models.BookingListResponse{
		Bookings: models.FromDomainBookingList(list),
		Stats: models.StatsResponse{
			Total:     len(list),
			Today:     stats.Today,
			New:       stats.New,
			Confirmed: stats.Confirmed,
		},
	}, nil
}

// Delete удаляет заявку. Удаление несуществующего id - ошибка, которая
// пробрасывается вызывающему как есть, без тихого успеха.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}
