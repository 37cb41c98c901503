package schedules

import (
	"context"
	"errors"
	"fmt"
	"strings"

	scheduleRepo "github.com/m04kA/Clinic-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/Clinic-BookingService/internal/service/schedules/models"
)

// Service сервис для управления расписаниями клиники
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// List возвращает все расписания по убыванию приоритета
func (s *Service) List(ctx context.Context) (*models.ScheduleListResponse, error) {
	s.logger.Info("List: fetching schedules")

	schedules, err := s.scheduleRepo.ListByPriority(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d schedules", len(schedules))
	return models.FromDomainScheduleList(schedules), nil
}

// Upsert создает расписание или обновляет существующее с тем же именем
func (s *Service) Upsert(ctx context.Context, req *models.UpsertScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Upsert: saving schedule name=%s, priority=%d", req.Name, req.Priority)

	if err := validateUpsertRequest(req); err != nil {
		s.logger.Warn("Upsert: validation failed for schedule name=%s: %v", req.Name, err)
		return nil, err
	}

	saved, err := s.scheduleRepo.Upsert(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Upsert: repository error for schedule name=%s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully saved schedule name=%s, id=%s", saved.Name, saved.ID)
	return models.FromDomainSchedule(saved), nil
}

// Delete удаляет расписание по имени
func (s *Service) Delete(ctx context.Context, name string) error {
	s.logger.Info("Delete: deleting schedule name=%s", name)

	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if err := s.scheduleRepo.Delete(ctx, name); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Delete: schedule name=%s not found", name)
			return ErrScheduleNotFound
		}
		s.logger.Error("Delete: repository error for schedule name=%s: %v", name, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted schedule name=%s", name)
	return nil
}
