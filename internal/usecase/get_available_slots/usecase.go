package get_available_slots

import (
	"context"

	"github.com/m04kA/Clinic-BookingService/internal/domain"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
//
// Ошибки хранилища не пробрасываются наружу: при недоступности расписаний
// подставляются дефолтные часы, при недоступности бронирований - пустое
// множество занятых слотов. Пациент всегда получает пригодный ответ.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	dateKey := req.Date.Format(domain.DateFormat)
	uc.logger.Info("GetAvailableSlots: date=%s", dateKey)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем расписания и выбираем активное для даты
	// При ошибке хранилища - безопасные дефолтные часы (клиника остается
	// доступной для записи), различая этот случай от "расписание не найдено"
	var hours domain.ResolvedHours
	overrides, err := uc.scheduleRepo.ListByPriority(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load schedules, using system default hours: %v", err)
		hours = domain.SystemDefaultHours()
	} else {
		hours = resolveOperatingHours(req.Date, overrides)
	}

	// 3. Клиника закрыта в этот день - слотов нет
	if !hours.Active {
		uc.logger.Info("GetAvailableSlots: clinic is closed on %s (schedule=%s)", dateKey, hours.ScheduleName)
		return &Response{
			Date:         req.Date,
			ScheduleName: hours.ScheduleName,
			Open:         hours.Open,
			Close:        hours.Close,
			ClinicClosed: true,
			Slots:        []string{},
		}, nil
	}

	// 4. Получаем занятые слоты на дату
	// При ошибке хранилища считаем все слоты свободными и логируем
	booked, err := uc.bookingRepo.GetTimesByDateKey(ctx, dateKey)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load booked slots for %s, treating all as free: %v", dateKey, err)
		booked = nil
	}

	// 5. Генерируем свободные слоты
	slots := generateSlots(hours, booked)

	uc.logger.Info("GetAvailableSlots: date=%s, schedule=%s, booked=%d, free=%d",
		dateKey, hours.ScheduleName, len(booked), len(slots))

	return &Response{
		Date:         req.Date,
		ScheduleName: hours.ScheduleName,
		Open:         hours.Open,
		Close:        hours.Close,
		ClinicClosed: false,
		Slots:        slots,
	}, nil
}
