package create_booking

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/Clinic-BookingService/internal/domain"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	logger       Logger
	timeProvider TimeProvider
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
	timeProvider TimeProvider,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Execute выполняет use case создания бронирования
//
// В отличие от чтения доступности, ошибки хранилища здесь пробрасываются
// наружу: молча создавать запись без проверки занятости нельзя.
// Уникальность слота на уровне БД не гарантируется - проверка на чтении,
// гонка двух одновременных заявок разрешается персоналом клиники.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	dateKey := req.Date.Format(domain.DateFormat)
	uc.logger.Info("CreateBooking: date=%s, time=%s", dateKey, req.Time)

	// 2. Определяем рабочие часы на дату
	// При недоступности расписаний - дефолтные часы, как и на чтении
	var hours domain.ResolvedHours
	overrides, err := uc.scheduleRepo.ListByPriority(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load schedules, using system default hours: %v", err)
		hours = domain.SystemDefaultHours()
	} else {
		hours = resolveOperatingHours(req.Date, overrides)
	}

	// 3. Клиника закрыта - запись невозможна
	if !hours.Active {
		uc.logger.Warn("CreateBooking: clinic is closed on %s (schedule=%s)", dateKey, hours.ScheduleName)
		return nil, fmt.Errorf("%w: %s", ErrClinicClosed, dateKey)
	}

	// 4. Время должно лежать на сетке слотов дня
	grid := slotGrid(hours)
	if _, ok := grid[req.Time]; !ok {
		uc.logger.Warn("CreateBooking: time %s is outside slot grid %s-%s", req.Time, hours.Open, hours.Close)
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimeSlot, req.Time)
	}

	// 5. Слот не должен быть занят неотмененным бронированием
	booked, err := uc.bookingRepo.GetTimesByDateKey(ctx, dateKey)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load booked slots for %s: %v", dateKey, err)
		return nil, fmt.Errorf("%w: failed to check slot availability: %v", ErrInternal, err)
	}
	for _, taken := range booked {
		if taken == req.Time {
			uc.logger.Warn("CreateBooking: slot %s %s is already booked", dateKey, req.Time)
			return nil, fmt.Errorf("%w: %s %s", ErrSlotNotAvailable, dateKey, req.Time)
		}
	}

	// 6. Создаем бронирование со статусом pending
	now := uc.timeProvider.Now()
	booking := &domain.Booking{
		Title:          strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(req.Email),
		Phone:          strings.TrimSpace(req.Phone),
		Notes:          req.Notes,
		ReferralSource: req.ReferralSource,
		Tags:           req.Tags,
		Date:           req.Date,
		DateKey:        dateKey,
		Time:           req.Time,
		Status:         domain.StatusPending,
		Timestamp:      strconv.FormatInt(now.Unix(), 10),
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created booking %s for %s %s", created.ID, dateKey, created.Time)

	return &Response{
		ID:        created.ID,
		Status:    created.Status,
		Date:      created.Date,
		DateKey:   created.DateKey,
		Time:      created.Time,
		CreatedAt: created.CreatedAt,
	}, nil
}
