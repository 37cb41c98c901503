package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrClinicClosed возвращается при попытке записи на закрытый день
	ErrClinicClosed = errors.New("create_booking: clinic is closed on requested date")

	// ErrInvalidTimeSlot возвращается, если время не лежит на сетке слотов дня
	ErrInvalidTimeSlot = errors.New("create_booking: requested time is not a valid slot")

	// ErrSlotNotAvailable возвращается, если слот уже занят
	ErrSlotNotAvailable = errors.New("create_booking: requested slot is already booked")

	// ErrInternal возвращается при внутренних ошибках хранилища
	ErrInternal = errors.New("create_booking: internal error")
)
