package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrExecQuery возвращается при ошибке выполнения запроса к MongoDB
	ErrExecQuery = errors.New("schedule storage: failed to execute query")

	// ErrDecodeDocument возвращается при ошибке декодирования документа
	ErrDecodeDocument = errors.New("schedule storage: failed to decode document")

	// ErrMalformedSchedule возвращается, когда документ расписания содержит
	// некорректные даты или нечитаемую недельную конфигурацию
	ErrMalformedSchedule = errors.New("schedule storage: malformed schedule document")
)
