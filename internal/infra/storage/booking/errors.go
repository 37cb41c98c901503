package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrExecQuery возвращается при ошибке выполнения запроса к MongoDB
	ErrExecQuery = errors.New("booking storage: failed to execute query")

	// ErrDecodeDocument возвращается при ошибке декодирования документа
	ErrDecodeDocument = errors.New("booking storage: failed to decode document")
)
