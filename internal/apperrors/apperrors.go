package apperrors

import "fmt"

// BadRequestError описывает ошибку валидации или некорректный запрос клиента.
// На границе HTTP превращается в ответ 400.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// NewBadRequest создает ошибку клиентского запроса.
func NewBadRequest(format string, args ...any) *BadRequestError {
	return &BadRequestError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError означает, что запись по идентификатору или фильтру не найдена.
// На границе HTTP превращается в ответ 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFound создает ошибку отсутствия записи.
func NewNotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}
