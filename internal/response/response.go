package response

import (
	"fmt"
	"net/http"
	"strings"
)

// BaseResponse задает единый конверт ответа для всех операций сервиса.
// TotalRows передается явно из результата операции записи или выборки,
// глобального счетчика затронутых строк нет.
type BaseResponse[T any] struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      *T     `json:"data"`
	Code      int    `json:"code"`
	TotalRows int    `json:"total_rows"`
	Exception string `json:"exception,omitempty"`
}

// Created строит успешный ответ операции создания.
func Created[T any](data T, totalRows int) *BaseResponse[T] {
	return successful(data, "created", http.StatusCreated, totalRows)
}

// Updated строит успешный ответ операции изменения.
func Updated[T any](data T, totalRows int) *BaseResponse[T] {
	return successful(data, "updated", http.StatusOK, totalRows)
}

// Retrieved строит успешный ответ операции чтения.
func Retrieved[T any](data T, totalRows int) *BaseResponse[T] {
	return successful(data, "retrieved", http.StatusOK, totalRows)
}

// SoftDeleted строит успешный ответ операции мягкого удаления.
func SoftDeleted[T any](data T, totalRows int) *BaseResponse[T] {
	return successful(data, "deleted", http.StatusOK, totalRows)
}

// Error строит ответ с ошибкой. exception заполняется коротким именем категории,
// текст внутренней причины наружу не отдается.
func Error[T any](message string, code int, exception string) *BaseResponse[T] {
	return &BaseResponse[T]{
		Success:   false,
		Message:   message,
		Data:      nil,
		Code:      code,
		Exception: exception,
	}
}

func successful[T any](data T, verb string, code, totalRows int) *BaseResponse[T] {
	return &BaseResponse[T]{
		Success:   true,
		Message:   fmt.Sprintf("%s %s successfully", entityName(data), verb),
		Data:      &data,
		Code:      code,
		TotalRows: totalRows,
	}
}

// entityName возвращает короткое имя типа данных для текста сообщения:
// убирает указатель, параметры дженерика и путь пакета.
func entityName(data any) string {
	name := fmt.Sprintf("%T", data)
	name = strings.TrimLeft(name, "*")
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
