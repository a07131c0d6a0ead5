package models

import "errors"

var (
	// ErrValidation - некорректные или отсутствующие поля запроса
	ErrValidation = errors.New("validation error")
	// ErrNotFound - запрошенная запись не существует
	ErrNotFound = errors.New("not found")
	// ErrUpstream - хранилище или сервис загрузки недоступны
	ErrUpstream = errors.New("upstream failure")
)
