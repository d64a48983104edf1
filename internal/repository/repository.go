package repository

import (
	"context"
	"errors"
	"math"
	"strings"
)

// Supply представляет доменную модель медицинского расходника
// Name - первичный ключ, после создания не меняется
type Supply struct {
	Name     string `json:"name"`
	Amount   int    `json:"amount"`
	UnitName string `json:"unitName"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=SupplyRepository --dir=. --output=./mocks --outpkg=mocks

// SupplyRepository определяет интерфейс для работы с хранилищем расходников
// Service слой зависит от этого интерфейса, а не от конкретной реализации
type SupplyRepository interface {
	// Create сохраняет новую запись
	// Возвращает *ValidationError до обращения к хранилищу, ErrAlreadyExists при дубликате name
	Create(ctx context.Context, supply Supply) error

	// Get ищет запись по точному совпадению name (без нормализации)
	// Возвращает false, если запись не найдена
	Get(ctx context.Context, name string) (Supply, bool, error)

	// List возвращает все записи, отсортированные по name
	List(ctx context.Context) ([]Supply, error)

	// Update полностью заменяет amount и unitName у записи с данным name
	// Возвращает false, если запись не найдена
	Update(ctx context.Context, supply Supply) (bool, error)

	// Delete удаляет запись по name
	// Возвращает false, если удалять было нечего
	Delete(ctx context.Context, name string) (bool, error)
}

// ErrInvalidSupply - общий вид ошибок валидации, все *ValidationError разворачиваются в него
var ErrInvalidSupply = errors.New("invalid supply")

// ErrAlreadyExists возвращается, когда расходник с таким name уже существует
var ErrAlreadyExists = errors.New("supply already exists")

// ErrUnavailable возвращается, когда хранилище недоступно (сеть, соединение)
var ErrUnavailable = errors.New("storage unavailable")

// ValidationError описывает нарушение инварианта записи
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid supply: " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidSupply
}

// Validate проверяет инварианты записи перед любой записью в хранилище
func Validate(s Supply) error {
	if strings.TrimSpace(s.Name) == "" {
		return &ValidationError{Reason: "name must not be blank"}
	}
	if s.Amount < 0 {
		return &ValidationError{Reason: "amount must be non-negative"}
	}
	// колонка amount - INTEGER (int4)
	if s.Amount > math.MaxInt32 {
		return &ValidationError{Reason: "amount must not exceed 2147483647"}
	}
	if strings.TrimSpace(s.UnitName) == "" {
		return &ValidationError{Reason: "unitName must not be blank"}
	}
	return nil
}
