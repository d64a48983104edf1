package postgres

import (
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/shestoi/qare/internal/repository"
)

const (
	codeUniqueViolation = "23505"
	codeCheckViolation  = "23514"
)

// mapError переводит ошибки pgx в доменные ошибки repository
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return repository.ErrAlreadyExists
		case codeCheckViolation:
			// Сработал CHECK (amount >= 0) - запись в обход Validate
			return &repository.ValidationError{Reason: "amount must be non-negative"}
		}
		return err
	}

	if isTransportError(err) {
		return fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
	}

	return err
}

// isTransportError - ошибка соединения с сервером, а не ответ сервера
func isTransportError(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
