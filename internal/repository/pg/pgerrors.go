package pg

import (
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

type ErrorClassification int

const (
	NonRetriable ErrorClassification = iota
	Retriable

	ErrUniqueViolation = "23505"
	ErrCheckViolation  = "23514"
)

type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify понимает ошибки обоих драйверов: pgx (*pgconn.PgError) и lib/pq (*pq.Error)
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetriable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyCode(pgErr.Code)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classifyCode(string(pqErr.Code))
	}

	if errors.Is(err, driver.ErrBadConn) || pgconn.SafeToRetry(err) {
		return Retriable
	}

	// По умолчанию считаем ошибку неповторяемой
	return NonRetriable
}

// IsCheckViolation - нарушение CHECK ограничения (pq или pgconn)
func IsCheckViolation(err error) bool {
	return sqlState(err) == ErrCheckViolation
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return ""
}

func classifyCode(code string) ErrorClassification {
	// Коды ошибок PostgreSQL: https://www.postgresql.org/docs/current/errcodes-appendix.html

	switch code {
	// Класс 08 - Ошибки соединения
	case "08000", "08001", "08003", "08004", "08006", "08007":
		return Retriable

	// Класс 40 - Откат транзакции
	case "40000", "40001", "40P01":
		return Retriable

	// Класс 57 - Ошибка оператора
	case "57P03":
		return Retriable
	}

	// Классы 22 (данные), 23 (ограничения целостности), 42 (синтаксис) и все прочие
	return NonRetriable
}
