package pg

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	retriable := []string{
		"08000", "08001", "08003", "08004", "08006", "08007", // соединение
		"40000", "40001", "40P01", // откат транзакции
		"57P03", // сервер еще не принимает подключения
	}
	nonRetriable := []string{
		"22000", "22P02", // данные
		"23502", "23503", ErrUniqueViolation, ErrCheckViolation, // ограничения
		"42601", "42P01", // синтаксис, нет таблицы
		"57014", // отмена запроса
	}

	classifier := NewPostgresErrorClassifier()

	for _, code := range retriable {
		t.Run("retriable "+code, func(t *testing.T) {
			assert.Equal(t, Retriable, classifier.Classify(&pq.Error{Code: pq.ErrorCode(code)}), "lib/pq")
			assert.Equal(t, Retriable, classifier.Classify(&pgconn.PgError{Code: code}), "pgx")
		})
	}

	for _, code := range nonRetriable {
		t.Run("non-retriable "+code, func(t *testing.T) {
			assert.Equal(t, NonRetriable, classifier.Classify(&pq.Error{Code: pq.ErrorCode(code)}), "lib/pq")
			assert.Equal(t, NonRetriable, classifier.Classify(&pgconn.PgError{Code: code}), "pgx")
		})
	}
}

func TestPostgresErrorClassifier_Classify_NonPostgres(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetriable},
		{"plain error", errors.New("meal title is required"), NonRetriable},
		{"bad connection", driver.ErrBadConn, Retriable},
		{"wrapped bad connection", fmt.Errorf("get vendor: %w", driver.ErrBadConn), Retriable},
		{"wrapped serialization failure", fmt.Errorf("update order: %w", &pgconn.PgError{Code: "40001"}), Retriable},
		{"wrapped unique violation", fmt.Errorf("save device: %w", &pq.Error{Code: ErrUniqueViolation}), NonRetriable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestIsCheckViolation(t *testing.T) {
	assert.True(t, IsCheckViolation(&pq.Error{Code: ErrCheckViolation}))
	assert.True(t, IsCheckViolation(&pgconn.PgError{Code: ErrCheckViolation}))
	assert.True(t, IsCheckViolation(fmt.Errorf("update hour: %w", &pgconn.PgError{Code: ErrCheckViolation})))

	assert.False(t, IsCheckViolation(&pq.Error{Code: ErrUniqueViolation}))
	assert.False(t, IsCheckViolation(errors.New("close time must be after open time")))
	assert.False(t, IsCheckViolation(nil))
}
