package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "gorm translated sentinel",
			err:      gorm.ErrDuplicatedKey,
			expected: true,
		},
		{
			name:     "wrapped gorm sentinel",
			err:      errors.Wrap(gorm.ErrDuplicatedKey, "failed to create box"),
			expected: true,
		},
		{
			name: "raw pgconn unique violation",
			err: &pgconn.PgError{
				Code:           "23505",
				Message:        "duplicate key value violates unique constraint",
				ConstraintName: "idx_safe_boxes_claim_code",
			},
			expected: true,
		},
		{
			name: "wrapped pgconn unique violation",
			err: errors.Wrap(&pgconn.PgError{
				Code: "23505",
			}, "failed to create box"),
			expected: true,
		},
		{
			name:     "sqlite style message",
			err:      errors.New("UNIQUE constraint failed: safe_boxes.claim_code"),
			expected: true,
		},
		{
			name:     "pgconn violation of another class",
			err:      &pgconn.PgError{Code: "23502", Message: "null value in column"},
			expected: false,
		},
		{
			name:     "record not found",
			err:      gorm.ErrRecordNotFound,
			expected: false,
		},
		{
			name:     "unrelated error",
			err:      errors.New("connection refused"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isForeignKeyConstraintViolation(errors.New("FOREIGN KEY constraint failed")))
	assert.False(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("connection refused")))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502", Message: "null value in column \"name\""}))
	assert.True(t, isNotNullConstraintViolation(errors.New("NOT NULL constraint failed: safe_boxes.name")))
	assert.False(t, isNotNullConstraintViolation(errors.New("connection refused")))
}
