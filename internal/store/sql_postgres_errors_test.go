package store

import (
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "not a pg error", err: assert.AnError, want: NonRetryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "wrapped deadlock", err: fmt.Errorf("query: %w", pgError(pgerrcode.DeadlockDetected)), want: Retryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.False(t, isUniqueViolation(pgError(pgerrcode.ForeignKeyViolation)))
	assert.False(t, isUniqueViolation(assert.AnError))
}
