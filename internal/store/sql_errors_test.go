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
		{"unique violation", pgError(pgerrcode.UniqueViolation), UniqueViolation},
		{"wrapped unique violation", fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation)), UniqueViolation},
		{"foreign key violation", pgError(pgerrcode.ForeignKeyViolation), ForeignKeyViolation},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), ConnectionFailure},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), ConnectionFailure},
		{"syntax error", pgError(pgerrcode.SyntaxError), Unclassified},
		{"not a pg error", assert.AnError, Unclassified},
		{"nil", nil, Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestNewConnect_UnknownDriver(t *testing.T) {
	_, err := NewConnect(t.Context(), configDB("mysql"), nopLogger())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
