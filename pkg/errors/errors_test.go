package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorError(t *testing.T) {
	err := New(ErrCodeDatasetRead, "cannot open export directory")
	assert.Equal(t, "[E2001] cannot open export directory", err.Error())

	wrapped := Wrap(ErrCodeDatasetMalformed, "cannot parse CSV file", stderrors.New("unexpected EOF"))
	assert.Equal(t, "[E2002] cannot parse CSV file: unexpected EOF", wrapped.Error())
}

func TestAppErrorUnwrap(t *testing.T) {
	inner := stderrors.New("disk gone")
	err := Wrap(ErrCodeDBConnection, "failed to open database", inner)

	assert.True(t, stderrors.Is(err, inner))
	assert.Equal(t, inner, err.Unwrap())
	assert.Nil(t, New(ErrCodeInternal, "x").Unwrap())
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeConfigInvalid, CodeOf(New(ErrCodeConfigInvalid, "bad")))

	// The code survives further wrapping
	err := fmt.Errorf("outer: %w", New(ErrCodeExportWrite, "write failed"))
	assert.Equal(t, ErrCodeExportWrite, CodeOf(err))

	// Chains without an AppError fall back to internal
	assert.Equal(t, ErrCodeInternal, CodeOf(stderrors.New("plain")))
}

func TestWithDetails(t *testing.T) {
	err := New(ErrCodeConfigInvalid, "bad input").WithDetails(map[string]string{"field": "format"})
	assert.Equal(t, map[string]string{"field": "format"}, err.Details)
}

func TestAsHelpers(t *testing.T) {
	err := fmt.Errorf("outer: %w", Wrap(ErrCodeDBQuery, "query failed", stderrors.New("locked")))

	var appErr *AppError
	require.True(t, As(err, &appErr))
	assert.Equal(t, ErrCodeDBQuery, appErr.Code)
	assert.True(t, Is(err, appErr))
}
