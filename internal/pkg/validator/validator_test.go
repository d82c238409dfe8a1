package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	_, ok := IsValidDate("2025-06-02")
	assert.True(t, ok)

	for _, s := range []string{"", "2025-13-01", "2025-06-32", "02-06-2025", "2025/06/02"} {
		_, ok := IsValidDate(s)
		assert.False(t, ok, "expected %q to be invalid", s)
	}
}

func TestIsValidCoordinate(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidCoordinate(9.0108, 38.7613))
	assert.True(t, IsValidCoordinate(-90, 180))
	assert.False(t, IsValidCoordinate(90.1, 0))
	assert.False(t, IsValidCoordinate(0, -180.5))
}

func TestIsValidUUID(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidUUID("0189f2a4-9f3e-7c1d-8b2a-3c4d5e6f7a8b"))
	assert.True(t, IsValidUUID("C56A4180-65AA-42EC-A945-5FD21DEC0538"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "start_date", Message: "start_date is required"},
		{Field: "end_date", Message: "end_date is required"},
	}

	assert.Equal(t, "start_date: start_date is required; end_date: end_date is required", errs.Error())
	assert.Equal(t, map[string]string{
		"start_date": "start_date is required",
		"end_date":   "end_date is required",
	}, errs.ToMap())
}
