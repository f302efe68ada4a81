package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.org",
		"a+tag@host.co",
	}
	for _, e := range valid {
		assert.True(t, IsValidEmail(e), e)
	}

	invalid := []string{"", "plain", "@nohost.com", "user@", "user@host"}
	for _, e := range invalid {
		assert.False(t, IsValidEmail(e), e)
	}
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("018f4d5e-7c1a-7b3a-8f2e-3c4d5e6f7a8b"))
	// v4 UUID must be rejected
	assert.False(t, IsValidUUID("123e4567-e89b-42d3-a456-426614174000"))
	assert.False(t, IsValidUUID("not-a-uuid"))
}

func TestIsValidYear(t *testing.T) {
	assert.True(t, IsValidYear("2025"))
	assert.False(t, IsValidYear("25"))
	assert.False(t, IsValidYear("20251"))
	assert.False(t, IsValidYear("abcd"))
}

func TestIsValidPassword(t *testing.T) {
	assert.False(t, IsValidPassword("short"))
	assert.True(t, IsValidPassword("longenough"))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password too short"},
	}
	m := errs.ToMap()
	assert.Equal(t, "email is required", m["email"])
	assert.Equal(t, "password too short", m["password"])
	assert.Contains(t, errs.Error(), "email: email is required")
}
