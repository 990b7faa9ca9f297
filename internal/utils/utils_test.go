package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	format := regexp.MustCompile(`^\d{6}$`)
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		assert.Regexp(t, format, code)
		seen[code] = true
	}

	// 50 draws from a million-value space should not collapse to one value
	assert.Greater(t, len(seen), 1)
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+62 812-3456-789", "628123456789"},
		{"0812 3456 789", "08123456789"},
		{"(0812) 3456.789", "08123456789"},
		{"", ""},
		{"no digits", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePhone(tt.in), "input %q", tt.in)
	}
}

func TestPhonesMatch(t *testing.T) {
	assert.True(t, PhonesMatch("+62 812-3456-789", "628123456789"))
	assert.True(t, PhonesMatch("0812 3456 789", "0812-3456-789"))
	assert.False(t, PhonesMatch("628123456789", "08123456789"))
	// empty numbers never match, not even each other
	assert.False(t, PhonesMatch("", ""))
	assert.False(t, PhonesMatch("628123456789", ""))
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"alice@example.com", "a***e@example.com"},
		{"bob@example.com", "b***b@example.com"},
		{"ab@example.com", "**@example.com"},
		{"a@example.com", "*@example.com"},
		{"not-an-email", "not-an-email"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskEmail(tt.in), "input %q", tt.in)
	}
}
