package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"vpc-123", "vpc_123"},
		{"My Bucket", "my_bucket"},
		{"Already_Fine", "already_fine"},
		{"mixed-Case With-Both", "mixed_case_with_both"},
		{"", "unknown"},
		{"unknown", "unknown"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Sanitize(tc.input), "input %q", tc.input)
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	for _, input := range []string{"vpc-123", "My Bucket", "", "a-b c-D"} {
		once := Sanitize(input)
		assert.Equal(t, once, Sanitize(once))
	}
}

// Distinct ids that differ only in separator characters collapse to the same
// identifier. Documented behavior; the generated document would then carry
// duplicate resource addresses.
func TestSanitizeCollision(t *testing.T) {
	assert.Equal(t, Sanitize("vpc-1"), Sanitize("vpc 1"))
}
