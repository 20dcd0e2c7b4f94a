package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty stays empty", "", ""},
		{"bare host gains prefix", "example.com", "https://example.com"},
		{"https kept untouched", "https://example.com/a", "https://example.com/a"},
		{"literal prefix test, not scheme parsing", "http://example.com", "https://http://example.com"},
		{"idempotent", NormalizeURL("example.com"), "https://example.com"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeURL(tc.in))
		})
	}
}
