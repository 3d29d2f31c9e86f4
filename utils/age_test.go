package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgeFromDOB(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		dob  string
		want int
		ok   bool
	}{
		{"birthday passed this year", "1990-03-14", 36, true},
		{"birthday later this year", "1990-11-02", 35, true},
		{"birthday today", "1990-08-31", 36, true},
		{"rfc3339 input", "1990-03-14T00:00:00Z", 36, true},
		{"empty", "", 0, false},
		{"unparseable", "14/03/1990", 0, false},
		{"future date", "2030-01-01", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			age, ok := AgeFromDOB(tc.dob, now)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, age)
			}
		})
	}
}
