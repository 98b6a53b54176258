package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{StatusEnrolled, StatusInProgress},
		{StatusEnrolled, StatusDropped},
		{StatusInProgress, StatusCompleted},
		{StatusInProgress, StatusDropped},
	}
	for _, tc := range allowed {
		assert.True(t, ValidTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	rejected := []struct{ from, to string }{
		{StatusEnrolled, StatusCompleted}, // must pass through in_progress
		{StatusCompleted, StatusInProgress},
		{StatusCompleted, StatusDropped},
		{StatusDropped, StatusEnrolled},
		{StatusDropped, StatusCompleted},
		{StatusEnrolled, StatusEnrolled}, // same-state is not a transition
		{StatusInProgress, StatusEnrolled},
		{"bogus", StatusCompleted},
		{StatusEnrolled, "bogus"},
	}
	for _, tc := range rejected {
		assert.False(t, ValidTransition(tc.from, tc.to), "%s -> %s should be rejected", tc.from, tc.to)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusEnrolled, StatusInProgress, StatusCompleted, StatusDropped} {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus("archived"))
	assert.False(t, ValidStatus(""))
}
