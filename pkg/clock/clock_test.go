package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vinherch/warehouse-zhaw-backend/pkg/clock"
)

func TestFake_AdvanceYSet(t *testing.T) {
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	c := clock.NewFake(start)
	assert.Equal(t, start, c.Now())

	c.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), c.Now())

	later := start.Add(24 * time.Hour)
	c.Set(later)
	assert.Equal(t, later, c.Now())
}

func TestSystem_Now(t *testing.T) {
	before := time.Now()
	got := clock.System{}.Now()
	assert.False(t, got.Before(before))
}
