package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedStepDue(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := newFixedStep(10, func() time.Time { return clock })

	assert.Equal(t, 1, fs.Due(), "first call runs a step immediately")

	clock = clock.Add(50 * time.Millisecond)
	assert.Equal(t, 0, fs.Due())

	clock = clock.Add(60 * time.Millisecond)
	assert.Equal(t, 1, fs.Due())

	clock = clock.Add(320 * time.Millisecond)
	assert.Equal(t, 3, fs.Due(), "carry-over accumulates")
}

func TestFixedStepDefaultsTPS(t *testing.T) {
	fs := newFixedStep(0, time.Now)
	assert.Equal(t, time.Second/60, fs.step)
}
