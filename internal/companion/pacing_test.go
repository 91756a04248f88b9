package companion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPacingGate_DeniesWithinCooldown(t *testing.T) {
	gate := NewPacingGate(5 * time.Second)
	u := newUserState("u1", UserMemory{})
	t0 := time.Now()

	assert.True(t, gate.TryAcquire(u, t0))
	assert.False(t, gate.TryAcquire(u, t0.Add(time.Second)))
	assert.False(t, gate.TryAcquire(u, t0.Add(4*time.Second)))
	assert.True(t, gate.TryAcquire(u, t0.Add(5*time.Second)))
}

func TestPacingGate_ReleaseReopensImmediately(t *testing.T) {
	gate := NewPacingGate(5 * time.Second)
	u := newUserState("u1", UserMemory{})
	t0 := time.Now()

	assert.True(t, gate.TryAcquire(u, t0))
	assert.False(t, gate.TryAcquire(u, t0.Add(time.Second)))

	gate.Release(u)
	assert.True(t, gate.TryAcquire(u, t0.Add(time.Second)))
}

func TestPacingGate_ZeroCooldownAlwaysAllows(t *testing.T) {
	gate := NewPacingGate(0)
	u := newUserState("u1", UserMemory{})
	now := time.Now()
	for i := 0; i < 10; i++ {
		assert.True(t, gate.TryAcquire(u, now))
	}
}
