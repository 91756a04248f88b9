package companion

import "time"

// PacingGate enforces the per-user minimum interval between provider calls.
type PacingGate struct {
	cooldown time.Duration
}

func NewPacingGate(cooldown time.Duration) *PacingGate {
	return &PacingGate{cooldown: cooldown}
}

// TryAcquire reports whether a turn may proceed for u at now. On success the
// user's cooldown is advanced before the external call is issued.
func (p *PacingGate) TryAcquire(u *UserState, now time.Time) bool {
	return u.AcquireCooldown(now, p.cooldown)
}

// Release gives back a cooldown taken by TryAcquire. Used when the provider
// call fails, so pacing only ever charges for completed turns.
func (p *PacingGate) Release(u *UserState) {
	u.ReleaseCooldown()
}
