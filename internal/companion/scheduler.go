package companion

import (
	"context"
	"log"
	"math/rand"
	"time"
)

// reengagePrompts are synthetic inputs used for proactive triggers. They are
// not user-authored and are not run through the sentiment classifier.
var reengagePrompts = []string{
	"(the user has been quiet for a while — say something to pull them back into the conversation)",
	"(it has been quiet — check in on the user in your own way)",
	"(the user went silent mid-conversation — nudge them, stay in character)",
}

// SendFunc delivers a proactive reply to a channel. Wired to the transport by
// main so this package stays free of Discord types.
type SendFunc func(channelID, content string) error

// SchedulerConfig tunes the proactive sweep.
type SchedulerConfig struct {
	SweepInterval time.Duration
	IdleThreshold time.Duration
}

func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		SweepInterval: 5 * time.Second,
		IdleThreshold: 10 * time.Minute,
	}
}

// Scheduler periodically sweeps all known users and re-engages idle ones
// through the engine.
type Scheduler struct {
	store   *Store
	engine  *Engine
	limiter *CallLimiter
	cfg     SchedulerConfig
	send    SendFunc
}

func NewScheduler(store *Store, engine *Engine, limiter *CallLimiter, cfg SchedulerConfig, send SendFunc) *Scheduler {
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = DefaultSchedulerConfig().SweepInterval
	}
	if cfg.IdleThreshold <= 0 {
		cfg.IdleThreshold = DefaultSchedulerConfig().IdleThreshold
	}
	return &Scheduler{
		store:   store,
		engine:  engine,
		limiter: limiter,
		cfg:     cfg,
		send:    send,
	}
}

// Run sweeps until ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(time.Now())
		}
	}
}

// sweep triggers at most one proactive turn per user per idle window. LastSeen
// is advanced before the slow work starts, so a slow or failing provider call
// cannot produce a duplicate trigger on the next tick.
func (s *Scheduler) sweep(now time.Time) {
	for _, u := range s.store.All() {
		if !u.Autochat() && !u.Talkback() {
			continue
		}
		channels := u.ChatChannels()
		if len(channels) == 0 {
			continue
		}
		if now.Sub(u.LastSeen()) < s.cfg.IdleThreshold {
			continue
		}
		if s.limiter != nil && !s.limiter.Allow() {
			// globally rate limited; the rest of the sweep would be denied too
			return
		}

		u.TouchSeen(now)

		// Multiple scoped channels: pick one at random.
		channelID := channels[rand.Intn(len(channels))]
		log.Printf("[COMPANION] proactive trigger user=%s channel=%s idle>=%s", u.ID, channelID, s.cfg.IdleThreshold)
		go s.trigger(u, channelID)
	}
}

func (s *Scheduler) trigger(u *UserState, channelID string) {
	prompt := reengagePrompts[rand.Intn(len(reengagePrompts))]
	reply, err := s.engine.HandleTurn(TurnRequest{
		UserID:      u.ID,
		DisplayName: u.DisplayName(),
		ChannelID:   channelID,
		Text:        prompt,
		Proactive:   true,
	})
	if err != nil || reply == "" {
		// Silence is fine here, no one is waiting on a reply. LastSeen already
		// advanced, so the next attempt waits a full idle window.
		return
	}
	if s.send == nil {
		return
	}
	if err := s.send(channelID, reply); err != nil {
		log.Printf("[COMPANION] proactive send failed user=%s channel=%s: %v", u.ID, channelID, err)
	}
}
