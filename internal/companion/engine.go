package companion

import (
	"log"
	"math/rand"
	"time"

	"github.com/Azuma9598/discord-bot/internal/ai"
)

// EngineConfig tunes one conversation engine.
type EngineConfig struct {
	HistoryLimit int
	Cooldown     time.Duration
	Bounds       Bounds
	Persona      string
	WaitReply    string   // deterministic reply when pacing denies a turn
	Fallbacks    []string // short in-character apologies for failed provider calls
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		HistoryLimit: 12,
		Cooldown:     5 * time.Second,
		Bounds:       DefaultBounds(),
		Persona:      DefaultPersona,
		WaitReply:    "ใจเย็น ๆ หน่อยสิ เดี๋ยวค่อยคุยกันต่อ 🖤",
		Fallbacks: []string{
			"หัวตื้อไปหมดเลย ขอพักแป๊บนะ 🖤",
			"...ขอโทษนะ ตอนนี้คิดอะไรไม่ออกเลย",
			"แป๊บนึงนะ สมองเราค้างไปหน่อย",
		},
	}
}

// TurnRequest is one inbound or proactive conversation turn.
type TurnRequest struct {
	UserID      string
	DisplayName string
	ChannelID   string
	Text        string
	Proactive   bool
}

// Engine runs one conversational turn end to end: pacing, sentiment, window,
// provider call, persistence.
type Engine struct {
	store    *Store
	provider ai.Provider
	gate     *PacingGate
	cfg      EngineConfig
}

func NewEngine(store *Store, provider ai.Provider, cfg EngineConfig) *Engine {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultEngineConfig().HistoryLimit
	}
	if len(cfg.Fallbacks) == 0 {
		cfg.Fallbacks = DefaultEngineConfig().Fallbacks
	}
	return &Engine{
		store:    store,
		provider: provider,
		gate:     NewPacingGate(cfg.Cooldown),
		cfg:      cfg,
	}
}

// Store exposes the user store for the command layer.
func (e *Engine) Store() *Store { return e.store }

// Bounds returns the clamp configuration, shared with administrative commands.
func (e *Engine) Bounds() Bounds { return e.cfg.Bounds }

// HandleTurn processes one turn and returns the reply text. An empty reply
// means stay silent (proactive failure). On provider failure the input turn
// stays in the window but no assistant turn is appended, and the pacing
// cooldown is released; the returned fallback is still delivered to the user.
func (e *Engine) HandleTurn(req TurnRequest) (string, error) {
	u := e.store.User(req.UserID, req.DisplayName)

	// Exactly one turn in flight per user, even under true parallelism.
	u.BeginTurn()
	defer u.EndTurn()

	now := time.Now()
	if !req.Proactive {
		if !e.gate.TryAcquire(u, now) {
			log.Printf("[COMPANION] pacing denied user=%s", req.UserID)
			return e.cfg.WaitReply, nil
		}
		u.ApplySentiment(Classify(req.Text), e.cfg.Bounds)
	}
	u.TouchSeen(now)
	u.AppendTurn(Turn{Role: RoleUser, Content: req.Text}, e.cfg.HistoryLimit)

	system := BuildSystemPrompt(e.cfg.Persona, u.Snapshot())
	messages := append([]ai.Message{{Role: "system", Content: system}}, u.PromptMessages()...)
	logPrompt(req.UserID, messages)

	reply, err := e.provider.Generate(messages)
	if err != nil {
		log.Printf("[COMPANION] generate failed user=%s kind=%s: %v", req.UserID, ai.KindOf(err), err)
		if req.Proactive {
			e.store.Save(u)
			return "", err
		}
		e.gate.Release(u)
		e.store.Save(u)
		return e.fallback(), err
	}

	u.AppendTurn(Turn{Role: RoleAssistant, Content: reply}, e.cfg.HistoryLimit)
	e.store.Save(u)
	log.Printf("[COMPANION] reply user=%s mood=%s: %s", req.UserID, u.Mood(), truncateForLog(reply, 120))
	return reply, nil
}

func (e *Engine) fallback() string {
	return e.cfg.Fallbacks[rand.Intn(len(e.cfg.Fallbacks))]
}
