package engine

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/zxsa0716/ecoproject/internal/store"
)

// Store keys, one per state slice. Absent keys fall back to seed data.
const (
	keyPoints        = "points"
	keyLevel         = "level"
	keyRank          = "rank"
	keyTheme         = "theme"
	keyNotifyEnabled = "notifications_enabled"
	keyHotspots      = "hotspots"
	keyMonsters      = "monsters"
	keyNotifications = "notifications"
	keyMissions      = "missions"
	keyBadges        = "badges"
	keyEvents        = "events"
	keyActiveTab     = "active_tab"
	keyLoggedIn      = "logged_in"
	keyTutorialSeen  = "tutorial_seen"
)

type state struct {
	Points        int
	Rank          string
	Theme         string
	NotifyEnabled bool
	ActiveTab     string
	LoggedIn      bool
	TutorialSeen  bool
	Hotspots      []Hotspot
	Monsters      []Monster
	Missions      []Mission
	Badges        []Badge
	Events        []Event
	Notifications []Notification
}

// Engine owns all progression state. Operations run to completion
// synchronously; the view layer reads snapshots and requests operations
// but never mutates records directly.
type Engine struct {
	store store.Store
	log   *slog.Logger
	now   func() time.Time
	newID func() string
	rng   *rand.Rand

	state state
}

type Option func(*Engine)

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDFunc overrides notification/hotspot id generation (tests).
func WithIDFunc(fn func() string) Option {
	return func(e *Engine) { e.newID = fn }
}

// WithRand overrides the random source used for monster selection (tests).
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New builds an engine over the given store, rehydrating every state
// slice and seeding defaults for anything missing. Store failures are
// logged and defaulted; they never prevent startup.
func New(st store.Store, opts ...Option) *Engine {
	e := &Engine{
		store: st,
		log:   slog.Default(),
		now:   time.Now,
		newID: newTimeOrderedID,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.load()
	return e
}

// newTimeOrderedID returns a UUIDv7 so ids sort by creation time.
func newTimeOrderedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (e *Engine) load() {
	e.state.Points = loadOr(e, keyPoints, 0)
	e.state.Rank = loadOr(e, keyRank, DefaultRank)
	e.state.Theme = loadOr(e, keyTheme, "light")
	e.state.NotifyEnabled = loadOr(e, keyNotifyEnabled, true)
	e.state.ActiveTab = loadOr(e, keyActiveTab, "home")
	e.state.LoggedIn = loadOr(e, keyLoggedIn, false)
	e.state.TutorialSeen = loadOr(e, keyTutorialSeen, false)
	e.state.Hotspots = loadOr(e, keyHotspots, []Hotspot{})
	e.state.Monsters = loadOr(e, keyMonsters, defaultMonsters())
	e.state.Missions = loadOr(e, keyMissions, defaultMissions())
	e.state.Badges = loadOr(e, keyBadges, defaultBadges())
	e.state.Events = loadOr(e, keyEvents, defaultEvents())
	e.state.Notifications = loadOr(e, keyNotifications, []Notification{})

	// Derived fields are reconciled on load, never trusted from disk.
	for i := range e.state.Hotspots {
		e.state.Hotspots[i].Severity = SeverityForReports(e.state.Hotspots[i].ReportCount)
	}
}

// loadOr reads one slice from the store, falling back to def when the
// key is absent or the store is unavailable.
func loadOr[T any](e *Engine, key string, def T) T {
	var v T
	ok, err := e.store.Load(key, &v)
	if err != nil {
		e.log.Warn("state load failed, using default", "key", key, "error", err)
		return def
	}
	if !ok {
		return def
	}
	return v
}

// save writes one slice. Writes are fire-and-forget: a failure is
// logged and in-memory state remains the source of truth.
func (e *Engine) save(key string, v any) {
	if err := e.store.Save(key, v); err != nil {
		e.log.Warn("state save failed", "key", key, "error", err)
	}
}

// saveProgress persists the slices every progression operation may
// touch: points, derived level, missions, badges, notifications.
func (e *Engine) saveProgress() {
	e.save(keyPoints, e.state.Points)
	e.save(keyLevel, e.Level())
	e.save(keyMissions, e.state.Missions)
	e.save(keyBadges, e.state.Badges)
	e.save(keyNotifications, e.state.Notifications)
}

func (e *Engine) monster(id string) *Monster {
	for i := range e.state.Monsters {
		if e.state.Monsters[i].ID == id {
			return &e.state.Monsters[i]
		}
	}
	return nil
}

func (e *Engine) mission(id string) *Mission {
	for i := range e.state.Missions {
		if e.state.Missions[i].ID == id {
			return &e.state.Missions[i]
		}
	}
	return nil
}

func (e *Engine) badge(id string) *Badge {
	for i := range e.state.Badges {
		if e.state.Badges[i].ID == id {
			return &e.state.Badges[i]
		}
	}
	return nil
}

func (e *Engine) event(id string) *Event {
	for i := range e.state.Events {
		if e.state.Events[i].ID == id {
			return &e.state.Events[i]
		}
	}
	return nil
}
