package engine

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/zxsa0716/ecoproject/internal/store"
)

var testTime = time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

// newTestEngine builds an engine over a real JSON store in a temp dir,
// with deterministic clock, ids, and rng. prep can pre-write state
// slices to set up a scenario before the engine rehydrates.
func newTestEngine(t *testing.T, prep func(st store.Store)) (*Engine, store.Store) {
	t.Helper()

	st, err := store.NewJSONStore(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if prep != nil {
		prep(st)
	}

	seq := 0
	e := New(st,
		WithClock(func() time.Time { return testTime }),
		WithIDFunc(func() string { seq++; return fmt.Sprintf("id%03d", seq) }),
		WithRand(rand.New(rand.NewSource(1))),
	)
	return e, st
}

func mustSave(t *testing.T, st store.Store, key string, v any) {
	t.Helper()
	if err := st.Save(key, v); err != nil {
		t.Fatalf("save %s: %v", key, err)
	}
}

func TestCaptureAwardsPointsExactlyOnce(t *testing.T) {
	e, _ := newTestEngine(t, func(st store.Store) {
		mustSave(t, st, "monsters", []Monster{
			{ID: "m1", Name: "Crumple Wisp", WasteType: WastePaper, PointValue: 50, Rarity: RarityCommon},
		})
	})

	res, err := e.CaptureMonster("m1")
	if err != nil {
		t.Fatalf("CaptureMonster: %v", err)
	}
	if res.PointsAwarded != 50 {
		t.Fatalf("awarded=%d, want 50", res.PointsAwarded)
	}
	if e.Points() != 50 {
		t.Fatalf("points=%d, want 50", e.Points())
	}
	if e.Level() != 1 {
		t.Fatalf("level=%d, want 1 (unchanged)", e.Level())
	}
	if got := len(e.Notifications()); got != 1 {
		t.Fatalf("notifications=%d, want 1", got)
	}

	if _, err := e.CaptureMonster("m1"); err == nil {
		t.Fatalf("expected error on second capture")
	} else if _, ok := err.(AlreadyCapturedError); !ok {
		t.Fatalf("err=%T, want AlreadyCapturedError", err)
	}
	if e.Points() != 50 {
		t.Fatalf("points after re-capture=%d, want 50", e.Points())
	}
	if got := len(e.Notifications()); got != 1 {
		t.Fatalf("notifications after re-capture=%d, want 1", got)
	}
}

func TestCaptureUnknownMonster(t *testing.T) {
	e, _ := newTestEngine(t, nil)

	_, err := e.CaptureMonster("nope")
	if err == nil {
		t.Fatalf("expected error")
	}
	if _, ok := err.(NotFoundError); !ok {
		t.Fatalf("err=%T, want NotFoundError", err)
	}
	if e.Points() != 0 {
		t.Fatalf("points=%d, want 0", e.Points())
	}
}

func TestPlasticCaptureAdvancesMissionAndBadge(t *testing.T) {
	e, _ := newTestEngine(t, func(st store.Store) {
		mustSave(t, st, "monsters", []Monster{
			{ID: "p1", Name: "Bottle Goblin", WasteType: WastePlastic, PointValue: 50, Rarity: RarityCommon},
			{ID: "g1", Name: "Jar Genie", WasteType: WasteGlass, PointValue: 50, Rarity: RarityRare},
		})
	})

	if _, err := e.CaptureMonster("p1"); err != nil {
		t.Fatalf("capture p1: %v", err)
	}
	if got := findBadge(t, e, BadgePlasticHunter).Progress; got != 1 {
		t.Fatalf("plastic hunter progress=%d, want 1", got)
	}
	if got := findMission(t, e, MissionPlasticDaily).Progress; got != 1 {
		t.Fatalf("plastic mission progress=%d, want 1", got)
	}

	// Non-plastic captures leave both untouched.
	if _, err := e.CaptureMonster("g1"); err != nil {
		t.Fatalf("capture g1: %v", err)
	}
	if got := findBadge(t, e, BadgePlasticHunter).Progress; got != 1 {
		t.Fatalf("plastic hunter progress after glass=%d, want 1", got)
	}
}

func TestMissionCrossingGrantsRewardOnce(t *testing.T) {
	e, _ := newTestEngine(t, func(st store.Store) {
		mustSave(t, st, "monsters", []Monster{
			{ID: "p1", WasteType: WastePlastic, PointValue: 10},
			{ID: "p2", WasteType: WastePlastic, PointValue: 10},
			{ID: "p3", WasteType: WastePlastic, PointValue: 10},
			{ID: "p4", WasteType: WastePlastic, PointValue: 10},
		})
	})

	for _, id := range []string{"p1", "p2", "p3"} {
		if _, err := e.CaptureMonster(id); err != nil {
			t.Fatalf("capture %s: %v", id, err)
		}
	}

	m := findMission(t, e, MissionPlasticDaily)
	if !m.Completed {
		t.Fatalf("mission not completed at progress=%d/%d", m.Progress, m.Total)
	}
	// 3 captures x 10 + 100 mission reward = 130, crossing level 2.
	if e.Points() != 130 {
		t.Fatalf("points=%d, want 130", e.Points())
	}
	if e.Level() != 2 {
		t.Fatalf("level=%d, want 2", e.Level())
	}
	if got := findBadge(t, e, BadgeEcoHero).Progress; got != 2 {
		t.Fatalf("eco hero progress=%d, want 2 (set to level)", got)
	}

	// A fourth capture keeps counting but must not re-grant the reward.
	if _, err := e.CaptureMonster("p4"); err != nil {
		t.Fatalf("capture p4: %v", err)
	}
	m = findMission(t, e, MissionPlasticDaily)
	if m.Progress != 4 {
		t.Fatalf("progress=%d, want 4", m.Progress)
	}
	if e.Points() != 140 {
		t.Fatalf("points=%d, want 140 (no second reward)", e.Points())
	}
}

func TestLevelUpAtPointBoundary(t *testing.T) {
	e, _ := newTestEngine(t, func(st store.Store) {
		mustSave(t, st, "points", 99)
		mustSave(t, st, "monsters", []Monster{
			{ID: "m1", Name: "Mote", WasteType: WastePaper, PointValue: 1},
		})
	})

	if e.Level() != 1 {
		t.Fatalf("level=%d, want 1 at 99 points", e.Level())
	}

	if _, err := e.CaptureMonster("m1"); err != nil {
		t.Fatalf("capture: %v", err)
	}
	if e.Points() != 100 {
		t.Fatalf("points=%d, want 100", e.Points())
	}
	if e.Level() != 2 {
		t.Fatalf("level=%d, want 2", e.Level())
	}
	if got := findBadge(t, e, BadgeEcoHero).Progress; got != 2 {
		t.Fatalf("eco hero progress=%d, want 2", got)
	}
	if !hasUrgentNotification(e) {
		t.Fatalf("expected an urgent level-up notification")
	}
}

func TestBadgeUnlockBonusGrantedOnce(t *testing.T) {
	e, _ := newTestEngine(t, func(st store.Store) {
		mustSave(t, st, "missions", []Mission{})
		mustSave(t, st, "badges", []Badge{
			{ID: BadgeGuardian, Name: "Environmental Guardian", Total: 2},
		})
	})

	at := Coordinates{Lat: 37.5665, Lng: 126.9780}
	e.ReportDumping(at, "tires")
	far := Coordinates{Lat: 37.60, Lng: 126.99}
	e.ReportDumping(far, "paint cans")

	b := findBadge(t, e, BadgeGuardian)
	if !b.Unlocked {
		t.Fatalf("badge not unlocked at progress=%d/%d", b.Progress, b.Total)
	}
	// 2 reports x 50 + 100 unlock bonus = 200.
	if e.Points() != 200 {
		t.Fatalf("points=%d, want 200", e.Points())
	}

	// The guardian badge keeps counting on every report, but the bonus
	// must not be granted again.
	e.ReportDumping(Coordinates{Lat: 37.55, Lng: 126.95}, "bags")
	b = findBadge(t, e, BadgeGuardian)
	if b.Progress != 3 {
		t.Fatalf("progress=%d, want 3", b.Progress)
	}
	if e.Points() != 250 {
		t.Fatalf("points=%d, want 250 (no second bonus)", e.Points())
	}
}

func TestReportCreatesHotspot(t *testing.T) {
	e, _ := newTestEngine(t, nil)

	at := Coordinates{Lat: 37.5665, Lng: 126.9780}
	res := e.ReportDumping(at, "mattress by the bridge")

	if !res.NewHotspot {
		t.Fatalf("expected a new hotspot")
	}
	if res.Hotspot.ReportCount != 1 {
		t.Fatalf("reportCount=%d, want 1", res.Hotspot.ReportCount)
	}
	if res.Hotspot.Severity != SeverityLow {
		t.Fatalf("severity=%s, want low", res.Hotspot.Severity)
	}
	if res.PointsAwarded != ReportRewardPoints || e.Points() != 50 {
		t.Fatalf("points=%d awarded=%d, want 50/50", e.Points(), res.PointsAwarded)
	}
	if got := len(e.Hotspots()); got != 1 {
		t.Fatalf("hotspots=%d, want 1", got)
	}
	if res.Hotspot.Name == "" {
		t.Fatalf("expected a synthesized hotspot name")
	}
}

func TestReportFoldsIntoNearbyHotspotAndEscalates(t *testing.T) {
	at := Coordinates{Lat: 37.5665, Lng: 126.9780}
	e, _ := newTestEngine(t, func(st store.Store) {
		mustSave(t, st, "hotspots", []Hotspot{{
			ID:          "h1",
			Name:        "Back alley",
			Severity:    SeverityMedium,
			Coordinates: Coordinates{Lat: 37.5668, Lng: 126.9782}, // ~40 m away
			ReportCount: 10,
		}})
	})

	res := e.ReportDumping(at, "more tires")

	if res.NewHotspot {
		t.Fatalf("expected report to fold into existing hotspot")
	}
	if res.Hotspot.ReportCount != 11 {
		t.Fatalf("reportCount=%d, want 11", res.Hotspot.ReportCount)
	}
	if res.Hotspot.Severity != SeverityHigh {
		t.Fatalf("severity=%s, want high", res.Hotspot.Severity)
	}
	if !res.Hotspot.LastReportAt.Equal(testTime) {
		t.Fatalf("lastReportAt=%v, want %v", res.Hotspot.LastReportAt, testTime)
	}
	if got := len(e.Hotspots()); got != 1 {
		t.Fatalf("hotspots=%d, want 1", got)
	}
}

func TestReportPicksClosestHotspot(t *testing.T) {
	at := Coordinates{Lat: 37.5665, Lng: 126.9780}
	e, _ := newTestEngine(t, func(st store.Store) {
		mustSave(t, st, "hotspots", []Hotspot{
			{ID: "far", Coordinates: Coordinates{Lat: 37.5671, Lng: 126.9780}, ReportCount: 1},
			{ID: "near", Coordinates: Coordinates{Lat: 37.5666, Lng: 126.9780}, ReportCount: 1},
		})
	})

	res := e.ReportDumping(at, "bags")
	if res.Hotspot.ID != "near" {
		t.Fatalf("folded into %q, want closest (near)", res.Hotspot.ID)
	}
	if res.Hotspot.ReportCount != 2 {
		t.Fatalf("reportCount=%d, want 2", res.Hotspot.ReportCount)
	}
}

func TestJoinEvent(t *testing.T) {
	e, _ := newTestEngine(t, nil)

	events := e.Events()
	if len(events) == 0 {
		t.Fatalf("expected seeded events")
	}
	id := events[0].ID

	res, err := e.JoinEvent(id)
	if err != nil {
		t.Fatalf("JoinEvent: %v", err)
	}
	if res.Event.Participants != events[0].Participants+1 {
		t.Fatalf("participants=%d, want %d", res.Event.Participants, events[0].Participants+1)
	}
	if got := findMission(t, e, MissionCommunityWeekly).Progress; got != 1 {
		t.Fatalf("community mission progress=%d, want 1", got)
	}
	if got := findBadge(t, e, BadgeCommunityStar).Progress; got != 1 {
		t.Fatalf("community star progress=%d, want 1", got)
	}
	// Joining never credits the event reward itself.
	if e.Points() != 0 {
		t.Fatalf("points=%d, want 0", e.Points())
	}

	if _, err := e.JoinEvent("nope"); err == nil {
		t.Fatalf("expected error for unknown event")
	}
}

func TestInviteFriendMission(t *testing.T) {
	e, _ := newTestEngine(t, nil)

	for i := 0; i < 3; i++ {
		e.InviteFriend(fmt.Sprintf("friend%d@example.com", i))
	}

	m := findMission(t, e, MissionInviteWeekly)
	if !m.Completed {
		t.Fatalf("invite mission not completed at %d/%d", m.Progress, m.Total)
	}
	if e.Points() != m.RewardPoints {
		t.Fatalf("points=%d, want %d (mission reward only)", e.Points(), m.RewardPoints)
	}
}

func TestLevelAlwaysDerivedFromPoints(t *testing.T) {
	e, _ := newTestEngine(t, nil)

	e.ReportDumping(Coordinates{Lat: 37.5665, Lng: 126.9780}, "one")
	e.InviteFriend("a@example.com")
	if _, err := e.CaptureMonster("m_bottle_goblin"); err != nil {
		t.Fatalf("capture: %v", err)
	}

	if want := LevelForPoints(e.Points()); e.Level() != want {
		t.Fatalf("level=%d, want %d for %d points", e.Level(), want, e.Points())
	}
}

func TestNotificationsNewestFirstAndReadOneWay(t *testing.T) {
	e, _ := newTestEngine(t, nil)

	e.InviteFriend("a@example.com")
	e.InviteFriend("b@example.com")

	notices := e.Notifications()
	if len(notices) != 2 {
		t.Fatalf("notifications=%d, want 2", len(notices))
	}
	if notices[0].ID <= notices[1].ID {
		t.Fatalf("expected newest first, got %s before %s", notices[0].ID, notices[1].ID)
	}
	if e.UnreadCount() != 2 {
		t.Fatalf("unread=%d, want 2", e.UnreadCount())
	}

	e.MarkRead(notices[0].ID)
	if e.UnreadCount() != 1 {
		t.Fatalf("unread after MarkRead=%d, want 1", e.UnreadCount())
	}
	e.MarkRead("unknown") // no-op
	e.MarkAllRead()
	if e.UnreadCount() != 0 {
		t.Fatalf("unread after MarkAllRead=%d, want 0", e.UnreadCount())
	}
}

func TestPickNearbyMonster(t *testing.T) {
	user := Coordinates{Lat: 37.5665, Lng: 126.9780}
	e, _ := newTestEngine(t, func(st store.Store) {
		mustSave(t, st, "monsters", []Monster{
			{ID: "in", Coordinates: Coordinates{Lat: 37.5667, Lng: 126.9780}},  // ~22 m
			{ID: "out", Coordinates: Coordinates{Lat: 37.5765, Lng: 126.9780}}, // ~1.1 km
			{ID: "caught", Captured: true, Coordinates: Coordinates{Lat: 37.5665, Lng: 126.9780}},
		})
	})

	m := e.PickNearbyMonster(user)
	if m == nil || m.ID != "in" {
		t.Fatalf("picked %v, want the single in-range uncaptured monster", m)
	}

	if _, err := e.CaptureMonster("in"); err != nil {
		t.Fatalf("capture: %v", err)
	}
	if m := e.PickNearbyMonster(user); m != nil {
		t.Fatalf("picked %s, want nil with nothing in range", m.ID)
	}
}

func TestStateSurvivesRestart(t *testing.T) {
	e, st := newTestEngine(t, nil)

	if _, err := e.CaptureMonster("m_bottle_goblin"); err != nil {
		t.Fatalf("capture: %v", err)
	}
	e.ReportDumping(Coordinates{Lat: 37.5665, Lng: 126.9780}, "tires")
	points := e.Points()

	e2 := New(st, WithClock(func() time.Time { return testTime }))
	if e2.Points() != points {
		t.Fatalf("points after restart=%d, want %d", e2.Points(), points)
	}
	if m := e2.Monsters()[0]; m.ID == "m_bottle_goblin" && !m.Captured {
		t.Fatalf("captured flag lost on restart")
	}
	if got := len(e2.Hotspots()); got != 1 {
		t.Fatalf("hotspots after restart=%d, want 1", got)
	}
	if got, want := len(e2.Notifications()), len(e.Notifications()); got != want {
		t.Fatalf("notifications after restart=%d, want %d", got, want)
	}
}

func TestSettingsPersistAcrossRestart(t *testing.T) {
	e, st := newTestEngine(t, nil)

	e.SetRank("River Keeper")
	e.SetTheme("dark")
	e.SetNotificationsEnabled(false)
	e.SetActiveTab("map")
	e.SetLoggedIn(true)
	e.MarkTutorialSeen()

	e2 := New(st, WithClock(func() time.Time { return testTime }))
	if e2.Rank() != "River Keeper" {
		t.Fatalf("rank=%q, want River Keeper", e2.Rank())
	}
	if e2.Theme() != "dark" {
		t.Fatalf("theme=%q, want dark", e2.Theme())
	}
	if e2.NotificationsEnabled() {
		t.Fatalf("expected notifications toggle off")
	}
	if e2.ActiveTab() != "map" {
		t.Fatalf("activeTab=%q, want map", e2.ActiveTab())
	}
	if !e2.LoggedIn() || !e2.TutorialSeen() {
		t.Fatalf("login/tutorial flags lost on restart")
	}
}

func findMission(t *testing.T, e *Engine, id string) Mission {
	t.Helper()
	for _, m := range e.Missions() {
		if m.ID == id {
			return m
		}
	}
	t.Fatalf("mission %s not found", id)
	return Mission{}
}

func findBadge(t *testing.T, e *Engine, id string) Badge {
	t.Helper()
	for _, b := range e.Badges() {
		if b.ID == id {
			return b
		}
	}
	t.Fatalf("badge %s not found", id)
	return Badge{}
}

func hasUrgentNotification(e *Engine) bool {
	for _, n := range e.Notifications() {
		if n.Urgent {
			return true
		}
	}
	return false
}
