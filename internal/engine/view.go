package engine

// Read-only snapshots and settings for the view layer. Slices are
// copied so callers cannot mutate engine-owned records.

func (e *Engine) Points() int { return e.state.Points }

// Level is derived from points on every read.
func (e *Engine) Level() int { return LevelForPoints(e.state.Points) }

// EnvironmentScore is recomputed from current hotspots and monsters.
func (e *Engine) EnvironmentScore() int {
	return EnvironmentScoreFor(e.state.Hotspots, e.state.Monsters)
}

func (e *Engine) Monsters() []Monster {
	return append([]Monster(nil), e.state.Monsters...)
}

func (e *Engine) Hotspots() []Hotspot {
	return append([]Hotspot(nil), e.state.Hotspots...)
}

func (e *Engine) Missions() []Mission {
	return append([]Mission(nil), e.state.Missions...)
}

func (e *Engine) Badges() []Badge {
	return append([]Badge(nil), e.state.Badges...)
}

func (e *Engine) Events() []Event {
	return append([]Event(nil), e.state.Events...)
}

// Rank is supplied externally (e.g. a seasonal leaderboard), never
// derived by the engine.
func (e *Engine) Rank() string { return e.state.Rank }

func (e *Engine) SetRank(rank string) {
	e.state.Rank = rank
	e.save(keyRank, rank)
}

func (e *Engine) Theme() string { return e.state.Theme }

func (e *Engine) SetTheme(theme string) {
	e.state.Theme = theme
	e.save(keyTheme, theme)
}

func (e *Engine) NotificationsEnabled() bool { return e.state.NotifyEnabled }

func (e *Engine) SetNotificationsEnabled(on bool) {
	e.state.NotifyEnabled = on
	e.save(keyNotifyEnabled, on)
}

func (e *Engine) ActiveTab() string { return e.state.ActiveTab }

func (e *Engine) SetActiveTab(tab string) {
	e.state.ActiveTab = tab
	e.save(keyActiveTab, tab)
}

func (e *Engine) LoggedIn() bool { return e.state.LoggedIn }

func (e *Engine) SetLoggedIn(in bool) {
	e.state.LoggedIn = in
	e.save(keyLoggedIn, in)
}

func (e *Engine) TutorialSeen() bool { return e.state.TutorialSeen }

func (e *Engine) MarkTutorialSeen() {
	if e.state.TutorialSeen {
		return
	}
	e.state.TutorialSeen = true
	e.save(keyTutorialSeen, true)
}
