package engine

import "fmt"

// addPoints raises the point total and handles the derived level-up
// transition: a level-up notification plus the eco-hero badge progress
// being overwritten with the new level. Points only ever go up.
func (e *Engine) addPoints(delta int) {
	if delta <= 0 {
		return
	}
	before := LevelForPoints(e.state.Points)
	e.state.Points += delta
	after := LevelForPoints(e.state.Points)
	if after > before {
		e.notify(fmt.Sprintf("Level up! You reached level %d.", after), true)
		e.setBadgeProgress(BadgeEcoHero, after)
	}
}

// advanceMission bumps a mission's progress by one and applies the
// crossing check. Progress keeps counting past the target; the reward
// is granted exactly once, at the first crossing.
func (e *Engine) advanceMission(id string) {
	m := e.mission(id)
	if m == nil {
		return
	}
	m.Progress++
	if !m.Completed && m.Progress >= m.Total {
		m.Completed = true
		e.addPoints(m.RewardPoints)
		e.notify(fmt.Sprintf("Mission complete: %s (+%d points)", m.Title, m.RewardPoints), false)
	}
}

// advanceBadge bumps a badge's progress by one and applies the crossing
// check. Unlocking grants the flat bonus exactly once.
func (e *Engine) advanceBadge(id string) {
	b := e.badge(id)
	if b == nil {
		return
	}
	b.Progress++
	e.checkBadgeCrossing(b)
}

// setBadgeProgress overwrites a badge's progress (used for the eco-hero
// badge, which tracks the level directly). Progress never decreases.
func (e *Engine) setBadgeProgress(id string, progress int) {
	b := e.badge(id)
	if b == nil {
		return
	}
	if progress > b.Progress {
		b.Progress = progress
	}
	e.checkBadgeCrossing(b)
}

func (e *Engine) checkBadgeCrossing(b *Badge) {
	if b.Unlocked || b.Progress < b.Total {
		return
	}
	b.Unlocked = true
	e.addPoints(BadgeUnlockBonus)
	e.notify(fmt.Sprintf("Badge unlocked: %s (+%d points)", b.Name, BadgeUnlockBonus), false)
}

// notify prepends a new notification so the sequence stays newest-first.
func (e *Engine) notify(message string, urgent bool) {
	n := Notification{
		ID:        e.newID(),
		Message:   message,
		Urgent:    urgent,
		CreatedAt: e.now().UTC(),
	}
	e.state.Notifications = append([]Notification{n}, e.state.Notifications...)
}
