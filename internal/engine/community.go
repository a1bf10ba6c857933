package engine

import "fmt"

// JoinResult reports what joining an event changed.
type JoinResult struct {
	Event       Event
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
}

// JoinEvent signs the user up for a community event. The event's reward
// is only mentioned in the confirmation; it is credited at attendance,
// which this engine does not model.
func (e *Engine) JoinEvent(id string) (*JoinResult, error) {
	ev := e.event(id)
	if ev == nil {
		return nil, NotFoundError{Kind: "event", ID: id}
	}

	levelBefore := e.Level()

	ev.Participants++
	e.notify(fmt.Sprintf("You joined %s. Show up to earn %d points!", ev.Title, ev.RewardPoints), false)
	e.advanceMission(MissionCommunityWeekly)
	e.advanceBadge(BadgeCommunityStar)

	e.save(keyEvents, e.state.Events)
	e.saveProgress()

	levelAfter := e.Level()
	return &JoinResult{
		Event:       *ev,
		LevelBefore: levelBefore,
		LevelAfter:  levelAfter,
		LevelUp:     levelAfter > levelBefore,
	}, nil
}

// InviteResult reports what an invite changed.
type InviteResult struct {
	Contact     string
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
}

// InviteFriend advances the invite mission. The contact is recorded in
// the confirmation as-is; no validation is modeled.
func (e *Engine) InviteFriend(contact string) *InviteResult {
	levelBefore := e.Level()

	e.advanceMission(MissionInviteWeekly)
	e.notify(fmt.Sprintf("Invitation sent to %s.", contact), false)

	e.saveProgress()

	levelAfter := e.Level()
	return &InviteResult{
		Contact:     contact,
		LevelBefore: levelBefore,
		LevelAfter:  levelAfter,
		LevelUp:     levelAfter > levelBefore,
	}
}
