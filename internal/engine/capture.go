package engine

import "fmt"

// CaptureResult reports what a capture changed.
type CaptureResult struct {
	MonsterID     string
	MonsterName   string
	WasteType     WasteType
	PointsAwarded int
	LevelBefore   int
	LevelAfter    int
	LevelUp       bool
}

// CaptureMonster flips a monster's captured flag and credits its point
// value. Capturing an unknown or already-captured monster is rejected
// without touching state, so points are never double-granted.
func (e *Engine) CaptureMonster(id string) (*CaptureResult, error) {
	m := e.monster(id)
	if m == nil {
		return nil, NotFoundError{Kind: "monster", ID: id}
	}
	if m.Captured {
		return nil, AlreadyCapturedError{ID: id}
	}

	levelBefore := e.Level()

	m.Captured = true
	e.addPoints(m.PointValue)
	e.notify(fmt.Sprintf("You captured %s! +%d points.", m.Name, m.PointValue), false)

	if m.WasteType == WastePlastic {
		e.advanceBadge(BadgePlasticHunter)
		e.advanceMission(MissionPlasticDaily)
	}

	e.save(keyMonsters, e.state.Monsters)
	e.saveProgress()

	levelAfter := e.Level()
	return &CaptureResult{
		MonsterID:     m.ID,
		MonsterName:   m.Name,
		WasteType:     m.WasteType,
		PointsAwarded: m.PointValue,
		LevelBefore:   levelBefore,
		LevelAfter:    levelAfter,
		LevelUp:       levelAfter > levelBefore,
	}, nil
}

// NearbyMonsters returns uncaptured monsters within capture range of
// the user, in stored order.
func (e *Engine) NearbyMonsters(user Coordinates) []Monster {
	var out []Monster
	for i := range e.state.Monsters {
		m := e.state.Monsters[i]
		if m.Captured {
			continue
		}
		if IsMonsterNearby(m.Coordinates, &user) {
			out = append(out, m)
		}
	}
	return out
}

// PickNearbyMonster selects one uncaptured in-range monster uniformly
// at random, or nil when none qualify. Selection runs through the
// injected random source so tests can pin it.
func (e *Engine) PickNearbyMonster(user Coordinates) *Monster {
	candidates := e.NearbyMonsters(user)
	if len(candidates) == 0 {
		return nil
	}
	m := candidates[e.rng.Intn(len(candidates))]
	return &m
}
