package engine

import "math"

const (
	// LevelStep is how many points make up one level: level = points/100 + 1.
	LevelStep = 100

	// ReportRewardPoints is awarded for every dumping report.
	ReportRewardPoints = 50

	// BadgeUnlockBonus is the flat point grant for unlocking any badge.
	BadgeUnlockBonus = 100
)

// LevelForPoints returns the level implied by a point total. Level is
// always derived, never stored as authority.
func LevelForPoints(points int) int {
	if points < 0 {
		points = 0
	}
	return points/LevelStep + 1
}

// EnvironmentScoreFor computes the neighborhood health indicator from
// hotspot severities and the monster capture rate. The result is
// intentionally unclamped: severe enough hotspots push it below zero.
func EnvironmentScoreFor(hotspots []Hotspot, monsters []Monster) int {
	severity := 0
	for i := range hotspots {
		severity += hotspots[i].Severity.Weight()
	}

	captureRate := 0.0
	if len(monsters) > 0 {
		captured := 0
		for i := range monsters {
			if monsters[i].Captured {
				captured++
			}
		}
		captureRate = float64(captured) / float64(len(monsters))
	}

	score := (100-float64(severity)*5)*0.6 + captureRate*100*0.4
	return int(math.Round(score))
}
