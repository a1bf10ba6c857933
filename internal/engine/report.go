package engine

import "fmt"

// ReportResult reports what a dumping report changed.
type ReportResult struct {
	Hotspot       Hotspot
	NewHotspot    bool
	PointsAwarded int
	LevelBefore   int
	LevelAfter    int
	LevelUp       bool
}

// ReportDumping records an illegal-dumping report at the given
// coordinates. A report within HotspotRadiusKm of an existing hotspot
// folds into it; otherwise a new hotspot is created. Either way the
// reporter earns ReportRewardPoints and the report mission/badge
// advance. This operation has no failure path.
func (e *Engine) ReportDumping(at Coordinates, description string) *ReportResult {
	levelBefore := e.Level()

	h := e.nearestHotspot(at)
	created := h == nil
	if created {
		e.state.Hotspots = append(e.state.Hotspots, Hotspot{
			ID:           e.newID(),
			Name:         synthesizeHotspotName(at),
			Severity:     SeverityLow,
			LastReportAt: e.now().UTC(),
			Coordinates:  at,
			ReportCount:  1,
		})
		h = &e.state.Hotspots[len(e.state.Hotspots)-1]
	} else {
		h.ReportCount++
		h.Severity = SeverityForReports(h.ReportCount)
		h.LastReportAt = e.now().UTC()
	}

	e.addPoints(ReportRewardPoints)
	e.notify(fmt.Sprintf("Report received: %s. Thank you for watching over %s! +%d points.",
		description, h.Name, ReportRewardPoints), false)
	e.advanceMission(MissionReportDaily)
	// The guardian badge counts every report, even past its target.
	e.advanceBadge(BadgeGuardian)

	e.save(keyHotspots, e.state.Hotspots)
	e.saveProgress()

	levelAfter := e.Level()
	return &ReportResult{
		Hotspot:       *h,
		NewHotspot:    created,
		PointsAwarded: ReportRewardPoints,
		LevelBefore:   levelBefore,
		LevelAfter:    levelAfter,
		LevelUp:       levelAfter > levelBefore,
	}
}

// nearestHotspot finds the closest hotspot within HotspotRadiusKm of
// the given point. Ties at identical distance fall back to stored order.
func (e *Engine) nearestHotspot(at Coordinates) *Hotspot {
	var best *Hotspot
	bestDist := 0.0
	for i := range e.state.Hotspots {
		d := DistanceKm(e.state.Hotspots[i].Coordinates, at)
		if d > HotspotRadiusKm {
			continue
		}
		if best == nil || d < bestDist {
			best = &e.state.Hotspots[i]
			bestDist = d
		}
	}
	return best
}

func synthesizeHotspotName(at Coordinates) string {
	return fmt.Sprintf("Dumping site (%.4f, %.4f)", at.Lat, at.Lng)
}
