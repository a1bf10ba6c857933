package engine

import (
	"fmt"
	"strings"
	"time"
)

type WasteType string

const (
	WastePlastic WasteType = "plastic"
	WastePaper   WasteType = "paper"
	WasteMetal   WasteType = "metal"
	WasteGlass   WasteType = "glass"
)

func (w WasteType) IsValid() bool {
	switch w {
	case WastePlastic, WastePaper, WasteMetal, WasteGlass:
		return true
	default:
		return false
	}
}

func ParseWasteType(input string) (WasteType, error) {
	w := WasteType(strings.TrimSpace(strings.ToLower(input)))
	if !w.IsValid() {
		return "", fmt.Errorf("invalid waste type: %q", input)
	}
	return w, nil
}

type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
)

func (r Rarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare:
		return true
	default:
		return false
	}
}

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// SeverityForReports derives a hotspot's severity from its report count.
// Severity is never stored independently of the count.
func SeverityForReports(count int) Severity {
	switch {
	case count > 10:
		return SeverityHigh
	case count > 5:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// Weight is the severity's contribution to the environment score.
func (s Severity) Weight() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	default:
		return 1
	}
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Monster is a virtual collectible tied to a waste-type category.
// Everything except Captured is fixed at seed time.
type Monster struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	WasteType   WasteType   `json:"waste_type"`
	PointValue  int         `json:"point_value"`
	Coordinates Coordinates `json:"coordinates"`
	Captured    bool        `json:"captured"`
	Rarity      Rarity      `json:"rarity"`
}

// Hotspot is a geographic point aggregating dumping reports.
// Hotspots are created on first report and only ever accumulate.
type Hotspot struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Severity     Severity    `json:"severity"`
	LastReportAt time.Time   `json:"last_report_at"`
	Coordinates  Coordinates `json:"coordinates"`
	ReportCount  int         `json:"report_count"`
}

type MissionKind string

const (
	MissionDaily  MissionKind = "daily"
	MissionWeekly MissionKind = "weekly"
)

// Mission is a bounded-progress task with a one-time point reward.
type Mission struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Kind         MissionKind `json:"kind"`
	RewardPoints int         `json:"reward_points"`
	Progress     int         `json:"progress"`
	Total        int         `json:"total"`
	Completed    bool        `json:"completed"`
}

// Badge is a bounded-progress achievement with a one-time unlock bonus.
type Badge struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Progress int    `json:"progress"`
	Total    int    `json:"total"`
	Unlocked bool   `json:"unlocked"`
}

// Notification is surfaced to the user, newest first. Read only ever
// flips false to true.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Urgent    bool      `json:"urgent"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Event is a community activity users can join. Its reward is only
// credited at attendance, which is outside this engine.
type Event struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	RewardPoints int       `json:"reward_points"`
	Participants int       `json:"participants"`
	StartsAt     time.Time `json:"starts_at"`
	Location     string    `json:"location"`
}
