package engine

import "time"

// Well-known mission and badge ids referenced by the operations.
const (
	MissionPlasticDaily    = "daily_plastic"
	MissionReportDaily     = "daily_report"
	MissionCommunityWeekly = "weekly_community"
	MissionInviteWeekly    = "weekly_invite"

	BadgePlasticHunter = "badge_plastic_hunter"
	BadgeGuardian      = "badge_guardian"
	BadgeCommunityStar = "badge_community_star"
	BadgeEcoHero       = "badge_eco_hero"
)

// DefaultRank is shown until an external ranking supplies one.
const DefaultRank = "Sprout"

// DefaultLocation is the fallback coordinate pair used when
// geolocation is unavailable or denied (Seoul City Hall).
var DefaultLocation = Coordinates{Lat: 37.5665, Lng: 126.9780}

// defaultMonsters seeds the monster roster around the default location.
// Roughly 0.01 degrees of latitude is one kilometer, so offsets in the
// fourth decimal place keep the roster within walking range.
func defaultMonsters() []Monster {
	return []Monster{
		{ID: "m_bottle_goblin", Name: "Bottle Goblin", WasteType: WastePlastic, PointValue: 50,
			Coordinates: Coordinates{Lat: 37.5667, Lng: 126.9782}, Rarity: RarityCommon},
		{ID: "m_wrap_wraith", Name: "Wrap Wraith", WasteType: WastePlastic, PointValue: 40,
			Coordinates: Coordinates{Lat: 37.5663, Lng: 126.9785}, Rarity: RarityCommon},
		{ID: "m_crumple_wisp", Name: "Crumple Wisp", WasteType: WastePaper, PointValue: 30,
			Coordinates: Coordinates{Lat: 37.5670, Lng: 126.9776}, Rarity: RarityCommon},
		{ID: "m_carton_golem", Name: "Carton Golem", WasteType: WastePaper, PointValue: 35,
			Coordinates: Coordinates{Lat: 37.5689, Lng: 126.9770}, Rarity: RarityCommon},
		{ID: "m_can_crawler", Name: "Can Crawler", WasteType: WasteMetal, PointValue: 60,
			Coordinates: Coordinates{Lat: 37.5652, Lng: 126.9791}, Rarity: RarityUncommon},
		{ID: "m_foil_fiend", Name: "Foil Fiend", WasteType: WasteMetal, PointValue: 70,
			Coordinates: Coordinates{Lat: 37.5641, Lng: 126.9763}, Rarity: RarityUncommon},
		{ID: "m_shard_sprite", Name: "Shard Sprite", WasteType: WasteGlass, PointValue: 80,
			Coordinates: Coordinates{Lat: 37.5678, Lng: 126.9799}, Rarity: RarityRare},
		{ID: "m_jar_genie", Name: "Jar Genie", WasteType: WasteGlass, PointValue: 90,
			Coordinates: Coordinates{Lat: 37.5698, Lng: 126.9812}, Rarity: RarityRare},
	}
}

func defaultMissions() []Mission {
	return []Mission{
		{ID: MissionPlasticDaily, Title: "Capture 3 plastic monsters", Kind: MissionDaily,
			RewardPoints: 100, Total: 3},
		{ID: MissionReportDaily, Title: "Report illegal dumping", Kind: MissionDaily,
			RewardPoints: 80, Total: 2},
		{ID: MissionCommunityWeekly, Title: "Join community events", Kind: MissionWeekly,
			RewardPoints: 150, Total: 2},
		{ID: MissionInviteWeekly, Title: "Invite 3 friends", Kind: MissionWeekly,
			RewardPoints: 100, Total: 3},
	}
}

func defaultBadges() []Badge {
	return []Badge{
		{ID: BadgePlasticHunter, Name: "Plastic Hunter", Total: 10},
		{ID: BadgeGuardian, Name: "Environmental Guardian", Total: 5},
		{ID: BadgeCommunityStar, Name: "Community Star", Total: 3},
		{ID: BadgeEcoHero, Name: "Eco Hero", Progress: 1, Total: 5},
	}
}

func defaultEvents() []Event {
	return []Event{
		{ID: "ev_river_cleanup", Title: "River Cleanup Day",
			Description:  "Gloves and bags provided. Meet at the east bank entrance.",
			RewardPoints: 200, StartsAt: time.Date(2026, time.September, 12, 10, 0, 0, 0, time.UTC),
			Location: "Cheonggyecheon east bank"},
		{ID: "ev_recycling_drive", Title: "Neighborhood Recycling Drive",
			Description:  "Bring sorted plastics and cans to the community center.",
			RewardPoints: 150, StartsAt: time.Date(2026, time.September, 20, 14, 0, 0, 0, time.UTC),
			Location: "Jung-gu community center"},
		{ID: "ev_park_patrol", Title: "Park Litter Patrol",
			Description:  "A short evening walk picking up what the day left behind.",
			RewardPoints: 100, StartsAt: time.Date(2026, time.October, 3, 18, 30, 0, 0, time.UTC),
			Location: "Namsan park north gate"},
	}
}
