package domain

import "time"

// DefaultRank is the rank of a traveler with no recorded progress.
const DefaultRank = "Chrono-Cadet"

// JoinDateLayout is the format of TravelerStats.JoinDate.
const JoinDateLayout = "2006-01-02"

// Rarity grades an artifact in a traveler's inventory.
type Rarity string

// Artifact rarities
const (
	RarityCommon Rarity = "Common"
	RarityRare   Rarity = "Rare"
	RarityRelic  Rarity = "Relic"
)

// Valid reports whether r is a known rarity.
func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityRelic:
		return true
	}
	return false
}

// TravelerStats are the counters shown on the traveler's identity card.
type TravelerStats struct {
	Rank               string `json:"rank"`
	CenturiesTraversed int    `json:"centuriesTraversed"`
	ParadoxesCaused    int    `json:"paradoxesCaused"`
	ArtifactsFound     int    `json:"artifactsFound"`
	MajorDiscoveries   int    `json:"majorDiscoveries"`
	JoinDate           string `json:"joinDate"`
}

// Artifact is an item collected on a journey.
type Artifact struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rarity      Rarity `json:"rarity"`
	IconName    string `json:"iconName"`
}

// TravelerProfile is everything the profile page shows for a user.
type TravelerProfile struct {
	Email     string        `json:"email"`
	Stats     TravelerStats `json:"stats"`
	Inventory []Artifact    `json:"inventory"`
}

// WithDefaults fills empty stats fields: a missing rank becomes
// DefaultRank and a missing join date becomes today's date in UTC.
// Counters default to zero already.
func (s TravelerStats) WithDefaults(now time.Time) TravelerStats {
	if s.Rank == "" {
		s.Rank = DefaultRank
	}
	if s.JoinDate == "" {
		s.JoinDate = now.UTC().Format(JoinDateLayout)
	}
	return s
}

// FallbackProfile is the profile shown when the traveler's records cannot
// be read.
func FallbackProfile(email string) TravelerProfile {
	return TravelerProfile{
		Email: email,
		Stats: TravelerStats{
			Rank:               DefaultRank,
			CenturiesTraversed: 3,
			ParadoxesCaused:    1,
			ArtifactsFound:     4,
			MajorDiscoveries:   7,
			JoinDate:           "1920-08-01",
		},
		Inventory: []Artifact{
			{ID: "1", Name: "Tesla's Coil", Description: "A copper fragment humming with energy.", Rarity: RarityRare, IconName: "zap"},
			{ID: "2", Name: "Caesar's Laurel", Description: "A dried golden leaf.", Rarity: RarityRelic, IconName: "feather"},
			{ID: "3", Name: "Lunar Dust", Description: "Grey powder in a glass vial.", Rarity: RarityCommon, IconName: "star"},
			{ID: "4", Name: "Press Badge", Description: "Your official credential.", Rarity: RarityCommon, IconName: "badge"},
		},
	}
}
