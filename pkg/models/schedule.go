package models

import "time"

// Schedule is a cron trigger bound to a published process.
type Schedule struct {
	ID          string     `json:"id"`
	ProcessID   string     `json:"process_id"`
	ProcessName string     `json:"process_name"`
	Cron        string     `json:"cron"`
	Timezone    string     `json:"timezone"`
	Enabled     bool       `json:"enabled"`
	LastFiredAt *time.Time `json:"last_fired_at,omitempty"`
	NextFireAt  time.Time  `json:"next_fire_at"`
	OwnerUser   string     `json:"owner_user"`
	OwnerTeam   string     `json:"owner_team,omitempty"`
	// Input is passed as the execution input on each fire.
	Input map[string]any `json:"input,omitempty"`
}
