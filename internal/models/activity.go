package models

import "time"

// Activity is one entry in the append-only audit trail, stored most recent
// first. UserID is the actor, not the affected entity.
type Activity struct {
	ID         string             `json:"id"`
	UserID     string             `json:"user_id"`
	Action     string             `json:"action"`
	EntityType ActivityEntityType `json:"entity_type"`
	EntityID   string             `json:"entity_id"`
	Timestamp  time.Time          `json:"timestamp"`
}
