package models

import "time"

// Project is a tracked project with its assigned member ids.
// MemberIDs are weak references: they are not validated against the member
// collection and may dangle after a member is deleted.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     time.Time     `json:"end_date"`
	MemberIDs   []string      `json:"member_ids"`
	Progress    int           `json:"progress"` // 0-100, author-supplied, not derived from tasks
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// HasMember reports whether the member id appears in the project roster.
func (p *Project) HasMember(memberID string) bool {
	for _, id := range p.MemberIDs {
		if id == memberID {
			return true
		}
	}
	return false
}
