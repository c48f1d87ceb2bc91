package models

import "time"

// Member is a team member profile. Email uniqueness is not enforced.
// Members carry no UpdatedAt.
type Member struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Role      MemberRole   `json:"role"`
	Avatar    string       `json:"avatar"` // display initials
	Skills    []string     `json:"skills"`
	Status    MemberStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}
