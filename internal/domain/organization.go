package domain

import "time"

// Organization is the single tenant every other entity belongs to.
type Organization struct {
	ID        string
	Name      string
	Domain    string
	CreatedAt time.Time
}

// Team types, derived from the department a team belongs to.
const (
	TeamTypeTechnical       = "technical"
	TeamTypeGoToMarket      = "go_to_market"
	TeamTypeBusinessOps     = "business_ops"
	TeamTypeCrossFunctional = "cross_functional"
)

// Team represents a group of users owning projects.
type Team struct {
	ID             string
	OrganizationID string
	Name           string
	TeamType       string
	CreatedAt      time.Time

	// Department routes primary memberships. It is not persisted.
	Department string
}

// TeamMembership links a user to a team. A nil LeftAt marks an active member.
type TeamMembership struct {
	TeamID      string
	UserID      string
	IsTeamAdmin bool
	JoinedAt    time.Time
	LeftAt      *time.Time
}

// Active reports whether the membership is current.
func (m TeamMembership) Active() bool {
	return m.LeftAt == nil
}
