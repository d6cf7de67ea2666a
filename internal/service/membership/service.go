// Package membership places users on teams and derives active rosters.
package membership

import (
	"log/slog"
	"time"

	"github.com/splax/worksim/internal/calendar"
	"github.com/splax/worksim/internal/domain"
	"github.com/splax/worksim/internal/seed"
)

// Input carries the org chart memberships are drawn from.
type Input struct {
	Seed   int64
	Window calendar.Window
	Teams  []domain.Team
	Users  []domain.User
}

// Service generates team memberships.
type Service struct {
	logger *slog.Logger
}

// New returns a membership service.
func New(logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return Service{logger: logger}
}

// Generate gives every user one primary team in their department when one
// exists, plus an occasional secondary team. Users who were deactivated
// usually leave their teams.
func (s Service) Generate(in Input) []domain.TeamMembership {
	if len(in.Teams) == 0 {
		return nil
	}
	r := seed.New(in.Seed, seed.StageMemberships)

	byDepartment := map[string][]string{}
	for _, t := range in.Teams {
		byDepartment[t.Department] = append(byDepartment[t.Department], t.ID)
	}

	var out []domain.TeamMembership
	for _, u := range in.Users {
		candidates := byDepartment[u.Department]
		if len(candidates) == 0 {
			candidates = []string{seed.Pick(r, in.Teams).ID}
		}
		primary := seed.Pick(r, candidates)
		joined := in.Window.Workday(r)

		var left *time.Time
		if u.DeactivatedAt != nil && r.Chance(0.60) {
			left = u.DeactivatedAt
		}
		admin := domain.IsManagerialRole(u.Role) && r.Chance(0.22)
		out = append(out, domain.TeamMembership{
			TeamID:      primary,
			UserID:      u.ID,
			IsTeamAdmin: admin,
			JoinedAt:    joined,
			LeftAt:      left,
		})

		if r.Chance(0.18) {
			other := seed.Pick(r, in.Teams).ID
			if other != primary {
				out = append(out, domain.TeamMembership{
					TeamID:   other,
					UserID:   u.ID,
					JoinedAt: in.Window.Clamp(joined.AddDate(0, 0, r.IntBetween(1, 14))),
					LeftAt:   left,
				})
			}
		}
	}
	s.logger.Info("memberships generated", "memberships", len(out))
	return out
}

// ActiveRosters maps each team to the users whose membership has not ended,
// in membership order.
func ActiveRosters(memberships []domain.TeamMembership) map[string][]string {
	rosters := map[string][]string{}
	for _, m := range memberships {
		if m.Active() {
			rosters[m.TeamID] = append(rosters[m.TeamID], m.UserID)
		}
	}
	return rosters
}
