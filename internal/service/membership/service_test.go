package membership

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/splax/worksim/internal/calendar"
	"github.com/splax/worksim/internal/domain"
)

func fixture() Input {
	end := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	left := end.AddDate(0, 0, -10)
	teams := []domain.Team{
		{ID: "eng-1", Department: "Engineering"},
		{ID: "eng-2", Department: "Engineering"},
		{ID: "mkt-1", Department: "Marketing"},
	}
	var users []domain.User
	for i := 0; i < 300; i++ {
		u := domain.User{ID: string(rune('a'+i%26)) + string(rune('A'+i/26)), Department: "Engineering", Role: domain.RoleIC}
		if i%3 == 0 {
			u.Department = "Legal"
		}
		if i%10 == 0 {
			u.Role = domain.RoleManager
		}
		if i%25 == 0 {
			u.DeactivatedAt = &left
		}
		users = append(users, u)
	}
	return Input{Seed: 7, Window: calendar.WindowEndingAt(end, 90), Teams: teams, Users: users}
}

func TestGeneratePlacesEveryUser(t *testing.T) {
	in := fixture()
	got := New(slog.New(slog.NewTextHandler(io.Discard, nil))).Generate(in)

	primary := map[string]int{}
	type key struct{ team, user string }
	seen := map[key]bool{}
	for _, m := range got {
		k := key{m.TeamID, m.UserID}
		if seen[k] {
			t.Fatalf("duplicate membership %v", k)
		}
		seen[k] = true
		primary[m.UserID]++
		if !in.Window.Contains(m.JoinedAt) {
			t.Fatalf("joined_at %s outside window", m.JoinedAt)
		}
	}
	for _, u := range in.Users {
		if primary[u.ID] == 0 {
			t.Fatalf("user %s has no team", u.ID)
		}
	}
}

func TestEngineeringUsersLandOnEngineeringTeams(t *testing.T) {
	in := fixture()
	got := New(nil).Generate(in)
	first := map[string]string{}
	for _, m := range got {
		if _, ok := first[m.UserID]; !ok {
			first[m.UserID] = m.TeamID
		}
	}
	for _, u := range in.Users {
		if u.Department != "Engineering" {
			continue
		}
		if team := first[u.ID]; team != "eng-1" && team != "eng-2" {
			t.Fatalf("engineering user %s got primary team %s", u.ID, team)
		}
	}
}

func TestActiveRostersSkipsLeftMembers(t *testing.T) {
	left := time.Now()
	memberships := []domain.TeamMembership{
		{TeamID: "t1", UserID: "u1"},
		{TeamID: "t1", UserID: "u2", LeftAt: &left},
		{TeamID: "t2", UserID: "u2"},
		{TeamID: "t1", UserID: "u3"},
	}
	rosters := ActiveRosters(memberships)
	if got := rosters["t1"]; len(got) != 2 || got[0] != "u1" || got[1] != "u3" {
		t.Fatalf("unexpected roster for t1: %v", got)
	}
	if got := rosters["t2"]; len(got) != 1 || got[0] != "u2" {
		t.Fatalf("unexpected roster for t2: %v", got)
	}
}

func TestGenerateWithoutTeams(t *testing.T) {
	in := fixture()
	in.Teams = nil
	if got := New(nil).Generate(in); got != nil {
		t.Fatalf("expected no memberships, got %d", len(got))
	}
}
