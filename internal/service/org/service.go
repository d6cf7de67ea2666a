// Package org generates the organization, its teams and its users.
package org

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/splax/worksim/internal/calendar"
	"github.com/splax/worksim/internal/corpora"
	"github.com/splax/worksim/internal/domain"
	"github.com/splax/worksim/internal/seed"
)

// Input carries the knobs of the org stage.
type Input struct {
	Seed        int64
	Window      calendar.Window
	HistoryDays int
	TargetUsers int
	TeamsCount  int
}

// Result is the org chart produced by Generate.
type Result struct {
	Organization domain.Organization
	Teams        []domain.Team
	// Users carry their final manager. They are inserted without one and
	// the edges are applied afterwards through Managers.
	Users    []domain.User
	Managers []domain.ManagerAssignment
}

// UserRows returns the user rows as first inserted, with manager_user_id unset.
func (r Result) UserRows() [][]any {
	rows := make([][]any, len(r.Users))
	for i, u := range r.Users {
		u.ManagerUserID = nil
		rows[i] = u.Row()
	}
	return rows
}

// Service generates the org stage.
type Service struct {
	corpus CompanyCorpus
	logger *slog.Logger
}

// New returns an org service. A nil corpus uses the built-in names.
func New(corpus CompanyCorpus, logger *slog.Logger) Service {
	if corpus == nil {
		corpus = StaticCorpus{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return Service{corpus: corpus, logger: logger}
}

// Generate builds the organization, teams and users.
func (s Service) Generate(ctx context.Context, in Input) (Result, error) {
	if in.TargetUsers < 1 {
		return Result{}, fmt.Errorf("target users must be positive, got %d", in.TargetUsers)
	}
	if in.TeamsCount < 1 {
		return Result{}, fmt.Errorf("teams count must be positive, got %d", in.TeamsCount)
	}
	org, err := s.organization(ctx, in)
	if err != nil {
		return Result{}, err
	}
	teams := generateTeams(in, org)
	users, managers := generateUsers(in, org)
	s.logger.Info("org generated",
		"organization", org.Name,
		"teams", len(teams),
		"users", len(users),
	)
	return Result{Organization: org, Teams: teams, Users: users, Managers: managers}, nil
}

func (s Service) organization(ctx context.Context, in Input) (domain.Organization, error) {
	names := s.corpus.CompanyNames(ctx)
	if len(names) == 0 {
		names = corpora.CompanyNames
	}
	r := seed.New(in.Seed, seed.StageOrganization)
	ids := seed.NewIDs(in.Seed, seed.StageOrganization)
	name := seed.Pick(r, names)
	return domain.Organization{
		ID:        ids.Next(),
		Name:      name,
		Domain:    domainFor(name),
		CreatedAt: in.Window.End,
	}, nil
}

func domainFor(name string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(name) {
		if c < unicode.MaxASCII && (unicode.IsLetter(c) || unicode.IsDigit(c)) {
			b.WriteRune(c)
		}
	}
	if b.Len() == 0 {
		b.WriteString("example")
	}
	return b.String() + ".com"
}

// TeamTypeForDepartment classifies a department's teams.
func TeamTypeForDepartment(department string) string {
	switch department {
	case "Engineering", "QA", "Security", "IT", "Data":
		return domain.TeamTypeTechnical
	case "Marketing", "Sales", "Customer Success", "RevOps":
		return domain.TeamTypeGoToMarket
	case "People", "Finance", "Legal", "Operations":
		return domain.TeamTypeBusinessOps
	}
	return domain.TeamTypeCrossFunctional
}

type teamName struct {
	name       string
	department string
}

func generateTeams(in Input, org domain.Organization) []domain.Team {
	r := seed.New(in.Seed, seed.StageTeams)
	ids := seed.NewIDs(in.Seed, seed.StageTeams)

	var names []teamName
	for _, dept := range corpora.Departments {
		for _, n := range corpora.TeamNames[dept] {
			names = append(names, teamName{name: n, department: dept})
		}
	}
	for len(names) < in.TeamsCount {
		dept := seed.Pick(r, corpora.Departments)
		suffix := seed.Pick(r, corpora.TeamSuffixes)
		topic := seed.Pick(r, corpora.TeamTopics)
		names = append(names, teamName{name: dept + " " + topic + " " + suffix, department: dept})
	}
	names = names[:in.TeamsCount]

	teams := make([]domain.Team, len(names))
	for i, n := range names {
		teams[i] = domain.Team{
			ID:             ids.Next(),
			OrganizationID: org.ID,
			Name:           n.name,
			TeamType:       TeamTypeForDepartment(n.department),
			CreatedAt:      in.Window.End,
			Department:     n.department,
		}
	}
	return teams
}

func generateUsers(in Input, org domain.Organization) ([]domain.User, []domain.ManagerAssignment) {
	r := seed.New(in.Seed, seed.StageUsers)
	ids := seed.NewIDs(in.Seed, seed.StageUsers)
	names := newNamer(in.Seed, org.Domain)

	users := make([]domain.User, 0, in.TargetUsers)
	var execIDs []string
	for _, e := range executives {
		if len(users) == in.TargetUsers {
			break
		}
		fullName, email := names.next()
		created := in.Window.Workday(r)
		hire := calendar.Day(created).AddDate(0, 0, -r.IntBetween(365*2, 365*8))
		u := domain.User{
			ID:             ids.Next(),
			OrganizationID: org.ID,
			Email:          email,
			FullName:       fullName,
			Title:          e.title,
			Department:     e.department,
			Location:       seed.Pick(r, corpora.Locations),
			Role:           domain.RoleExecutive,
			HireDate:       hire,
			CreatedAt:      created,
		}
		users = append(users, u)
		execIDs = append(execIDs, u.ID)
	}

	for len(users) < in.TargetUsers {
		dept := seed.PickWeighted(r, corpora.Departments, corpora.DepartmentWeights)
		role := domain.RoleIC
		switch x := r.Float64(); {
		case x < 0.09:
			role = domain.RoleManager
		case x < 0.11:
			role = domain.RoleDirector
		}
		fullName, email := names.next()
		created := in.Window.Workday(r)
		tenureYears := math.Max(0.1, r.LogNormal(0.4, 0.6))
		tenureDays := int(math.Min(365*10, tenureYears*365))
		hire := calendar.Day(created).AddDate(0, 0, -tenureDays)
		title := titleFor(r, dept, role != domain.RoleIC)

		var deactivated *time.Time
		if r.Chance(0.02) {
			d := created.AddDate(0, 0, r.IntBetween(30, in.HistoryDays))
			if d.Before(in.Window.End) {
				deactivated = &d
			}
		}

		users = append(users, domain.User{
			ID:             ids.Next(),
			OrganizationID: org.ID,
			Email:          email,
			FullName:       fullName,
			Title:          title,
			Department:     dept,
			Location:       seed.Pick(r, corpora.Locations),
			Role:           role,
			HireDate:       hire,
			CreatedAt:      created,
			DeactivatedAt:  deactivated,
		})
	}

	managersByDept := map[string][]string{}
	for _, u := range users {
		if u.Role == domain.RoleManager || u.Role == domain.RoleDirector {
			managersByDept[u.Department] = append(managersByDept[u.Department], u.ID)
		}
	}
	var assignments []domain.ManagerAssignment
	for i := range users {
		u := &users[i]
		if u.Role == domain.RoleExecutive || len(execIDs) == 0 {
			continue
		}
		var manager string
		if pool := managersByDept[u.Department]; len(pool) > 0 && r.Chance(0.80) {
			manager = seed.Pick(r, pool)
		} else {
			manager = seed.Pick(r, execIDs)
		}
		if manager == u.ID {
			manager = seed.Pick(r, execIDs)
		}
		u.ManagerUserID = &manager
		assignments = append(assignments, domain.ManagerAssignment{UserID: u.ID, ManagerUserID: manager})
	}
	return users, assignments
}

// namer draws person names from a seeded faker and keeps emails unique.
type namer struct {
	faker  *gofakeit.Faker
	domain string
	used   map[string]struct{}
}

func newNamer(s int64, domain string) *namer {
	fakerSeed := uint64(s) + uint64(seed.StageNames)
	if fakerSeed == 0 {
		// gofakeit treats 0 as "seed randomly".
		fakerSeed = uint64(seed.StageNames)
	}
	return &namer{
		faker:  gofakeit.New(fakerSeed),
		domain: domain,
		used:   make(map[string]struct{}),
	}
}

func (n *namer) next() (string, string) {
	fullName := n.faker.Name()
	local := emailLocalPart(fullName)
	email := local + "@" + n.domain
	for i := 2; ; i++ {
		if _, taken := n.used[email]; !taken {
			break
		}
		email = fmt.Sprintf("%s%d@%s", local, i, n.domain)
	}
	n.used[email] = struct{}{}
	return fullName, email
}

func emailLocalPart(fullName string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(fullName) {
		switch {
		case c == ' ':
			b.WriteByte('.')
		case c < unicode.MaxASCII && (unicode.IsLetter(c) || unicode.IsDigit(c)):
			b.WriteRune(c)
		}
	}
	local := strings.Trim(b.String(), ".")
	if local == "" {
		return "user"
	}
	return local
}
