package domain

import "time"

// ProjectType selects a project's workflow template and task vocabulary.
type ProjectType string

const (
	ProjectSprint            ProjectType = "sprint"
	ProjectBugTriage         ProjectType = "bug_triage"
	ProjectProductRoadmap    ProjectType = "product_roadmap"
	ProjectMarketingCampaign ProjectType = "marketing_campaign"
	ProjectContentCalendar   ProjectType = "content_calendar"
	ProjectSalesEnablement   ProjectType = "sales_enablement"
	ProjectOpsInitiative     ProjectType = "ops_initiative"
)

// ProjectTypes lists every project type in a stable order.
var ProjectTypes = []ProjectType{
	ProjectSprint,
	ProjectBugTriage,
	ProjectProductRoadmap,
	ProjectMarketingCampaign,
	ProjectContentCalendar,
	ProjectSalesEnablement,
	ProjectOpsInitiative,
}

// Project statuses and privacy settings.
const (
	ProjectActive    = "active"
	ProjectOnHold    = "on_hold"
	ProjectCompleted = "completed"

	PrivacyPublic  = "public"
	PrivacyPrivate = "private"
)

// Project groups tasks under one team and workflow.
type Project struct {
	ID             string
	OrganizationID string
	OwnerTeamID    string
	Name           string
	Type           ProjectType
	Privacy        string
	Status         string
	StartDate      *time.Time
	DueDate        *time.Time
	CreatedAt      time.Time
	ArchivedAt     *time.Time
	Description    *string
}

// Section is one ordered workflow stage of a project.
type Section struct {
	ID        string
	ProjectID string
	Name      string
	Position  int
	CreatedAt time.Time
}
