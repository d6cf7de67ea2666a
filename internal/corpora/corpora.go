// Package corpora holds the fixed vocabularies the generators sample from.
package corpora

var Departments = []string{
	"Engineering", "Product", "Design", "QA", "Data", "Marketing", "Sales",
	"Customer Success", "Operations", "IT", "Security", "People", "Finance",
	"Legal", "RevOps",
}

var Locations = []string{
	"Bengaluru, IN", "Hyderabad, IN", "Pune, IN", "Gurugram, IN", "Chennai, IN",
	"San Francisco, US", "New York, US", "Austin, US", "London, UK", "Dublin, IE",
	"Berlin, DE", "Singapore", "Sydney, AU",
}

var EngineeringAreas = []string{
	"Auth", "Billing", "Search", "Notifications", "Integrations", "Data Pipeline",
	"Web App", "Mobile", "API Gateway", "Observability", "Permissions",
	"Reporting", "Onboarding", "Performance",
}

var ProductAreas = []string{
	"Activation", "Retention", "Collaboration", "Analytics", "Admin",
	"Marketplace", "Enterprise", "Security", "Mobile Experience",
}

var MarketingCampaigns = []string{
	"Q1 Demand Gen", "Spring Product Launch", "Partner Webinar Series",
	"ABM Tier-1 Outreach", "Customer Stories", "G2 Reviews Drive",
	"Developer Community Push", "SEO Refresh",
}

var OpsInitiatives = []string{
	"SOC2 Evidence Collection", "Quarterly Access Review", "Vendor Renewal Cycle",
	"Incident Response Runbook", "IT Asset Audit", "Headcount Planning",
	"Onboarding Automation",
}

var CompanyNames = []string{
	"AsterCloud", "Northwind Labs", "BluePeak Software", "HelioWorks",
	"QuantaFlow", "NimbusForge",
}

var TagColors = []string{"red", "orange", "yellow", "green", "teal", "blue", "purple", "pink", "gray"}

var FileTypes = []string{"pdf", "docx", "xlsx", "pptx", "png", "jpg", "csv", "txt"}

var (
	PriorityOptions       = []string{"P0", "P1", "P2", "P3"}
	StatusOptions         = []string{"Not Started", "In Progress", "Blocked", "In Review", "Done"}
	CustomerImpactOptions = []string{"Low", "Medium", "High", "Critical"}
	ChannelOptions        = []string{"Email", "Paid Search", "Organic Search", "Social", "Webinar", "Partner", "In-App"}
	RegionOptions         = []string{"NA", "EMEA", "APAC", "LATAM"}
)

var (
	StoryPointScale = []float64{0.5, 1, 2, 3, 5, 8, 13}
	ReleaseTags     = []string{"R-2026.02", "R-2026.03", "R-2026.04", "TBD", "Post-launch"}
	OwnerGroups     = []string{"Platform", "Growth", "Enterprise", "Security", "GTM Ops"}
)

var SubtaskNames = []string{
	"Write test cases", "Update documentation", "Add monitoring", "QA verification",
	"Create rollout plan", "Stakeholder review", "Fix linting / formatting",
	"Backfill data",
}

var TaskDescriptions = []string{
	"Please align on scope and post updates in-thread.",
	"Capture requirements, edge cases, and rollout plan.",
	"Ensure this is tracked end-to-end with clear owners.",
	"Add relevant links and keep status updated.",
}

// TaskDescriptionSkeleton is the bullet template used for longer descriptions.
const TaskDescriptionSkeleton = "- Context:\n- Goals:\n- Out of scope:\n- Rollout / risks:\n- Links:"

// SubtaskDescription is the only non-null subtask description.
const SubtaskDescription = "Keep this small and link relevant PRs."

// DepartmentWeights approximates an enterprise headcount mix, aligned with
// Departments.
var DepartmentWeights = []float64{
	0.28, 0.07, 0.05, 0.05, 0.06, 0.12, 0.14,
	0.10, 0.05, 0.03, 0.02, 0.02, 0.01,
	0.005, 0.025,
}

// TeamNames lists the named teams of each department.
var TeamNames = map[string][]string{
	"Engineering": {
		"Platform Engineering", "Core Services", "Frontend Experience",
		"Mobile Engineering", "Infrastructure", "Integrations", "Data Platform",
	},
	"Product":          {"Product Management", "Growth Product", "Enterprise Product", "AI Product"},
	"Design":           {"Product Design", "Design Systems", "UX Research"},
	"QA":               {"Quality Engineering", "Release Validation"},
	"Data":             {"Analytics", "Data Science"},
	"Marketing":        {"Demand Generation", "Content Marketing", "Product Marketing", "Brand & Creative", "Growth Marketing"},
	"Sales":            {"Enterprise Sales", "Mid-Market Sales", "Sales Development"},
	"Customer Success": {"Customer Success", "Solutions Engineering", "Support Operations"},
	"Operations":       {"Business Operations", "Program Management Office"},
	"IT":               {"IT Operations", "Corporate Systems"},
	"Security":         {"Security", "GRC"},
	"People":           {"People Operations", "Talent Acquisition"},
	"Finance":          {"FP&A", "Accounting"},
	"Legal":            {"Legal"},
	"RevOps":           {"Revenue Operations"},
}

var (
	TeamTopics = []string{
		"Automation", "Enablement", "Ops", "Reporting", "Insights", "Tooling",
		"Compliance", "Partnerships", "Developer Experience",
	}
	TeamSuffixes = []string{"Pod", "Squad", "Team", "Group"}
)

// ProjectTemplates are the ordered workflow sections of each project type.
var ProjectTemplates = map[string][]string{
	"sprint":             {"Backlog", "Ready", "In Progress", "Code Review", "QA", "Done"},
	"bug_triage":         {"New", "Investigating", "Fix In Progress", "Ready for QA", "Closed"},
	"product_roadmap":    {"Discovery", "Design", "Build", "Beta", "Launched"},
	"marketing_campaign": {"Ideas", "Planned", "In Progress", "Review", "Scheduled", "Complete"},
	"content_calendar":   {"Backlog", "Draft", "Review", "Approved", "Published"},
	"ops_initiative":     {"Intake", "Triage", "In Progress", "Blocked", "Done"},
	"sales_enablement":   {"Requests", "In Progress", "Review", "Published"},
}

// DefaultTemplate is used for a project type without a template.
var DefaultTemplate = []string{"To Do", "In Progress", "Done"}

var ExtraSections = []string{"Legal Review", "Design", "Blocked", "Stakeholder Review", "Waiting on Input"}

var ProjectDescriptions = []string{
	"Tracking deliverables, owners, and dates for this workstream.",
	"Weekly plan for execution, review, and release coordination.",
	"Cross-functional project to align stakeholders and ship outcomes.",
	"Central place for tasks, approvals, and launch readiness.",
}

var Quarters = []string{"Q1", "Q2", "Q3", "Q4"}

var BaseTags = []string{
	"urgent", "blocked", "needs-review", "customer-reported", "tech-debt",
	"security", "compliance", "performance", "feature-flag", "migration",
	"experiment", "launch", "analytics", "partner", "copy-review",
	"design-needed", "legal-review", "stakeholder-align", "ops", "automation",
}

// TagTopics combine with Quarters into planning tags such as "q3-okrs".
var TagTopics = []string{"plan", "okrs", "execution", "launch"}

// Task title parts per project family.
var (
	EngineeringVerbs   = []string{"Fix", "Improve", "Refactor", "Add", "Remove", "Investigate", "Harden", "Optimize"}
	EngineeringObjects = []string{
		"token refresh", "billing invoice export", "search indexing",
		"notifications retry logic", "permission checks", "API rate limit handling",
		"mobile deeplinks", "dashboard query performance",
	}
	EngineeringDetails   = []string{"edge cases", "time zones", "idempotency", "null handling", "pagination", "audit logging"}
	RoadmapDeliverables  = []string{"PRD", "Beta plan", "Launch checklist", "Pricing proposal", "Stakeholder review"}
	CampaignDeliverables = []string{"Landing page", "Email sequence", "Webinar deck", "Ad creative", "Blog post", "Case study"}
	OpsDeliverables      = []string{"Runbook update", "Audit evidence", "Process doc", "Workflow automation", "Stakeholder sign-off"}
)

var (
	TaskComments = []string{
		"Sharing a quick update: in progress and on track.",
		"Flagging a dependency; waiting on access / approval.",
		"Can you confirm expected behavior for the edge case?",
		"I pushed a draft; please review when you have a moment.",
		"Resolved in latest build; please validate in staging.",
		"We should align with stakeholders before finalizing.",
	}
	SubtaskComments = []string{
		"Added details above.",
		"Done, please take a look.",
		"Blocked on environment issue; investigating.",
		"Will circle back after the meeting.",
	}
)

var (
	TaskAttachmentNames    = []string{"spec", "requirements", "screenshots", "launch-checklist", "report", "notes"}
	SubtaskAttachmentNames = []string{"evidence", "artifact", "debug"}
)
