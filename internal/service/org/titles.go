package org

import "github.com/splax/worksim/internal/seed"

type titleSet struct {
	ic      []string
	manager []string
}

var titlesByDepartment = map[string]titleSet{
	"Engineering":      {[]string{"Software Engineer", "Senior Software Engineer", "Staff Engineer"}, []string{"Engineering Manager", "Senior Engineering Manager", "Director of Engineering"}},
	"Product":          {[]string{"Product Manager", "Senior Product Manager"}, []string{"Group Product Manager", "Director of Product"}},
	"Design":           {[]string{"Product Designer", "Senior Product Designer"}, []string{"Design Manager", "Head of Design"}},
	"Marketing":        {[]string{"Marketing Manager", "Growth Marketer", "Content Strategist"}, []string{"Marketing Director", "VP Marketing"}},
	"Sales":            {[]string{"Account Executive", "Sales Development Rep", "Sales Engineer"}, []string{"Sales Manager", "Regional Sales Director"}},
	"Customer Success": {[]string{"Customer Success Manager", "Solutions Consultant", "Support Specialist"}, []string{"CS Manager", "Director of Customer Success"}},
	"Operations":       {[]string{"Program Manager", "Operations Manager"}, []string{"Operations Lead", "Director of Operations"}},
	"IT":               {[]string{"IT Specialist", "Systems Administrator"}, []string{"IT Manager", "Director of IT"}},
	"Security":         {[]string{"Security Analyst", "Security Engineer"}, []string{"Security Manager", "Head of Security"}},
	"People":           {[]string{"People Partner", "Recruiter"}, []string{"People Manager", "Head of People"}},
	"Finance":          {[]string{"Financial Analyst", "Accountant"}, []string{"Finance Manager", "Controller"}},
	"Legal":            {[]string{"Legal Counsel"}, []string{"General Counsel"}},
	"RevOps":           {[]string{"Revenue Analyst", "Sales Operations Specialist"}, []string{"RevOps Manager", "Head of RevOps"}},
	"QA":               {[]string{"QA Engineer", "Test Engineer"}, []string{"QA Manager"}},
	"Data":             {[]string{"Data Analyst", "Data Scientist"}, []string{"Analytics Manager", "Head of Data"}},
}

var fallbackTitles = titleSet{[]string{"Specialist", "Manager"}, []string{"Director", "VP"}}

type executive struct {
	title      string
	department string
}

var executives = []executive{
	{"CEO", "Operations"},
	{"CTO", "Engineering"},
	{"CPO", "Product"},
	{"CMO", "Marketing"},
	{"CRO", "Sales"},
	{"COO", "Operations"},
	{"CFO", "Finance"},
}

func titleFor(r *seed.Rand, department string, managerial bool) string {
	set, ok := titlesByDepartment[department]
	if !ok {
		set = fallbackTitles
	}
	if managerial {
		return seed.Pick(r, set.manager)
	}
	return seed.Pick(r, set.ic)
}
