package job

import "time"

// Patch is a partial listing update. Nil fields keep their stored value;
// non-nil fields replace it wholesale. The merged record is re-validated
// before persistence, so a patch can never bypass schema invariants.
type Patch struct {
	JobTitle            *string       `json:"jobTitle"`
	CompanyName         *string       `json:"companyName"`
	CompanyOverview     *string       `json:"companyOverview"`
	Location            *string       `json:"location"`
	EmploymentType      *string       `json:"employmentType"`
	SalaryRange         *string       `json:"salaryRange"`
	JobDescription      *string       `json:"jobDescription"`
	Responsibilities    *[]string     `json:"responsibilities"`
	Requirements        *Requirements `json:"requirements"`
	ApplicationDeadline *time.Time    `json:"applicationDeadline"`
	ApplicationLink     *string       `json:"applicationLink"`
	EducationLevel      *string       `json:"educationLevel"`
	ExperienceLevel     *string       `json:"experienceLevel"`
	Category            *string       `json:"category"`
	IsRemote            *bool         `json:"isRemote"`
	IsHybrid            *bool         `json:"isHybrid"`
	IsOnsite            *bool         `json:"isOnsite"`
	IsActive            *bool         `json:"isActive"`
}

// Apply merges the patch onto a stored listing and returns the result.
// ID, click counter and timestamps are never touched here.
func (p Patch) Apply(l Listing) Listing {
	if p.JobTitle != nil {
		l.JobTitle = *p.JobTitle
	}
	if p.CompanyName != nil {
		l.CompanyName = *p.CompanyName
	}
	if p.CompanyOverview != nil {
		l.CompanyOverview = *p.CompanyOverview
	}
	if p.Location != nil {
		l.Location = *p.Location
	}
	if p.EmploymentType != nil {
		l.EmploymentType = *p.EmploymentType
	}
	if p.SalaryRange != nil {
		l.SalaryRange = *p.SalaryRange
	}
	if p.JobDescription != nil {
		l.JobDescription = *p.JobDescription
	}
	if p.Responsibilities != nil {
		l.Responsibilities = *p.Responsibilities
	}
	if p.Requirements != nil {
		l.Requirements = *p.Requirements
	}
	if p.ApplicationDeadline != nil {
		l.ApplicationDeadline = p.ApplicationDeadline
	}
	if p.ApplicationLink != nil {
		l.ApplicationLink = *p.ApplicationLink
	}
	if p.EducationLevel != nil {
		l.EducationLevel = *p.EducationLevel
	}
	if p.ExperienceLevel != nil {
		l.ExperienceLevel = *p.ExperienceLevel
	}
	if p.Category != nil {
		l.Category = *p.Category
	}
	if p.IsRemote != nil {
		l.IsRemote = *p.IsRemote
	}
	if p.IsHybrid != nil {
		l.IsHybrid = *p.IsHybrid
	}
	if p.IsOnsite != nil {
		l.IsOnsite = *p.IsOnsite
	}
	if p.IsActive != nil {
		l.IsActive = *p.IsActive
	}
	return l
}
