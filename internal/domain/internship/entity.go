package internship

import "context"

// Internship is a posting eligible for recommendation. Optional columns are
// carried as empty strings.
type Internship struct {
	ID                  int64
	Title               string
	Company             string
	Location            string
	Description         string
	RequiredSkills      string
	PreferredSkills     string
	Duration            string
	Stipend             string
	ApplicationDeadline string
	PostedDate          string
	IsActive            bool
	MinEducation        string
	ExperienceRequired  int
}

// Repository supplies postings to the ranking pass. ListActive returns only
// rows with is_active = true; an empty slice is a valid result.
type Repository interface {
	ListActive(ctx context.Context) ([]Internship, error)
}
