package candidate

// Candidate is the profile used to personalize scoring. Optional columns are
// carried as empty strings; the scoring engine treats empty as absent.
type Candidate struct {
	ID              int64
	Email           string
	PasswordHash    string
	Name            string
	Education       string
	Skills          string
	Location        string
	ExperienceYears int
	Phone           string
	LinkedIn        string
	GitHub          string
}

// Sanitized returns a copy safe to hand back to clients.
func (c Candidate) Sanitized() Candidate {
	c.PasswordHash = ""
	return c
}
