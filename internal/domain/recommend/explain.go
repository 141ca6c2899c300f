package recommend

import (
	"fmt"
	"strings"

	"intern-genie/internal/domain/candidate"
	"intern-genie/internal/domain/internship"
)

const fallbackReason = "Based on your profile and preferences"

// Explain renders the human-readable rationale for a score. Each reason is
// re-derived from the inputs rather than carried over from the scoring pass.
//
// The location check here is deliberately one-directional
// (candidate-contains-posting) while Score checks both directions; the two
// have always disagreed on that edge and downstream consumers rely on the
// explanation text as-is.
func Explain(c candidate.Candidate, in internship.Internship, score float64) string {
	reasons := make([]string, 0, 3)

	if c.Location != "" && in.Location != "" {
		if strings.Contains(strings.ToLower(c.Location), strings.ToLower(in.Location)) {
			reasons = append(reasons, fmt.Sprintf("Location match: %s and %s", c.Location, in.Location))
		}
	}

	if c.Skills != "" && in.RequiredSkills != "" {
		matched := matchingSkills(splitSkills(c.Skills), splitSkills(in.RequiredSkills))
		if len(matched) > 0 {
			reasons = append(reasons, "Skills match: "+strings.Join(matched, ", "))
		}
	}

	if c.ExperienceYears >= in.ExperienceRequired {
		reasons = append(reasons, fmt.Sprintf("Experience requirement met: %d years", c.ExperienceYears))
	}

	if len(reasons) == 0 {
		reasons = append(reasons, fallbackReason)
	}

	return fmt.Sprintf("Score: %.1f%% - %s", score*100, strings.Join(reasons, ", "))
}
