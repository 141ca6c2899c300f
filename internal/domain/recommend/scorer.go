package recommend

import (
	"strings"

	"intern-genie/internal/domain/candidate"
	"intern-genie/internal/domain/internship"
)

// Factor weights. They sum to 1.0 so the clamp below is only an invariant
// guard, never a correction.
const (
	WeightLocation   = 0.40
	WeightSkills     = 0.35
	WeightExperience = 0.15
	WeightEducation  = 0.10
)

// Score computes the match strength between a candidate and an internship as a
// value in [0,1]. It is a pure function of its inputs: no state, no
// randomness, no I/O.
func Score(c candidate.Candidate, in internship.Internship) float64 {
	score := 0.0

	// Location: full credit on case-insensitive substring containment in
	// either direction, nothing when either side is missing.
	if c.Location != "" && in.Location != "" {
		cl := strings.ToLower(c.Location)
		il := strings.ToLower(in.Location)
		if strings.Contains(cl, il) || strings.Contains(il, cl) {
			score += WeightLocation
		}
	}

	// Skills: proportional to how many candidate skills appear among the
	// required ones. The denominator is the required-skill count, so a long
	// candidate skill list is never penalized.
	if c.Skills != "" && in.RequiredSkills != "" {
		required := splitSkills(in.RequiredSkills)
		if len(required) > 0 {
			matched := matchingSkills(splitSkills(c.Skills), required)
			score += WeightSkills * float64(len(matched)) / float64(len(required))
		}
	}

	// Experience: full credit at or above the requirement, otherwise the
	// ratio. The >= branch also covers ExperienceRequired == 0, so the
	// division below never sees a zero denominator.
	if c.ExperienceYears >= in.ExperienceRequired {
		score += WeightExperience
	} else {
		score += WeightExperience * float64(c.ExperienceYears) / float64(in.ExperienceRequired)
	}

	// Education: one-way substring check against the posting's minimum.
	if c.Education != "" && in.MinEducation != "" {
		if strings.Contains(strings.ToLower(c.Education), strings.ToLower(in.MinEducation)) {
			score += WeightEducation
		}
	}

	return clamp(score, 0.0, 1.0)
}

// splitSkills splits a comma-delimited skill list and trims each entry.
// Entries that are empty after trimming are kept: every comma-separated slot
// counts, so a trailing comma in required_skills raises the denominator.
func splitSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// matchingSkills returns the candidate skills, in input order and without
// deduplication, for which some required skill contains the candidate skill
// as a case-insensitive substring. An empty candidate entry is a substring of
// every required skill and therefore always matches.
func matchingSkills(candidateSkills, requiredSkills []string) []string {
	matched := make([]string, 0, len(candidateSkills))
	for _, cs := range candidateSkills {
		lcs := strings.ToLower(cs)
		for _, rs := range requiredSkills {
			if strings.Contains(strings.ToLower(rs), lcs) {
				matched = append(matched, cs)
				break
			}
		}
	}
	return matched
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
