package insights

// Source supplies the aggregations that are not yet backed by live data. The
// service depends on this interface so a real aggregation pipeline can slot in
// without touching the scoring core or the handlers.
type Source interface {
	ApplicationSuccessRate() float64
	LearningRecommendations() []string
	PopularCompanies() map[string]int
	TrendingSkillNames() []string
	LocationDistribution() map[string]int
	Collaborative() CollaborativeInsights
	TrendingSkills() []TrendingSkill
}

// StaticSource is the built-in Source with fixed demonstration data.
type StaticSource struct{}

func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

func (*StaticSource) ApplicationSuccessRate() float64 {
	return 0.75
}

func (*StaticSource) LearningRecommendations() []string {
	return []string{
		"Focus on Python and Machine Learning skills",
		"Consider gaining experience with cloud platforms",
		"Develop your leadership and communication skills",
	}
}

func (*StaticSource) PopularCompanies() map[string]int {
	return map[string]int{
		"Google":    45,
		"Microsoft": 38,
		"Amazon":    32,
	}
}

func (*StaticSource) TrendingSkillNames() []string {
	return []string{"Python", "Machine Learning", "React", "AWS", "Docker"}
}

func (*StaticSource) LocationDistribution() map[string]int {
	return map[string]int{
		"San Francisco": 120,
		"New York":      95,
		"Seattle":       78,
	}
}

func (*StaticSource) Collaborative() CollaborativeInsights {
	return CollaborativeInsights{
		SimilarUsers: []SimilarUser{
			{UserID: 123, SimilarityScore: 0.85, CommonSkills: []string{"Python", "Machine Learning"}},
			{UserID: 456, SimilarityScore: 0.78, CommonSkills: []string{"React", "JavaScript"}},
		},
		PopularInternships: []PopularInternship{
			{InternshipID: 1, Title: "Software Engineering Intern", Company: "Google", ApplicationCount: 150, SuccessRate: 0.12},
			{InternshipID: 2, Title: "Data Science Intern", Company: "Microsoft", ApplicationCount: 120, SuccessRate: 0.15},
		},
		SkillCorrelations: map[string][]string{
			"Python": {"Machine Learning", "Data Science"},
			"React":  {"JavaScript", "Node.js"},
		},
	}
}

func (*StaticSource) TrendingSkills() []TrendingSkill {
	return []TrendingSkill{
		{Skill: "Python", Frequency: 450, GrowthRate: 0.25},
		{Skill: "Machine Learning", Frequency: 320, GrowthRate: 0.35},
		{Skill: "React", Frequency: 280, GrowthRate: 0.18},
		{Skill: "AWS", Frequency: 250, GrowthRate: 0.42},
		{Skill: "Docker", Frequency: 200, GrowthRate: 0.30},
	}
}

var _ Source = (*StaticSource)(nil)
