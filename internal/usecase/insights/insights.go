package insights

type UserInsights struct {
	TotalInteractions       int
	ActionBreakdown         map[string]int
	PreferredSkills         map[string]int
	PreferredCompanies      map[string]int
	PreferredLocations      map[string]int
	ApplicationSuccessRate  float64
	LearningRecommendations []string
}

type MarketInsights struct {
	TotalApplications    int
	SuccessRate          float64
	PopularCompanies     map[string]int
	TrendingSkills       []string
	LocationDistribution map[string]int
}

type SimilarUser struct {
	UserID          int64
	SimilarityScore float64
	CommonSkills    []string
}

type PopularInternship struct {
	InternshipID     int64
	Title            string
	Company          string
	ApplicationCount int
	SuccessRate      float64
}

type CollaborativeInsights struct {
	SimilarUsers       []SimilarUser
	PopularInternships []PopularInternship
	SkillCorrelations  map[string][]string
}

type TrendingSkill struct {
	Skill      string
	Frequency  int
	GrowthRate float64
}
