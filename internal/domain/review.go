package domain

// CodeReview is the review stage's structured payload: quality scores and
// findings for both generated artifacts.
type CodeReview struct {
	BackendScore        int      `json:"backend_score"`
	FrontendScore       int      `json:"frontend_score"`
	OverallScore        float64  `json:"overall_score"`
	SecurityIssues      []string `json:"security_issues"`
	PerformanceConcerns []string `json:"performance_concerns"`
	BestPractices       []string `json:"best_practices"`
	Suggestions         []string `json:"suggestions"`
	ProductionReady     bool     `json:"is_production_ready"`
	Assessment          string   `json:"assessment"`
}

// FallbackReview is the review stage's static fallback: neutral scores with
// an explicit pointer to manual review.
func FallbackReview() CodeReview {
	return CodeReview{
		BackendScore:        80,
		FrontendScore:       80,
		OverallScore:        80.0,
		SecurityIssues:      []string{"Review manually for security"},
		PerformanceConcerns: []string{"Review manually for performance"},
		BestPractices:       []string{"Standard compliance assumed"},
		Suggestions:         []string{"Manual code review recommended"},
		ProductionReady:     true,
		Assessment:          "Code generated successfully but needs manual review",
	}
}
