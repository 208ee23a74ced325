package domain

// TechnicalRequirements captures the concrete technical needs extracted from
// a free-text requirement.
type TechnicalRequirements struct {
	// Backend lists backend capabilities the application needs.
	Backend []string `json:"backend"`

	// Frontend lists frontend capabilities the application needs.
	Frontend []string `json:"frontend"`

	// Database names the database type needed, or "none".
	Database string `json:"database"`

	// APIs lists external APIs the application integrates with.
	APIs []string `json:"apis"`
}

// RefinedRequirement is the refine stage's structured payload: a clarified
// restatement of the user's requirement plus extracted technical needs.
type RefinedRequirement struct {
	ClarifiedRequirement  string                `json:"clarified_requirement"`
	IdentifiedAmbiguities []string              `json:"identified_ambiguities"`
	TechnicalRequirements TechnicalRequirements `json:"technical_requirements"`
	ClarifyingQuestions   []string              `json:"clarifying_questions"`
	IsClear               bool                  `json:"is_clear"`
}

// FallbackRefinement is the refine stage's static fallback: the raw
// requirement passed through unchanged with a conservative minimal stack.
func FallbackRefinement(requirement string) RefinedRequirement {
	return RefinedRequirement{
		ClarifiedRequirement:  requirement,
		IdentifiedAmbiguities: []string{},
		TechnicalRequirements: TechnicalRequirements{
			Backend:  []string{"REST API"},
			Frontend: []string{"Web UI"},
			Database: "none",
			APIs:     []string{},
		},
		ClarifyingQuestions: []string{},
		IsClear:             true,
	}
}
