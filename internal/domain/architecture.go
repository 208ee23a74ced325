package domain

// TechStack names the frameworks chosen for each tier.
type TechStack struct {
	Backend  string `json:"backend"`
	Frontend string `json:"frontend"`
	Database string `json:"database"`
}

// ArchitectureDecision is the architect stage's structured payload: what kind
// of application to build, with which stack, in which order.
type ArchitectureDecision struct {
	AppType             string    `json:"app_type"`
	TechStack           TechStack `json:"tech_stack"`
	Architecture        string    `json:"architecture"`
	Components          []string  `json:"components"`
	DevelopmentOrder    []string  `json:"development_order"`
	EstimatedComplexity string    `json:"estimated_complexity"`
}

// FallbackArchitecture is the architect stage's static fallback: a simple
// two-tier web app on the stack the code generators are tuned for.
func FallbackArchitecture() ArchitectureDecision {
	return ArchitectureDecision{
		AppType: "web_app",
		TechStack: TechStack{
			Backend:  "FastAPI",
			Frontend: "HTML/CSS/JS",
			Database: "None",
		},
		Architecture:        "simple_mvc",
		Components:          []string{"backend_api", "frontend_ui"},
		DevelopmentOrder:    []string{"backend", "frontend", "integration"},
		EstimatedComplexity: "medium",
	}
}
