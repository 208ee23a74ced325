package prompts

// PromptID identifies a specific prompt template.
type PromptID string

// Prompt identifiers for the six pipeline stages. Each generative stage has
// a system template (the agent's role and output rules) and a user template
// (the per-run inputs).
const (
	RefineSystem    PromptID = "refine/system"
	RefineUser      PromptID = "refine/user"
	ArchitectSystem PromptID = "architect/system"
	ArchitectUser   PromptID = "architect/user"
	BackendSystem   PromptID = "backend/system"
	BackendUser     PromptID = "backend/user"
	FrontendSystem  PromptID = "frontend/system"
	FrontendUser    PromptID = "frontend/user"
	ReviewSystem    PromptID = "review/system"
	ReviewUser      PromptID = "review/user"
)

// RefineData contains input data for the requirement-refinement prompts.
type RefineData struct {
	// Requirement is the user's raw free-text requirement.
	Requirement string
	// FormatInstructions describes the expected JSON shape.
	FormatInstructions string
}

// ArchitectData contains input data for the architecture-decision prompts.
type ArchitectData struct {
	// Requirements is the refined requirement rendered as indented JSON.
	Requirements string
	// FormatInstructions describes the expected JSON shape.
	FormatInstructions string
}

// CodeGenData contains input data for the backend-generation prompts.
type CodeGenData struct {
	// Requirements is the refined requirement rendered as indented JSON.
	Requirements string
	// Architecture is the architecture decision rendered as indented JSON.
	Architecture string
}

// UIData contains input data for the frontend-generation prompts.
type UIData struct {
	// Requirements is the refined requirement rendered as indented JSON.
	Requirements string
	// BackendInfo summarizes the generated backend (framework, port, routes).
	BackendInfo string
}

// ReviewData contains input data for the code-review prompts.
type ReviewData struct {
	// BackendSnippet is the truncated backend source.
	BackendSnippet string
	// FrontendSnippet is the truncated frontend source.
	FrontendSnippet string
	// FormatInstructions describes the expected JSON shape.
	FormatInstructions string
}
