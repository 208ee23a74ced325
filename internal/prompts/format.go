package prompts

// Format instructions embedded into structured-output prompts. They describe
// the expected JSON shape to the model; they are purely advisory and nothing
// enforces them — the extraction layer handles whatever comes back.

// RefinementFormat describes the refine stage's expected JSON output.
const RefinementFormat = `Respond with a single JSON object, no surrounding prose:
{
  "clarified_requirement": "clear and detailed requirement",
  "identified_ambiguities": ["ambiguity found", ...],
  "technical_requirements": {
    "backend": ["backend requirement", ...],
    "frontend": ["frontend requirement", ...],
    "database": "database type needed or none",
    "apis": ["external API needed", ...]
  },
  "clarifying_questions": ["question for the user", ...],
  "is_clear": true
}`

// ArchitectureFormat describes the architect stage's expected JSON output.
const ArchitectureFormat = `Respond with a single JSON object, no surrounding prose:
{
  "app_type": "type of application (REST API, web_app, ...)",
  "tech_stack": {
    "backend": "backend framework",
    "frontend": "frontend framework",
    "database": "database type"
  },
  "architecture": "architecture pattern",
  "components": ["component to develop", ...],
  "development_order": ["component name in build order", ...],
  "estimated_complexity": "low | medium | high"
}`

// ReviewFormat describes the review stage's expected JSON output.
const ReviewFormat = `Respond with a single JSON object, no surrounding prose:
{
  "backend_score": 0,
  "frontend_score": 0,
  "overall_score": 0.0,
  "security_issues": ["security concern found", ...],
  "performance_concerns": ["performance issue", ...],
  "best_practices": ["best practice note", ...],
  "suggestions": ["improvement suggestion", ...],
  "is_production_ready": false,
  "assessment": "overall assessment"
}`
