package artifact

import (
	"strings"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/constants"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/domain"
)

// ScoreBackend computes the heuristic 0-100 completeness score for a
// generated backend: a weighted sum over the presence of markers a complete
// FastAPI service exhibits. It is a proxy for completeness, not a
// correctness proof.
func ScoreBackend(code string) int {
	score := 0

	if strings.Contains(code, "import uvicorn") && strings.Contains(code, "from fastapi import") {
		score += 10
	}
	if strings.Contains(code, "CORSMiddleware") && strings.Contains(code, "add_middleware") {
		score += 10
	}
	if strings.Contains(code, "BaseModel") && strings.Contains(code, "Field") {
		score += 15
	}
	if strings.Contains(code, "HTTPException") && strings.Contains(code, "status_code") {
		score += 15
	}

	// Route contribution is capped so endpoint spam cannot dominate.
	endpoints := strings.Count(code, "@app.")
	score += min(20, endpoints*4)

	if strings.Contains(code, "db = {") || strings.Contains(strings.ToLower(code), "database") {
		score += 10
	}
	if strings.Contains(code, "uvicorn.run") && strings.Contains(code, "if __name__") {
		score += 10
	}

	switch lines := domain.CountLines(code); {
	case lines > 100:
		score += 10
	case lines > 50:
		score += 5
	}

	return min(score, constants.MaxQualityScore)
}

// ScoreFrontend computes the heuristic 0-100 completeness score for a
// generated frontend document.
func ScoreFrontend(code string) int {
	score := 0
	lower := strings.ToLower(code)

	structural := []string{"<!DOCTYPE", "<html", "</html>", "<head>", "<body"}
	complete := true
	for _, tag := range structural {
		if !strings.Contains(code, tag) {
			complete = false
			break
		}
	}
	if complete {
		score += 15
	}

	if strings.Contains(lower, "tailwindcss") {
		score += 10
	}
	if strings.Contains(code, "<style>") {
		score += 5
	}
	if strings.Contains(code, "<script>") || strings.Contains(code, "<script ") {
		score += 10
	}
	if strings.Contains(code, "</script>") {
		score += 10
	}
	if strings.Contains(code, "fetch(") {
		score += 10
	}
	if strings.Contains(code, "API_BASE_URL") || strings.Contains(code, "localhost:8080") {
		score += 5
	}
	if strings.Contains(code, "addEventListener") {
		score += 10
	}

	elements := 0
	for _, el := range []string{"button", "form", "input", "modal", "toast"} {
		if strings.Contains(lower, el) {
			elements++
		}
	}
	score += min(10, elements*2)

	if strings.Contains(code, "try") && strings.Contains(code, "catch") {
		score += 10
	}
	if strings.Contains(code, "</html>") && strings.Contains(code, "</script>") {
		score += 5
	}

	return min(score, constants.MaxQualityScore)
}
