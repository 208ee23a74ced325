// Package artifact validates, repairs, and scores generated source artifacts.
//
// Validation runs a fixed checklist of structural markers against a cleaned
// artifact. A failed check is not an error: the resulting report feeds the
// repair step and the quality score, and is surfaced in the artifact's
// metadata regardless of outcome.
package artifact

import (
	"strings"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/domain"
)

// check is one entry in a structural-marker checklist.
type check struct {
	issue string
	ok    func(code string) bool
}

func has(marker string) func(string) bool {
	return func(code string) bool { return strings.Contains(code, marker) }
}

// backendChecks is the fixed checklist for generated FastAPI backends.
var backendChecks = []check{
	{"Missing import: uvicorn", has("uvicorn")},
	{"Missing import: FastAPI", has("FastAPI")},
	{"Missing import: CORSMiddleware", has("CORSMiddleware")},
	{"Missing FastAPI app initialization", has("app = FastAPI")},
	{"Missing CORS middleware configuration", func(code string) bool {
		return strings.Contains(code, "add_middleware") && strings.Contains(code, "CORSMiddleware")
	}},
	{"Missing uvicorn.run() execution block", has("uvicorn.run")},
	{"No API endpoints defined", has("@app.")},
	{"No Pydantic models defined", has("BaseModel")},
}

// frontendChecks is the fixed checklist for generated single-page frontends.
var frontendChecks = []check{
	{"Missing DOCTYPE declaration", func(code string) bool {
		return strings.Contains(code, "<!DOCTYPE") || strings.Contains(code, "<!doctype")
	}},
	{"Missing html tag", has("<html")},
	{"Missing closing html tag - code is truncated", has("</html>")},
	{"Missing head section", has("<head>")},
	{"Missing title tag", has("<title>")},
	{"Missing Tailwind CSS CDN", func(code string) bool {
		return strings.Contains(strings.ToLower(code), "tailwindcss")
	}},
	{"Missing body tag", has("<body")},
	{"Missing script section", func(code string) bool {
		return strings.Contains(code, "<script>") || strings.Contains(code, "<script ")
	}},
	{"Missing closing script tag - JavaScript is truncated", has("</script>")},
	{"Missing API integration", func(code string) bool {
		return strings.Contains(code, "API_BASE_URL") || strings.Contains(code, "fetch(")
	}},
	{"Missing DOMContentLoaded event listener", has("DOMContentLoaded")},
}

// runChecklist evaluates every check and builds a report.
func runChecklist(code string, checks []check) *domain.ValidationReport {
	issues := make([]string, 0, len(checks))
	for _, c := range checks {
		if !c.ok(code) {
			issues = append(issues, c.issue)
		}
	}
	return &domain.ValidationReport{
		Valid:        len(issues) == 0,
		Issues:       issues,
		ChecksPassed: len(checks) - len(issues),
		TotalChecks:  len(checks),
	}
}

// ValidateBackend checks a generated backend for the structural markers a
// runnable FastAPI service needs.
func ValidateBackend(code string) *domain.ValidationReport {
	return runChecklist(code, backendChecks)
}

// ValidateFrontend checks a generated frontend for the structural markers a
// complete single-page application needs.
func ValidateFrontend(code string) *domain.ValidationReport {
	return runChecklist(code, frontendChecks)
}
