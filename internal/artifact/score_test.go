package artifact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/constants"
)

func TestScoreBackend_Empty(t *testing.T) {
	t.Parallel()

	assert.Zero(t, ScoreBackend(""))
}

func TestScoreBackend_Complete(t *testing.T) {
	t.Parallel()

	score := ScoreBackend(completeBackend)
	assert.Greater(t, score, 50)
	assert.LessOrEqual(t, score, constants.MaxQualityScore)
}

func TestScoreBackend_EndpointContributionIsCapped(t *testing.T) {
	t.Parallel()

	five := strings.Repeat("@app.get\n", 5)
	fifty := strings.Repeat("@app.get\n", 50)
	assert.Equal(t, ScoreBackend(five), ScoreBackend(fifty))
}

func TestScoreBackend_MoreMarkersScoreHigher(t *testing.T) {
	t.Parallel()

	partial := "import uvicorn\nfrom fastapi import FastAPI"
	assert.Greater(t, ScoreBackend(completeBackend), ScoreBackend(partial))
}

func TestScoreFrontend_Empty(t *testing.T) {
	t.Parallel()

	assert.Zero(t, ScoreFrontend(""))
}

func TestScoreFrontend_Complete(t *testing.T) {
	t.Parallel()

	score := ScoreFrontend(completeFrontend)
	assert.Greater(t, score, 50)
	assert.LessOrEqual(t, score, constants.MaxQualityScore)
}

func TestScoreFrontend_InteractiveElementsAreCapped(t *testing.T) {
	t.Parallel()

	// All five recognized elements contribute the same as the cap allows.
	many := "button form input modal toast button button"
	few := "button form input modal toast"
	assert.Equal(t, ScoreFrontend(few), ScoreFrontend(many))
}

func TestScoreFrontend_RepairImprovesScore(t *testing.T) {
	t.Parallel()

	truncated := `<html>
<head><title>x</title></head>
<body>
<script src="https://cdn.tailwindcss.com"></script>
<script>
document.addEventListener("DOMContentLoaded", () => { fetch("/items") });`

	assert.Greater(t, ScoreFrontend(RepairFrontend(truncated)), ScoreFrontend(truncated))
}
