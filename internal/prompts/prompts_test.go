package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_AllStageTemplatesLoaded(t *testing.T) {
	t.Parallel()

	ids := []PromptID{
		RefineSystem, RefineUser,
		ArchitectSystem, ArchitectUser,
		BackendSystem, BackendUser,
		FrontendSystem, FrontendUser,
		ReviewSystem, ReviewUser,
	}
	for _, id := range ids {
		_, err := globalRegistry.get(id)
		assert.NoError(t, err, string(id))
	}
}

func TestRender_RefineUser(t *testing.T) {
	t.Parallel()

	out, err := Render(RefineUser, RefineData{Requirement: "build a todo app"})
	require.NoError(t, err)
	assert.Contains(t, out, "build a todo app")
}

func TestRender_RefineSystemIncludesFormat(t *testing.T) {
	t.Parallel()

	out, err := Render(RefineSystem, RefineData{
		Requirement:        "build a todo app",
		FormatInstructions: RefinementFormat,
	})
	require.NoError(t, err)
	assert.Contains(t, out, "requirements analyst")
	assert.Contains(t, out, "single JSON object")
}

func TestRender_ReviewUser(t *testing.T) {
	t.Parallel()

	out, err := Render(ReviewUser, ReviewData{
		BackendSnippet:     "def handler(): pass",
		FrontendSnippet:    "<html></html>",
		FormatInstructions: ReviewFormat,
	})
	require.NoError(t, err)
	assert.Contains(t, out, "def handler(): pass")
	assert.Contains(t, out, "<html></html>")
}

func TestRender_UnknownID(t *testing.T) {
	t.Parallel()

	_, err := Render(PromptID("nope/user"), nil)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestMustRender(t *testing.T) {
	t.Parallel()

	out := MustRender(ArchitectUser, ArchitectData{Requirements: `{"goal":"todo"}`})
	assert.Contains(t, out, `{"goal":"todo"}`)

	assert.Panics(t, func() {
		MustRender(PromptID("missing/template"), nil)
	})
}

func TestFormatInstructions_DescribeJSONShape(t *testing.T) {
	t.Parallel()

	assert.Contains(t, RefinementFormat, "clarified_requirement")
	assert.Contains(t, ArchitectureFormat, "app_type")
	assert.Contains(t, ReviewFormat, "overall_score")
}
