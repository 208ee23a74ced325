package prompts

import (
	"bytes"
	"errors"
	"fmt"
)

// Render executes a prompt template with the provided data and returns the
// result. The data type should match the expected type for the given ID.
//
// Example:
//
//	data := prompts.RefineData{
//	    Requirement:        "build a todo app",
//	    FormatInstructions: prompts.RefinementFormat,
//	}
//	system, err := prompts.Render(prompts.RefineSystem, data)
func Render(id PromptID, data any) (string, error) {
	tmpl, err := globalRegistry.get(id)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Join(ErrTemplateExecution, fmt.Errorf("prompt %s: %w", id, err))
	}

	return buf.String(), nil
}

// MustRender is Render for templates whose data is known-good at compile
// time. It panics on failure, which the orchestrator's recover boundary
// treats as a programming defect.
func MustRender(id PromptID, data any) string {
	out, err := Render(id, data)
	if err != nil {
		panic(fmt.Sprintf("prompt %s: %v", id, err))
	}
	return out
}
