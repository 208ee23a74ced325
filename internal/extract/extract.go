// Package extract recovers clean payloads from raw model output.
//
// Generative models frequently wrap the requested payload in prose or fenced
// code blocks even when told not to. The routines here strip that wrapping
// with narrow, deterministic string rules and default to the full text when
// no delimiters are found. Extraction is idempotent: running any routine on
// already-clean text returns it unchanged.
//
// This logic stays here and MUST NOT leak into the orchestrator.
package extract

import "strings"

const fence = "```"

// prosePrefixes are leading lines models prepend despite instructions.
var prosePrefixes = []string{
	"Here's the code:",
	"Here is the code:",
	"Code:",
}

// JSONBlock returns the JSON payload embedded in raw model output.
//
// Preference order: a ```json fenced block, then the first generic fenced
// block, then the whole text trimmed.
func JSONBlock(raw string) string {
	if _, after, ok := strings.Cut(raw, fence+"json"); ok {
		body, _, _ := strings.Cut(after, fence)
		return strings.TrimSpace(body)
	}
	if _, after, ok := strings.Cut(raw, fence); ok {
		body, _, _ := strings.Cut(after, fence)
		return strings.TrimSpace(body)
	}
	return strings.TrimSpace(raw)
}

// CodeBlock returns the source code embedded in raw model output.
//
// lang is the fence language tag to prefer ("python", "html"). A generic
// fenced block is accepted as a fallback only when both fences are present;
// otherwise the full text is kept, since truncated output is still worth
// validating and repairing. Known prose prefixes and a leading bare language
// tag are stripped, and line endings are normalized to LF.
func CodeBlock(raw, lang string) string {
	code := strings.TrimSpace(raw)

	if _, after, ok := strings.Cut(code, fence+lang); ok {
		body, _, _ := strings.Cut(after, fence)
		code = strings.TrimSpace(body)
	} else if strings.Count(code, fence) >= 2 {
		parts := strings.SplitN(code, fence, 3)
		code = strings.TrimSpace(parts[1])
	}

	for _, prefix := range prosePrefixes {
		if strings.HasPrefix(code, prefix) {
			code = strings.TrimSpace(strings.TrimPrefix(code, prefix))
		}
	}
	// A bare language tag left over from a fence like "``` python".
	for _, tag := range languageTags(lang) {
		if strings.HasPrefix(code, tag) {
			code = strings.TrimSpace(strings.TrimPrefix(code, tag))
		}
	}

	return strings.ReplaceAll(code, "\r\n", "\n")
}

// languageTags returns the lowercase and capitalized forms of a fence
// language tag, each terminated by a newline.
func languageTags(lang string) []string {
	if lang == "" {
		return nil
	}
	capitalized := strings.ToUpper(lang[:1]) + lang[1:]
	return []string{lang + "\n", capitalized + "\n"}
}

// EnsureHTMLPrelude prepends a standard doctype when the document lacks one.
// Calling it on a document that already has a doctype returns it unchanged.
func EnsureHTMLPrelude(code string) string {
	if strings.HasPrefix(code, "<!DOCTYPE") || strings.HasPrefix(code, "<!doctype") {
		return code
	}
	return "<!DOCTYPE html>\n" + code
}
