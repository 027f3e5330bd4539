package services

import (
	"fmt"
	"strings"

	"codesage/internal/models"
)

// Section headings the system prompts instruct the model to emit. The
// splitter matches them case-insensitively and tolerates trailing text on the
// heading line.
const (
	markerCorrectedCode = "Corrected Code"
	markerExplanation   = "Explanation"
	markerOptimization  = "Optimization Suggestions"

	markerCode       = "Code"
	markerOverview   = "Overview"
	markerFeatures   = "Key Features"
	markerExtensions = "Extensions"
)

func buildAnalyzePrompt(language, code string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Review the following %s code.\n\n", language)
	fmt.Fprintf(&b, "```%s\n%s\n```\n", language, strings.TrimRight(code, "\n"))
	return b.String()
}

func buildGeneratePrompt(language, description, templateContent, refinement string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %s code that does the following:\n%s\n", language, strings.TrimSpace(description))
	if strings.TrimSpace(templateContent) != "" {
		fmt.Fprintf(&b, "\n%s\n", strings.TrimSpace(templateContent))
	}
	if strings.TrimSpace(refinement) != "" {
		fmt.Fprintf(&b, "\nFeedback on the previous attempt:\n%s\n", strings.TrimSpace(refinement))
	}
	return b.String()
}

func buildFollowUpPrompt(language, code string, last *models.AnalysisResult, question string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The %s code under discussion:\n\n", language)
	fmt.Fprintf(&b, "```%s\n%s\n```\n\n", language, strings.TrimRight(code, "\n"))
	if last != nil && strings.TrimSpace(last.Explanation) != "" {
		fmt.Fprintf(&b, "Your previous analysis said:\n%s\n\n", strings.TrimSpace(last.Explanation))
	}
	fmt.Fprintf(&b, "Follow-up question: %s\n", strings.TrimSpace(question))
	return b.String()
}

func parseAnalysisResponse(raw string) *models.AnalysisResult {
	sections := splitSections(raw, []string{markerCorrectedCode, markerExplanation, markerOptimization})
	return &models.AnalysisResult{
		CorrectedCode:     stripCodeFence(sections[markerCorrectedCode]),
		Explanation:       sections[markerExplanation],
		OptimizationNotes: sections[markerOptimization],
		Raw:               raw,
	}
}

func parseGenerationResponse(raw, language string) *models.GeneratedCode {
	sections := splitSections(raw, []string{markerCode, markerOverview, markerFeatures, markerExtensions})
	return &models.GeneratedCode{
		Code:       stripCodeFence(sections[markerCode]),
		Overview:   sections[markerOverview],
		Features:   sections[markerFeatures],
		Extensions: sections[markerExtensions],
		Language:   language,
		Raw:        raw,
	}
}

// splitSections cuts text into the chunks between recognized markdown
// headings. Each section runs from its heading to the next recognized heading
// or end of text. Text before the first recognized heading is dropped;
// markers the model skipped are simply absent from the result.
func splitSections(text string, markers []string) map[string]string {
	sections := make(map[string]string)

	var current string
	var buf []string
	flush := func() {
		if current != "" {
			sections[current] = strings.TrimSpace(strings.Join(buf, "\n"))
		}
		buf = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if marker, ok := matchHeading(line, markers); ok {
			flush()
			current = marker
			continue
		}
		if current != "" {
			buf = append(buf, line)
		}
	}
	flush()
	return sections
}

// matchHeading reports whether line is a markdown heading naming one of the
// markers. Comparison ignores case, surrounding emphasis and a trailing
// colon.
func matchHeading(line string, markers []string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "#") {
		return "", false
	}
	heading := strings.TrimLeft(trimmed, "#")
	heading = strings.Trim(heading, " *_:")
	for _, marker := range markers {
		if strings.EqualFold(heading, marker) {
			return marker, true
		}
	}
	return "", false
}

// stripCodeFence removes a surrounding markdown fence (with optional language
// tag) from a section, leaving bare code. Sections without a fence pass
// through unchanged.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return trimmed
	}
	// Drop the opening fence line and everything from the closing fence on.
	body := lines[1:]
	for i, line := range body {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			body = body[:i]
			break
		}
	}
	return strings.TrimRight(strings.Join(body, "\n"), "\n")
}
