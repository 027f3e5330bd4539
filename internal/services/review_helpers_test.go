package services

import (
	"strings"
	"testing"
)

const sampleAnalysisResponse = "Intro chatter the model should not emit.\n" +
	"### Corrected Code\n" +
	"```python\nprint('fixed')\n```\n" +
	"### Explanation\n" +
	"The print call was broken.\n" +
	"### Optimization Suggestions\n" +
	"Use buffered output.\n"

func TestParseAnalysisResponse_AllSections(t *testing.T) {
	result := parseAnalysisResponse(sampleAnalysisResponse)

	if result.CorrectedCode != "print('fixed')" {
		t.Fatalf("unexpected corrected code: %q", result.CorrectedCode)
	}
	if result.Explanation != "The print call was broken." {
		t.Fatalf("unexpected explanation: %q", result.Explanation)
	}
	if result.OptimizationNotes != "Use buffered output." {
		t.Fatalf("unexpected optimization notes: %q", result.OptimizationNotes)
	}
	if result.Raw != sampleAnalysisResponse {
		t.Fatal("raw response should be preserved verbatim")
	}
}

func TestParseAnalysisResponse_MissingSectionIsEmpty(t *testing.T) {
	raw := "### Corrected Code\n```go\nx := 1\n```\n### Explanation\nAll good.\n"
	result := parseAnalysisResponse(raw)

	if result.CorrectedCode != "x := 1" {
		t.Fatalf("unexpected corrected code: %q", result.CorrectedCode)
	}
	if result.Explanation != "All good." {
		t.Fatalf("unexpected explanation: %q", result.Explanation)
	}
	if result.OptimizationNotes != "" {
		t.Fatalf("missing section should be empty, got %q", result.OptimizationNotes)
	}
}

func TestParseGenerationResponse_AllSections(t *testing.T) {
	raw := "### Code\n```go\npackage main\n```\n" +
		"### Overview\n- small\n" +
		"### Key Features\n- fast\n" +
		"### Extensions\n- add flags\n"
	result := parseGenerationResponse(raw, "go")

	if result.Code != "package main" {
		t.Fatalf("unexpected code: %q", result.Code)
	}
	if result.Overview != "- small" || result.Features != "- fast" || result.Extensions != "- add flags" {
		t.Fatalf("unexpected sections: %+v", result)
	}
	if result.Language != "go" {
		t.Fatalf("language should carry through, got %q", result.Language)
	}
}

func TestMatchHeading(t *testing.T) {
	cases := []struct {
		name    string
		line    string
		want    string
		matched bool
	}{
		{"exact", "### Explanation", markerExplanation, true},
		{"case insensitive", "### EXPLANATION", markerExplanation, true},
		{"trailing colon", "## Explanation:", markerExplanation, true},
		{"bold heading", "### **Explanation**", markerExplanation, true},
		{"not a heading", "Explanation", "", false},
		{"different word", "### Summary", "", false},
		{"code is not corrected code", "### Code", "", false},
	}

	markers := []string{markerCorrectedCode, markerExplanation, markerOptimization}
	for _, tc := range cases {
		got, ok := matchHeading(tc.line, markers)
		if ok != tc.matched || got != tc.want {
			t.Fatalf("%s: got (%q, %v), want (%q, %v)", tc.name, got, ok, tc.want, tc.matched)
		}
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"fenced with language", "```python\nprint(1)\n```", "print(1)"},
		{"fenced without language", "```\nx = 1\ny = 2\n```", "x = 1\ny = 2"},
		{"unfenced passes through", "plain code", "plain code"},
		{"unterminated fence", "```go\nfunc main() {}", "func main() {}"},
	}

	for _, tc := range cases {
		if got := stripCodeFence(tc.input); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestBuildAnalyzePrompt_EmbedsLanguageAndCode(t *testing.T) {
	prompt := buildAnalyzePrompt("python", "print('hi')\n")
	if !strings.Contains(prompt, "python code") {
		t.Fatalf("prompt should name the language: %q", prompt)
	}
	if !strings.Contains(prompt, "```python\nprint('hi')\n```") {
		t.Fatalf("prompt should embed the fenced code: %q", prompt)
	}
}

func TestBuildGeneratePrompt_OptionalParts(t *testing.T) {
	minimal := buildGeneratePrompt("go", "a REST API", "", "")
	if strings.Contains(minimal, "previous attempt") {
		t.Fatalf("refinement text should be absent: %q", minimal)
	}

	full := buildGeneratePrompt("go", "a REST API", "Structure as an HTTP API.", "add rate limiting")
	for _, want := range []string{"a REST API", "Structure as an HTTP API.", "add rate limiting"} {
		if !strings.Contains(full, want) {
			t.Fatalf("prompt missing %q: %q", want, full)
		}
	}
}
