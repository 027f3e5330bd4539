package models

import "time"

// InteractionKind identifies which user action produced an interaction.
type InteractionKind string

const (
	InteractionAnalyze  InteractionKind = "analyze"
	InteractionGenerate InteractionKind = "generate"
	InteractionFollowUp InteractionKind = "followup"
)

// LanguageSource records how the session language was determined.
type LanguageSource string

const (
	LanguageExplicit LanguageSource = "explicit"
	LanguageDetected LanguageSource = "auto"
)

// Session is the in-memory state of one editor tab. It is created when the
// frontend opens a tab and discarded when the tab closes; nothing in it is
// persisted.
type Session struct {
	ID             string          `json:"id"`
	CurrentCode    string          `json:"currentCode"`
	Language       string          `json:"language"`
	LanguageSource LanguageSource  `json:"languageSource"`
	FileName       string          `json:"fileName,omitempty"`
	Repo           *RepoInfo       `json:"repo,omitempty"`
	LastAnalysis   *AnalysisResult `json:"lastAnalysis,omitempty"`
	LastGenerated  *GeneratedCode  `json:"lastGenerated,omitempty"`
	History        []Interaction   `json:"history"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// Interaction is one prompt/response pair. History is append-only within a
// session.
type Interaction struct {
	Kind        InteractionKind `json:"kind"`
	Prompt      string          `json:"prompt"`
	RawResponse string          `json:"rawResponse"`
	ModelKey    string          `json:"modelKey"`
	Elapsed     time.Duration   `json:"elapsed"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// AnalysisResult holds the sectioned output of one analyze action. Fields are
// whatever text the model emitted under each heading; a heading the model
// skipped leaves its field empty.
type AnalysisResult struct {
	CorrectedCode     string `json:"correctedCode"`
	Explanation       string `json:"explanation"`
	OptimizationNotes string `json:"optimizationNotes"`
	Raw               string `json:"raw"`
}

// GeneratedCode holds the sectioned output of one generate action.
type GeneratedCode struct {
	Code       string `json:"code"`
	Overview   string `json:"overview"`
	Features   string `json:"features"`
	Extensions string `json:"extensions"`
	Language   string `json:"language"`
	Raw        string `json:"raw"`
}

// RepoInfo is shown in the session header when the loaded file lives inside a
// git repository.
type RepoInfo struct {
	Root   string `json:"root"`
	Branch string `json:"branch"`
	Commit string `json:"commit"`
}
