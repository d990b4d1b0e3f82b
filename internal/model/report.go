package model

import "time"

// AnalysisResult is the section-level output of the FLS engine.
// Candidates are listed in original document order so downstream consumers
// can reconstruct a linear reading of the source text.
type AnalysisResult struct {
	SectionName       string                  `json:"section_name"`
	SectionKind       SectionKind             `json:"section_kind"`
	Candidates        []FLSCandidate          `json:"candidates"`
	TotalFound        int                     `json:"total_found"`
	AverageConfidence float64                 `json:"average_confidence"`
	CategoryHistogram map[TopicalCategory]int `json:"category_histogram"`
	Metadata          ResultMetadata          `json:"metadata"`
}

// ResultMetadata carries document-level statistics alongside the candidates
type ResultMetadata struct {
	TextLength    int     `json:"text_length"`
	TotalSegments int     `json:"total_segments"`
	FLSDensity    float64 `json:"fls_density"` // kept candidates / total segments
}

// Report is the complete artifact for one analyzed section file
type Report struct {
	Source     string          `json:"source"` // path of the analyzed file
	AnalyzedAt time.Time       `json:"analyzed_at"`
	Result     *AnalysisResult `json:"result"`

	LLM *LLMSummary `json:"llm,omitempty"` // optional, never affects scores
}

// LLMSummary contains an optional LLM-generated narrative of the results.
// It is produced after scoring and never feeds back into it.
type LLMSummary struct {
	Enabled   bool   `json:"enabled"`
	Provider  string `json:"provider,omitempty"`
	Model     string `json:"model,omitempty"`
	SummaryMD string `json:"summary_md,omitempty"`
}
