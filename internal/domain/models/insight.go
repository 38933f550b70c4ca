package models

import "time"

// Language selects the language narrative insights and messages are produced in.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageBengali Language = "bn"
)

// ParseLanguage returns the language for code, falling back when unknown.
func ParseLanguage(code string, fallback Language) Language {
	switch Language(code) {
	case LanguageEnglish, LanguageBengali:
		return Language(code)
	default:
		return fallback
	}
}

// Pipeline names one of the independent narrative analysis flows.
type Pipeline string

const (
	PipelineDaily   Pipeline = "daily"
	PipelineAnomaly Pipeline = "anomaly"
	PipelineMarket  Pipeline = "market"
)

// Insight is the free text returned by the narrative service.
type Insight struct {
	Text    string   `json:"text"`
	Sources []string `json:"sources,omitempty"`
}

// PipelineResult is the terminal state of one pipeline run. Exactly one of
// Insight or Error is meaningful; Message carries informational terminal
// states such as "no anomaly".
type PipelineResult struct {
	Pipeline    Pipeline  `json:"pipeline"`
	Insight     *Insight  `json:"insight,omitempty"`
	Message     string    `json:"message,omitempty"`
	Error       string    `json:"error,omitempty"`
	CompletedAt time.Time `json:"completedAt"`
}
