package entities

// RiskLevel constants for extracted action items
const (
	RiskLevelLow    = "Low"
	RiskLevelMedium = "Medium"
	RiskLevelHigh   = "High"
)

// MeetingIntelligence is the structured report extracted from the transcript
// by the LLM: missed signals, a health assessment and risk-rated action
// items. SpeakerMetrics is attached by the pipeline after extraction.
type MeetingIntelligence struct {
	MissedSignals  []string        `json:"missed_signals"`
	Health         MeetingHealth   `json:"health"`
	ActionItems    []ActionItem    `json:"action_items"`
	SpeakerMetrics *SpeakerMetrics `json:"speaker_metrics,omitempty"`
}

// MeetingHealth scores the meeting from 1.0 (poor) to 10.0 (excellent)
type MeetingHealth struct {
	Score      float64  `json:"score"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

// ActionItem is a task extracted from the transcript. Owner and Deadline are
// nil when the transcript never mentions them.
type ActionItem struct {
	Task       string  `json:"task"`
	Owner      *string `json:"owner"`
	Deadline   *string `json:"deadline"`
	RiskLevel  string  `json:"risk_level"`
	RiskReason string  `json:"risk_reason"`
}
