package entities

// SpeakerMetrics aggregates deterministic per-speaker conversation stats
// computed from utterance timing alone.
type SpeakerMetrics struct {
	TotalSpokenTimeMs int           `json:"total_spoken_time"`
	Speakers          []SpeakerStat `json:"speakers"`
	Interruptions     int           `json:"interruptions"`
}

// SpeakerStat holds talk-time aggregates for one speaker. Percentage is the
// rounded share of total spoken time, 0 when nothing was spoken.
type SpeakerStat struct {
	Name               string `json:"name"`
	TotalTimeMs        int    `json:"total_time"`
	Percentage         int    `json:"percentage"`
	LongestMonologueMs int    `json:"longest_monologue"`
}

// Interruption records a single overlap event: a speaker starting before the
// running end-time envelope of prior speech has closed. Only the count is
// surfaced in responses.
type Interruption struct {
	Interrupter string `json:"interrupter"`
	Interrupted string `json:"interrupted"`
	TimeMs      int    `json:"time"`
}
