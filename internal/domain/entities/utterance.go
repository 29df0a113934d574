package entities

// Utterance represents a single diarized speaker segment of the meeting.
// Timestamps are milliseconds from the start of the recording, as reported
// by the transcription provider.
type Utterance struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
	StartMs int    `json:"start"`
	EndMs   int    `json:"end"`
}

// DurationMs returns the spoken duration of the utterance. Negative spans
// from bad provider data are clamped to zero.
func (u Utterance) DurationMs() int {
	d := u.EndMs - u.StartMs
	if d < 0 {
		return 0
	}
	return d
}

// Chapter represents an auto-generated chapter, passed through from the
// transcription provider unchanged.
type Chapter struct {
	Gist     string `json:"gist,omitempty"`
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	StartMs  int    `json:"start"`
	EndMs    int    `json:"end"`
}
