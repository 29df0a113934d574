package entities

// MeetingResult is the aggregate response for one processed recording:
// the renamed transcript, provider chapters, the four summary variants and
// the intelligence report. Intelligence is nil when extraction failed;
// the rest of the result is still returned.
type MeetingResult struct {
	Transcript              []Utterance          `json:"transcript"`
	Chapters                []Chapter            `json:"chapters"`
	Summary                 string               `json:"summary"`
	SummaryHinglish         string               `json:"summary_hi"`
	SummarySpeakers         string               `json:"summary_speakers"`
	SummarySpeakersHinglish string               `json:"summary_speakers_hi"`
	Intelligence            *MeetingIntelligence `json:"meeting_intelligence"`
}
