package meeting

import (
	"context"
	"fmt"
	"strings"
)

// summaryVariant pairs a system persona with its user prompt template. The
// template receives the flattened transcript as its only argument.
type summaryVariant struct {
	name   string
	system string
	prompt string
}

var summaryVariants = [4]summaryVariant{
	{
		name:   "summary",
		system: "You are a helpful assistant that summarizes meeting transcripts clearly and concisely. Do NOT use markdown. Output plain text only without asterisks or hashes.",
		prompt: "Please summarize the following meeting transcript:\n\n%s",
	},
	{
		name:   "summary_hi",
		system: "You are a helpful assistant that summarizes meeting transcripts clearly and concisely in Hinglish (Hindi + English). Do NOT use markdown. Output plain text only without asterisks or hashes.",
		prompt: "Please summarize the following meeting transcript in Hinglish (a natural mix of Hindi and English, written in the English alphabet):\n\n%s",
	},
	{
		name:   "summary_speakers",
		system: "You are a helpful assistant that summarizes meeting transcripts by grouping the summary by each individual speaker. Do NOT use markdown. Output plain text only without asterisks or hashes.",
		prompt: "Please provide a summary of the meeting, grouped by each speaker. Highlight their key points, action items, and general contributions. Format the output with clear headings for each speaker.\n\nTranscript:\n%s",
	},
	{
		name:   "summary_speakers_hi",
		system: "You are a helpful assistant that summarizes meeting transcripts by grouping the summary by each individual speaker in Hinglish. Do NOT use markdown. Output plain text only without asterisks or hashes.",
		prompt: "Please provide a summary of the meeting, grouped by each speaker, in Hinglish (a natural mix of Hindi and English, written in the English alphabet). Highlight their key points, action items, and general contributions. Format the output with clear headings for each speaker.\n\nTranscript:\n%s",
	},
}

var markdownStripper = strings.NewReplacer("*", "", "#", "")

// generateSummary requests one summary variant over the transcript. The
// personas already forbid markdown, but models slip; residual asterisks and
// hashes are stripped from the output.
func (s *Service) generateSummary(ctx context.Context, variant summaryVariant, transcript string) (string, error) {
	content, err := s.groq.ChatCompletion(ctx,
		s.cfg.Groq.AnalysisModel,
		0, // provider default
		variant.system,
		fmt.Sprintf(variant.prompt, transcript),
	)
	if err != nil {
		return "", err
	}
	return markdownStripper.Replace(content), nil
}
